package seed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"wms/internal/core/application/usecases/commands"
	"wms/internal/core/domain/model/item"
	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/location"
	"wms/internal/core/domain/model/stock"
)

type ItemCreator interface {
	Handle(ctx context.Context, cmd commands.CreateItemCommand) (*item.Item, error)
}

type LocationCreator interface {
	Handle(ctx context.Context, cmd commands.CreateLocationCommand) (*location.Location, error)
}

type StockReceiver interface {
	Handle(ctx context.Context, cmd commands.CreateStockCommand) (*stock.Stock, error)
}

// Result counts what a Load created.
type Result struct {
	Items     int
	Locations int
	Receipts  int
}

// Loader pushes a catalog through the regular command handlers, so every
// record goes through the same validation and ledger bookkeeping as the API.
type Loader struct {
	items     ItemCreator
	locations LocationCreator
	receipts  StockReceiver
	operator  kernel.Operator
	logger    *slog.Logger
}

func NewLoader(
	items ItemCreator,
	locations LocationCreator,
	receipts StockReceiver,
	operator kernel.Operator,
	logger *slog.Logger,
) *Loader {
	return &Loader{
		items:     items,
		locations: locations,
		receipts:  receipts,
		operator:  operator,
		logger:    logger.With("component", "seed"),
	}
}

// Load creates items first, then locations parent before child, then opening stock.
// It stops at the first failure; records created before it stay in place.
func (l *Loader) Load(ctx context.Context, catalog *Catalog) (Result, error) {
	var result Result

	itemIDs := make(map[string]kernel.UUID, len(catalog.Items))
	for _, entry := range catalog.Items {
		unitVolume, err := entry.unitVolume()
		if err != nil {
			return result, fmt.Errorf("item %s: %w", entry.Code, err)
		}
		reorderPoint, err := entry.reorderPoint()
		if err != nil {
			return result, fmt.Errorf("item %s: %w", entry.Code, err)
		}
		uom := entry.UnitOfMeasure
		if strings.TrimSpace(uom) == "" {
			uom = "EA"
		}
		cmd := commands.NewCreateItemCommand(entry.Code, entry.Description, entry.Category, uom, unitVolume, reorderPoint)
		created, err := l.items.Handle(ctx, cmd)
		if err != nil {
			return result, fmt.Errorf("item %s: %w", entry.Code, err)
		}
		itemIDs[created.Code()] = created.ID()
		result.Items++
	}

	locationIDs := make(map[string]kernel.UUID)
	if err := l.createLocations(ctx, catalog.Locations, nil, locationIDs, &result); err != nil {
		return result, err
	}

	for _, entry := range catalog.Stock {
		quantity, err := entry.quantity()
		if err != nil {
			return result, fmt.Errorf("stock %s@%s: %w", entry.Item, entry.Location, err)
		}
		itemID, ok := itemIDs[strings.TrimSpace(entry.Item)]
		if !ok {
			return result, fmt.Errorf("stock %s@%s: item is not part of the catalog", entry.Item, entry.Location)
		}
		locationID, ok := locationIDs[strings.TrimSpace(entry.Location)]
		if !ok {
			return result, fmt.Errorf("stock %s@%s: location is not part of the catalog", entry.Item, entry.Location)
		}
		var batch *string
		if b := strings.TrimSpace(entry.Batch); b != "" {
			batch = &b
		}
		cmd, err := commands.NewCreateStockCommand(itemID, locationID, quantity, batch, l.operator)
		if err != nil {
			return result, fmt.Errorf("stock %s@%s: %w", entry.Item, entry.Location, err)
		}
		if _, err := l.receipts.Handle(ctx, cmd); err != nil {
			return result, fmt.Errorf("stock %s@%s: %w", entry.Item, entry.Location, err)
		}
		result.Receipts++
	}

	l.logger.Info("Catalog loaded",
		"items", result.Items,
		"locations", result.Locations,
		"receipts", result.Receipts,
	)
	return result, nil
}

func (l *Loader) createLocations(
	ctx context.Context,
	entries []LocationEntry,
	parentID *kernel.UUID,
	ids map[string]kernel.UUID,
	result *Result,
) error {
	for _, entry := range entries {
		locationType, err := location.ParseType(entry.Type)
		if err != nil {
			return fmt.Errorf("location %s: %w", entry.Code, err)
		}
		capacity, err := entry.capacity()
		if err != nil {
			return fmt.Errorf("location %s: %w", entry.Code, err)
		}
		cmd, err := commands.NewCreateLocationCommand(entry.Code, entry.Description, locationType, parentID, capacity)
		if err != nil {
			return fmt.Errorf("location %s: %w", entry.Code, err)
		}
		created, err := l.locations.Handle(ctx, cmd)
		if err != nil {
			return fmt.Errorf("location %s: %w", entry.Code, err)
		}
		ids[created.Code()] = created.ID()
		result.Locations++
		l.logger.Debug("Location created", "code", created.Code(), "type", created.Type().String())

		id := created.ID()
		if err := l.createLocations(ctx, entry.Children, &id, ids, result); err != nil {
			return err
		}
	}
	return nil
}
