// Package commands contains the write operations of the warehouse: catalog and
// location maintenance, the stock ledger, order allocation and fulfilment.
// Every handler runs in one unit of work: Begin, deferred Rollback, Commit.
package commands

import (
	"context"

	"wms/internal/core/ports"
)

// Unit of Work interfaces. Each handler depends on the narrowest one that covers
// the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	LocationRepoFactory interface {
		LocationRepository() ports.LocationRepository
	}

	StockRepoFactory interface {
		StockRepository() ports.StockRepository
	}

	MovementRepoFactory interface {
		MovementRepository() ports.MovementRepository
	}

	TaskRepoFactory interface {
		TaskRepository() ports.TaskRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CatalogUoW covers item maintenance.
	CatalogUoW interface {
		TxManager
		ItemRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// LocationUoW covers location maintenance.
	LocationUoW interface {
		TxManager
		LocationRepoFactory
	}

	LocationUoWFactory interface {
		Create() LocationUoW
	}

	// LedgerRepos is everything the StockLedger reads and writes.
	LedgerRepos interface {
		ItemRepoFactory
		LocationRepoFactory
		StockRepoFactory
		MovementRepoFactory
	}

	// LedgerUoW covers putaway and stock moves.
	LedgerUoW interface {
		TxManager
		LedgerRepos
	}

	LedgerUoWFactory interface {
		Create() LedgerUoW
	}

	// OrderUoW covers order-only changes such as shipping.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// TaskUoW covers task status changes and the order status they drive.
	TaskUoW interface {
		TxManager
		TaskRepoFactory
		OrderRepoFactory
	}

	TaskUoWFactory interface {
		Create() TaskUoW
	}

	// UoW spans every repository. Used by allocation and task confirmation.
	//
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer func() { _ = uow.Rollback(ctx) }()
	//   ...
	//   return uow.Commit(ctx)
	UoW interface {
		TxManager
		LedgerRepos
		TaskRepoFactory
		OrderRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
