package stockrepo

import (
	"context"
	"errors"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/stock"
	"wms/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStockRepository implements ports.StockRepository using GORM.
type GormStockRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormStockRepository(db *gorm.DB, tracker aggregateTracker) *GormStockRepository {
	return &GormStockRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormStockRepository) Add(ctx context.Context, aggregate *stock.Stock) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes quantity, batch and status. Item and location never change on a row.
func (r *GormStockRepository) Update(ctx context.Context, aggregate *stock.Stock) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&StockDTO{}).
		Where("id = ?", dto.ID).
		Select("quantity", "batch", "status").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormStockRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&StockDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *GormStockRepository) Get(ctx context.Context, id kernel.UUID) (*stock.Stock, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StockDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stock", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormStockRepository) FindByItem(ctx context.Context, itemID kernel.UUID, locationID *kernel.UUID) ([]*stock.Stock, error) {
	query := r.db.WithContext(ctx).Where("item_id = ? AND quantity > 0", itemID.Bytes())
	if locationID != nil {
		query = query.Where("location_id = ?", locationID.Bytes())
	}

	var dtos []StockDTO
	if err := query.Order("seq").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (r *GormStockRepository) FindByLocationAndItem(ctx context.Context, locationID, itemID kernel.UUID) ([]*stock.Stock, error) {
	var dtos []StockDTO
	if err := r.db.WithContext(ctx).
		Where("location_id = ? AND item_id = ?", locationID.Bytes(), itemID.Bytes()).
		Order("seq").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}
