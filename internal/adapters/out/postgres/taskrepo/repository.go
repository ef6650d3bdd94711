package taskrepo

import (
	"context"
	"errors"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/task"
	"wms/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormTaskRepository implements ports.TaskRepository using GORM.
type GormTaskRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormTaskRepository(db *gorm.DB, tracker aggregateTracker) *GormTaskRepository {
	return &GormTaskRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormTaskRepository) Add(ctx context.Context, aggregate *task.PickingTask) error {
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

// Update writes the picked quantity and status; everything else is fixed at creation.
func (r *GormTaskRepository) Update(ctx context.Context, aggregate *task.PickingTask) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TaskDTO{}).
		Where("id = ?", dto.ID).
		Select("picked_quantity", "status").
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

func (r *GormTaskRepository) Get(ctx context.Context, id kernel.UUID) (*task.PickingTask, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TaskDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("picking task", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormTaskRepository) FindByOrder(ctx context.Context, orderID kernel.UUID) ([]*task.PickingTask, error) {
	var dtos []TaskDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("seq").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	tasks := make([]*task.PickingTask, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, nil
}

func (r *GormTaskRepository) ReservedQuantity(ctx context.Context, itemID kernel.UUID, locationID *kernel.UUID) (kernel.Quantity, error) {
	query := r.db.WithContext(ctx).
		Model(&TaskDTO{}).
		Select("COALESCE(SUM(target_quantity), 0)").
		Where("item_id = ? AND status IN ?", itemID.Bytes(), outstandingStatusNames())
	if locationID != nil {
		query = query.Where("location_id = ?", locationID.Bytes())
	}

	var total decimal.Decimal
	if err := query.Row().Scan(&total); err != nil {
		return kernel.Quantity{}, err
	}

	return kernel.NewQuantity(total)
}

func outstandingStatusNames() []string {
	statuses := task.OutstandingStatuses()
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}
	return names
}
