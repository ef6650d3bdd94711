package movementrepo

import (
	"context"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/movement"

	"gorm.io/gorm"
)

// GormMovementRepository implements ports.MovementRepository. Entries are only ever inserted.
type GormMovementRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormMovementRepository(db *gorm.DB, tracker aggregateTracker) *GormMovementRepository {
	return &GormMovementRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormMovementRepository) Add(ctx context.Context, entry *movement.Movement) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}
