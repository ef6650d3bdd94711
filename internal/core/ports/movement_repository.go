package ports

import (
	"context"

	"wms/internal/core/domain/model/movement"
)

// MovementRepository is the append-only movement log.
type MovementRepository interface {
	Add(ctx context.Context, entry *movement.Movement) error
}
