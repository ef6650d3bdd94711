package queries

import (
	"context"
	"database/sql"
	"errors"

	"wms/internal/core/domain/model/location"
	"wms/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const locationSelect = `
	SELECT id, code, description, type, status, parent_id, capacity_volume, current_volume
	FROM locations
`

// maxLocationDepth bounds the ancestor walk so a corrupted parent chain cannot loop forever.
const maxLocationDepth = 32

type LocationQueryHandler struct {
	db *gorm.DB
}

func NewLocationQueryHandler(db *gorm.DB) LocationQueryHandler {
	return LocationQueryHandler{db: db}
}

// List returns locations ordered by code.
func (h LocationQueryHandler) List(ctx context.Context, query ListLocationsQuery) ([]LocationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.load(ctx, query.LocationType())
	if err != nil {
		return nil, err
	}

	result := make([]LocationResponse, 0, len(all))
	for _, l := range all {
		result = append(result, locationResponseFrom(l))
	}
	return result, nil
}

// Get returns the location with its ancestor path. A parent chain that loops back
// on itself is reported as an invalid value.
func (h LocationQueryHandler) Get(ctx context.Context, query GetLocationQuery) (LocationResponse, error) {
	if err := query.Validate(); err != nil {
		return LocationResponse{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.LocationID().Bytes()

	var row locationRow
	err := db.Raw(locationSelect+` WHERE id = ?`, id).Row().Scan(row.targets()...)
	if errors.Is(err, sql.ErrNoRows) {
		return LocationResponse{}, errs.NewObjectNotFoundError("location", query.LocationID())
	}
	if err != nil {
		return LocationResponse{}, err
	}

	found, err := row.restore()
	if err != nil {
		return LocationResponse{}, err
	}

	var (
		path   []string
		cyclic bool
	)
	err = db.Raw(`
		WITH RECURSIVE ancestors (id, parent_id, code, depth, visited, cyclic) AS (
			SELECT id, parent_id, code, 1, ARRAY[id], false
			FROM locations
			WHERE id = ?
			UNION ALL
			SELECT l.id, l.parent_id, l.code, a.depth + 1, a.visited || l.id, l.id = ANY(a.visited)
			FROM locations l
			JOIN ancestors a ON l.id = a.parent_id
			WHERE NOT a.cyclic AND a.depth < ?
		)
		SELECT
			COALESCE(array_agg(code ORDER BY depth DESC) FILTER (WHERE NOT cyclic), '{}'),
			bool_or(cyclic)
		FROM ancestors
	`, id, maxLocationDepth).Row().Scan(pq.Array(&path), &cyclic)
	if err != nil {
		return LocationResponse{}, err
	}
	if cyclic {
		return LocationResponse{}, errs.NewValueIsInvalidErrorWithCause("location parent chain", location.ErrCycleDetected)
	}

	response := locationResponseFrom(found)
	response.Path = path
	return response, nil
}

func (h LocationQueryHandler) load(ctx context.Context, locationType *location.Type) ([]*location.Location, error) {
	db := h.db.WithContext(ctx)

	var (
		rows *sql.Rows
		err  error
	)
	if locationType != nil {
		rows, err = db.Raw(locationSelect+` WHERE type = ? ORDER BY code`, locationType.String()).Rows()
	} else {
		rows, err = db.Raw(locationSelect + ` ORDER BY code`).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*location.Location, 0)
	for rows.Next() {
		var row locationRow
		if err = rows.Scan(row.targets()...); err != nil {
			return nil, err
		}
		restored, err := row.restore()
		if err != nil {
			return nil, err
		}
		result = append(result, restored)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
