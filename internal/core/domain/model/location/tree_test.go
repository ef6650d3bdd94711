package location_test

import (
	"testing"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/location"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restore(t *testing.T, id kernel.UUID, code string, typ location.Type, parent *kernel.UUID) *location.Location {
	t.Helper()
	l, err := location.RestoreLocation(id, code, "", typ, parent, location.Free, nil, decimal.Zero)
	require.NoError(t, err)
	return l
}

func codes(locations []*location.Location) []string {
	result := make([]string, 0, len(locations))
	for _, l := range locations {
		result = append(result, l.Code())
	}
	return result
}

func TestTree_Descendants(t *testing.T) {
	siteID, areaID, rackID, binID, otherID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	tree := location.NewTree([]*location.Location{
		restore(t, siteID, "SITE", location.Site, nil),
		restore(t, areaID, "AREA-A", location.Area, &siteID),
		restore(t, rackID, "RACK-1", location.Rack, &areaID),
		restore(t, binID, "BIN-1", location.Bin, &rackID),
		restore(t, otherID, "AREA-B", location.Area, &siteID),
	})

	assert.ElementsMatch(t, []string{"RACK-1", "BIN-1"}, codes(tree.Descendants(areaID)))
	assert.ElementsMatch(t, []string{"AREA-A", "RACK-1", "BIN-1", "AREA-B"}, codes(tree.Descendants(siteID)))
	assert.Empty(t, tree.Descendants(binID))
	assert.Equal(t, []string{"AREA-A", "AREA-B"}, codes(tree.OfType(location.Area)))

	path, err := tree.Path(binID)
	require.NoError(t, err)
	assert.Equal(t, []string{"SITE", "AREA-A", "RACK-1", "BIN-1"}, codes(path))
}

func TestTree_CycleDefense(t *testing.T) {
	aID, bID, cID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	tree := location.NewTree([]*location.Location{
		restore(t, aID, "A", location.Area, &cID),
		restore(t, bID, "B", location.Rack, &aID),
		restore(t, cID, "C", location.Level, &bID),
	})

	assert.ElementsMatch(t, []string{"B", "C"}, codes(tree.Descendants(aID)))

	_, err := tree.Path(cID)
	require.ErrorIs(t, err, location.ErrCycleDetected)
}

func TestTree_MissingParentIsRoot(t *testing.T) {
	orphanParent := kernel.NewUUID()
	id := kernel.NewUUID()
	tree := location.NewTree([]*location.Location{
		restore(t, id, "ORPHAN", location.Bin, &orphanParent),
	})

	path, err := tree.Path(id)
	require.NoError(t, err)
	assert.Equal(t, []string{"ORPHAN"}, codes(path))

	_, ok := tree.Get(orphanParent)
	assert.False(t, ok)
}
