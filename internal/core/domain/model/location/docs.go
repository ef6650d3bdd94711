// Package location models the warehouse hierarchy (site, area, aisle, rack, level,
// bin) and the volumetric capacity of each place.
//
// Location.ApplyVolumeDelta is the capacity tracker: every stock change runs through
// it inside the same unit of work as the stock write. Tree answers hierarchy questions
// such as zone roll-ups and breadcrumb paths without following live references.
package location
