// Package item models the warehouse catalog.
//
// An Item carries the attributes the ledger needs: a unique code, the unit volume
// used for location capacity accounting (1 when unset) and an optional reorder
// point driving the low-stock report.
package item
