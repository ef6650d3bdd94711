// Package stock holds the Stock aggregate: how much of an item sits at a location,
// in which batch.
package stock
