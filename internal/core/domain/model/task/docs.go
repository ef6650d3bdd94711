// Package task models picking tasks produced by allocation and consumed by
// confirmation. The sum of Pending targets for an item is what the allocator
// treats as reserved.
package task
