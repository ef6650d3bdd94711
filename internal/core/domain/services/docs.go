// Package services provides domain services that span several aggregates of the
// warehouse model.
//
// The package includes:
//   - CapacityTracker: keeps location volume in step with stock quantity changes
//   - Allocator: greedy multi-lot allocation of an order line to picking tasks,
//     accounting for quantity reserved by pending tasks
//   - OrderProgress: derives order status from task completion
//   - ZoneCapacityCalculator: rolls location volumes up to their areas
//
// The services are pure: they read and mutate the aggregates handed to them and
// leave persistence to the command handlers.
package services
