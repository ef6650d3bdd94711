// Package order provides the OutboundOrder aggregate and its fulfillment state machine.
//
// The package includes:
//   - Order: identity, generated number, customer reference, requested lines and status
//   - Line: one requested item with quantity and optional source location
//   - Status: New -> Picking -> Picked -> Shipped (-> Completed)
//
// Key business rules:
//   - Orders are created New with a unique "ORD-" number
//   - Order status follows the picking progress of its tasks
//   - Orders can only be shipped when Picked
package order
