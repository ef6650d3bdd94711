// Package errs provides the error taxonomy shared by the warehouse core and its adapters.
//
// Two families live here:
//   - value errors (ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError)
//     raised while constructing domain objects and commands
//   - domain errors (ObjectNotFoundError, ConflictError, InsufficientStockError,
//     CapacityExceededError, InvalidStateTransitionError, StockInconsistencyError)
//     raised by inventory and fulfillment operations
//
// Every type pairs a sentinel (ErrObjectNotFound, ErrConflict, ...) with a struct that
// carries details and unwraps to the sentinel, so callers classify with errors.Is and
// inspect with errors.As. The HTTP adapter maps the sentinels to status codes.
package errs
