package errs

import (
	"errors"
	"fmt"
)

// ErrStockInconsistency means the ledger disagrees with itself, e.g. a task points at stock that is gone.
var ErrStockInconsistency = errors.New("stock inconsistency")

type StockInconsistencyError struct {
	Reason string
	Cause  error
}

func NewStockInconsistencyError(reason string) *StockInconsistencyError {
	return &StockInconsistencyError{Reason: reason}
}

func NewStockInconsistencyErrorWithCause(reason string, cause error) *StockInconsistencyError {
	return &StockInconsistencyError{
		Reason: reason,
		Cause:  cause,
	}
}

func (e *StockInconsistencyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrStockInconsistency, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrStockInconsistency, e.Reason)
}

func (e *StockInconsistencyError) Unwrap() error {
	return ErrStockInconsistency
}
