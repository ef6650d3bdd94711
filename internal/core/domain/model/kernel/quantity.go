package kernel

import (
	"errors"
	"fmt"

	"wms/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Quantity is a non-negative decimal amount of an item, expressed in the item's unit of measure.
// The zero value is a valid zero quantity.
type Quantity struct {
	value decimal.Decimal
}

// ZeroQuantity is the additive identity.
func ZeroQuantity() Quantity {
	return Quantity{}
}

// NewQuantity rejects negative values.
func NewQuantity(value decimal.Decimal) (Quantity, error) {
	if value.IsNegative() {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%s is negative", value.String()),
		)
	}
	return Quantity{value: value}, nil
}

// NewPositiveQuantity rejects zero and negative values. Used for requested amounts.
func NewPositiveQuantity(value decimal.Decimal) (Quantity, error) {
	if !value.IsPositive() {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%s is not greater than 0", value.String()),
		)
	}
	return Quantity{value: value}, nil
}

// QuantityFromString parses a decimal literal such as "12" or "0.25".
func QuantityFromString(s string) (Quantity, error) {
	value, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity", err)
	}
	return NewQuantity(value)
}

// MustQuantity panics on negative input. Only for constants and tests.
func MustQuantity(value int64) Quantity {
	q, err := NewQuantity(decimal.NewFromInt(value))
	if err != nil {
		panic(err)
	}
	return q
}

func (q Quantity) Decimal() decimal.Decimal {
	return q.value
}

func (q Quantity) String() string {
	return q.value.String()
}

func (q Quantity) IsZero() bool {
	return q.value.IsZero()
}

func (q Quantity) IsPositive() bool {
	return q.value.IsPositive()
}

func (q Quantity) Equal(other Quantity) bool {
	return q.value.Equal(other.value)
}

func (q Quantity) LessThan(other Quantity) bool {
	return q.value.LessThan(other.value)
}

func (q Quantity) GreaterThan(other Quantity) bool {
	return q.value.GreaterThan(other.value)
}

func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{value: q.value.Add(other.value)}
}

// ErrQuantityUnderflow is returned by Sub when the result would be negative.
var ErrQuantityUnderflow = errors.New("quantity would become negative")

func (q Quantity) Sub(other Quantity) (Quantity, error) {
	result := q.value.Sub(other.value)
	if result.IsNegative() {
		return Quantity{}, fmt.Errorf("%w: %s - %s", ErrQuantityUnderflow, q, other)
	}
	return Quantity{value: result}, nil
}

// SubClamped subtracts and floors the result at zero.
func (q Quantity) SubClamped(other Quantity) Quantity {
	result := q.value.Sub(other.value)
	if result.IsNegative() {
		return Quantity{}
	}
	return Quantity{value: result}
}

// Min returns the smaller of q and other.
func (q Quantity) Min(other Quantity) Quantity {
	if other.LessThan(q) {
		return other
	}
	return q
}

// Mul multiplies by a non-negative factor such as a unit volume.
func (q Quantity) Mul(factor decimal.Decimal) Quantity {
	return Quantity{value: q.value.Mul(factor.Abs())}
}

// SumQuantities folds a slice with Add.
func SumQuantities(values ...Quantity) Quantity {
	total := ZeroQuantity()
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
