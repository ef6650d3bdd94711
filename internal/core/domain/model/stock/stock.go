package stock

import (
	"errors"
	"fmt"
	"strings"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/pkg/errs"
)

var ErrStockIsNotConstructed = errors.New("Stock must be created via NewStock constructor")

// Stock is a quantity of one item held at one location, optionally tagged with a batch.
//
// A persisted stock row always has a positive quantity: Decrease reports when the
// row is depleted and the ledger deletes it instead of saving a zero.
type Stock struct {
	id         kernel.UUID
	itemID     kernel.UUID
	locationID kernel.UUID
	quantity   kernel.Quantity
	batch      *string
	status     Status

	isConstructed bool
}

// NewStock creates an Available stock row. Blank batches are stored as no batch.
func NewStock(
	id, itemID, locationID kernel.UUID,
	quantity kernel.Quantity,
	batch *string,
) (*Stock, error) {
	return RestoreStock(id, itemID, locationID, quantity, batch, Available)
}

func RestoreStock(
	id, itemID, locationID kernel.UUID,
	quantity kernel.Quantity,
	batch *string,
	status Status,
) (*Stock, error) {
	s := &Stock{isConstructed: true}

	if err := errors.Join(
		s.setID(id),
		s.setItemID(itemID),
		s.setLocationID(locationID),
		s.setQuantity(quantity),
		s.setStatus(status),
	); err != nil {
		return nil, err
	}
	s.batch = NormalizeBatch(batch)

	return s, nil
}

func (s *Stock) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStockIsNotConstructed
	}
	return nil
}

func (s *Stock) ID() kernel.UUID {
	return s.id
}

func (s *Stock) ItemID() kernel.UUID {
	return s.itemID
}

func (s *Stock) LocationID() kernel.UUID {
	return s.locationID
}

func (s *Stock) Quantity() kernel.Quantity {
	return s.quantity
}

func (s *Stock) Batch() *string {
	return s.batch
}

func (s *Stock) Status() Status {
	return s.status
}

// IsMergeableWith reports whether quantity of itemID with batch arriving at
// locationID can be added to this row instead of creating a new one.
func (s *Stock) IsMergeableWith(itemID, locationID kernel.UUID, batch *string) bool {
	return s.itemID.IsEqual(itemID) &&
		s.locationID.IsEqual(locationID) &&
		SameBatch(s.batch, batch)
}

func (s *Stock) Increase(quantity kernel.Quantity) {
	s.quantity = s.quantity.Add(quantity)
}

// Decrease removes quantity and reports whether the row is now empty.
// Taking more than the row holds fails with InsufficientStock.
func (s *Stock) Decrease(quantity kernel.Quantity) (bool, error) {
	remaining, err := s.quantity.Sub(quantity)
	if err != nil {
		return false, errs.NewInsufficientStockError(s.itemID.String(), quantity.String(), s.quantity.String())
	}
	s.quantity = remaining
	return remaining.IsZero(), nil
}

// SameBatch is the batch equality rule: both absent, or both present and equal.
func SameBatch(a, b *string) bool {
	a, b = NormalizeBatch(a), NormalizeBatch(b)
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// NormalizeBatch turns blank batches into nil.
func NormalizeBatch(batch *string) *string {
	if batch == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*batch)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (s *Stock) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Stock) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("item", err)
	}
	s.itemID = id
	return nil
}

func (s *Stock) setLocationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("location", err)
	}
	s.locationID = id
	return nil
}

func (s *Stock) setQuantity(quantity kernel.Quantity) error {
	if !quantity.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%s is not greater than 0", quantity))
	}
	s.quantity = quantity
	return nil
}

func (s *Stock) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}
