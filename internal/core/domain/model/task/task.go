package task

import (
	"errors"
	"fmt"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/pkg/errs"
)

var ErrTaskIsNotConstructed = errors.New("PickingTask must be created via NewPickingTask constructor")

// PickingTask is the instruction "take targetQuantity of item from location for order".
// The target is fixed at allocation time; the picked quantity becomes equal to it on
// completion.
type PickingTask struct {
	id             kernel.UUID
	orderID        kernel.UUID
	itemID         kernel.UUID
	locationID     kernel.UUID
	targetQuantity kernel.Quantity
	pickedQuantity kernel.Quantity
	status         Status

	isConstructed bool
}

// NewPickingTask creates a Pending task with nothing picked yet.
func NewPickingTask(id, orderID, itemID, locationID kernel.UUID, target kernel.Quantity) (*PickingTask, error) {
	return RestorePickingTask(id, orderID, itemID, locationID, target, kernel.ZeroQuantity(), Pending)
}

func RestorePickingTask(
	id, orderID, itemID, locationID kernel.UUID,
	target, picked kernel.Quantity,
	status Status,
) (*PickingTask, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		itemID.Validate(),
		locationID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if !target.IsPositive() {
		return nil, errs.NewValueIsInvalidErrorWithCause("target quantity", fmt.Errorf("%s is not greater than 0", target))
	}

	return &PickingTask{
		id:             id,
		orderID:        orderID,
		itemID:         itemID,
		locationID:     locationID,
		targetQuantity: target,
		pickedQuantity: picked,
		status:         status,
		isConstructed:  true,
	}, nil
}

func (t *PickingTask) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTaskIsNotConstructed
	}
	return nil
}

func (t *PickingTask) ID() kernel.UUID {
	return t.id
}

func (t *PickingTask) OrderID() kernel.UUID {
	return t.orderID
}

func (t *PickingTask) ItemID() kernel.UUID {
	return t.itemID
}

func (t *PickingTask) LocationID() kernel.UUID {
	return t.locationID
}

func (t *PickingTask) TargetQuantity() kernel.Quantity {
	return t.targetQuantity
}

func (t *PickingTask) PickedQuantity() kernel.Quantity {
	return t.pickedQuantity
}

func (t *PickingTask) Status() Status {
	return t.status
}

// Complete records the full target as picked.
func (t *PickingTask) Complete() error {
	next, err := t.status.Complete()
	if err != nil {
		return err
	}
	t.status = next
	t.pickedQuantity = t.targetQuantity
	return nil
}

func (t *PickingTask) Assign() error {
	next, err := t.status.Assign()
	if err != nil {
		return err
	}
	t.status = next
	return nil
}

func (t *PickingTask) Cancel() error {
	next, err := t.status.Cancel()
	if err != nil {
		return err
	}
	t.status = next
	return nil
}
