package commands

import (
	"errors"
	"strings"

	"printorders/internal/core/domain/model/kernel"
	"printorders/internal/pkg/errs"
	"printorders/internal/pkg/guard"
)

var ErrAssignVendorCommandIsNotConstructed = errors.New(
	"AssignVendorCommand must be created via NewAssignVendorCommand constructor",
)

// AssignVendorCommand hands an order to a vendor.
//
// Example:
//
//	cmd, err := NewAssignVendorCommand(orderID, "vendor-uid")
//	if err != nil {
//	    return err
//	}
//	updated, err := handler.Handle(ctx, cmd)
type AssignVendorCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	vendorID string

	guard guard.ConstructorGuard
}

func NewAssignVendorCommand(orderID kernel.UUID, vendorID string) (AssignVendorCommand, error) {
	cmd := AssignVendorCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setVendorID(vendorID),
	); err != nil {
		return AssignVendorCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignVendorCommand) Validate() error {
	return c.guard.Validate(ErrAssignVendorCommandIsNotConstructed)
}

func (c AssignVendorCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignVendorCommand) VendorID() string {
	return c.vendorID
}

func (c *AssignVendorCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *AssignVendorCommand) setVendorID(vendorID string) error {
	vendorID = strings.TrimSpace(vendorID)
	if vendorID == "" {
		return errs.NewValueIsRequiredError("vendorId")
	}

	c.vendorID = vendorID
	return nil
}
