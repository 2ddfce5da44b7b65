package commands

import (
	"errors"

	"printorders/internal/core/domain/model/identity"
	"printorders/internal/core/domain/model/kernel"
	"printorders/internal/core/domain/model/order"
	"printorders/internal/pkg/errs"
	"printorders/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand carries a partial update issued by caller.
//
// Example:
//
//	next := "Quality Check"
//	cmd, err := NewUpdateOrderCommand(id, order.Patch{Stage: &next}, caller)
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	id     kernel.UUID
	patch  order.Patch
	caller identity.Identity

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand rejects an empty patch and an anonymous caller.
func NewUpdateOrderCommand(id kernel.UUID, patch order.Patch, caller identity.Identity) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		patch:  patch,
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}

	var patchErr error
	if patch.IsEmpty() {
		patchErr = errs.NewValueIsRequiredError("patch")
	}

	var callerErr error
	if caller.UID == "" {
		callerErr = errs.NewValueIsRequiredError("caller")
	}

	if err := errors.Join(cmd.setID(id), patchErr, callerErr); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) ID() kernel.UUID {
	return c.id
}

func (c UpdateOrderCommand) Patch() order.Patch {
	return c.patch
}

func (c UpdateOrderCommand) Caller() identity.Identity {
	return c.caller
}

func (c *UpdateOrderCommand) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}
