package access

import (
	"printorders/internal/core/domain/model/identity"
	"printorders/internal/core/domain/model/order"
	"printorders/internal/pkg/errs"
)

// AuthorizeOrderRead lets admins read any order and vendors only the orders
// assigned to them. Any other caller gets the same ObjectNotFoundError as for
// a missing id, so order ids cannot be probed.
func AuthorizeOrderRead(caller identity.Identity, o *order.Order) error {
	switch {
	case caller.IsAdmin():
		return nil
	case caller.IsVendor() && o.IsAssignedTo(caller.UID):
		return nil
	default:
		return errs.NewObjectNotFoundError("order", o.ID().String())
	}
}

// AuthorizeOrderPatch extends AuthorizeOrderRead: a vendor may change the
// stage of its own orders and nothing else.
func AuthorizeOrderPatch(caller identity.Identity, o *order.Order, p order.Patch) error {
	if err := AuthorizeOrderRead(caller, o); err != nil {
		return err
	}
	if !caller.IsAdmin() && !p.OnlyStage() {
		return errs.NewForbiddenError("vendors may only change the stage")
	}
	return nil
}
