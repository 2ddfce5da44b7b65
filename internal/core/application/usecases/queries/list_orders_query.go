package queries

import (
	"errors"
	"strings"

	"printorders/internal/pkg/errs"
	"printorders/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
	ErrListVendorOrdersQueryIsNotConstructed = errors.New(
		"ListVendorOrdersQuery must be created via NewListVendorOrdersQuery constructor",
	)
)

// ListOrdersQuery reads every order. It is parameterless.
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// ListVendorOrdersQuery reads the work queue of one vendor.
type ListVendorOrdersQuery struct {
	vendorID string

	guard guard.ConstructorGuard
}

func NewListVendorOrdersQuery(vendorID string) (ListVendorOrdersQuery, error) {
	vendorID = strings.TrimSpace(vendorID)
	if vendorID == "" {
		return ListVendorOrdersQuery{}, errs.NewValueIsRequiredError("vendorId")
	}
	return ListVendorOrdersQuery{vendorID: vendorID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListVendorOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListVendorOrdersQueryIsNotConstructed)
}

func (q ListVendorOrdersQuery) VendorID() string {
	return q.vendorID
}
