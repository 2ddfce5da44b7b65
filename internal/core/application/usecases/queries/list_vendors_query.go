package queries

import (
	"errors"

	"printorders/internal/pkg/guard"
)

var ErrListVendorsQueryIsNotConstructed = errors.New(
	"ListVendorsQuery must be created via NewListVendorsQuery constructor",
)

// ListVendorsQuery retrieves every vendor profile for the admin console.
//
// Example:
//
//	query := NewListVendorsQuery()
//	handler := NewListVendorsQueryHandler(db)
//
//	vendors, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list vendors: %w", err)
//	}
//	for _, v := range vendors {
//	    fmt.Printf("%s <%s> active=%t\n", v.Name, v.ContactEmail, v.Active)
//	}
type ListVendorsQuery struct {
	guard guard.ConstructorGuard
}

// NewListVendorsQuery creates a parameterless vendor listing query.
func NewListVendorsQuery() ListVendorsQuery {
	return ListVendorsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListVendorsQuery) Validate() error {
	return q.guard.Validate(ErrListVendorsQueryIsNotConstructed)
}

// ListVendorsQueryResponse is the vendor read model.
type ListVendorsQueryResponse struct {
	VendorID     string
	Name         string
	ContactEmail string
	Active       bool
}
