package queries

import (
	"errors"

	"printorders/internal/core/domain/model/identity"
	"printorders/internal/core/domain/model/kernel"
	"printorders/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order on behalf of caller. Vendors only see the
// orders assigned to them.
//
// Example:
//
//	query, err := NewGetOrderQuery(id, caller)
//	if err != nil {
//	    return err
//	}
//	o, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	id     kernel.UUID
	caller identity.Identity

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(id kernel.UUID, caller identity.Identity) (GetOrderQuery, error) {
	if err := id.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{id: id, caller: caller, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) ID() kernel.UUID {
	return q.id
}

func (q GetOrderQuery) Caller() identity.Identity {
	return q.caller
}
