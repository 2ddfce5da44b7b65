package access_test

import (
	"testing"

	"printorders/internal/core/application/access"
	"printorders/internal/core/domain/model/identity"
	"printorders/internal/core/domain/model/kernel"
	"printorders/internal/core/domain/model/order"
	"printorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizeOrder(t *testing.T) {
	o, err := order.RestoreOrder(kernel.NewUUID(), order.Details{}, "v-1", 1, 1)
	require.NoError(t, err)

	stageOnly := "Printing"
	title := "New title"
	admin := identity.Identity{UID: "a", Role: identity.Admin}
	owner := identity.Identity{UID: "v-1", Role: identity.Vendor}
	other := identity.Identity{UID: "v-2", Role: identity.Vendor}
	noRole := identity.Identity{UID: "v-1"}

	assert.NoError(t, access.AuthorizeOrderRead(admin, o))
	assert.NoError(t, access.AuthorizeOrderRead(owner, o))
	assert.ErrorIs(t, access.AuthorizeOrderRead(other, o), errs.ErrObjectNotFound)
	assert.ErrorIs(t, access.AuthorizeOrderRead(noRole, o), errs.ErrObjectNotFound)
	assert.Equal(t,
		errs.NewObjectNotFoundError("order", o.ID().String()).Error(),
		access.AuthorizeOrderRead(other, o).Error(),
	)

	assert.NoError(t, access.AuthorizeOrderPatch(admin, o, order.Patch{BookTitle: &title}))
	assert.NoError(t, access.AuthorizeOrderPatch(owner, o, order.Patch{Stage: &stageOnly}))
	assert.ErrorIs(t, access.AuthorizeOrderPatch(owner, o, order.Patch{Stage: &stageOnly, BookTitle: &title}), errs.ErrForbidden)
	assert.ErrorIs(t, access.AuthorizeOrderPatch(other, o, order.Patch{Stage: &stageOnly}), errs.ErrObjectNotFound)
}
