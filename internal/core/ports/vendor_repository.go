package ports

import (
	"context"

	"printorders/internal/core/domain/model/identity"
	"printorders/internal/core/domain/model/vendor"
)

// VendorRepository reads vendor projections from the user profile store.
type VendorRepository interface {
	// Get returns the vendor with the given id. Returns an ObjectNotFoundError
	// when there is no vendor-role profile with that uid.
	Get(ctx context.Context, vendorID string) (vendor.Vendor, error)

	// GetAll returns every vendor ordered by name.
	GetAll(ctx context.Context) ([]vendor.Vendor, error)
}

// RoleLookup resolves the stored role of a user profile. It is the slow path
// of role resolution, used when the credential carries no fresh role claim.
type RoleLookup interface {
	// LookupRole returns an ObjectNotFoundError when no profile exists for uid.
	LookupRole(ctx context.Context, uid string) (identity.Role, error)
}
