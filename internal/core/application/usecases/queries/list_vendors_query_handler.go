package queries

import (
	"context"
	"database/sql"

	"printorders/internal/core/domain/model/identity"

	"gorm.io/gorm"
)

// ListVendorsQueryHandler reads vendor profiles straight from the profile
// table, ordered by name.
type ListVendorsQueryHandler struct {
	db *gorm.DB
}

// NewListVendorsQueryHandler creates a handler for vendor listing queries.
func NewListVendorsQueryHandler(db *gorm.DB) ListVendorsQueryHandler {
	return ListVendorsQueryHandler{db: db}
}

// Handle returns an empty, non-nil slice when there are no vendors.
func (h ListVendorsQueryHandler) Handle(
	ctx context.Context,
	query ListVendorsQuery,
) ([]ListVendorsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vendors := make([]ListVendorsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			uid,
			name,
			email,
			active
		FROM user_profiles
		WHERE role = ?
		ORDER BY name, uid
	`, identity.Vendor.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var v ListVendorsQueryResponse
		var name, email sql.NullString

		if err = rows.Scan(&v.VendorID, &name, &email, &v.Active); err != nil {
			return nil, err
		}
		v.Name = name.String
		v.ContactEmail = email.String
		vendors = append(vendors, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vendors, nil
}
