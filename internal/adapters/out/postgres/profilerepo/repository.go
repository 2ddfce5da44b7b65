package profilerepo

import (
	"context"
	"errors"

	"printorders/internal/core/domain/model/identity"
	"printorders/internal/core/domain/model/vendor"
	"printorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProfileRepository serves both the vendor projection and the stored
// role lookup from the same table.
type GormProfileRepository struct {
	db *gorm.DB
}

// NewGormProfileRepository creates a new GORM profile repository.
func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// Get returns the vendor-role profile with the given uid.
func (r *GormProfileRepository) Get(ctx context.Context, vendorID string) (vendor.Vendor, error) {
	var dto ProfileDTO
	err := r.db.WithContext(ctx).
		First(&dto, "uid = ? AND role = ?", vendorID, identity.Vendor.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return vendor.Vendor{}, errs.NewObjectNotFoundError("vendor", vendorID)
		}
		return vendor.Vendor{}, err
	}

	return toVendor(dto)
}

// GetAll returns every vendor-role profile ordered by name.
func (r *GormProfileRepository) GetAll(ctx context.Context) ([]vendor.Vendor, error) {
	var dtos []ProfileDTO
	err := r.db.WithContext(ctx).
		Where("role = ?", identity.Vendor.String()).
		Order("name ASC").
		Order("uid ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	vendors := make([]vendor.Vendor, 0, len(dtos))
	for _, dto := range dtos {
		v, err := toVendor(dto)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}
	return vendors, nil
}

// LookupRole returns the stored role of uid. A profile without a recognised
// role yields a ValueIsInvalidError.
func (r *GormProfileRepository) LookupRole(ctx context.Context, uid string) (identity.Role, error) {
	var dto ProfileDTO
	if err := r.db.WithContext(ctx).Select("uid", "role").First(&dto, "uid = ?", uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errs.NewObjectNotFoundError("profile", uid)
		}
		return "", err
	}

	return identity.ParseRole(dto.Role)
}
