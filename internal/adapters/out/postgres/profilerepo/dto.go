// Package profilerepo reads user profiles. Profiles are provisioned by the
// identity side of the platform; this service never writes them outside tests.
package profilerepo

import (
	"printorders/internal/core/domain/model/vendor"
)

// ProfileDTO represents one row of the user profile table.
type ProfileDTO struct {
	UID    string  `gorm:"column:uid;primaryKey"`
	Name   *string `gorm:"column:name"`
	Email  *string `gorm:"column:email"`
	Role   string  `gorm:"column:role;index"`
	Active bool    `gorm:"column:active;default:true"`
}

// TableName specifies the database table name for profiles.
func (ProfileDTO) TableName() string {
	return "user_profiles"
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toVendor(dto ProfileDTO) (vendor.Vendor, error) {
	return vendor.NewVendor(dto.UID, value(dto.Name), value(dto.Email), dto.Active)
}
