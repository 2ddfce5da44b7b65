// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Rows are mapped back through order.RestoreOrder, the single place where
// defaults for missing stored fields are applied.
package orderrepo

import (
	"printorders/internal/core/domain/model/kernel"
	"printorders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Timestamps are epoch milliseconds owned by the aggregate, so gorm's own
// time tracking is switched off.
type OrderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   string    `gorm:"column:order_id;index"`
	BookTitle string    `gorm:"column:book_title"`
	Binding   string    `gorm:"column:binding"`
	Deadline  string    `gorm:"column:deadline"`
	S3Key     *string   `gorm:"column:s3_key"`
	Stage     string    `gorm:"column:stage;index"`
	VendorID  *string   `gorm:"column:vendor_id;index"`
	CreatedAt int64     `gorm:"column:created_at;autoCreateTime:false"`
	UpdatedAt int64     `gorm:"column:updated_at;autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:        o.ID().Bytes(),
		OrderID:   o.OrderID(),
		BookTitle: o.BookTitle(),
		Binding:   o.Binding().String(),
		Deadline:  o.Deadline().String(),
		S3Key:     optional(o.S3Key()),
		Stage:     o.Stage().String(),
		VendorID:  optional(o.VendorID()),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
}

// toDomain converts a database row to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, order.Details{
		OrderID:   dto.OrderID,
		BookTitle: dto.BookTitle,
		Binding:   dto.Binding,
		Deadline:  dto.Deadline,
		S3Key:     deref(dto.S3Key),
		Stage:     dto.Stage,
	}, deref(dto.VendorID), dto.CreatedAt, dto.UpdatedAt)
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
