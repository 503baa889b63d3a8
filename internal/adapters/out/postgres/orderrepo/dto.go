// Package orderrepo persists orders with GORM.
package orderrepo

import (
	"menu/internal/core/domain/model/order"
)

// OrderDTO is the row layout of the orders table. ID is a surrogate key that
// records insertion order; Reference is the business key and is unique only
// when non-empty, so default-constructed orders can be stored repeatedly.
type OrderDTO struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	Reference string `gorm:"uniqueIndex:idx_orders_reference,where:reference <> '';not null"`
	Urgent    bool   `gorm:"not null;index"`
	Common    bool   `gorm:"not null"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		Reference: o.ID(),
		Urgent:    o.IsUrgent(),
		Common:    o.IsCommon(),
	}
}

func toDomain(dto OrderDTO) *order.Order {
	return order.RestoreOrder(dto.Reference, dto.Urgent, dto.Common)
}

func toDomainList(dtos []OrderDTO) []*order.Order {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		orders = append(orders, toDomain(dto))
	}
	return orders
}
