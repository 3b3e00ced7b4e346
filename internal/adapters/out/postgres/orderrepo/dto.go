// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the
// order aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"tracking/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The external order identifier is the primary key; status is
// indexed for workload queries.
type OrderDTO struct {
	ID              string `gorm:"primaryKey"`
	ItemDescription string
	PlannedQuantity int
	OriginStation   string
	ISOYear         int `gorm:"column:iso_year"`
	ISOWeek         int `gorm:"column:iso_week"`
	Status          int `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:              aggregate.ID(),
		ItemDescription: aggregate.ItemDescription(),
		PlannedQuantity: aggregate.PlannedQuantity(),
		OriginStation:   aggregate.OriginStation(),
		ISOYear:         aggregate.ISOYear(),
		ISOWeek:         aggregate.ISOWeek(),
		Status:          int(aggregate.Status()),
	}
}

// toDomain reconstructs the order aggregate from a database row using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(
		dto.ID,
		dto.ItemDescription,
		dto.PlannedQuantity,
		dto.OriginStation,
		dto.ISOYear,
		dto.ISOWeek,
		order.Status(dto.Status),
	)
}
