// Package queries contains the driver's read operations.
package queries

import (
	"errors"

	"driverapp/internal/core/domain/model/order"
	"driverapp/internal/pkg/guard"
)

var ErrGetAssignedOrdersQueryIsNotConstructed = errors.New(
	"GetAssignedOrdersQuery must be created via NewGetAssignedOrdersQuery constructor",
)

// GetAssignedOrdersQuery asks for the orders of the logged-in driver in one region.
type GetAssignedOrdersQuery struct {
	region order.Region
	guard  guard.ConstructorGuard
}

func NewGetAssignedOrdersQuery(region order.Region) (GetAssignedOrdersQuery, error) {
	if err := region.Validate(); err != nil {
		return GetAssignedOrdersQuery{}, err
	}
	return GetAssignedOrdersQuery{region: region, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAssignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignedOrdersQueryIsNotConstructed)
}

func (q GetAssignedOrdersQuery) Region() order.Region {
	return q.region
}
