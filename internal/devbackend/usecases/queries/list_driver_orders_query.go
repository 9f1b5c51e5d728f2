// Package queries contains the read side of the development backend. Queries go
// straight to the database with raw SQL and never open a unit of work.
package queries

import (
	"errors"

	"github.com/google/uuid"

	"driverapp/internal/core/domain/model/order"
	"driverapp/internal/pkg/errs"
	"driverapp/internal/pkg/guard"
)

var ErrListDriverOrdersQueryIsNotConstructed = errors.New(
	"ListDriverOrdersQuery must be created via NewListDriverOrdersQuery constructor",
)

// ListDriverOrdersQuery selects what one driver sees in one region: the orders
// they picked up plus the orders nobody picked up yet.
//
// Example:
//
//	query, err := NewListDriverOrdersQuery(driverID, order.Central)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type ListDriverOrdersQuery struct {
	driverID uuid.UUID
	region   order.Region

	guard guard.ConstructorGuard
}

func NewListDriverOrdersQuery(driverID uuid.UUID, region order.Region) (ListDriverOrdersQuery, error) {
	var driverErr error
	if driverID == uuid.Nil {
		driverErr = errs.NewValueIsRequiredError("userId")
	}
	if err := errors.Join(driverErr, region.Validate()); err != nil {
		return ListDriverOrdersQuery{}, err
	}
	return ListDriverOrdersQuery{driverID: driverID, region: region, guard: guard.NewConstructorGuard()}, nil
}

func (q ListDriverOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListDriverOrdersQueryIsNotConstructed)
}

func (q ListDriverOrdersQuery) DriverID() uuid.UUID {
	return q.driverID
}

func (q ListDriverOrdersQuery) Region() order.Region {
	return q.region
}
