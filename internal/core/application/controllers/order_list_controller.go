package controllers

import (
	"context"
	"log/slog"

	"driverapp/internal/core/application/usecases/queries"
	"driverapp/internal/core/domain/model/order"
	"driverapp/internal/pkg/errs"
)

// AssignedOrdersFetcher runs GetAssignedOrdersQuery.
type AssignedOrdersFetcher interface {
	Handle(ctx context.Context, query queries.GetAssignedOrdersQuery) ([]*order.Order, error)
}

// OrderListController backs the "Delivery Orders" screen: the driver's orders in
// the selected region.
//
// The list and the selected region only change together, on a successful load.
// A failed load keeps whatever was shown before.
type OrderListController struct {
	fetcher AssignedOrdersFetcher
	logger  *slog.Logger

	orders  []*order.Order
	region  order.Region
	loading bool
	lastErr error
}

// NewOrderListController starts with an empty list and the default region.
func NewOrderListController(fetcher AssignedOrdersFetcher, logger *slog.Logger) *OrderListController {
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderListController{
		fetcher: fetcher,
		logger:  logger.With("component", "OrderListController"),
		orders:  []*order.Order{},
		region:  order.DefaultRegion,
	}
}

// LoadOrders fetches the orders of region and, on success, replaces the list and
// commits the region. It returns the number of orders loaded.
func (c *OrderListController) LoadOrders(ctx context.Context, region order.Region) (int, Signal, error) {
	query, err := queries.NewGetAssignedOrdersQuery(region)
	if err != nil {
		c.lastErr = err
		return 0, SignalNone, err
	}

	c.loading = true
	defer func() { c.loading = false }()

	orders, err := c.fetcher.Handle(ctx, query)
	if err != nil {
		c.lastErr = err
		c.logger.DebugContext(ctx, "loading orders failed", "region", region.String(), "error", err)
		return 0, signalFor(err), err
	}

	c.orders = orders
	c.region = region
	c.lastErr = nil
	c.logger.DebugContext(ctx, "orders loaded", "region", region.String(), "count", len(orders))
	return len(orders), SignalNone, nil
}

// SelectRegion is the region picker entry point. Same semantics as LoadOrders.
func (c *OrderListController) SelectRegion(ctx context.Context, region order.Region) (int, Signal, error) {
	return c.LoadOrders(ctx, region)
}

// Reload fetches the committed region again.
func (c *OrderListController) Reload(ctx context.Context) (int, Signal, error) {
	return c.LoadOrders(ctx, c.region)
}

// Orders returns a copy of the displayed list.
func (c *OrderListController) Orders() []*order.Order {
	out := make([]*order.Order, len(c.orders))
	copy(out, c.orders)
	return out
}

func (c *OrderListController) SelectedRegion() order.Region { return c.region }
func (c *OrderListController) Loading() bool                { return c.loading }

// LastError returns the error of the latest load, nil after a success.
func (c *OrderListController) LastError() error { return c.lastErr }

// Reset drops the list and goes back to the default region. Called whenever
// the signed-in user changes.
func (c *OrderListController) Reset() {
	c.orders = []*order.Order{}
	c.region = order.DefaultRegion
	c.lastErr = nil
}

// Select hands the order at index (0-based) over to the detail screen.
func (c *OrderListController) Select(index int) (*order.Order, error) {
	if index < 0 || index >= len(c.orders) {
		return nil, errs.NewValueIsOutOfRangeError("order index", index, 0, len(c.orders)-1)
	}
	return c.orders[index], nil
}
