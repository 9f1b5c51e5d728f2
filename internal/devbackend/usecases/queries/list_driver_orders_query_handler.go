package queries

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"driverapp/internal/core/domain/model/kernel"
	"driverapp/internal/core/domain/model/order"
)

// ListDriverOrdersQueryHandler reads the orders table directly. Results are
// newest first; ties are broken by id so the listing is stable.
type ListDriverOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListDriverOrdersQueryHandler(db *gorm.DB) ListDriverOrdersQueryHandler {
	return ListDriverOrdersQueryHandler{db: db}
}

func (h ListDriverOrdersQueryHandler) Handle(ctx context.Context, query ListDriverOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_name,
			image_url,
			order_time,
			rating,
			status,
			pickup_location,
			pickup_address,
			pickup_latitude,
			pickup_longitude,
			delivery_location,
			delivery_address,
			delivery_latitude,
			delivery_longitude
		FROM orders
		WHERE lower(pickup_location) = lower(?)
			AND (driver_id = ? OR (driver_id IS NULL AND status = ?))
		ORDER BY order_time DESC, id DESC
	`, query.Region().String(), query.DriverID(), order.ReadyForDelivery.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*order.Order, 0)
	for rows.Next() {
		var (
			id                        int64
			name, image, status       string
			orderTime                 time.Time
			rating                    *float64
			pickupLoc, pickupAddr     string
			pickupLat, pickupLng      *float64
			deliveryLoc, deliveryAddr string
			deliveryLat, deliveryLng  *float64
		)
		if err = rows.Scan(
			&id, &name, &image, &orderTime, &rating, &status,
			&pickupLoc, &pickupAddr, &pickupLat, &pickupLng,
			&deliveryLoc, &deliveryAddr, &deliveryLat, &deliveryLng,
		); err != nil {
			return nil, err
		}

		o, restoreErr := restoreRow(id, status, order.Details{
			RestaurantName: name,
			ImageURL:       image,
			OrderTime:      orderTime.UTC(),
			Rating:         rating,
		}, rowStop{pickupLoc, pickupAddr, pickupLat, pickupLng},
			rowStop{deliveryLoc, deliveryAddr, deliveryLat, deliveryLng})
		if restoreErr != nil {
			return nil, fmt.Errorf("order %d: %w", id, restoreErr)
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

type rowStop struct {
	location, address   string
	latitude, longitude *float64
}

func (s rowStop) toDomain() (order.Stop, error) {
	var coords *kernel.Coordinates
	if s.latitude != nil && s.longitude != nil {
		c, err := kernel.NewCoordinates(*s.latitude, *s.longitude)
		if err != nil {
			return order.Stop{}, err
		}
		coords = &c
	}
	return order.NewStop(s.location, s.address, coords)
}

func restoreRow(id int64, rawStatus string, details order.Details, pickup, drop rowStop) (*order.Order, error) {
	status, err := order.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	p, err := pickup.toDomain()
	if err != nil {
		return nil, err
	}
	d, err := drop.toDomain()
	if err != nil {
		return nil, err
	}
	return order.RestoreOrder(id, status, p, d, details)
}
