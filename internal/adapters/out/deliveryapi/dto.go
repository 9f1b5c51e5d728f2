// Package deliveryapi is the REST client of the delivery backend. It implements
// ports.DeliveryAPI over net/http, styles parameters the way oapi-codegen clients
// do and checks every successful response against the embedded OpenAPI document.
package deliveryapi

import (
	"errors"
	"fmt"

	"driverapp/internal/core/domain/model/kernel"
	"driverapp/internal/core/domain/model/order"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type authResponse struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Token  string `json:"token"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// StopDTO is the wire shape of a pickup or delivery stop.
type StopDTO struct {
	Location  string   `json:"location"`
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// OrderDTO is the wire shape of an order.
type OrderDTO struct {
	GroupFoodOrderID int64    `json:"groupFoodOrderId"`
	RestaurantName   string   `json:"restaurantName"`
	ImgURL           string   `json:"imgUrl"`
	OrderTime        string   `json:"orderTime"`
	OrderStatus      string   `json:"orderStatus"`
	Pickup           StopDTO  `json:"pickup"`
	Delivery         StopDTO  `json:"delivery"`
	Rating           *float64 `json:"rating,omitempty"`
}

func (d StopDTO) toDomain() (order.Stop, error) {
	var coords *kernel.Coordinates
	switch {
	case d.Latitude != nil && d.Longitude != nil:
		c, err := kernel.NewCoordinates(*d.Latitude, *d.Longitude)
		if err != nil {
			return order.Stop{}, err
		}
		coords = &c
	case d.Latitude != nil || d.Longitude != nil:
		return order.Stop{}, errors.New("latitude and longitude must be sent together")
	}
	return order.NewStop(d.Location, d.Address, coords)
}

// ToDomain converts the payload into an order aggregate.
func (d OrderDTO) ToDomain() (*order.Order, error) {
	status, statusErr := order.ParseStatus(d.OrderStatus)
	orderTime, timeErr := order.ParseOrderTime(d.OrderTime)
	pickup, pickupErr := d.Pickup.toDomain()
	delivery, deliveryErr := d.Delivery.toDomain()
	if err := errors.Join(statusErr, timeErr, pickupErr, deliveryErr); err != nil {
		return nil, fmt.Errorf("order %d: %w", d.GroupFoodOrderID, err)
	}

	return order.RestoreOrder(d.GroupFoodOrderID, status, pickup, delivery, order.Details{
		RestaurantName: d.RestaurantName,
		ImageURL:       d.ImgURL,
		OrderTime:      orderTime,
		Rating:         d.Rating,
	})
}

// FromDomain converts an order aggregate into its wire shape.
func FromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		GroupFoodOrderID: o.ID(),
		RestaurantName:   o.RestaurantName(),
		ImgURL:           o.ImageURL(),
		OrderStatus:      o.Status().String(),
		Pickup:           stopFromDomain(o.Pickup()),
		Delivery:         stopFromDomain(o.Delivery()),
	}
	if !o.OrderTime().IsZero() {
		dto.OrderTime = o.OrderTime().UTC().Format("2006-01-02T15:04:05Z07:00")
	}
	if rating, ok := o.Rating(); ok {
		dto.Rating = &rating
	}
	return dto
}

func stopFromDomain(s order.Stop) StopDTO {
	dto := StopDTO{Location: s.Location(), Address: s.Address()}
	if c, ok := s.Coordinates(); ok {
		lat, lng := c.Latitude(), c.Longitude()
		dto.Latitude, dto.Longitude = &lat, &lng
	}
	return dto
}
