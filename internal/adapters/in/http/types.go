package http

import (
	"time"

	"driverapp/internal/core/domain/model/order"
)

// Wire types of the delivery contract (api/openapi.yaml).

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type AuthResponse struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Token  string `json:"token"`
}

type Stop struct {
	Location  string   `json:"location"`
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type Order struct {
	GroupFoodOrderID int64    `json:"groupFoodOrderId"`
	RestaurantName   string   `json:"restaurantName"`
	ImgURL           string   `json:"imgUrl"`
	OrderTime        string   `json:"orderTime,omitempty"`
	OrderStatus      string   `json:"orderStatus"`
	Pickup           Stop     `json:"pickup"`
	Delivery         Stop     `json:"delivery"`
	Rating           *float64 `json:"rating,omitempty"`
}

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// GetOrdersForDeliveryStaffParams are the query parameters of the order list.
type GetOrdersForDeliveryStaffParams struct {
	UserID   string `form:"userId" json:"userId"`
	Location string `form:"location" json:"location"`
}

func toStop(s order.Stop) Stop {
	out := Stop{Location: s.Location(), Address: s.Address()}
	if c, ok := s.Coordinates(); ok {
		lat, lng := c.Latitude(), c.Longitude()
		out.Latitude, out.Longitude = &lat, &lng
	}
	return out
}

func toOrder(o *order.Order) Order {
	out := Order{
		GroupFoodOrderID: o.ID(),
		RestaurantName:   o.RestaurantName(),
		ImgURL:           o.ImageURL(),
		OrderStatus:      o.Status().String(),
		Pickup:           toStop(o.Pickup()),
		Delivery:         toStop(o.Delivery()),
	}
	if !o.OrderTime().IsZero() {
		out.OrderTime = o.OrderTime().UTC().Format(time.RFC3339)
	}
	if rating, ok := o.Rating(); ok {
		out.Rating = &rating
	}
	return out
}
