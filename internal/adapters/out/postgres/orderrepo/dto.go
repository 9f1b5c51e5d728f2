// Package orderrepo persists deliveries: the order columns plus the assigned driver.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"driverapp/internal/core/domain/model/kernel"
	"driverapp/internal/core/domain/model/order"
	"driverapp/internal/devbackend/domain/delivery"
)

// OrderDTO is the row of the orders table. Status holds the wire name so raw
// queries can filter on it directly.
type OrderDTO struct {
	ID             int64      `gorm:"primaryKey;autoIncrement"`
	DriverID       *uuid.UUID `gorm:"type:uuid;index"`
	RestaurantName string     `gorm:"type:varchar(255);not null"`
	ImageURL       string     `gorm:"type:text"`
	OrderTime      time.Time  `gorm:"not null;index"`
	Rating         *float64
	Status         string  `gorm:"type:varchar(32);not null;index"`
	Pickup         StopDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Delivery       StopDTO `gorm:"embedded;embeddedPrefix:delivery_"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// StopDTO is embedded twice, once per stop.
type StopDTO struct {
	Location  string `gorm:"type:varchar(32);not null"`
	Address   string `gorm:"type:text"`
	Latitude  *float64
	Longitude *float64
}

func stopFromDomain(s order.Stop) StopDTO {
	dto := StopDTO{Location: s.Location(), Address: s.Address()}
	if c, ok := s.Coordinates(); ok {
		lat, lng := c.Latitude(), c.Longitude()
		dto.Latitude, dto.Longitude = &lat, &lng
	}
	return dto
}

func fromDraft(d delivery.Draft) OrderDTO {
	details := d.Details()
	return OrderDTO{
		RestaurantName: details.RestaurantName,
		ImageURL:       details.ImageURL,
		OrderTime:      details.OrderTime.UTC(),
		Rating:         details.Rating,
		Status:         order.ReadyForDelivery.String(),
		Pickup:         stopFromDomain(d.Pickup()),
		Delivery:       stopFromDomain(d.Delivery()),
	}
}

func fromDomain(d *delivery.Delivery) OrderDTO {
	o := d.Order()
	dto := OrderDTO{
		ID:             o.ID(),
		DriverID:       d.DriverID(),
		RestaurantName: o.RestaurantName(),
		ImageURL:       o.ImageURL(),
		OrderTime:      o.OrderTime().UTC(),
		Status:         o.Status().String(),
		Pickup:         stopFromDomain(o.Pickup()),
		Delivery:       stopFromDomain(o.Delivery()),
	}
	if rating, ok := o.Rating(); ok {
		dto.Rating = &rating
	}
	return dto
}

func (s StopDTO) toDomain() (order.Stop, error) {
	var coords *kernel.Coordinates
	if s.Latitude != nil && s.Longitude != nil {
		c, err := kernel.NewCoordinates(*s.Latitude, *s.Longitude)
		if err != nil {
			return order.Stop{}, err
		}
		coords = &c
	}
	return order.NewStop(s.Location, s.Address, coords)
}

// ToOrder rebuilds the shared order aggregate from a row.
func (dto OrderDTO) ToOrder() (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	pickup, err := dto.Pickup.toDomain()
	if err != nil {
		return nil, err
	}
	drop, err := dto.Delivery.toDomain()
	if err != nil {
		return nil, err
	}
	return order.RestoreOrder(dto.ID, status, pickup, drop, order.Details{
		RestaurantName: dto.RestaurantName,
		ImageURL:       dto.ImageURL,
		OrderTime:      dto.OrderTime.UTC(),
		Rating:         dto.Rating,
	})
}

func toDomain(dto OrderDTO) (*delivery.Delivery, error) {
	o, err := dto.ToOrder()
	if err != nil {
		return nil, err
	}
	return delivery.RestoreDelivery(o, dto.DriverID)
}
