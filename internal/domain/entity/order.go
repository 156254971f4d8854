package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "en_attente"
	OrderStatusAssigned  OrderStatus = "assignee"
	OrderStatusInTransit OrderStatus = "en_cours"
	OrderStatusDelivered OrderStatus = "livree"
	OrderStatusCancelled OrderStatus = "annulee"
)

var orderStatuses = [...]OrderStatus{
	OrderStatusPending,
	OrderStatusAssigned,
	OrderStatusInTransit,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// IsValid checks if the status is known.
func (s OrderStatus) IsValid() bool {
	for _, v := range orderStatuses {
		if s == v {
			return true
		}
	}

	return false
}

// cancellableFrom lists the states an order may be cancelled from. Every other
// transition is accepted as-is.
var cancellableFrom = map[OrderStatus]bool{
	OrderStatusPending:   true,
	OrderStatusAssigned:  true,
	OrderStatusInTransit: true,
}

// CanTransition reports whether an order in status from may move to to.
func CanTransition(from, to OrderStatus) bool {
	if !to.IsValid() {
		return false
	}
	if to == OrderStatusCancelled {
		return cancellableFrom[from]
	}

	return true
}

// Order is a client's purchase of one product from one station.
type Order struct {
	ID               uuid.UUID
	ClientID         uuid.UUID
	Client           *Account // Loaded for listings, may be nil.
	ProductID        uuid.UUID
	Product          *Product // Loaded for listings, may be nil.
	StationID        uuid.UUID
	CourierID        *uuid.UUID
	Courier          *CourierProfile // Loaded for listings, may be nil.
	Quantity         int
	LineTotal        decimal.Decimal // price × quantity
	DeliveryFee      decimal.Decimal
	GrandTotal       decimal.Decimal // LineTotal + DeliveryFee
	DeliveryAddress  string
	DeliveryLocation *Coordinates
	Status           OrderStatus
	Notes            string
	CreatedAt        time.Time
	DeliveredAt      *time.Time
}

// ApplyPricing derives both totals from a unit price.
func (o *Order) ApplyPricing(unitPrice decimal.Decimal) {
	o.LineTotal = unitPrice.Mul(decimal.NewFromInt(int64(o.Quantity)))
	o.GrandTotal = o.LineTotal.Add(o.DeliveryFee)
}

// AssignCourier attaches a courier and marks the order assigned. The current
// status is not checked.
func (o *Order) AssignCourier(courier *CourierProfile) {
	o.CourierID = &courier.ID
	o.Courier = courier
	o.Status = OrderStatusAssigned
}

// SetStatus moves the order to status, stamping the delivery time when the
// order becomes delivered.
func (o *Order) SetStatus(status OrderStatus, now time.Time) bool {
	if !CanTransition(o.Status, status) {
		return false
	}
	o.Status = status
	if status == OrderStatusDelivered {
		o.DeliveredAt = &now
	}

	return true
}

// OwnerAccountID returns the client that placed the order.
func (o *Order) OwnerAccountID() uuid.UUID {
	return o.ClientID
}
