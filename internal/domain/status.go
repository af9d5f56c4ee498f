package domain

import "slices"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

var orderStatuses = []OrderStatus{OrderPending, OrderConfirmed, OrderPreparing, OrderReady, OrderDelivered, OrderCancelled}

func (s OrderStatus) Valid() bool { return slices.Contains(orderStatuses, s) }

// OrderType is how the customer receives an order.
type OrderType string

const (
	OrderDineIn   OrderType = "dine_in"
	OrderTakeaway OrderType = "takeaway"
	OrderDelivery OrderType = "delivery"
)

func (t OrderType) Valid() bool {
	return t == OrderDineIn || t == OrderTakeaway || t == OrderDelivery
}

// ReservationStatus is the state of a table reservation.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCancelled, ReservationCompleted:
		return true
	}
	return false
}

// ContactStatus tracks the handling of a contact-us message.
type ContactStatus string

const (
	ContactPending    ContactStatus = "pending"
	ContactInProgress ContactStatus = "in_progress"
	ContactResolved   ContactStatus = "resolved"
	ContactClosed     ContactStatus = "closed"
)

func (s ContactStatus) Valid() bool {
	switch s {
	case ContactPending, ContactInProgress, ContactResolved, ContactClosed:
		return true
	}
	return false
}
