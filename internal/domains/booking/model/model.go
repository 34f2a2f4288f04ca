package model

import (
	"inn/shared/constant"
	"inn/shared/model"
	"time"
)

const (
	TableName  = "room_bookings"
	EntityName = "booking"

	FieldID        = "id"
	FieldRoomID    = "room_id"
	FieldUserID    = "user_id"
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
	FieldPrice     = "price"
	FieldStatus    = "status"
)

// Booking is one stay on the ledger. The interval is half-open: the guest
// checks in on StartDate and the room is free again on EndDate.
type Booking struct {
	ID        string    `db:"id"`
	RoomID    string    `db:"room_id"`
	UserID    string    `db:"user_id"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	Price     int64     `db:"price"`
	Status    string    `db:"status"`
	model.Metadata
}

// Live reports whether the booking still holds its room dates.
// Cancelled bookings never block anything.
func (b *Booking) Live() bool {
	return b.Status == constant.BookingStatusPending || b.Status == constant.BookingStatusConfirmed
}

// Overlaps reports whether two half-open date ranges intersect.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartDate.Before(end) && start.Before(b.EndDate)
}

// CanTransition validates a status change. Pending bookings can be
// confirmed or cancelled, confirmed ones only cancelled, and cancelled
// is terminal.
func CanTransition(from, to string) bool {
	switch from {
	case constant.BookingStatusPending:
		return to == constant.BookingStatusConfirmed || to == constant.BookingStatusCancelled
	case constant.BookingStatusConfirmed:
		return to == constant.BookingStatusCancelled
	default:
		return false
	}
}
