package model

import (
	"slices"
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID         = "id"
	FieldRoomID     = "room_id"
	FieldCustomerID = "customer_id"
	FieldCheckIn    = "check_in"
	FieldCheckOut   = "check_out"
	FieldStatus     = "status"

	StatusConfirmed  = "Confirmed"
	StatusCheckedIn  = "Checked-In"
	StatusCheckedOut = "Checked-Out"
	StatusCancelled  = "Cancelled"
)

// transitions holds the allowed status moves. Checked-Out and Cancelled
// are terminal.
var transitions = map[string][]string{
	StatusConfirmed: {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn: {StatusCheckedOut, StatusCancelled},
}

// ActiveStatuses are the statuses that hold a room for their date range.
var ActiveStatuses = []string{StatusConfirmed, StatusCheckedIn}

// CanTransition reports whether a booking may move from one status to
// another.
func CanTransition(from, to string) bool {
	return slices.Contains(transitions[from], to)
}

// IsTerminal reports whether a booking status admits no further moves.
func IsTerminal(status string) bool {
	return IsValidStatus(status) && len(transitions[status]) == 0
}

// IsValidStatus reports whether status is one of the known booking statuses.
func IsValidStatus(status string) bool {
	switch status {
	case StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	}

	return false
}

// Nights returns the number of chargeable nights between check-in and
// check-out. Partial days round up, and every stay is charged at least
// one night.
func Nights(checkIn, checkOut time.Time) int {
	duration := checkOut.Sub(checkIn)
	if duration <= 0 {
		return 0
	}

	nights := int(duration / (24 * time.Hour))
	if duration%(24*time.Hour) > 0 {
		nights++
	}

	if nights < 1 {
		nights = 1
	}

	return nights
}

// Overlaps reports whether two half-open date ranges share at least one
// night.
func Overlaps(aCheckIn, aCheckOut, bCheckIn, bCheckOut time.Time) bool {
	return aCheckIn.Before(bCheckOut) && bCheckIn.Before(aCheckOut)
}

type Booking struct {
	ID         string    `db:"id"`
	RoomID     string    `db:"room_id"`
	CustomerID string    `db:"customer_id"`
	CheckIn    time.Time `db:"check_in"`
	CheckOut   time.Time `db:"check_out"`
	Status     string    `db:"status"`

	RoomNumber    string `db:"room_number"     table:"rooms"`
	RoomType      string `db:"room_type"       table:"rooms"`
	PricePerNight int64  `db:"price_per_night" table:"rooms"`
	CustomerName  string `db:"customer_name"   table:"customers" column:"full_name"`

	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = bookings.room_id JOIN customers ON customers.id = bookings.customer_id"
}

// Nights returns the chargeable nights for this booking.
func (b *Booking) Nights() int {
	return Nights(b.CheckIn, b.CheckOut)
}

// TotalAmount returns the booking price derived from the joined room
// rate. It is computed, never stored.
func (b *Booking) TotalAmount() int64 {
	return int64(b.Nights()) * b.PricePerNight
}
