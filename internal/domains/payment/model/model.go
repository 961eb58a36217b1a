package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID          = "id"
	FieldBookingID   = "booking_id"
	FieldPaymentDate = "payment_date"
	FieldAmount      = "amount"
	FieldMethod      = "method"
	FieldStatus      = "status"

	StatusPaid     = "Paid"
	StatusRefunded = "Refunded"
)

// Amounts are integer minor units, matching the room rate.
type Payment struct {
	ID          string    `db:"id"`
	BookingID   string    `db:"booking_id"`
	PaymentDate time.Time `db:"payment_date"`
	Amount      int64     `db:"amount"`
	Method      string    `db:"method"`
	Status      string    `db:"status"`
	model.Metadata
}
