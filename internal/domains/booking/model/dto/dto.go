package dto

import (
	"time"

	"lodge/internal/domains/booking/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID     string `json:"room_id"     validate:"required"`
	CustomerID string `json:"customer_id" validate:"required"`
	CheckIn    string `json:"check_in"    validate:"required"`
	CheckOut   string `json:"check_out"   validate:"required"`
}

// ParseRange parses and validates the requested stay. Check-in must be
// strictly before check-out.
func (c *CreateBookingRequest) ParseRange() (checkIn, checkOut time.Time, err error) {
	return parseRange(c.CheckIn, c.CheckOut)
}

func (c *CreateBookingRequest) ToModel(user string, checkIn, checkOut time.Time) model.Booking {
	return model.Booking{
		ID:         uuid.NewString(),
		RoomID:     c.RoomID,
		CustomerID: c.CustomerID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Status:     model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBookingRequest struct {
	CustomerID string `db:"customer_id" json:"customer_id" validate:"omitempty"`
	CheckIn    string `json:"check_in"                     validate:"omitempty"`
	CheckOut   string `json:"check_out"                    validate:"omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Confirmed Checked-In Checked-Out Cancelled"`
}

type AvailabilityRequest struct {
	RoomID           string `json:"room_id"            validate:"required"`
	CheckIn          string `json:"check_in"           validate:"required"`
	CheckOut         string `json:"check_out"          validate:"required"`
	ExcludeBookingID string `json:"exclude_booking_id" validate:"omitempty,uuid"`
}

func (a *AvailabilityRequest) ParseRange() (checkIn, checkOut time.Time, err error) {
	return parseRange(a.CheckIn, a.CheckOut)
}

type AvailabilityResponse struct {
	RoomID    string `json:"room_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Available bool   `json:"available"`
}

type BookingResponse struct {
	ID            string `json:"id"`
	RoomID        string `json:"room_id"`
	RoomNumber    string `json:"room_number"`
	RoomType      string `json:"room_type"`
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	Status        string `json:"status"`
	Nights        int    `json:"nights"`
	PricePerNight int64  `json:"price_per_night"`
	TotalAmount   int64  `json:"total_amount"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.CustomerID = model.CustomerID
	r.CustomerName = model.CustomerName
	r.CheckIn = model.CheckIn.Format(constant.CalendarDateFormat)
	r.CheckOut = model.CheckOut.Format(constant.CalendarDateFormat)
	r.Status = model.Status
	r.Nights = model.Nights()
	r.PricePerNight = model.PricePerNight
	r.TotalAmount = model.TotalAmount()
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type UpdateStatusResponse struct {
	ID             string `json:"id"`
	PreviousStatus string `json:"previous_status"`
	Status         string `json:"status"`
}

// Calendar dates are parsed in the application timezone everywhere, so a
// stored check-in always lands on the same day the report windows use.
func parseRange(checkInStr, checkOutStr string) (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.CalendarDateFormat, checkInStr)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("invalid check_in date") // nolint:wrapcheck
	}

	checkOut, err = timezone.Parse(constant.CalendarDateFormat, checkOutStr)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("invalid check_out date") // nolint:wrapcheck
	}

	if !checkIn.Before(checkOut) {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("check_in must be before check_out") // nolint:wrapcheck
	}

	return checkIn, checkOut, nil
}
