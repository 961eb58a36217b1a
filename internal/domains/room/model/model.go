package model

import (
	"slices"

	"lodge/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldRoomNumber    = "room_number"
	FieldRoomType      = "room_type"
	FieldCapacity      = "capacity"
	FieldPricePerNight = "price_per_night"
	FieldStatus        = "status"
	FieldPhoto         = "photo"

	StatusAvailable   = "Available"
	StatusOccupied    = "Occupied"
	StatusCleaning    = "Cleaning"
	StatusMaintenance = "Maintenance"
)

// statusCycle is the housekeeping rotation. Advancing from the last
// entry wraps back to the first.
var statusCycle = []string{
	StatusAvailable,
	StatusOccupied,
	StatusCleaning,
	StatusMaintenance,
}

// NextStatus returns the status that follows current in the
// housekeeping cycle. Unknown statuses report false.
func NextStatus(current string) (string, bool) {
	idx := slices.Index(statusCycle, current)
	if idx == -1 {
		return "", false
	}

	return statusCycle[(idx+1)%len(statusCycle)], true
}

// IsValidStatus reports whether status is one of the known room statuses.
func IsValidStatus(status string) bool {
	return slices.Contains(statusCycle, status)
}

type Room struct {
	ID            string `db:"id"`
	RoomNumber    string `db:"room_number"`
	RoomType      string `db:"room_type"`
	Capacity      int    `db:"capacity"`
	PricePerNight int64  `db:"price_per_night"`
	Status        string `db:"status"`
	Photo         string `db:"photo"`
	model.Metadata
}
