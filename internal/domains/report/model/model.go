package model

import "time"

const EntityName = "report"

// RevenueRow is one booking joined with its room, read for revenue
// aggregation. Revenue is always recomputed from the current room rate.
type RevenueRow struct {
	RoomType      string    `db:"room_type"`
	PricePerNight int64     `db:"price_per_night"`
	CheckIn       time.Time `db:"check_in"`
	CheckOut      time.Time `db:"check_out"`
	Status        string    `db:"status"`
}
