package dto

type DashboardResponse struct {
	ActiveBookings int `json:"active_bookings"`
	TodaysCheckIns int `json:"todays_check_ins"`
	AvailableRooms int `json:"available_rooms"`
	TotalCustomers int `json:"total_customers"`
}

type RevenueRequest struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to"   validate:"required"`
}

type RoomTypeRevenue struct {
	RoomType string `json:"room_type"`
	Bookings int    `json:"bookings"`
	Revenue  int64  `json:"revenue"`
}

type RevenueResponse struct {
	From          string            `json:"from"`
	To            string            `json:"to"`
	TotalRevenue  int64             `json:"total_revenue"`
	ByRoomType    []RoomTypeRevenue `json:"by_room_type"`
	BookingCounts map[string]int    `json:"booking_counts"`
}
