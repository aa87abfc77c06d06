package booking

// Wire DTOs. Dates travel as "2006-01-02" strings and are parsed at the
// handler boundary; the service only ever sees real time values.

type CreateReservationRequest struct {
	RoomID          int64  `json:"room_id" binding:"required"`
	GuestName       string `json:"guest_name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	CheckIn         string `json:"check_in" binding:"required"`
	CheckOut        string `json:"check_out" binding:"required"`
	Adults          int    `json:"adults" binding:"required,gte=1"`
	Children        int    `json:"children" binding:"gte=0"`
	SpecialRequests string `json:"special_requests"`
}

type AvailabilityResponse struct {
	RoomID    int64  `json:"room_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Available bool   `json:"available"`
}
