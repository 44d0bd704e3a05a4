package request_models

type SendInviteRequest struct {
	Email      string `json:"email" binding:"required,email"`
	TripID     string `json:"trip_id" binding:"required,uuid"`
	TripName   string `json:"trip_name" binding:"required"`
	SenderName string `json:"sender_name" binding:"required"`
}

type JoinTripQuery struct {
	TripID string `form:"tripId" binding:"required"`
	Email  string `form:"email" binding:"required,email"`
}
