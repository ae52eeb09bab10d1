package dto

import "time"

type CreateBookingRequestDTO struct {
	SkillRequestID  int64     `json:"skill_request_id" example:"7"`
	StartTime       time.Time `json:"start_time" example:"2024-12-10T10:00:00+03:00"`
	EndTime         time.Time `json:"end_time" example:"2024-12-10T11:30:00+03:00"`
	DurationMinutes int       `json:"duration_minutes,omitempty" example:"90"`
}

type CancelBookingRequestDTO struct {
	Reason string `json:"reason" example:"Schedule conflict"`
}

type DisputeBookingRequestDTO struct {
	Reason string `json:"reason" example:"Session never happened"`
}

type BookingResponseDTO struct {
	ID              int64     `json:"id" example:"11"`
	SkillRequestID  int64     `json:"skill_request_id" example:"7"`
	RequesterID     int64     `json:"requester_id" example:"1"`
	ProviderID      int64     `json:"provider_id" example:"2"`
	SkillID         int64     `json:"skill_id" example:"42"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes" example:"90"`
	PricePerHour    string    `json:"price_per_hour" example:"500.00"`
	TotalAmount     string    `json:"total_amount" example:"750.00"`
	Status          string    `json:"status" example:"PENDING"`
	CancelReason    string    `json:"cancel_reason,omitempty"`
	CancelledBy     string    `json:"cancelled_by,omitempty" example:"USER"`
	DisputeReason   string    `json:"dispute_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
