package dto

import "time"

type SendSkillRequestDTO struct {
	SkillID int64  `json:"skill_id" example:"42"`
	Message string `json:"message" example:"Would love to learn Go from you"`
}

type SkillRequestResponseDTO struct {
	ID         int64     `json:"id" example:"7"`
	SenderID   int64     `json:"sender_id" example:"1"`
	ReceiverID int64     `json:"receiver_id" example:"2"`
	SkillID    int64     `json:"skill_id" example:"42"`
	Message    string    `json:"message,omitempty"`
	Status     string    `json:"status" example:"PENDING"`
	ExpiresAt  time.Time `json:"expires_at" example:"2024-12-11T16:09:57+03:00"`
	CreatedAt  time.Time `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
}
