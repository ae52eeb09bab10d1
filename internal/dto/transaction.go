package dto

import "time"

type WalletAmountRequestDTO struct {
	Amount string `json:"amount" example:"500.00"`
}

type WalletBalanceResponseDTO struct {
	Balance string `json:"balance" example:"1250.00"`
	NetFlow string `json:"net_flow" example:"1250.00"`
}

type TransactionResponseDTO struct {
	ID        int64     `json:"id" example:"3"`
	BookingID *int64    `json:"booking_id,omitempty" example:"11"`
	PayerID   int64     `json:"payer_id" example:"1"`
	PayeeID   int64     `json:"payee_id" example:"2"`
	Amount    string    `json:"amount" example:"750.00"`
	NetAmount string    `json:"net_amount" example:"750.00"`
	Currency  string    `json:"currency" example:"INR"`
	Type      string    `json:"type" example:"ESCROW"`
	Status    string    `json:"status" example:"PENDING"`
	Escrow    bool      `json:"escrow" example:"true"`
	Reference string    `json:"reference" example:"1f1a38b4-0bb4-4e51-9839-1ab03b1f14b8"`
	CreatedAt time.Time `json:"created_at"`
}
