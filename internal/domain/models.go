package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int64     `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

type Skill struct {
	ID         int64           `db:"id"`
	OwnerID    int64           `db:"owner_id"`
	Title      string          `db:"title"`
	HourlyRate decimal.Decimal `db:"hourly_rate"`
	Active     bool            `db:"active"`
	CreatedAt  time.Time       `db:"created_at"`
}

// Skill request lifecycle. PENDING and ACCEPTED are the only non-terminal
// states; BOOKED means a live booking currently holds the request.
const (
	RequestStatusPending   string = "PENDING"
	RequestStatusAccepted  string = "ACCEPTED"
	RequestStatusBooked    string = "BOOKED"
	RequestStatusRejected  string = "REJECTED"
	RequestStatusCancelled string = "CANCELLED"
	RequestStatusExpired   string = "EXPIRED"
	RequestStatusCompleted string = "COMPLETED"
)

type SkillRequest struct {
	ID         int64     `db:"id"`
	SenderID   int64     `db:"sender_id"`
	ReceiverID int64     `db:"receiver_id"`
	SkillID    int64     `db:"skill_id"`
	Message    string    `db:"message"`
	Status     string    `db:"status"`
	ExpiresAt  time.Time `db:"expires_at"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// Booking lifecycle: PENDING → CONFIRMED → IN_PROGRESS → COMPLETED,
// any non-terminal state → CANCELLED, COMPLETED → DISPUTED.
const (
	BookingStatusPending    string = "PENDING"
	BookingStatusConfirmed  string = "CONFIRMED"
	BookingStatusInProgress string = "IN_PROGRESS"
	BookingStatusCompleted  string = "COMPLETED"
	BookingStatusCancelled  string = "CANCELLED"
	BookingStatusDisputed   string = "DISPUTED"
)

const (
	CancelledByUser     string = "USER"
	CancelledByProvider string = "PROVIDER"
	CancelledByAdmin    string = "ADMIN"
)

type Booking struct {
	ID              int64           `db:"id"`
	RequestID       int64           `db:"request_id"`
	RequesterID     int64           `db:"requester_id"`
	ProviderID      int64           `db:"provider_id"`
	SkillID         int64           `db:"skill_id"`
	StartTime       time.Time       `db:"start_time"`
	EndTime         time.Time       `db:"end_time"`
	DurationMinutes int             `db:"duration_minutes"`
	PricePerHour    decimal.Decimal `db:"price_per_hour"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	Status          string          `db:"status"`
	CancelReason    string          `db:"cancel_reason"`
	CancelledBy     string          `db:"cancelled_by"`
	DisputeReason   string          `db:"dispute_reason"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

const (
	TransactionTypeDeposit  string = "DEPOSIT"
	TransactionTypeWithdraw string = "WITHDRAW"
	TransactionTypeEscrow   string = "ESCROW"
	TransactionTypeRelease  string = "RELEASE"
	TransactionTypeRefund   string = "REFUND"
)

const (
	TransactionStatusPending  string = "PENDING"
	TransactionStatusSuccess  string = "SUCCESS"
	TransactionStatusFailed   string = "FAILED"
	TransactionStatusRefunded string = "REFUNDED"
)

const (
	GatewayInternal string = "INTERNAL"
	MethodWallet    string = "WALLET"
	CurrencyINR     string = "INR"
)

// Transaction rows are append-mostly: once written they never change,
// except the ESCROW row whose status moves PENDING → SUCCESS or
// PENDING → REFUNDED exactly once, guarded by the version counter.
type Transaction struct {
	ID              int64           `db:"id"`
	BookingID       *int64          `db:"booking_id"`
	PayerID         int64           `db:"payer_id"`
	PayeeID         int64           `db:"payee_id"`
	Amount          decimal.Decimal `db:"amount"`
	PlatformFee     decimal.Decimal `db:"platform_fee"`
	NetAmount       decimal.Decimal `db:"net_amount"`
	Currency        string          `db:"currency"`
	Type            string          `db:"transaction_type"`
	Status          string          `db:"status"`
	Escrow          bool            `db:"escrow"`
	EscrowReleaseAt *time.Time      `db:"escrow_release_at"`
	Reference       string          `db:"transaction_reference"`
	Gateway         string          `db:"payment_gateway"`
	Method          string          `db:"payment_method"`
	FailureReason   string          `db:"failure_reason"`
	RetryCount      int             `db:"retry_count"`
	Version         int64           `db:"version"`
	Description     string          `db:"description"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}
