package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/skillswap/backend/internal/domain"
	"github.com/skillswap/backend/internal/dto"
	"github.com/skillswap/backend/internal/service/bookingservice"
	"github.com/skillswap/backend/internal/service/walletservice"
	"github.com/skillswap/backend/pkg/auth"
	"github.com/skillswap/backend/pkg/utils"
)

type Service interface {
	CreateBooking(ctx context.Context, requesterID int64, in dto.CreateBookingRequestDTO) (*domain.Booking, error)
	ConfirmBooking(ctx context.Context, providerID, bookingID int64) (*domain.Booking, error)
	StartBooking(ctx context.Context, providerID, bookingID int64) (*domain.Booking, error)
	CompleteBooking(ctx context.Context, providerID, bookingID int64) (*domain.Booking, error)
	CancelBooking(ctx context.Context, userID, bookingID int64, in dto.CancelBookingRequestDTO) (*domain.Booking, error)
	RaiseDispute(ctx context.Context, userID, bookingID int64, in dto.DisputeBookingRequestDTO) (*domain.Booking, error)
	GetBooking(ctx context.Context, userID, bookingID int64) (*domain.Booking, error)
	RequesterBookings(ctx context.Context, requesterID int64, status string) ([]domain.Booking, error)
	ProviderBookings(ctx context.Context, providerID int64, status string) ([]domain.Booking, error)
	UpcomingForProvider(ctx context.Context, providerID int64) ([]domain.Booking, error)
	UpcomingForRequester(ctx context.Context, requesterID int64) ([]domain.Booking, error)
	PastForProvider(ctx context.Context, providerID int64) ([]domain.Booking, error)
	PastForRequester(ctx context.Context, requesterID int64) ([]domain.Booking, error)
}

type BookingHandler struct {
	bookingService Service
}

func New(bookingService Service) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// Create godoc
//
//	@Summary		Create a booking from an accepted skill request
//	@Description	Books a time slot against an ACCEPTED skill request, snapshotting the skill's hourly rate.
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateBookingRequestDTO	true	"Booking payload"
//	@Success		201		{object}	dto.BookingResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid time range or request not accepted"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not the request sender"
//	@Failure		404		{object}	utils.Response	"Request or skill not found"
//	@Failure		409		{object}	utils.Response	"Slot overlaps an existing booking"
//	@Failure		429		{object}	utils.Response	"Booking cooldown active"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings [post]
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	var req dto.CreateBookingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := h.bookingService.CreateBooking(r.Context(), userID, req)
	if err != nil {
		respondBookingError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponseDTO(booking))
}

// Confirm godoc
//
//	@Summary		Confirm a pending booking and lock escrow
//	@Description	Provider accepts the booking; the requester's wallet is then debited into escrow.
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Booking ID"
//	@Success		200	{object}	dto.BookingResponseDTO
//	@Failure		400	{object}	utils.Response	"Booking not pending"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		402	{object}	utils.Response	"Insufficient wallet balance for escrow"
//	@Failure		404	{object}	utils.Response	"Booking not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bookingService.ConfirmBooking)
}

// Start godoc
//
//	@Summary		Start a confirmed booking session
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Booking ID"
//	@Success		200	{object}	dto.BookingResponseDTO
//	@Failure		400	{object}	utils.Response	"Booking not confirmed"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Booking not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/{id}/start [post]
func (h *BookingHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bookingService.StartBooking)
}

// Complete godoc
//
//	@Summary		Complete a session and release escrow to the provider
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Booking ID"
//	@Success		200	{object}	dto.BookingResponseDTO
//	@Failure		400	{object}	utils.Response	"Booking not in progress"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Booking or escrow not found"
//	@Failure		409	{object}	utils.Response	"Escrow already processed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/{id}/complete [post]
func (h *BookingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bookingService.CompleteBooking)
}

// Cancel godoc
//
//	@Summary		Cancel a booking
//	@Description	Either party may cancel a non-terminal booking; a held escrow is refunded to the requester.
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Booking ID"
//	@Param			request	body		dto.CancelBookingRequestDTO	true	"Cancellation reason"
//	@Success		200		{object}	dto.BookingResponseDTO
//	@Failure		400		{object}	utils.Response	"Booking already terminal or blank reason"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not a party to the booking"
//	@Failure		404		{object}	utils.Response	"Booking not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	bookingID, ok := bookingIDParam(w, r)
	if !ok {
		return
	}

	var req dto.CancelBookingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := h.bookingService.CancelBooking(r.Context(), userID, bookingID, req)
	if err != nil {
		respondBookingError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(booking))
}

// Dispute godoc
//
//	@Summary		Raise a dispute on a completed booking
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Booking ID"
//	@Param			request	body		dto.DisputeBookingRequestDTO	true	"Dispute reason"
//	@Success		200		{object}	dto.BookingResponseDTO
//	@Failure		400		{object}	utils.Response	"Booking not completed or blank reason"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not a party to the booking"
//	@Failure		404		{object}	utils.Response	"Booking not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/{id}/dispute [post]
func (h *BookingHandler) Dispute(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	bookingID, ok := bookingIDParam(w, r)
	if !ok {
		return
	}

	var req dto.DisputeBookingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := h.bookingService.RaiseDispute(r.Context(), userID, bookingID, req)
	if err != nil {
		respondBookingError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(booking))
}

// Get godoc
//
//	@Summary		Get a booking by id
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Booking ID"
//	@Success		200	{object}	dto.BookingResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not a party to the booking"
//	@Failure		404	{object}	utils.Response	"Booking not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/{id} [get]
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	bookingID, ok := bookingIDParam(w, r)
	if !ok {
		return
	}

	booking, err := h.bookingService.GetBooking(r.Context(), userID, bookingID)
	if err != nil {
		respondBookingError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(booking))
}

// AsRequester godoc
//
//	@Summary		List bookings where the user is the requester
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"Filter by status"
//	@Success		200		{array}		dto.BookingResponseDTO
//	@Success		204		{object}	utils.Response	"No bookings"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/requested [get]
func (h *BookingHandler) AsRequester(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)
	h.respondList(w, func() ([]domain.Booking, error) {
		return h.bookingService.RequesterBookings(r.Context(), userID, r.URL.Query().Get("status"))
	})
}

// AsProvider godoc
//
//	@Summary		List bookings where the user is the provider
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"Filter by status"
//	@Success		200		{array}		dto.BookingResponseDTO
//	@Success		204		{object}	utils.Response	"No bookings"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/provided [get]
func (h *BookingHandler) AsProvider(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)
	h.respondList(w, func() ([]domain.Booking, error) {
		return h.bookingService.ProviderBookings(r.Context(), userID, r.URL.Query().Get("status"))
	})
}

// Upcoming godoc
//
//	@Summary		List upcoming bookings for the user
//	@Description	`side=provider` lists sessions the user will teach, otherwise sessions they will attend.
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			side	query		string	false	"provider or requester"
//	@Success		200		{array}		dto.BookingResponseDTO
//	@Success		204		{object}	utils.Response	"No bookings"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/upcoming [get]
func (h *BookingHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)
	h.respondList(w, func() ([]domain.Booking, error) {
		if r.URL.Query().Get("side") == "provider" {
			return h.bookingService.UpcomingForProvider(r.Context(), userID)
		}
		return h.bookingService.UpcomingForRequester(r.Context(), userID)
	})
}

// Past godoc
//
//	@Summary		List finished bookings for the user
//	@Tags			Bookings
//	@Security		BearerAuth
//	@Produce		json
//	@Param			side	query		string	false	"provider or requester"
//	@Success		200		{array}		dto.BookingResponseDTO
//	@Success		204		{object}	utils.Response	"No bookings"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bookings/past [get]
func (h *BookingHandler) Past(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)
	h.respondList(w, func() ([]domain.Booking, error) {
		if r.URL.Query().Get("side") == "provider" {
			return h.bookingService.PastForProvider(r.Context(), userID)
		}
		return h.bookingService.PastForRequester(r.Context(), userID)
	})
}

func (h *BookingHandler) transition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, userID, bookingID int64) (*domain.Booking, error)) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	bookingID, ok := bookingIDParam(w, r)
	if !ok {
		return
	}

	booking, err := op(r.Context(), userID, bookingID)
	if err != nil {
		respondBookingError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(booking))
}

func (h *BookingHandler) respondList(w http.ResponseWriter, fetch func() ([]domain.Booking, error)) {
	bookings, err := fetch()
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}
	if len(bookings) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No bookings found")
		return
	}

	response := make([]dto.BookingResponseDTO, len(bookings))
	for i, booking := range bookings {
		booking := booking
		response[i] = *toResponseDTO(&booking)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func bookingIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	bookingID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking id")
		return 0, false
	}
	return bookingID, true
}

func respondBookingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bookingservice.ErrBookingNotFound),
		errors.Is(err, bookingservice.ErrRequestNotFound),
		errors.Is(err, bookingservice.ErrSkillNotFound),
		errors.Is(err, walletservice.ErrEscrowNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, bookingservice.ErrNotRequestOwner),
		errors.Is(err, bookingservice.ErrNotParticipant):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, bookingservice.ErrProviderUnavailable),
		errors.Is(err, bookingservice.ErrRequesterBusy),
		errors.Is(err, walletservice.ErrAlreadyProcessed):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, bookingservice.ErrBookingCooldown):
		utils.RespondWithError(w, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, walletservice.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, bookingservice.ErrRequestNotAccepted),
		errors.Is(err, bookingservice.ErrInvalidTimeRange),
		errors.Is(err, bookingservice.ErrInvalidTransition),
		errors.Is(err, bookingservice.ErrReasonRequired),
		errors.Is(err, walletservice.ErrInvalidEscrowState):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toResponseDTO(b *domain.Booking) *dto.BookingResponseDTO {
	return &dto.BookingResponseDTO{
		ID:              b.ID,
		SkillRequestID:  b.RequestID,
		RequesterID:     b.RequesterID,
		ProviderID:      b.ProviderID,
		SkillID:         b.SkillID,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		DurationMinutes: b.DurationMinutes,
		PricePerHour:    b.PricePerHour.StringFixed(2),
		TotalAmount:     b.TotalAmount.StringFixed(2),
		Status:          b.Status,
		CancelReason:    b.CancelReason,
		CancelledBy:     b.CancelledBy,
		DisputeReason:   b.DisputeReason,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
