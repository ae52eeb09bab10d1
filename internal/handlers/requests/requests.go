package requests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/skillswap/backend/internal/domain"
	"github.com/skillswap/backend/internal/dto"
	"github.com/skillswap/backend/internal/service/requestservice"
	"github.com/skillswap/backend/pkg/auth"
	"github.com/skillswap/backend/pkg/utils"
)

type Service interface {
	SendRequest(ctx context.Context, senderID int64, in dto.SendSkillRequestDTO) (*domain.SkillRequest, error)
	AcceptRequest(ctx context.Context, receiverID, requestID int64) (*domain.SkillRequest, error)
	RejectRequest(ctx context.Context, receiverID, requestID int64) (*domain.SkillRequest, error)
	CancelRequest(ctx context.Context, senderID, requestID int64) (*domain.SkillRequest, error)
	MarkCompleted(ctx context.Context, userID, requestID int64) (*domain.SkillRequest, error)
	SentRequests(ctx context.Context, senderID int64) ([]domain.SkillRequest, error)
	ReceivedRequests(ctx context.Context, receiverID int64) ([]domain.SkillRequest, error)
}

type RequestHandler struct {
	requestService Service
}

func New(requestService Service) *RequestHandler {
	return &RequestHandler{
		requestService: requestService,
	}
}

// Send godoc
//
//	@Summary		Send a skill request
//	@Description	Open a request towards a skill's owner; at most one active request per skill is allowed.
//	@Tags			Requests
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SendSkillRequestDTO	true	"Skill request payload"
//	@Success		201		{object}	dto.SkillRequestResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or self request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Skill not found"
//	@Failure		409		{object}	utils.Response	"Active request already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/requests [post]
func (h *RequestHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	var req dto.SendSkillRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	request, err := h.requestService.SendRequest(r.Context(), userID, req)
	if err != nil {
		respondRequestError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponseDTO(request))
}

// Accept godoc
//
//	@Summary		Accept a pending skill request
//	@Tags			Requests
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Request ID"
//	@Success		200	{object}	dto.SkillRequestResponseDTO
//	@Failure		400	{object}	utils.Response	"Request not pending or expired"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the request receiver"
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/requests/{id}/accept [post]
func (h *RequestHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.requestService.AcceptRequest)
}

// Reject godoc
//
//	@Summary		Reject a pending skill request
//	@Tags			Requests
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Request ID"
//	@Success		200	{object}	dto.SkillRequestResponseDTO
//	@Failure		400	{object}	utils.Response	"Request not pending"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the request receiver"
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/requests/{id}/reject [post]
func (h *RequestHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.requestService.RejectRequest)
}

// Cancel godoc
//
//	@Summary		Cancel an own pending skill request
//	@Tags			Requests
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Request ID"
//	@Success		200	{object}	dto.SkillRequestResponseDTO
//	@Failure		400	{object}	utils.Response	"Request not pending"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not the request sender"
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/requests/{id}/cancel [post]
func (h *RequestHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.requestService.CancelRequest)
}

// Complete godoc
//
//	@Summary		Mark an accepted skill request as completed
//	@Tags			Requests
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Request ID"
//	@Success		200	{object}	dto.SkillRequestResponseDTO
//	@Failure		400	{object}	utils.Response	"Request not accepted"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Not a party to the request"
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/requests/{id}/complete [post]
func (h *RequestHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.requestService.MarkCompleted)
}

// Sent godoc
//
//	@Summary		List requests sent by the authenticated user
//	@Tags			Requests
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.SkillRequestResponseDTO
//	@Success		204	{object}	utils.Response	"No requests"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/requests/sent [get]
func (h *RequestHandler) Sent(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.requestService.SentRequests)
}

// Received godoc
//
//	@Summary		List requests received by the authenticated user
//	@Tags			Requests
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.SkillRequestResponseDTO
//	@Success		204	{object}	utils.Response	"No requests"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/requests/received [get]
func (h *RequestHandler) Received(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.requestService.ReceivedRequests)
}

func (h *RequestHandler) transition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, userID, requestID int64) (*domain.SkillRequest, error)) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	requestID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}

	request, err := op(r.Context(), userID, requestID)
	if err != nil {
		respondRequestError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(request))
}

func (h *RequestHandler) list(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, userID int64) ([]domain.SkillRequest, error)) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	requests, err := op(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch requests")
		return
	}
	if len(requests) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No requests found")
		return
	}

	response := make([]dto.SkillRequestResponseDTO, len(requests))
	for i, request := range requests {
		request := request
		response[i] = *toResponseDTO(&request)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func respondRequestError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, requestservice.ErrRequestNotFound),
		errors.Is(err, requestservice.ErrSkillNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, requestservice.ErrNotRequestOwner):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, requestservice.ErrDuplicateRequest):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, requestservice.ErrSelfRequest),
		errors.Is(err, requestservice.ErrRequestExpired),
		errors.Is(err, requestservice.ErrOperationNotAllowed):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toResponseDTO(r *domain.SkillRequest) *dto.SkillRequestResponseDTO {
	return &dto.SkillRequestResponseDTO{
		ID:         r.ID,
		SenderID:   r.SenderID,
		ReceiverID: r.ReceiverID,
		SkillID:    r.SkillID,
		Message:    r.Message,
		Status:     r.Status,
		ExpiresAt:  r.ExpiresAt,
		CreatedAt:  r.CreatedAt,
	}
}
