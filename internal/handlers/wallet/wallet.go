package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/skillswap/backend/internal/domain"
	"github.com/skillswap/backend/internal/dto"
	"github.com/skillswap/backend/internal/service/walletservice"
	"github.com/skillswap/backend/pkg/auth"
	"github.com/skillswap/backend/pkg/utils"
)

type Service interface {
	Deposit(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.Transaction, error)
	Withdraw(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.Transaction, error)
	GetWalletBalance(ctx context.Context, userID int64) (decimal.Decimal, error)
	GetNetWalletFlow(ctx context.Context, userID int64) (decimal.Decimal, error)
	GetUserTransactions(ctx context.Context, userID int64) ([]domain.Transaction, error)
	GetTransactionByReference(ctx context.Context, reference string) (*domain.Transaction, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current wallet balance
//	@Description	Balance is derived by folding the user's transaction history, never read from a stored field.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletBalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	var balance, netFlow decimal.Decimal
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		balance, err = h.walletService.GetWalletBalance(ctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		netFlow, err = h.walletService.GetNetWalletFlow(ctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletBalanceResponseDTO{
		Balance: balance.StringFixed(2),
		NetFlow: netFlow.StringFixed(2),
	})
}

// Deposit godoc
//
//	@Summary		Deposit funds into the wallet
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WalletAmountRequestDTO	true	"Deposit amount"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/deposit [post]
func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.walletOp(w, r, h.walletService.Deposit)
}

// Withdraw godoc
//
//	@Summary		Withdraw funds from the wallet
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WalletAmountRequestDTO	true	"Withdrawal amount"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.walletOp(w, r, h.walletService.Withdraw)
}

// GetTransactions godoc
//
//	@Summary		List the user's transaction history
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Success		204	{object}	utils.Response	"No transactions"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	transactions, err := h.walletService.GetUserTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No transactions found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, t := range transactions {
		t := t
		response[i] = *toResponseDTO(&t)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetTransaction godoc
//
//	@Summary		Look up a single transaction by its reference
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Param			reference	path		string	true	"Transaction reference"
//	@Success		200			{object}	dto.TransactionResponseDTO
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Transaction not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/transactions/{reference} [get]
func (h *WalletHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")

	transaction, err := h.walletService.GetTransactionByReference(r.Context(), reference)
	if err != nil {
		if errors.Is(err, walletservice.ErrTransactionNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(transaction))
}

func (h *WalletHandler) walletOp(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, userID int64, amount decimal.Decimal) (*domain.Transaction, error)) {
	userID := r.Context().Value(auth.UserIDKey).(int64)

	var req dto.WalletAmountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid amount")
		return
	}

	transaction, err := op(r.Context(), userID, amount)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, walletservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(transaction))
}

func toResponseDTO(t *domain.Transaction) *dto.TransactionResponseDTO {
	return &dto.TransactionResponseDTO{
		ID:        t.ID,
		BookingID: t.BookingID,
		PayerID:   t.PayerID,
		PayeeID:   t.PayeeID,
		Amount:    t.Amount.StringFixed(2),
		NetAmount: t.NetAmount.StringFixed(2),
		Currency:  t.Currency,
		Type:      t.Type,
		Status:    t.Status,
		Escrow:    t.Escrow,
		Reference: t.Reference,
		CreatedAt: t.CreatedAt,
	}
}
