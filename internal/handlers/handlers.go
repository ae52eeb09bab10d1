package handlers

import (
	"net/http"

	_ "github.com/skillswap/backend/docs"
	authhandlers "github.com/skillswap/backend/internal/handlers/auth"
	bookinghandlers "github.com/skillswap/backend/internal/handlers/bookings"
	requesthandlers "github.com/skillswap/backend/internal/handlers/requests"
	wallethandlers "github.com/skillswap/backend/internal/handlers/wallet"
	"github.com/skillswap/backend/internal/service"
	"github.com/skillswap/backend/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type RequestHandler interface {
	Send(w http.ResponseWriter, r *http.Request)
	Accept(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	Sent(w http.ResponseWriter, r *http.Request)
	Received(w http.ResponseWriter, r *http.Request)
}

type BookingHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Confirm(w http.ResponseWriter, r *http.Request)
	Start(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Dispute(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	AsRequester(w http.ResponseWriter, r *http.Request)
	AsProvider(w http.ResponseWriter, r *http.Request)
	Upcoming(w http.ResponseWriter, r *http.Request)
	Past(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	GetTransaction(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	RequestHandler RequestHandler
	BookingHandler BookingHandler
	WalletHandler  WalletHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		RequestHandler: requesthandlers.New(s.RequestService),
		BookingHandler: bookinghandlers.New(s.BookingService),
		WalletHandler:  wallethandlers.New(s.WalletService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Route("/requests", func(r chi.Router) {
				r.Post("/", h.RequestHandler.Send)
				r.Get("/sent", h.RequestHandler.Sent)
				r.Get("/received", h.RequestHandler.Received)
				r.Post("/{id}/accept", h.RequestHandler.Accept)
				r.Post("/{id}/reject", h.RequestHandler.Reject)
				r.Post("/{id}/cancel", h.RequestHandler.Cancel)
				r.Post("/{id}/complete", h.RequestHandler.Complete)
			})

			r.Route("/bookings", func(r chi.Router) {
				r.Post("/", h.BookingHandler.Create)
				r.Get("/requested", h.BookingHandler.AsRequester)
				r.Get("/provided", h.BookingHandler.AsProvider)
				r.Get("/upcoming", h.BookingHandler.Upcoming)
				r.Get("/past", h.BookingHandler.Past)
				r.Get("/{id}", h.BookingHandler.Get)
				r.Post("/{id}/confirm", h.BookingHandler.Confirm)
				r.Post("/{id}/start", h.BookingHandler.Start)
				r.Post("/{id}/complete", h.BookingHandler.Complete)
				r.Post("/{id}/cancel", h.BookingHandler.Cancel)
				r.Post("/{id}/dispute", h.BookingHandler.Dispute)
			})

			r.Route("/wallet", func(r chi.Router) {
				r.Get("/balance", h.WalletHandler.GetBalance)
				r.Post("/deposit", h.WalletHandler.Deposit)
				r.Post("/withdraw", h.WalletHandler.Withdraw)
				r.Get("/transactions", h.WalletHandler.GetTransactions)
				r.Get("/transactions/{reference}", h.WalletHandler.GetTransaction)
			})
		})
	})

	return r
}
