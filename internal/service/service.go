package service

import (
	"github.com/skillswap/backend/internal/handlers/auth"
	"github.com/skillswap/backend/internal/handlers/bookings"
	"github.com/skillswap/backend/internal/handlers/requests"
	"github.com/skillswap/backend/internal/handlers/wallet"

	pkgauth "github.com/skillswap/backend/pkg/auth"

	"github.com/skillswap/backend/internal/notifier"
	"github.com/skillswap/backend/internal/pg"
	"github.com/skillswap/backend/internal/repo"
	authservice "github.com/skillswap/backend/internal/service/authservice"
	bookingservice "github.com/skillswap/backend/internal/service/bookingservice"
	requestservice "github.com/skillswap/backend/internal/service/requestservice"
	walletservice "github.com/skillswap/backend/internal/service/walletservice"
)

type Services struct {
	AuthService    auth.Service
	RequestService requests.Service
	BookingService bookings.Service
	WalletService  wallet.Service

	// Requests retains the concrete request service for the expiry sweeper.
	Requests *requestservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, publisher *notifier.Service) *Services {
	walletService := walletservice.New(repo.TransactionRepo, repo.BookingRepo, txManager, publisher)
	requestService := requestservice.New(repo.RequestRepo, repo.SkillRepo, publisher)
	bookingService := bookingservice.New(repo.BookingRepo, repo.RequestRepo, repo.SkillRepo, walletService, txManager, publisher)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:    authService,
		RequestService: requestService,
		BookingService: bookingService,
		WalletService:  walletService,
		Requests:       requestService,
	}
}
