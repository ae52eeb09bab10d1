package repo

import (
	"github.com/skillswap/backend/internal/pg"
	bookingrepo "github.com/skillswap/backend/internal/repo/booking-repo"
	requestrepo "github.com/skillswap/backend/internal/repo/request-repo"
	skillrepo "github.com/skillswap/backend/internal/repo/skill-repo"
	transactionrepo "github.com/skillswap/backend/internal/repo/transaction-repo"
	userrepo "github.com/skillswap/backend/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo        *userrepo.Repository
	SkillRepo       *skillrepo.Repository
	RequestRepo     *requestrepo.Repository
	BookingRepo     *bookingrepo.Repository
	TransactionRepo *transactionrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		SkillRepo:       skillrepo.New(conn),
		RequestRepo:     requestrepo.New(conn, txManager),
		BookingRepo:     bookingrepo.New(conn, txManager),
		TransactionRepo: transactionrepo.New(conn, txManager),
	}
}
