package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/skillswap/backend/internal/config"
	"github.com/skillswap/backend/internal/notifier"
	"github.com/skillswap/backend/internal/pg"
	"github.com/skillswap/backend/internal/repo"
	"github.com/skillswap/backend/pkg/clients"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	txManager := pg.NewMockTXManager(ctrl)
	repos := repo.New(mockDB, txManager)

	cfg := &config.Config{MailGatewayAddress: "http://localhost:8082"}
	publisher := notifier.New(cfg, clients.NewMockHTTPClientI(ctrl))

	services := New(repos, txManager, publisher)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.RequestService)
	assert.NotNil(t, services.BookingService)
	assert.NotNil(t, services.WalletService)
	assert.NotNil(t, services.Requests)
}
