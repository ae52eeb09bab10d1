package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/skillswap/backend/internal/domain"
	"github.com/skillswap/backend/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService)
	defer ctrl.Finish()
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		email         string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful registration",
			email:    "user@example.com",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "user@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
			},
			expectedUser: &domain.User{
				ID:           1,
				Email:        "user@example.com",
				PasswordHash: "hashedpassword",
			},
			expectedError: nil,
		},
		{
			name:     "Email already taken",
			email:    "user@example.com",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "user@example.com").Return(&domain.User{Email: "user@example.com"}, nil)
			},
			expectedUser:  nil,
			expectedError: ErrEmailTaken,
		},
		{
			name:     "Error finding user",
			email:    "user@example.com",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "user@example.com").Return(nil, errors.New("database error"))
			},
			expectedUser:  nil,
			expectedError: errors.New("database error"),
		},
		{
			name:     "Error hashing password",
			email:    "user@example.com",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "user@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("", errors.New("hashing error"))
			},
			expectedUser:  nil,
			expectedError: errors.New("hashing error"),
		},
		{
			name:     "Error creating user",
			email:    "user@example.com",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "user@example.com").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).Return(nil, errors.New("creation failed"))
			},
			expectedUser:  nil,
			expectedError: errors.New("creation failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), tt.email, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		email         string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful authentication",
			email:    "user@example.com",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "user@example.com").Return(&domain.User{
					ID:           1,
					Email:        "user@example.com",
					PasswordHash: "hashedpassword",
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
			expectedUser: &domain.User{
				ID:           1,
				Email:        "user@example.com",
				PasswordHash: "hashedpassword",
			},
			expectedError: nil,
		},
		{
			name:     "Invalid credentials - user not found",
			email:    "user@example.com",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "user@example.com").Return(nil, nil)
			},
			expectedUser:  nil,
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Invalid credentials - incorrect password",
			email:    "user@example.com",
			password: "wrongpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByEmail(context.Background(), "user@example.com").Return(&domain.User{
					ID:           1,
					Email:        "user@example.com",
					PasswordHash: "hashedpassword",
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "wrongpassword").Return(false)
			},
			expectedUser:  nil,
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Authenticate(context.Background(), tt.email, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)

	tests := []struct {
		name          string
		userID        int64
		prepareMock   func()
		expectedToken string
		expectedError error
	}{
		{
			name:   "Successful token generation",
			userID: 1,
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(int64(1), gomock.Any()).Return("generated-token", nil)
			},
			expectedToken: "generated-token",
			expectedError: nil,
		},
		{
			name:   "Error generating token",
			userID: 1,
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(int64(1), gomock.Any()).Return("", errors.New("can't generate token"))
			},
			expectedToken: "",
			expectedError: errors.New("can't generate token"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			token, err := service.GenerateToken(tt.userID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
