package service

import (
	"context"
	"time"

	"github.com/yacinedev/mystore-backend/internal/apperror"
	"github.com/yacinedev/mystore-backend/internal/auth"
	"github.com/yacinedev/mystore-backend/internal/document"
	"go.uber.org/zap"
)

var ErrInvalidPassword = apperror.ErrUnauthorized

// failedLoginDelay slows down credential guessing. Informal, but it matches
// the latency of a bcrypt comparison so failures are not obviously cheaper
// than successes.
const failedLoginDelay = 300 * time.Millisecond

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockauthservice
type Documents interface {
	View(ctx context.Context) (*document.Document, error)
}

type TokenManager interface {
	GenerateToken() (string, error)
}

type PasswordManager interface {
	CompareHashAndPassword(hashedPassword []byte, password []byte) error
}

type service struct {
	documents       Documents
	tokenManager    TokenManager
	passwordManager PasswordManager
	logger          *zap.Logger
}

func NewService(
	documents Documents,
	tokenManager TokenManager,
	passwordManager PasswordManager,
	logger *zap.Logger,
) *service {
	return &service{
		documents:       documents,
		tokenManager:    tokenManager,
		passwordManager: passwordManager,
		logger:          logger,
	}
}

func (s *service) Login(ctx context.Context, dto auth.LoginRequest) (*auth.LoginResponse, error) {
	doc, err := s.documents.View(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.passwordManager.CompareHashAndPassword(doc.User.PasswordHash, []byte(dto.Password)); err != nil {
		time.Sleep(failedLoginDelay)
		return nil, ErrInvalidPassword
	}

	token, err := s.tokenManager.GenerateToken()
	if err != nil {
		s.logger.Error("unexpected error when generating jwt token", zap.Error(err))
		return nil, err
	}

	return &auth.LoginResponse{
		Token: token,
		User: auth.AdminProfile{
			Name:   doc.User.Name,
			Role:   doc.User.Role,
			Avatar: doc.User.Avatar,
		},
	}, nil
}
