package service

import (
	"context"
	"time"

	"github.com/yacinedev/mystore-backend/internal/apperror"
	"github.com/yacinedev/mystore-backend/internal/document"
	"github.com/yacinedev/mystore-backend/internal/user"
	"go.uber.org/zap"
)

// A wrong current password is an authentication failure like a failed login,
// so it surfaces as 401.
var ErrWrongCurrentPassword = apperror.ErrUnauthorized

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=mockuserservice
type Documents interface {
	View(ctx context.Context) (*document.Document, error)
	Update(ctx context.Context, fn func(doc *document.Document) error) (*document.Document, error)
}

type PasswordManager interface {
	GenerateHashFromPassword(password []byte) ([]byte, error)
	CompareHashAndPassword(hashedPassword []byte, password []byte) error
}

type service struct {
	documents       Documents
	passwordManager PasswordManager
	logger          *zap.Logger
}

func NewService(documents Documents, passwordManager PasswordManager, logger *zap.Logger) *service {
	return &service{
		documents:       documents,
		passwordManager: passwordManager,
		logger:          logger,
	}
}

func profileDto(u document.User) *user.Profile {
	return &user.Profile{
		Name:   u.Name,
		Role:   u.Role,
		Avatar: u.Avatar,
	}
}

func (s *service) GetProfile(ctx context.Context) (*user.Profile, error) {
	doc, err := s.documents.View(ctx)
	if err != nil {
		return nil, err
	}

	return profileDto(doc.User), nil
}

func (s *service) UpdateProfile(ctx context.Context, dto user.UpdateProfileRequest) (*user.Profile, error) {
	doc, err := s.documents.Update(ctx, func(doc *document.Document) error {
		doc.User.Name = dto.Name
		if dto.Avatar != "" {
			doc.User.Avatar = dto.Avatar
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return profileDto(doc.User), nil
}

// ChangePassword verifies the current password before storing the new hash.
// The check runs inside the update cycle so a retry after a version conflict
// re-verifies against the fresh document.
func (s *service) ChangePassword(ctx context.Context, dto user.ChangePasswordRequest) error {
	newHash, err := s.passwordManager.GenerateHashFromPassword([]byte(dto.NewPassword))
	if err != nil {
		return err
	}

	_, err = s.documents.Update(ctx, func(doc *document.Document) error {
		if err := s.passwordManager.CompareHashAndPassword(doc.User.PasswordHash, []byte(dto.CurrentPassword)); err != nil {
			return ErrWrongCurrentPassword
		}

		now := time.Now().UTC()
		doc.User.PasswordHash = newHash
		doc.User.PasswordChangedAt = &now

		return nil
	})

	return err
}
