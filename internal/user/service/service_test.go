package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacinedev/mystore-backend/internal/apperror"
	"github.com/yacinedev/mystore-backend/internal/document"
	"github.com/yacinedev/mystore-backend/internal/user"
	mockuserservice "github.com/yacinedev/mystore-backend/internal/user/service/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var ErrUnexpected = errors.New("unexpected error")

func adminDoc() *document.Document {
	doc := document.Default([]byte("old-hash"))
	doc.User.Avatar = "/static/avatar.png"
	return doc
}

func passthroughUpdate(doc *document.Document) func(context.Context, func(*document.Document) error) (*document.Document, error) {
	return func(ctx context.Context, fn func(*document.Document) error) (*document.Document, error) {
		if err := fn(doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
}

func TestGetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDocuments := mockuserservice.NewMockDocuments(ctrl)
	mockDocuments.EXPECT().View(gomock.Any()).Return(adminDoc(), nil)

	service := NewService(mockDocuments, mockuserservice.NewMockPasswordManager(ctrl), zap.NewNop())

	profile, err := service.GetProfile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, document.DefaultAdminName, profile.Name)
	assert.Equal(t, document.DefaultAdminRole, profile.Role)
	assert.Equal(t, "/static/avatar.png", profile.Avatar)
}

func TestUpdateProfile(t *testing.T) {
	tests := []struct {
		name           string
		dto            user.UpdateProfileRequest
		expectedName   string
		expectedAvatar string
	}{
		{
			name:           "name and avatar",
			dto:            user.UpdateProfileRequest{Name: "New Name", Avatar: "/static/new.png"},
			expectedName:   "New Name",
			expectedAvatar: "/static/new.png",
		},
		{
			name:           "empty avatar keeps the current one",
			dto:            user.UpdateProfileRequest{Name: "New Name"},
			expectedName:   "New Name",
			expectedAvatar: "/static/avatar.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			doc := adminDoc()

			mockDocuments := mockuserservice.NewMockDocuments(ctrl)
			mockDocuments.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(passthroughUpdate(doc))

			service := NewService(mockDocuments, mockuserservice.NewMockPasswordManager(ctrl), zap.NewNop())

			profile, err := service.UpdateProfile(context.Background(), tt.dto)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedName, profile.Name)
			assert.Equal(t, tt.expectedAvatar, profile.Avatar)
			assert.Equal(t, document.DefaultAdminRole, doc.User.Role)
		})
	}
}

func TestChangePassword(t *testing.T) {
	dto := user.ChangePasswordRequest{CurrentPassword: "admin123", NewPassword: "much-stronger"}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		doc := adminDoc()

		mockPasswordManager := mockuserservice.NewMockPasswordManager(ctrl)
		mockPasswordManager.EXPECT().GenerateHashFromPassword([]byte(dto.NewPassword)).Return([]byte("new-hash"), nil)
		mockPasswordManager.EXPECT().CompareHashAndPassword([]byte("old-hash"), []byte(dto.CurrentPassword)).Return(nil)

		mockDocuments := mockuserservice.NewMockDocuments(ctrl)
		mockDocuments.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(passthroughUpdate(doc))

		service := NewService(mockDocuments, mockPasswordManager, zap.NewNop())

		err := service.ChangePassword(context.Background(), dto)

		require.NoError(t, err)
		assert.Equal(t, []byte("new-hash"), doc.User.PasswordHash)
		assert.NotNil(t, doc.User.PasswordChangedAt)
	})

	t.Run("wrong current password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		doc := adminDoc()

		mockPasswordManager := mockuserservice.NewMockPasswordManager(ctrl)
		mockPasswordManager.EXPECT().GenerateHashFromPassword(gomock.Any()).Return([]byte("new-hash"), nil)
		mockPasswordManager.EXPECT().CompareHashAndPassword(gomock.Any(), gomock.Any()).Return(errors.New("mismatch"))

		mockDocuments := mockuserservice.NewMockDocuments(ctrl)
		mockDocuments.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(passthroughUpdate(doc))

		service := NewService(mockDocuments, mockPasswordManager, zap.NewNop())

		err := service.ChangePassword(context.Background(), dto)

		require.ErrorIs(t, err, ErrWrongCurrentPassword)
		require.ErrorIs(t, err, apperror.ErrUnauthorized, "wrong current password is an auth failure")
		assert.Equal(t, []byte("old-hash"), doc.User.PasswordHash)
	})

	t.Run("hashing error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockPasswordManager := mockuserservice.NewMockPasswordManager(ctrl)
		mockPasswordManager.EXPECT().GenerateHashFromPassword(gomock.Any()).Return(nil, ErrUnexpected)

		service := NewService(mockuserservice.NewMockDocuments(ctrl), mockPasswordManager, zap.NewNop())

		err := service.ChangePassword(context.Background(), dto)

		require.ErrorIs(t, err, ErrUnexpected)
	})
}
