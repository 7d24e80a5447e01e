package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "recipeshare/internal/errors"
	"recipeshare/internal/model"
)

func TestProfileService_Get(t *testing.T) {
	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, Email: "test@example.com"}, nil)

		user, err := NewProfileService(mockRepo).Get(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, userID, user.ID)
	})

	t.Run("missing", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		_, err := NewProfileService(mockRepo).Get(context.Background(), userID)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestProfileService_UpdateName(t *testing.T) {
	userID := uuid.New()

	t.Run("trims and saves", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		user, err := NewProfileService(mockRepo).UpdateName(context.Background(), userID, "  Sari  ")
		assert.NoError(t, err)
		assert.Equal(t, "Sari", user.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		mockRepo := new(MockUserRepository)

		_, err := NewProfileService(mockRepo).UpdateName(context.Background(), userID, "   ")
		var validationErr *apperrors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		mockRepo.AssertNotCalled(t, "Update")
	})
}

func TestProfileService_UpdatePhoto(t *testing.T) {
	userID := uuid.New()

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	user, err := NewProfileService(mockRepo).UpdatePhoto(context.Background(), userID, "/uploads/abc.png")
	assert.NoError(t, err)
	assert.Equal(t, "/uploads/abc.png", user.Photo)
	mockRepo.AssertExpectations(t)
}
