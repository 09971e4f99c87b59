package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangle-dev/tangle/internal/domain"
)

type MockLikeStorage struct {
	GetUserByExtIdFunc func(extId domain.ExternalId) (domain.User, error)
	ToggleLikeFunc     func(userId domain.UserId, threadId domain.ThreadId) (bool, error)
}

func (m *MockLikeStorage) GetUserByExtId(extId domain.ExternalId) (domain.User, error) {
	if m.GetUserByExtIdFunc != nil {
		return m.GetUserByExtIdFunc(extId)
	}
	return domain.User{Id: 1, ExtId: extId}, nil
}

func (m *MockLikeStorage) ToggleLike(userId domain.UserId, threadId domain.ThreadId) (bool, error) {
	if m.ToggleLikeFunc != nil {
		return m.ToggleLikeFunc(userId, threadId)
	}
	return true, nil
}

func TestLikeToggle(t *testing.T) {
	t.Run("resolves user and returns confirmed state", func(t *testing.T) {
		storage := &MockLikeStorage{
			GetUserByExtIdFunc: func(extId domain.ExternalId) (domain.User, error) {
				return domain.User{Id: 9, ExtId: extId}, nil
			},
			ToggleLikeFunc: func(userId domain.UserId, threadId domain.ThreadId) (bool, error) {
				assert.Equal(t, domain.UserId(9), userId)
				assert.Equal(t, domain.ThreadId(3), threadId)
				return false, nil // second toggle unlikes
			},
		}
		service := NewLike(storage)

		liked, err := service.Toggle("user_x", 3)

		require.NoError(t, err)
		assert.False(t, liked)
	})

	t.Run("unknown user propagates", func(t *testing.T) {
		mockErr := errors.New("not found")
		storage := &MockLikeStorage{
			GetUserByExtIdFunc: func(extId domain.ExternalId) (domain.User, error) {
				return domain.User{}, mockErr
			},
		}
		service := NewLike(storage)

		_, err := service.Toggle("ghost", 3)

		require.ErrorIs(t, err, mockErr)
	})
}
