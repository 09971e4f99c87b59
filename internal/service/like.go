package service

import "github.com/tangle-dev/tangle/internal/domain"

type LikeService interface {
	Toggle(userExtId domain.ExternalId, threadId domain.ThreadId) (bool, error)
}

type LikeStorage interface {
	GetUserByExtId(extId domain.ExternalId) (domain.User, error)
	ToggleLike(userId domain.UserId, threadId domain.ThreadId) (bool, error)
}

type Like struct {
	storage LikeStorage
}

func NewLike(storage LikeStorage) LikeService {
	return &Like{storage}
}

// Toggle flips the user's like on a thread and returns the confirmed state.
// The client may flip optimistically; this is the reconciliation source.
func (s *Like) Toggle(userExtId domain.ExternalId, threadId domain.ThreadId) (bool, error) {
	user, err := s.storage.GetUserByExtId(userExtId)
	if err != nil {
		return false, err
	}
	return s.storage.ToggleLike(user.Id, threadId)
}
