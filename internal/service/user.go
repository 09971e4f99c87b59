package service

import (
	"strings"

	"github.com/tangle-dev/tangle/internal/domain"
)

type UserService interface {
	Get(extId domain.ExternalId) (domain.User, error)
	Upsert(upd domain.UserUpdate) (domain.User, error)
	Threads(extId domain.ExternalId) ([]domain.Thread, error)
}

type UserStorage interface {
	GetUserByExtId(extId domain.ExternalId) (domain.User, error)
	UpsertUser(upd domain.UserUpdate) (domain.User, error)
	ThreadsByAuthor(userId domain.UserId) ([]domain.Thread, error)
}

type User struct {
	storage UserStorage
}

func NewUser(storage UserStorage) UserService {
	return &User{storage}
}

func (s *User) Get(extId domain.ExternalId) (domain.User, error) {
	return s.storage.GetUserByExtId(extId)
}

func (s *User) Upsert(upd domain.UserUpdate) (domain.User, error) {
	// Usernames are case-insensitive; stored lowercased.
	upd.Username = strings.ToLower(upd.Username)
	return s.storage.UpsertUser(upd)
}

// Threads returns the user's authored threads, enriched for display.
func (s *User) Threads(extId domain.ExternalId) ([]domain.Thread, error) {
	user, err := s.storage.GetUserByExtId(extId)
	if err != nil {
		return nil, err
	}
	return s.storage.ThreadsByAuthor(user.Id)
}
