package service

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/tangle-dev/tangle/internal/domain"
	internal_errors "github.com/tangle-dev/tangle/internal/errors"
)

type ThreadService interface {
	Create(authorExtId domain.ExternalId, text string, parentId *domain.ThreadId, communityExtId *domain.ExternalId) (domain.ThreadId, error)
	Get(id domain.ThreadId) (domain.Thread, error)
	Delete(id domain.ThreadId) error
}

type ThreadStorage interface {
	GetUserByExtId(extId domain.ExternalId) (domain.User, error)
	GetCommunity(extId domain.ExternalId) (domain.Community, error)
	CreateThread(creation domain.ThreadCreationData) (domain.ThreadId, error)
	GetThread(id domain.ThreadId) (domain.Thread, error)
	DeleteThread(id domain.ThreadId) error
}

type ThreadValidator interface {
	Text(text string) error
}

type Thread struct {
	storage   ThreadStorage
	validator ThreadValidator
}

func NewThread(storage ThreadStorage, validator ThreadValidator) ThreadService {
	return &Thread{storage, validator}
}

func (s *Thread) Create(authorExtId domain.ExternalId, text string, parentId *domain.ThreadId, communityExtId *domain.ExternalId) (domain.ThreadId, error) {
	if err := s.validator.Text(text); err != nil {
		return -1, err
	}

	author, err := s.storage.GetUserByExtId(authorExtId)
	if err != nil {
		return -1, err
	}

	creation := domain.ThreadCreationData{
		Author:   author.Id,
		Text:     text,
		ParentId: parentId,
	}
	if communityExtId != nil {
		community, err := s.storage.GetCommunity(*communityExtId)
		if err != nil {
			return -1, err
		}
		creation.Community = &community.Id
	}

	return s.storage.CreateThread(creation)
}

func (s *Thread) Get(id domain.ThreadId) (domain.Thread, error) {
	return s.storage.GetThread(id)
}

func (s *Thread) Delete(id domain.ThreadId) error {
	return s.storage.DeleteThread(id)
}

// TextValidator bounds thread text: non-blank, at most MaxLen runes.
type TextValidator struct {
	MaxLen int
}

func (v *TextValidator) Text(text string) error {
	if strings.TrimSpace(text) == "" {
		return &internal_errors.ErrorWithStatusCode{
			Message:    "Thread text is empty",
			StatusCode: http.StatusBadRequest,
		}
	}
	if utf8.RuneCountInString(text) > v.MaxLen {
		return &internal_errors.ErrorWithStatusCode{
			Message:    "Thread text is too long",
			StatusCode: http.StatusBadRequest,
		}
	}
	return nil
}
