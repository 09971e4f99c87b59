package service

import "github.com/tangle-dev/tangle/internal/domain"

type CommunityService interface {
	Create(extId domain.ExternalId, name, image string) (domain.Community, error)
	Get(extId domain.ExternalId) (domain.Community, error)
	AddMember(communityExtId, userExtId domain.ExternalId) error
}

type CommunityStorage interface {
	CreateCommunity(extId domain.ExternalId, name, image string) (domain.Community, error)
	GetCommunity(extId domain.ExternalId) (domain.Community, error)
	GetUserByExtId(extId domain.ExternalId) (domain.User, error)
	AddCommunityMember(communityId domain.CommunityId, userId domain.UserId) error
}

type Community struct {
	storage CommunityStorage
}

func NewCommunity(storage CommunityStorage) CommunityService {
	return &Community{storage}
}

func (s *Community) Create(extId domain.ExternalId, name, image string) (domain.Community, error) {
	return s.storage.CreateCommunity(extId, name, image)
}

func (s *Community) Get(extId domain.ExternalId) (domain.Community, error) {
	return s.storage.GetCommunity(extId)
}

func (s *Community) AddMember(communityExtId, userExtId domain.ExternalId) error {
	community, err := s.storage.GetCommunity(communityExtId)
	if err != nil {
		return err
	}
	user, err := s.storage.GetUserByExtId(userExtId)
	if err != nil {
		return err
	}
	return s.storage.AddCommunityMember(community.Id, user.Id)
}
