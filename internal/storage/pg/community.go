package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/tangle-dev/tangle/internal/domain"
	internal_errors "github.com/tangle-dev/tangle/internal/errors"
)

func (s *Storage) CreateCommunity(extId domain.ExternalId, name, image string) (domain.Community, error) {
	var c domain.Community
	err := s.db.QueryRow(`
        INSERT INTO communities (ext_id, name, image)
        VALUES ($1, $2, $3)
        RETURNING id, ext_id, name, image, created_at
    `, extId, name, image).Scan(&c.Id, &c.ExtId, &c.Name, &c.Image, &c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Community{}, &internal_errors.ErrorWithStatusCode{
				Message:    "Community already exists",
				StatusCode: http.StatusConflict,
			}
		}
		return domain.Community{}, fmt.Errorf("failed to create community: %w", err)
	}
	return c, nil
}

func (s *Storage) GetCommunity(extId domain.ExternalId) (domain.Community, error) {
	var c domain.Community
	err := s.db.QueryRow(`
        SELECT id, ext_id, name, image, created_at
        FROM communities
        WHERE ext_id = $1
    `, extId).Scan(&c.Id, &c.ExtId, &c.Name, &c.Image, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Community{}, &internal_errors.ErrorWithStatusCode{
				Message:    "Community not found",
				StatusCode: http.StatusNotFound,
			}
		}
		return domain.Community{}, fmt.Errorf("failed to fetch community: %w", err)
	}
	return c, nil
}

func (s *Storage) AddCommunityMember(communityId domain.CommunityId, userId domain.UserId) error {
	_, err := s.db.Exec(`
        INSERT INTO community_members (community_id, user_id)
        VALUES ($1, $2)
        ON CONFLICT DO NOTHING
    `, communityId, userId)
	if err != nil {
		if isForeignKeyViolation(err) {
			return &internal_errors.ErrorWithStatusCode{
				Message:    "Community or user not found",
				StatusCode: http.StatusNotFound,
			}
		}
		return fmt.Errorf("failed to add community member: %w", err)
	}
	return nil
}
