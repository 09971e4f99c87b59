package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/tangle-dev/tangle/internal/domain"
	internal_errors "github.com/tangle-dev/tangle/internal/errors"
)

// GetUserByExtId resolves the external account identifier to the full user
// row, including community memberships.
func (s *Storage) GetUserByExtId(extId domain.ExternalId) (domain.User, error) {
	var user domain.User
	err := s.db.QueryRow(`
        SELECT id, ext_id, username, name, bio, image, onboarded, created_at
        FROM users
        WHERE ext_id = $1
    `, extId).Scan(
		&user.Id, &user.ExtId, &user.Username, &user.Name,
		&user.Bio, &user.Image, &user.Onboarded, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{
				Message:    "User not found",
				StatusCode: http.StatusNotFound,
			}
		}
		return domain.User{}, fmt.Errorf("failed to fetch user: %w", err)
	}

	rows, err := s.db.Query(`
        SELECT c.id, c.ext_id, c.name, c.image, c.created_at
        FROM communities c
        JOIN community_members m ON m.community_id = c.id
        WHERE m.user_id = $1
        ORDER BY c.id
    `, user.Id)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to fetch user communities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.Community
		if err := rows.Scan(&c.Id, &c.ExtId, &c.Name, &c.Image, &c.CreatedAt); err != nil {
			return domain.User{}, fmt.Errorf("failed to scan community: %w", err)
		}
		user.Communities = append(user.Communities, c)
	}
	if err = rows.Err(); err != nil {
		return domain.User{}, fmt.Errorf("error iterating communities: %w", err)
	}

	return user, nil
}

// UpsertUser creates or updates a profile keyed by the immutable external
// id and marks the user as onboarded.
func (s *Storage) UpsertUser(upd domain.UserUpdate) (domain.User, error) {
	var user domain.User
	err := s.db.QueryRow(`
        INSERT INTO users (ext_id, username, name, bio, image, onboarded)
        VALUES ($1, $2, $3, $4, $5, TRUE)
        ON CONFLICT (ext_id) DO UPDATE SET
            username = EXCLUDED.username,
            name = EXCLUDED.name,
            bio = EXCLUDED.bio,
            image = EXCLUDED.image,
            onboarded = TRUE
        RETURNING id, ext_id, username, name, bio, image, onboarded, created_at
    `, upd.ExtId, upd.Username, upd.Name, upd.Bio, upd.Image).Scan(
		&user.Id, &user.ExtId, &user.Username, &user.Name,
		&user.Bio, &user.Image, &user.Onboarded, &user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{
				Message:    "Username already taken",
				StatusCode: http.StatusConflict,
			}
		}
		return domain.User{}, fmt.Errorf("failed to upsert user: %w", err)
	}
	return user, nil
}
