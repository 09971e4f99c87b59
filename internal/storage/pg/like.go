package pg

import (
	"fmt"
	"net/http"

	"github.com/tangle-dev/tangle/internal/domain"
	internal_errors "github.com/tangle-dev/tangle/internal/errors"
)

// ToggleLike flips the liked flag for (userId, threadId), inserting the row
// on first use. Returns the new liked state. The UNIQUE(user_id, thread_id)
// constraint keeps it at one row per pair.
func (s *Storage) ToggleLike(userId domain.UserId, threadId domain.ThreadId) (bool, error) {
	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM threads WHERE id = $1)", threadId).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to validate thread: %w", err)
	}
	if !exists {
		return false, &internal_errors.ErrorWithStatusCode{
			Message:    "Thread not found",
			StatusCode: http.StatusNotFound,
		}
	}

	var liked bool
	err = s.db.QueryRow(`
        INSERT INTO likes (user_id, thread_id, liked)
        VALUES ($1, $2, TRUE)
        ON CONFLICT (user_id, thread_id) DO UPDATE SET liked = NOT likes.liked
        RETURNING liked
    `, userId, threadId).Scan(&liked)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, &internal_errors.ErrorWithStatusCode{
				Message:    "User not found",
				StatusCode: http.StatusNotFound,
			}
		}
		return false, fmt.Errorf("failed to toggle like: %w", err)
	}
	return liked, nil
}
