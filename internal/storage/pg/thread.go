package pg

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tangle-dev/tangle/internal/domain"
	internal_errors "github.com/tangle-dev/tangle/internal/errors"
)

func (s *Storage) CreateThread(creation domain.ThreadCreationData) (domain.ThreadId, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return -1, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Replying: the parent must exist so parent_id stays consistent with
	// the derived children list.
	if creation.ParentId != nil {
		var exists bool
		err = tx.QueryRow("SELECT EXISTS(SELECT 1 FROM threads WHERE id = $1)", *creation.ParentId).Scan(&exists)
		if err != nil {
			return -1, fmt.Errorf("failed to validate parent thread: %w", err)
		}
		if !exists {
			return -1, &internal_errors.ErrorWithStatusCode{
				Message:    "Parent thread not found",
				StatusCode: http.StatusNotFound,
			}
		}
	}

	var id domain.ThreadId
	err = tx.QueryRow(`
        INSERT INTO threads (author_id, text, parent_id, community_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `, creation.Author, creation.Text, creation.ParentId, creation.Community).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return -1, &internal_errors.ErrorWithStatusCode{
				Message:    "Author or community not found",
				StatusCode: http.StatusNotFound,
			}
		}
		return -1, fmt.Errorf("failed to insert thread: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return -1, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return id, nil
}

func (s *Storage) GetThread(id domain.ThreadId) (domain.Thread, error) {
	rows, err := s.db.Query(threadSelect+"WHERE t.id = $1", id)
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to fetch thread: %w", err)
	}
	defer rows.Close()

	threads, err := scanThreadRows(rows)
	if err != nil {
		return domain.Thread{}, err
	}
	if len(threads) == 0 {
		return domain.Thread{}, &internal_errors.ErrorWithStatusCode{
			Message:    "Thread not found",
			StatusCode: http.StatusNotFound,
		}
	}

	if err := enrichThreads(context.Background(), s.db, threads); err != nil {
		return domain.Thread{}, err
	}
	return threads[0], nil
}

// DeleteThread removes a thread; replies and likes go with it via cascade.
func (s *Storage) DeleteThread(id domain.ThreadId) error {
	res, err := s.db.Exec("DELETE FROM threads WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete thread: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return &internal_errors.ErrorWithStatusCode{
			Message:    "Thread not found",
			StatusCode: http.StatusNotFound,
		}
	}
	return nil
}

// ThreadsByAuthor returns the top-level threads authored by userId, newest
// first, enriched with community, one level of children and likes. The
// user's replies live under their parents, not here.
func (s *Storage) ThreadsByAuthor(userId domain.UserId) ([]domain.Thread, error) {
	rows, err := s.db.Query(threadSelect+`
        WHERE t.author_id = $1 AND t.parent_id IS NULL
        ORDER BY t.created_at DESC, t.id DESC
    `, userId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user threads: %w", err)
	}
	defer rows.Close()

	threads, err := scanThreadRows(rows)
	if err != nil {
		return nil, err
	}
	if err := enrichThreads(context.Background(), s.db, threads); err != nil {
		return nil, err
	}

	if threads == nil {
		threads = []domain.Thread{}
	}
	return threads, nil
}
