package pg

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/tangle-dev/tangle/internal/domain"
)

// aggregateQueryTimeout bounds the cross-table activity queries. Regular
// single-row lookups stay unbounded.
const aggregateQueryTimeout = 10 * time.Second

// OwnedThreads returns every thread authored by userId together with the
// ids of its direct children. Slim projection for the reply-tree resolver;
// no author/community/like enrichment.
func (s *Storage) OwnedThreads(userId domain.UserId) ([]domain.OwnedThread, error) {
	ctx, cancel := context.WithTimeout(context.Background(), aggregateQueryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
        SELECT
            t.id,
            COALESCE(array_agg(c.id ORDER BY c.id) FILTER (WHERE c.id IS NOT NULL), '{}')
        FROM threads t
        LEFT JOIN threads c ON c.parent_id = t.id
        WHERE t.author_id = $1
        GROUP BY t.id
        ORDER BY t.id
    `, userId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch owned threads: %w", err)
	}
	defer rows.Close()

	owned := []domain.OwnedThread{}
	for rows.Next() {
		var (
			t        domain.OwnedThread
			childIds pq.Int64Array
		)
		if err := rows.Scan(&t.Id, &childIds); err != nil {
			return nil, fmt.Errorf("failed to scan owned thread: %w", err)
		}
		t.ChildIds = childIds
		owned = append(owned, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating owned threads: %w", err)
	}

	return owned, nil
}

// ForeignReplies fetches fully enriched threads from the given id set,
// excluding those authored by excludeAuthor (self-replies).
func (s *Storage) ForeignReplies(ids []domain.ThreadId, excludeAuthor domain.UserId) ([]domain.Thread, error) {
	if len(ids) == 0 {
		return []domain.Thread{}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), aggregateQueryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, threadSelect+`
        WHERE t.id = ANY($1) AND t.author_id <> $2
        ORDER BY t.created_at DESC, t.id DESC
    `, pq.Array(ids), excludeAuthor)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch replies: %w", err)
	}
	defer rows.Close()

	threads, err := scanThreadRows(rows)
	if err != nil {
		return nil, err
	}
	if err := enrichThreads(ctx, s.db, threads); err != nil {
		return nil, err
	}

	if threads == nil {
		threads = []domain.Thread{}
	}
	return threads, nil
}

// CountForeignReplies runs the same predicate as ForeignReplies as an
// independent count, so the total stays correct if the list is ever capped
// or paginated upstream.
func (s *Storage) CountForeignReplies(ids []domain.ThreadId, excludeAuthor domain.UserId) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), aggregateQueryTimeout)
	defer cancel()

	var count int
	err := s.db.QueryRowContext(ctx, `
        SELECT COUNT(*)
        FROM threads
        WHERE id = ANY($1) AND author_id <> $2
    `, pq.Array(ids), excludeAuthor).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count replies: %w", err)
	}
	return count, nil
}

// LikesForThreads fetches active like events targeting the given threads,
// excluding the owner's own likes, denormalized with the liking user and a
// target-thread preview in a single query.
func (s *Storage) LikesForThreads(threadIds []domain.ThreadId, excludeActor domain.UserId) ([]domain.LikeEvent, error) {
	if len(threadIds) == 0 {
		return []domain.LikeEvent{}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), aggregateQueryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
        SELECT
            l.id, l.created_at,
            actor.ext_id, actor.name, actor.image,
            t.id, t.text, t.parent_id,
            author.name, author.image
        FROM likes l
        JOIN users actor ON l.user_id = actor.id
        JOIN threads t ON l.thread_id = t.id
        JOIN users author ON t.author_id = author.id
        WHERE l.thread_id = ANY($1) AND l.user_id <> $2 AND l.liked
        ORDER BY l.created_at DESC, l.id DESC
    `, pq.Array(threadIds), excludeActor)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch likes: %w", err)
	}
	defer rows.Close()

	likes := []domain.LikeEvent{}
	for rows.Next() {
		var (
			ev       domain.LikeEvent
			parentId sql.NullInt64
		)
		if err := rows.Scan(
			&ev.LikeId, &ev.CreatedAt,
			&ev.Actor.ExtId, &ev.Actor.Name, &ev.Actor.Image,
			&ev.Thread.Id, &ev.Thread.Text, &parentId,
			&ev.Thread.Author.Name, &ev.Thread.Author.Image,
		); err != nil {
			return nil, fmt.Errorf("failed to scan like event: %w", err)
		}
		if parentId.Valid {
			pid := parentId.Int64
			ev.Thread.ParentId = &pid
		}
		likes = append(likes, ev)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating like events: %w", err)
	}

	return likes, nil
}
