package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/tangle-dev/tangle/internal/domain"
)

// threadSelect is the base projection shared by every enriched thread query:
// the thread row, its author, and its (optional) community.
const threadSelect = `
    SELECT
        t.id, t.text, t.parent_id, t.created_at,
        u.id, u.ext_id, u.username, u.name, u.image,
        c.id, c.ext_id, c.name, c.image, c.created_at
    FROM threads t
    JOIN users u ON t.author_id = u.id
    LEFT JOIN communities c ON t.community_id = c.id
`

// scanThreadRows consumes rows produced by a threadSelect query.
func scanThreadRows(rows *sql.Rows) ([]domain.Thread, error) {
	var threads []domain.Thread
	for rows.Next() {
		var (
			t        domain.Thread
			parentId sql.NullInt64
			cId      sql.NullInt64
			cExtId   sql.NullString
			cName    sql.NullString
			cImage   sql.NullString
			cCreated sql.NullTime
		)
		if err := rows.Scan(
			&t.Id, &t.Text, &parentId, &t.CreatedAt,
			&t.Author.Id, &t.Author.ExtId, &t.Author.Username, &t.Author.Name, &t.Author.Image,
			&cId, &cExtId, &cName, &cImage, &cCreated,
		); err != nil {
			return nil, fmt.Errorf("failed to scan thread: %w", err)
		}
		if parentId.Valid {
			pid := parentId.Int64
			t.ParentId = &pid
		}
		if cId.Valid {
			t.Community = &domain.Community{
				Id:        cId.Int64,
				ExtId:     cExtId.String,
				Name:      cName.String,
				Image:     cImage.String,
				CreatedAt: cCreated.Time,
			}
		}
		t.Children = []*domain.Thread{}
		t.Likes = []domain.Like{}
		threads = append(threads, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating threads: %w", err)
	}
	return threads, nil
}

// threadIndex builds the id map used by enrichment helpers. Build it only
// after the slice is fully populated so the pointers stay stable.
func threadIndex(threads []domain.Thread) (map[domain.ThreadId]*domain.Thread, []domain.ThreadId) {
	idToThread := make(map[domain.ThreadId]*domain.Thread, len(threads))
	ids := make([]domain.ThreadId, 0, len(threads))
	for i := range threads {
		idToThread[threads[i].Id] = &threads[i]
		ids = append(ids, threads[i].Id)
	}
	return idToThread, ids
}

// enrichThreadsWithChildren fetches one level of replies (with authors) for
// the given thread ids and attaches them to their parents.
func enrichThreadsWithChildren(
	ctx context.Context,
	q Querier,
	threadIds []domain.ThreadId,
	idToThread map[domain.ThreadId]*domain.Thread,
) error {
	if len(threadIds) == 0 {
		return nil
	}

	rows, err := q.QueryContext(ctx, `
        SELECT
            t.id, t.text, t.parent_id, t.created_at,
            u.id, u.ext_id, u.username, u.name, u.image
        FROM threads t
        JOIN users u ON t.author_id = u.id
        WHERE t.parent_id = ANY($1)
        ORDER BY t.created_at
    `, pq.Array(threadIds))
	if err != nil {
		return fmt.Errorf("failed to fetch children: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			child    domain.Thread
			parentId int64
		)
		if err := rows.Scan(
			&child.Id, &child.Text, &parentId, &child.CreatedAt,
			&child.Author.Id, &child.Author.ExtId, &child.Author.Username, &child.Author.Name, &child.Author.Image,
		); err != nil {
			return fmt.Errorf("failed to scan child thread: %w", err)
		}
		child.ParentId = &parentId

		if parent, ok := idToThread[parentId]; ok {
			parent.Children = append(parent.Children, &child)
		}
	}

	return rows.Err()
}

// enrichThreadsWithLikes fetches like rows for the given thread ids and
// attaches them to their threads.
func enrichThreadsWithLikes(
	ctx context.Context,
	q Querier,
	threadIds []domain.ThreadId,
	idToThread map[domain.ThreadId]*domain.Thread,
) error {
	if len(threadIds) == 0 {
		return nil
	}

	rows, err := q.QueryContext(ctx, `
        SELECT id, user_id, thread_id, liked, created_at
        FROM likes
        WHERE thread_id = ANY($1)
        ORDER BY id
    `, pq.Array(threadIds))
	if err != nil {
		return fmt.Errorf("failed to fetch likes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var like domain.Like
		if err := rows.Scan(&like.Id, &like.User, &like.Thread, &like.Liked, &like.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan like: %w", err)
		}
		if t, ok := idToThread[like.Thread]; ok {
			t.Likes = append(t.Likes, like)
		}
	}

	return rows.Err()
}

// enrichThreads runs both enrichment passes over an already scanned slice.
func enrichThreads(ctx context.Context, q Querier, threads []domain.Thread) error {
	idToThread, ids := threadIndex(threads)
	if err := enrichThreadsWithChildren(ctx, q, ids, idToThread); err != nil {
		return err
	}
	return enrichThreadsWithLikes(ctx, q, ids, idToThread)
}
