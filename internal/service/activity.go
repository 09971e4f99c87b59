package service

import (
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"

	"github.com/tangle-dev/tangle/internal/config"
	"github.com/tangle-dev/tangle/internal/domain"
)

// ActivityService exposes the two read-only feed operations: the replies
// tab (foreign replies to the account's threads) and the merged activity
// feed (foreign replies + likes, newest first, capped).
type ActivityService interface {
	ForeignReplies(extId domain.ExternalId) ([]domain.Thread, int, error)
	Feed(extId domain.ExternalId) ([]domain.ActivityEvent, error)
}

// ActivityStorage defines the read queries the aggregation needs.
type ActivityStorage interface {
	GetUserByExtId(extId domain.ExternalId) (domain.User, error)
	OwnedThreads(userId domain.UserId) ([]domain.OwnedThread, error)
	ForeignReplies(ids []domain.ThreadId, excludeAuthor domain.UserId) ([]domain.Thread, error)
	CountForeignReplies(ids []domain.ThreadId, excludeAuthor domain.UserId) (int, error)
	LikesForThreads(threadIds []domain.ThreadId, excludeActor domain.UserId) ([]domain.LikeEvent, error)
}

// ActivityFetchError wraps a failed lookup with the logical operation that
// failed. Aggregation never returns partial results: the first failure
// aborts the whole call.
type ActivityFetchError struct {
	Op  string // fetch-user, fetch-posts, fetch-replies, fetch-likes
	Err error
}

func (e *ActivityFetchError) Error() string {
	return fmt.Sprintf("failed to fetch activity (%s): %s", e.Op, e.Err)
}

func (e *ActivityFetchError) Unwrap() error {
	return e.Err
}

type Activity struct {
	storage ActivityStorage
	cfg     *config.Public
}

func NewActivity(storage ActivityStorage, cfg *config.Public) ActivityService {
	return &Activity{storage: storage, cfg: cfg}
}

// resolveAccount is the single canonical lookup step: external account id
// to user row. Every downstream query keys on the internal id.
func (s *Activity) resolveAccount(extId domain.ExternalId) (domain.User, error) {
	user, err := s.storage.GetUserByExtId(extId)
	if err != nil {
		return domain.User{}, &ActivityFetchError{Op: "fetch-user", Err: err}
	}
	return user, nil
}

// childIdUnion collapses the child-id lists of the owned threads into one
// deduplicated set. A reply listed under two owned threads counts once.
func childIdUnion(owned []domain.OwnedThread) []domain.ThreadId {
	all := lo.FlatMap(owned, func(t domain.OwnedThread, _ int) []domain.ThreadId {
		return t.ChildIds
	})
	return lo.Uniq(all)
}

// ForeignReplies resolves the account's reply tree one level deep: replies
// to the account's threads written by other users, fully enriched for
// display, plus an independently counted total.
func (s *Activity) ForeignReplies(extId domain.ExternalId) ([]domain.Thread, int, error) {
	user, err := s.resolveAccount(extId)
	if err != nil {
		return nil, 0, err
	}

	owned, err := s.storage.OwnedThreads(user.Id)
	if err != nil {
		return nil, 0, &ActivityFetchError{Op: "fetch-posts", Err: err}
	}
	childIds := childIdUnion(owned)

	replies, err := s.storage.ForeignReplies(childIds, user.Id)
	if err != nil {
		return nil, 0, &ActivityFetchError{Op: "fetch-replies", Err: err}
	}

	total, err := s.storage.CountForeignReplies(childIds, user.Id)
	if err != nil {
		return nil, 0, &ActivityFetchError{Op: "fetch-replies", Err: err}
	}

	return replies, total, nil
}

// Feed merges foreign replies and likes on the account's threads into one
// chronologically descending feed, truncated to the configured limit.
func (s *Activity) Feed(extId domain.ExternalId) ([]domain.ActivityEvent, error) {
	user, err := s.resolveAccount(extId)
	if err != nil {
		return nil, err
	}

	owned, err := s.storage.OwnedThreads(user.Id)
	if err != nil {
		return nil, &ActivityFetchError{Op: "fetch-posts", Err: err}
	}

	childIds := childIdUnion(owned)
	ownedIds := lo.Map(owned, func(t domain.OwnedThread, _ int) domain.ThreadId {
		return t.Id
	})

	// The reply and like queries only depend on the id sets computed above
	// and touch disjoint rows, so they run concurrently.
	var (
		replies  []domain.Thread
		likes    []domain.LikeEvent
		replyErr error
		likeErr  error
		wg       sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		replies, replyErr = s.storage.ForeignReplies(childIds, user.Id)
	}()
	go func() {
		defer wg.Done()
		likes, likeErr = s.storage.LikesForThreads(ownedIds, user.Id)
	}()
	wg.Wait()

	if replyErr != nil {
		return nil, &ActivityFetchError{Op: "fetch-replies", Err: replyErr}
	}
	if likeErr != nil {
		return nil, &ActivityFetchError{Op: "fetch-likes", Err: likeErr}
	}

	events := make([]domain.ActivityEvent, 0, len(replies)+len(likes))
	for _, r := range replies {
		events = append(events, domain.ActivityEvent{
			Kind:      domain.ActivityReply,
			CreatedAt: r.CreatedAt,
			Reply: &domain.ReplyEvent{
				ThreadId: r.Id,
				ParentId: r.ParentId,
				Author: domain.ActorPreview{
					ExtId: r.Author.ExtId,
					Name:  r.Author.Name,
					Image: r.Author.Image,
				},
				CreatedAt: r.CreatedAt,
			},
		})
	}
	for i := range likes {
		like := likes[i]
		events = append(events, domain.ActivityEvent{
			Kind:      domain.ActivityLike,
			CreatedAt: like.CreatedAt,
			Like:      &like,
		})
	}

	sortEvents(events)

	if limit := s.cfg.ActivityFeedLimit; len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

// sortEvents orders the merged feed newest first. Ties on CreatedAt break
// on kind (replies first), then descending record id, so the order is
// deterministic across calls.
func sortEvents(events []domain.ActivityEvent) {
	sort.Slice(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		if a.Kind != b.Kind {
			return a.Kind == domain.ActivityReply
		}
		return a.RecordId() > b.RecordId()
	})
}
