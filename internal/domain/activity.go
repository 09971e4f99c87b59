package domain

import "time"

type ActivityKind string

const (
	ActivityReply ActivityKind = "reply"
	ActivityLike  ActivityKind = "like"
)

// ActorPreview is the minimal user projection shown in activity cards.
type ActorPreview struct {
	ExtId ExternalId
	Name  string
	Image string
}

// ReplyEvent: someone replied to one of the account's threads.
type ReplyEvent struct {
	ThreadId  ThreadId
	ParentId  *ThreadId
	Author    ActorPreview
	CreatedAt time.Time
}

// LikedThread is the target-thread preview attached to a like event.
// Author carries name/image only; the ext id is not needed for display.
type LikedThread struct {
	Id       ThreadId
	Text     string
	ParentId *ThreadId
	Author   ActorPreview
}

// LikeEvent: someone liked one of the account's threads.
type LikeEvent struct {
	LikeId    LikeId
	Actor     ActorPreview
	Thread    LikedThread
	CreatedAt time.Time
}

// ActivityEvent is a tagged union. Exactly one of Reply/Like is set,
// matching Kind.
type ActivityEvent struct {
	Kind      ActivityKind
	CreatedAt time.Time
	Reply     *ReplyEvent `json:",omitempty"`
	Like      *LikeEvent  `json:",omitempty"`
}

// RecordId returns the underlying record id of the event. Used as the
// deterministic secondary sort key when CreatedAt ties.
func (e ActivityEvent) RecordId() int64 {
	switch e.Kind {
	case ActivityReply:
		return e.Reply.ThreadId
	case ActivityLike:
		return e.Like.LikeId
	}
	return 0
}
