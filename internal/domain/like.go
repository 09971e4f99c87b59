package domain

import "time"

// Like is one user's like on one thread. At most one row exists per
// (user, thread); toggling flips Liked instead of deleting the row.
type Like struct {
	Id        LikeId
	User      UserId
	Thread    ThreadId
	Liked     bool
	CreatedAt time.Time
}
