package domain

type (
	// ExternalId is the stable identifier issued by the auth provider.
	// It never changes once a user is created.
	ExternalId = string
	UserId     = int64

	ThreadId    = int64
	LikeId      = int64
	CommunityId = int64
)
