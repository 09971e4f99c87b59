package api

import "github.com/tangle-dev/tangle/internal/domain"

// Request DTOs

type UpsertUserRequest struct {
	ExtId    string `json:"id" validate:"required"`
	Username string `json:"username" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Bio      string `json:"bio,omitempty"`
	Image    string `json:"image,omitempty"`
}

type CreateThreadRequest struct {
	Author    string  `json:"author" validate:"required"` // external user id
	Text      string  `json:"text" validate:"required"`
	ParentId  *int64  `json:"parent_id,omitempty"`
	Community *string `json:"community,omitempty"` // external community id
}

type ToggleLikeRequest struct {
	UserId string `json:"user_id" validate:"required"` // external user id
}

type CreateCommunityRequest struct {
	ExtId string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Image string `json:"image,omitempty"`
}

// Response DTOs

type UserResponse struct {
	domain.User
}

type ThreadResponse struct {
	domain.Thread
	// TextHtml is the markdown-rendered, sanitized display form of Text.
	TextHtml string `json:"text_html,omitempty"`
}

type UserThreadsResponse struct {
	Threads []domain.Thread `json:"threads"`
}

// RepliesResponse is the reply-tree resolver payload. TotalRepliesCount is
// computed by an independent count query, not len(Replies).
type RepliesResponse struct {
	Replies           []domain.Thread `json:"replies"`
	TotalRepliesCount int             `json:"total_replies_count"`
}

type ActivityResponse struct {
	Events []domain.ActivityEvent `json:"events"`
}

type ToggleLikeResponse struct {
	Liked bool `json:"liked"`
}
