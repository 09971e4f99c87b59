package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tangle-dev/tangle/internal/api"
	"github.com/tangle-dev/tangle/internal/domain"
	"github.com/tangle-dev/tangle/internal/utils"
)

// UpsertUser creates or updates a profile keyed by the external account id.
// Used by the onboarding flow; repeated calls update profile fields.
func (h *Handler) UpsertUser(w http.ResponseWriter, r *http.Request) {
	var body api.UpsertUserRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user, err := h.user.Upsert(domain.UserUpdate{
		ExtId:    body.ExtId,
		Username: body.Username,
		Name:     body.Name,
		Bio:      body.Bio,
		Image:    body.Image,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, api.UserResponse{User: user})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	extId := chi.URLParam(r, "userId")

	user, err := h.user.Get(extId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.UserResponse{User: user})
}

// GetUserThreads returns the threads authored by the account, enriched for
// the profile "posts" tab.
func (h *Handler) GetUserThreads(w http.ResponseWriter, r *http.Request) {
	extId := chi.URLParam(r, "userId")

	threads, err := h.user.Threads(extId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.UserThreadsResponse{Threads: threads})
}

// GetUserReplies returns foreign replies to the account's threads plus the
// independently counted total, for the profile "replies" tab.
func (h *Handler) GetUserReplies(w http.ResponseWriter, r *http.Request) {
	extId := chi.URLParam(r, "userId")

	replies, total, err := h.activity.ForeignReplies(extId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.RepliesResponse{Replies: replies, TotalRepliesCount: total})
}

// GetUserActivity returns the merged reply+like feed, newest first, capped.
func (h *Handler) GetUserActivity(w http.ResponseWriter, r *http.Request) {
	extId := chi.URLParam(r, "userId")

	events, err := h.activity.Feed(extId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, api.ActivityResponse{Events: events})
}
