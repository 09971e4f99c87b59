package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tangle-dev/tangle/internal/render"
	"github.com/tangle-dev/tangle/internal/service"
)

type Handler struct {
	user      service.UserService
	thread    service.ThreadService
	like      service.LikeService
	community service.CommunityService
	activity  service.ActivityService
	renderer  *render.TextProcessor
}

func New(
	user service.UserService,
	thread service.ThreadService,
	like service.LikeService,
	community service.CommunityService,
	activity service.ActivityService,
	renderer *render.TextProcessor,
) *Handler {
	return &Handler{user, thread, like, community, activity, renderer}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers already sent; just log.
		slog.Error("failed to encode response", "err", err)
	}
}
