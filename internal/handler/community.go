package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tangle-dev/tangle/internal/api"
	"github.com/tangle-dev/tangle/internal/utils"
)

func (h *Handler) CreateCommunity(w http.ResponseWriter, r *http.Request) {
	var body api.CreateCommunityRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	community, err := h.community.Create(body.ExtId, body.Name, body.Image)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, community)
}

func (h *Handler) GetCommunity(w http.ResponseWriter, r *http.Request) {
	extId := chi.URLParam(r, "community")

	community, err := h.community.Get(extId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, community)
}

// AddCommunityMember joins a user to a community; idempotent.
func (h *Handler) AddCommunityMember(w http.ResponseWriter, r *http.Request) {
	communityExtId := chi.URLParam(r, "community")
	userExtId := chi.URLParam(r, "userId")

	if err := h.community.AddMember(communityExtId, userExtId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
