package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sundsvall-io/party-assets/internal/domain"
	"github.com/sundsvall-io/party-assets/internal/service"
	"github.com/sundsvall-io/party-assets/internal/validation"

	"github.com/google/uuid"
)

// Handler exposes asset CRUD over HTTP.
type Handler struct {
	assets    *service.AssetService
	validator *validation.Validator
}

// NewAssetHandler creates the asset REST handler, expected to be mounted at
// the /assets prefix.
func NewAssetHandler(assets *service.AssetService, validator *validation.Validator) http.Handler {
	return &Handler{assets: assets, validator: validator}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, hasID := trailingID(r.URL.Path)

	switch {
	case r.Method == http.MethodPost && !hasID:
		h.handleCreate(w, r)
	case r.Method == http.MethodGet && !hasID:
		h.handleList(w, r)
	case r.Method == http.MethodGet && hasID:
		h.handleGet(w, r, id)
	case r.Method == http.MethodPatch && hasID:
		h.handleUpdate(w, r, id)
	case r.Method == http.MethodDelete && hasID:
		h.handleDelete(w, r, id)
	default:
		http.Error(w, "not found", http.StatusNotFound)
	}
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.AssetCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, domain.BadRequestProblem("invalid request body"))
		return
	}
	if violations := h.validator.Validate(req); len(violations) > 0 {
		writeProblem(w, domain.BadRequestProblem(validation.Detail(violations)))
		return
	}

	asset, err := h.assets.CreateAsset(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, asset)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.AssetFilter{
		PartyID: query.Get("partyId"),
		AssetID: query.Get("assetId"),
		Type:    query.Get("type"),
		Status:  domain.Status(query.Get("status")),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		writeProblem(w, domain.BadRequestProblem("unknown status "+string(filter.Status)))
		return
	}

	assets, err := h.assets.ListAssets(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if assets == nil {
		assets = []domain.Asset{}
	}
	writeJSON(w, http.StatusOK, assets)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	asset, err := h.assets.GetAsset(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var req domain.AssetUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, domain.BadRequestProblem("invalid request body"))
		return
	}
	if violations := h.validator.Validate(req); len(violations) > 0 {
		writeProblem(w, domain.BadRequestProblem(validation.Detail(violations)))
		return
	}

	asset, err := h.assets.UpdateAsset(r.Context(), id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if err := h.assets.DeleteAsset(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// trailingID extracts a UUID path segment following the /assets prefix.
func trailingID(path string) (uuid.UUID, bool) {
	trimmed := strings.Trim(path, "/")
	segments := strings.Split(trimmed, "/")
	last := segments[len(segments)-1]
	if last == "" || last == "assets" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(last)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeProblem(w http.ResponseWriter, problem *domain.Problem) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(problem.Status)
	_ = json.NewEncoder(w).Encode(problem)
}

func writeError(w http.ResponseWriter, err error) {
	var problem *domain.Problem
	if errors.As(err, &problem) {
		writeProblem(w, problem)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
