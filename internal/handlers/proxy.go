package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/lebrongpt/compare-ui/internal/models"
	"github.com/lebrongpt/compare-ui/internal/statsapi"
)

// GetPlayer proxies a single-player lookup to the stats service.
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}

	stats, err := h.stats.PlayerStats(r.Context(), name)
	if err != nil {
		if errors.Is(err, statsapi.ErrPlayerNotFound) {
			h.errorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		h.errorResponse(w, http.StatusBadGateway, "stats service unavailable")
		return
	}

	h.jsonResponse(w, http.StatusOK, stats)
}

// ComparePlayers proxies a comparison request to the stats service.
func (h *Handler) ComparePlayers(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var req models.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Both player names are required")
		return
	}

	result, err := h.stats.Compare(r.Context(), req.Player1, req.Player2)
	if err != nil {
		if errors.Is(err, statsapi.ErrComparisonFailed) {
			h.errorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		h.errorResponse(w, http.StatusBadGateway, "stats service unavailable")
		return
	}

	h.jsonResponse(w, http.StatusOK, result)
}
