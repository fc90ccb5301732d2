package stats

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

type Handler struct {
	svc *Service
	log *zap.Logger
}

func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) HandleDashboard(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, h.svc.Dashboard())
}

func (h *Handler) HandleShare(w http.ResponseWriter, r *http.Request) {
	share, err := h.svc.ShareLink(r.URL.Query().Get("platform"))
	if errors.Is(err, ErrUnsupportedPlatform) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "share error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, share)
}

func (h *Handler) HandleLeaderboard(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, h.svc.Leaderboard())
}

func (h *Handler) HandleGrowth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, h.svc.Growth())
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Warn("write stats response", zap.Error(err))
	}
}
