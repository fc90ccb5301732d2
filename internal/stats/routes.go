package stats

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/api/dashboard", h.HandleDashboard)
	r.Get("/api/dashboard/share", h.HandleShare)
	r.Get("/api/leaderboard", h.HandleLeaderboard)
	r.Get("/api/growth", h.HandleGrowth)
}
