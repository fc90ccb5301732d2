package smile

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

type Handler struct {
	svc          Service
	maxBodyBytes int64
	log          *zap.Logger
}

func NewHandler(svc Service, maxBodyBytes int64, log *zap.Logger) *Handler {
	return &Handler{svc: svc, maxBodyBytes: maxBodyBytes, log: log}
}

// HandleRate always answers 200 with a rating once the body decodes.
func (h *Handler) HandleRate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			http.Error(w, "payload too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	res := h.svc.RateSmile(r.Context(), req.PhotoDataURI)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		h.log.Warn("write rating response", zap.Error(err))
	}
}
