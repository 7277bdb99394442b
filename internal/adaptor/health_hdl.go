package adaptor

import (
	"net/http"

	"bus-booking/pkg/database"
	"bus-booking/pkg/utils"

	"go.uber.org/zap"
)

type HealthHandler struct {
	db  *database.Client
	log *zap.Logger
}

func NewHealthHandler(db *database.Client, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:  db,
		log: log.With(zap.String("handler", "health")),
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	snapshot := h.db.Health(r.Context())

	if !snapshot.Connected {
		h.log.Warn("Health check failed", zap.String("error", snapshot.Error))
		utils.ResponseJSON(w, http.StatusInternalServerError, false, "database unreachable", snapshot, nil)
		return
	}

	utils.ResponseSuccess(w, "ok", snapshot)
}
