package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store     pinger
	storeType string
}

func NewHealthHandler(store pinger, storeType string) *HealthHandler {
	return &HealthHandler{store: store, storeType: storeType}
}

func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"version":   "1.0.0",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	storeStatus := "ok"
	httpStatus := http.StatusOK

	if err := h.store.Ping(r.Context()); err != nil {
		slog.Warn("readiness check failed: account store unreachable", "store", h.storeType, "error", err)
		storeStatus = "down"
		httpStatus = http.StatusServiceUnavailable
	}

	overallStatus := "ok"
	if httpStatus != http.StatusOK {
		overallStatus = "down"
	}

	RespondJSON(w, httpStatus, map[string]any{
		"status":    overallStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks": map[string]string{
			"account_store": storeStatus,
			"store_type":    h.storeType,
		},
	})
}
