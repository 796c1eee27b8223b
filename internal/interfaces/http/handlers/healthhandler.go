package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lorenzobigazzi0/cassa/internal/shared/version"
)

type SubscriberCounter interface {
	Counts() map[string]int
}

type HealthHandler struct {
	ping        func(ctx context.Context) error
	subscribers SubscriberCounter
}

func NewHealthHandler(ping func(ctx context.Context) error, subscribers SubscriberCounter) *HealthHandler {
	return &HealthHandler{ping: ping, subscribers: subscribers}
}

type healthResponse struct {
	Status      string         `json:"status"`
	Database    string         `json:"database"`
	Subscribers map[string]int `json:"subscribers"`
	Version     string         `json:"version"`
}

// Health handles GET /health. A database outage answers 503.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	resp := healthResponse{
		Status:      "ok",
		Database:    "ok",
		Subscribers: h.subscribers.Counts(),
		Version:     version.Current(),
	}
	status := http.StatusOK

	if err := h.ping(ctx); err != nil {
		resp.Status = "degraded"
		resp.Database = err.Error()
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, resp)
}
