package handler

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const healthPingTimeout = 2 * time.Second

// HealthHandler reports process liveness and store connectivity.
type HealthHandler struct {
	client      *mongo.Client
	environment string
}

func NewHealthHandler(client *mongo.Client, environment string) *HealthHandler {
	return &HealthHandler{
		client:      client,
		environment: environment,
	}
}

type healthResponse struct {
	Status      string    `json:"status"`
	Database    string    `json:"database"`
	Environment string    `json:"environment"`
	Timestamp   time.Time `json:"timestamp"`
}

// Check always answers 200; the database field tells callers whether
// mutating endpoints will work.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	database := "connected"
	if err := h.client.Ping(ctx, readpref.Primary()); err != nil {
		database = "disconnected"
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:      "ok",
		Database:    database,
		Environment: h.environment,
		Timestamp:   time.Now().UTC(),
	})
}
