package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v4/cpu"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// HealthHandler reports process uptime, CPU load and store
// reachability.
type HealthHandler struct {
	Client    *mongo.Client
	StartedAt time.Time
}

func NewHealthHandler(client *mongo.Client) *HealthHandler {
	return &HealthHandler{Client: client, StartedAt: time.Now()}
}

func (h *HealthHandler) Health(c *gin.Context) {
	status := http.StatusOK
	database := "up"

	if h.Client != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
			database = "down"
			status = http.StatusServiceUnavailable
		}
	}

	var cpuPercent float64
	if percentages, err := cpu.Percent(0, false); err == nil && len(percentages) > 0 {
		cpuPercent = percentages[0]
	}

	c.JSON(status, gin.H{
		"status":      database,
		"uptime":      time.Since(h.StartedAt).String(),
		"cpu_percent": cpuPercent,
	})
}
