// Dashboard metrics and health handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CathalystLTDA/zapcont-api/internal/http/middleware"
)

// MetricsErrorResponse is returned when any aggregate fails.
type MetricsErrorResponse struct {
	Status    string `json:"status" example:"error"`
	Message   string `json:"message" example:"Failed to fetch metrics data"`
	Timestamp string `json:"timestamp" example:"2025-08-15T12:00:00.000Z"`
}

// GetMetrics godoc
// @ID          getMetrics
// @Summary     Dashboard snapshot
// @Description Message, thread, user and feedback aggregates. All aggregates run concurrently;
// @Description if any of them fails the whole request fails.
// @Tags        Dashboard
// @Produce     json
// @Success     200  {object}  services.Snapshot
// @Failure     500  {object}  handlers.MetricsErrorResponse
// @Router      /metrics [get]
func (h *Handlers) GetMetrics(c *gin.Context) {
	snap, err := h.metrics.Snapshot(c.Request.Context())
	if err != nil {
		logErr(c, err, "metrics snapshot")
		c.JSON(http.StatusInternalServerError, MetricsErrorResponse{
			Status:    "error",
			Message:   "Failed to fetch metrics data",
			Timestamp: h.timestamp(),
		})
		return
	}
	ok(c, http.StatusOK, snap)
}

// Health godoc
// @ID          health
// @Summary     Liveness with database check
// @Description Always 200; dbConnection reports whether the database answered a ping.
// @Tags        Dashboard
// @Produce     json
// @Success     200  {object}  services.Health
// @Router      /health [get]
func (h *Handlers) Health(c *gin.Context) {
	ok(c, http.StatusOK, h.metrics.Health(c.Request.Context()))
}

// logErr logs a failure that is answered with a custom body instead of
// the error envelope.
func logErr(c *gin.Context, err error, what string) {
	middleware.LoggerFrom(c).Error().Err(err).Str("op", what).Msg("api error")
}
