package handler

import (
	"net/http"
	"strconv"

	"botshield/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves aggregated bot traffic statistics
type StatsHandler struct {
	stats     service.StatsServiceInterface
	detection service.DetectionServiceInterface
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(stats service.StatsServiceInterface, detection service.DetectionServiceInterface) *StatsHandler {
	return &StatsHandler{stats: stats, detection: detection}
}

// GetStats handles GET /api/v1/stats
// @Summary Get bot traffic statistics
// @Description Returns per-bot and per-day aggregates for a date range, defaulting to the trailing 30 days
// @Tags stats
// @Produce json
// @Param start_date query string false "Range start (YYYY-MM-DD)"
// @Param end_date query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} model.StatsResponse
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	resp, err := h.stats.GetStats(c.Request.Context(), startDate, endDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to get stats: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetLive handles GET /api/v1/stats/live
// @Summary Get live counters for today
// @Description Returns today's per-bot counters from Redis, ahead of the persisted aggregates
// @Tags stats
// @Produce json
// @Success 200 {object} Response
// @Router /api/v1/stats/live [get]
func (h *StatsHandler) GetLive(c *gin.Context) {
	counts, err := h.stats.GetLiveToday(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to get live counters: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    counts,
	})
}

// GetEvents handles GET /api/v1/events
// @Summary Get recent detection events
// @Description Returns the most recent classification events, newest first
// @Tags stats
// @Produce json
// @Param limit query int false "Maximum events to return" default(50)
// @Success 200 {object} Response
// @Router /api/v1/events [get]
func (h *StatsHandler) GetEvents(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		limit = 50
	}

	events, err := h.detection.RecentEvents(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to get events: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    events,
	})
}
