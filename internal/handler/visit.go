package handler

import (
	"net/http"

	"botshield/internal/model"
	"botshield/internal/service"

	"github.com/gin-gonic/gin"
)

// VisitHandler ingests client-side telemetry for classification
type VisitHandler struct {
	detection service.DetectionServiceInterface
}

// NewVisitHandler creates a new VisitHandler
func NewVisitHandler(detection service.DetectionServiceInterface) *VisitHandler {
	return &VisitHandler{detection: detection}
}

// LogVisit handles POST /api/v1/log-visit
// @Summary Log a visit for bot classification
// @Description Scores a telemetry payload, records known crawler sightings and persists the detection event
// @Tags detection
// @Accept json
// @Produce json
// @Param request body model.LogVisitRequest true "Visit telemetry"
// @Success 200 {object} model.LogVisitResponse
// @Router /api/v1/log-visit [post]
func (h *VisitHandler) LogVisit(c *gin.Context) {
	var req model.LogVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	if req.UserAgent == "" {
		req.UserAgent = c.Request.UserAgent()
	}

	resp, err := h.detection.Ingest(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to log visit: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
