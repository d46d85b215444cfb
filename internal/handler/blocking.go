package handler

import (
	"net/http"

	"botshield/internal/model"
	"botshield/internal/service"

	"github.com/gin-gonic/gin"
)

// BlockingHandler manages the global blocking flag
type BlockingHandler struct {
	settings service.SettingsServiceInterface
}

// NewBlockingHandler creates a new BlockingHandler
func NewBlockingHandler(settings service.SettingsServiceInterface) *BlockingHandler {
	return &BlockingHandler{settings: settings}
}

// Set handles POST /api/v1/blocking
// @Summary Toggle blocking
// @Description Enables or disables enforcement of disallow directives
// @Tags blocking
// @Accept json
// @Produce json
// @Param request body model.BlockingRequest true "Blocking request"
// @Success 200 {object} model.BlockingResponse
// @Router /api/v1/blocking [post]
func (h *BlockingHandler) Set(c *gin.Context) {
	var req model.BlockingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	if err := h.settings.SetBlockingEnabled(c.Request.Context(), *req.Enabled); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to update blocking: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, model.BlockingResponse{
		Success: true,
		Enabled: *req.Enabled,
	})
}

// Get handles GET /api/v1/blocking
// @Summary Get blocking status
// @Description Returns whether disallow directives are enforced
// @Tags blocking
// @Produce json
// @Success 200 {object} model.BlockingResponse
// @Router /api/v1/blocking [get]
func (h *BlockingHandler) Get(c *gin.Context) {
	enabled, err := h.settings.BlockingEnabled(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to read blocking status: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, model.BlockingResponse{
		Success: true,
		Enabled: enabled,
	})
}
