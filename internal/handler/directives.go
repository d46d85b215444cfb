package handler

import (
	"net/http"

	"botshield/internal/model"
	"botshield/internal/service"

	"github.com/gin-gonic/gin"
)

// DirectivesHandler manages the crawler directive document
type DirectivesHandler struct {
	directives service.DirectiveServiceInterface
}

// NewDirectivesHandler creates a new DirectivesHandler
func NewDirectivesHandler(directives service.DirectiveServiceInterface) *DirectivesHandler {
	return &DirectivesHandler{directives: directives}
}

// Save handles POST /api/v1/directives
// @Summary Replace the managed directive region
// @Description Splices the managed block of the directive document, preserving user content outside the markers
// @Tags directives
// @Accept json
// @Produce json
// @Param request body model.SaveDirectivesRequest true "Save request"
// @Success 200 {object} model.SaveDirectivesResponse
// @Router /api/v1/directives [post]
func (h *DirectivesHandler) Save(c *gin.Context) {
	var req model.SaveDirectivesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request: " + err.Error(),
		})
		return
	}

	final, err := h.directives.Save(c.Request.Context(), req.Content, req.Clear)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to save directives: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, model.SaveDirectivesResponse{
		Success:      true,
		Message:      "Directives saved",
		FinalContent: final,
	})
}

// Get handles GET /api/v1/directives
// @Summary Get the managed directive region
// @Description Returns the managed block and the parsed disallow patterns
// @Tags directives
// @Produce json
// @Success 200 {object} model.DirectivesResponse
// @Router /api/v1/directives [get]
func (h *DirectivesHandler) Get(c *gin.Context) {
	content, patterns, err := h.directives.Current(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to load directives: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, model.DirectivesResponse{
		Success:    true,
		Content:    content,
		Disallowed: patterns,
	})
}

// Response is the standard API response
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the error API response
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
