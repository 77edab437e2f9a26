package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/colorwalk/colorwalk-backend-go/internal/middleware"
	"github.com/colorwalk/colorwalk-backend-go/internal/service"
	"github.com/colorwalk/colorwalk-backend-go/pkg/response"
)

// ColorHandler handles HTTP requests for color categories
type ColorHandler struct {
	colorService *service.ColorService
}

// NewColorHandler creates a new color handler
func NewColorHandler(colorService *service.ColorService) *ColorHandler {
	return &ColorHandler{
		colorService: colorService,
	}
}

// ColorOfDay handles GET /api/v1/color
func (h *ColorHandler) ColorOfDay(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == 0 {
		response.Unauthorized(c, "Login required")
		return
	}

	color, err := h.colorService.ColorOfDay(userID)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, color)
}

// Colors handles GET /api/v1/colors
func (h *ColorHandler) Colors(c *gin.Context) {
	colors, err := h.colorService.Colors()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, colors)
}
