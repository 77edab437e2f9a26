package handler

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/colorwalk/colorwalk-backend-go/internal/middleware"
	"github.com/colorwalk/colorwalk-backend-go/internal/models"
	"github.com/colorwalk/colorwalk-backend-go/internal/service"
	"github.com/colorwalk/colorwalk-backend-go/pkg/response"
)

// PhotoHandler handles HTTP requests for photo records
type PhotoHandler struct {
	photoService *service.PhotoService
}

// NewPhotoHandler creates a new photo handler
func NewPhotoHandler(photoService *service.PhotoService) *PhotoHandler {
	return &PhotoHandler{
		photoService: photoService,
	}
}

// CreatePhoto handles POST /api/v1/photos
func (h *PhotoHandler) CreatePhoto(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == 0 {
		response.Unauthorized(c, "Login required")
		return
	}

	var req models.CreatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid photo payload")
		return
	}

	id, err := h.photoService.CreatePhoto(userID, req)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"photoId": id})
}

// Gallery handles GET /api/v1/gallery
func (h *PhotoHandler) Gallery(c *gin.Context) {
	var filter models.GalleryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.photoService.Gallery(middleware.UserID(c), filter)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, result)
}

// MyPhotos handles GET /api/v1/me/photos
func (h *PhotoHandler) MyPhotos(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == 0 {
		response.Unauthorized(c, "Login required")
		return
	}

	photos, err := h.photoService.MyPhotos(userID)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"data":  photos,
		"count": len(photos),
	})
}

// Like handles POST /api/v1/photos/:id/like
func (h *PhotoHandler) Like(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid photo ID")
		return
	}

	if err := h.photoService.Like(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			response.NotFound(c, "Photo not found")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"photoId": id})
}
