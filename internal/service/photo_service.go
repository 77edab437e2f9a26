package service

import (
	"fmt"

	"github.com/colorwalk/colorwalk-backend-go/internal/models"
	"github.com/colorwalk/colorwalk-backend-go/internal/repository"
)

// PhotoService handles business logic for photo records
type PhotoService struct {
	photos *repository.PhotoRepository
}

// NewPhotoService creates a new photo service
func NewPhotoService(photos *repository.PhotoRepository) *PhotoService {
	return &PhotoService{photos: photos}
}

// CreatePhoto stores an uploaded photo's metadata. The image file itself is
// handled by the upload pipeline; this service only records its path and
// the extracted GPS/shot-time fields.
func (s *PhotoService) CreatePhoto(userID int64, req models.CreatePhotoRequest) (int64, error) {
	colorID := req.ColorID
	if colorID < 1 || colorID > 9 {
		colorID = 1
	}

	return s.photos.CreatePhoto(models.Photo{
		UserID:       userID,
		ColorID:      colorID,
		Description:  req.Description,
		Location:     req.Location,
		ImagePath:    req.ImagePath,
		GPSLatitude:  req.GPSLatitude,
		GPSLongitude: req.GPSLongitude,
		ShotTime:     req.ShotTime,
	})
}

// Gallery retrieves the gallery listing plus the counters shown on the page
func (s *PhotoService) Gallery(userID int64, filter models.GalleryFilter) (*models.GalleryResponse, error) {
	photos, total, err := s.photos.GetGallery(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load gallery: %w", err)
	}

	var userPhotos int64
	if userID > 0 {
		userPhotos, err = s.photos.CountPhotosByUser(userID)
		if err != nil {
			return nil, fmt.Errorf("failed to count user photos: %w", err)
		}
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 50
	}

	return &models.GalleryResponse{
		Data:       photos,
		Total:      total,
		UserPhotos: userPhotos,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	}, nil
}

// MyPhotos retrieves the authenticated user's own photos
func (s *PhotoService) MyPhotos(userID int64) ([]models.Photo, error) {
	return s.photos.GetPhotosByUser(userID)
}

// Like adds one like to a photo
func (s *PhotoService) Like(photoID int64) error {
	return s.photos.IncrementLikes(photoID)
}
