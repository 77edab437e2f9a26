package models

// Photo represents an uploaded photo record. Image bytes live outside this
// service; only the stored path and the metadata extracted at upload time
// are kept here.
type Photo struct {
	ID           int64    `json:"id" db:"photo_id"`
	UserID       int64    `json:"userId" db:"user_id"`
	ColorID      int64    `json:"colorId" db:"color_id"`
	Description  string   `json:"description,omitempty" db:"description"`
	Location     string   `json:"location,omitempty" db:"location"`
	ImagePath    string   `json:"imagePath" db:"image_path"`
	GPSLatitude  *float64 `json:"gpsLatitude,omitempty" db:"gps_latitude"`
	GPSLongitude *float64 `json:"gpsLongitude,omitempty" db:"gps_longitude"`
	ShotTime     *string  `json:"shotTime,omitempty" db:"shot_time"`
	LikesCount   int64    `json:"likesCount" db:"likes_count"`
	CreatedAt    string   `json:"createdAt,omitempty" db:"created_at"`
}

// CreatePhotoRequest is the payload for POST /photos. Latitude, longitude
// and shot time arrive pre-extracted by the upload pipeline; any of them
// may be absent for photos without EXIF data.
type CreatePhotoRequest struct {
	ColorID      int64    `json:"colorId"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	ImagePath    string   `json:"imagePath" binding:"required"`
	GPSLatitude  *float64 `json:"gpsLatitude"`
	GPSLongitude *float64 `json:"gpsLongitude"`
	ShotTime     *string  `json:"shotTime"`
}

// GalleryPhoto is a photo joined with its owner and color category for
// gallery listings
type GalleryPhoto struct {
	ID          int64  `json:"id"`
	UserName    string `json:"userName"`
	ColorName   string `json:"colorName"`
	ColorKey    string `json:"colorKey"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	ImagePath   string `json:"imagePath"`
	LikesCount  int64  `json:"likesCount"`
	CreatedAt   string `json:"createdAt"`
}

// GalleryFilter represents filter parameters for gallery queries
type GalleryFilter struct {
	ColorKey string `form:"color"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}

// GalleryResponse represents a paginated gallery listing with the
// total/per-user counters the gallery page displays
type GalleryResponse struct {
	Data       []GalleryPhoto `json:"data"`
	Total      int64          `json:"total"`
	UserPhotos int64          `json:"userPhotos"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
}
