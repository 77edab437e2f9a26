package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/colorwalk/colorwalk-backend-go/internal/models"
)

// PhotoRepository handles database operations for photos
type PhotoRepository struct {
	db *sql.DB
}

// NewPhotoRepository creates a new photo repository
func NewPhotoRepository(db *sql.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

// CreatePhoto inserts a new photo record and returns its ID
func (r *PhotoRepository) CreatePhoto(p models.Photo) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO photos (user_id, color_id, description, location, image_path,
			gps_latitude, gps_longitude, shot_time, likes_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0)`,
		p.UserID, p.ColorID, p.Description, p.Location, p.ImagePath,
		p.GPSLatitude, p.GPSLongitude, p.ShotTime,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create photo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get photo id: %w", err)
	}
	return id, nil
}

// GetGallery retrieves photos joined with owner and color, newest first,
// optionally filtered by color key
func (r *PhotoRepository) GetGallery(filter models.GalleryFilter) ([]models.GalleryPhoto, int64, error) {
	query := `SELECT p.photo_id, u.name, c.color_name, c.color_key,
		COALESCE(p.description, ''), COALESCE(p.location, ''), p.image_path,
		p.likes_count, p.created_at
		FROM photos p
		JOIN users u ON p.user_id = u.user_id
		JOIN color_categories c ON p.color_id = c.color_id`

	var conditions []string
	var args []interface{}

	if filter.ColorKey != "" && !strings.EqualFold(filter.ColorKey, "all") {
		conditions = append(conditions, "LOWER(c.color_key) = LOWER(?)")
		args = append(args, filter.ColorKey)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := `SELECT COUNT(*) FROM photos p JOIN color_categories c ON p.color_id = c.color_id`
	if len(conditions) > 0 {
		countQuery += " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count photos: %w", err)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 50
	}
	if filter.PageSize > 500 {
		filter.PageSize = 500
	}

	offset := (filter.Page - 1) * filter.PageSize
	query += " ORDER BY p.created_at DESC, p.photo_id DESC LIMIT ? OFFSET ?"
	args = append(args, filter.PageSize, offset)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query gallery: %w", err)
	}
	defer rows.Close()

	var photos []models.GalleryPhoto
	for rows.Next() {
		var p models.GalleryPhoto
		err := rows.Scan(
			&p.ID, &p.UserName, &p.ColorName, &p.ColorKey,
			&p.Description, &p.Location, &p.ImagePath,
			&p.LikesCount, &p.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan gallery photo: %w", err)
		}
		photos = append(photos, p)
	}

	return photos, total, nil
}

// GetPhotosByUser retrieves a user's own photos, newest first
func (r *PhotoRepository) GetPhotosByUser(userID int64) ([]models.Photo, error) {
	rows, err := r.db.Query(`
		SELECT photo_id, user_id, color_id, COALESCE(description, ''),
			COALESCE(location, ''), image_path, gps_latitude, gps_longitude,
			shot_time, likes_count, created_at
		FROM photos
		WHERE user_id = ?
		ORDER BY photo_id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user photos: %w", err)
	}
	defer rows.Close()

	var photos []models.Photo
	for rows.Next() {
		var p models.Photo
		err := rows.Scan(
			&p.ID, &p.UserID, &p.ColorID, &p.Description, &p.Location,
			&p.ImagePath, &p.GPSLatitude, &p.GPSLongitude, &p.ShotTime,
			&p.LikesCount, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan photo: %w", err)
		}
		photos = append(photos, p)
	}

	return photos, nil
}

// IncrementLikes adds one like to a photo. Returns sql.ErrNoRows when the
// photo does not exist.
func (r *PhotoRepository) IncrementLikes(photoID int64) error {
	result, err := r.db.Exec(
		"UPDATE photos SET likes_count = likes_count + 1 WHERE photo_id = ?",
		photoID,
	)
	if err != nil {
		return fmt.Errorf("failed to increment likes: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check likes update: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CountPhotosByUser returns the number of photos a user has uploaded
func (r *PhotoRepository) CountPhotosByUser(userID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow("SELECT COUNT(*) FROM photos WHERE user_id = ?", userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count user photos: %w", err)
	}
	return count, nil
}

// GeotaggedPointsByUser returns every photo that has both coordinates,
// grouped per user email, each user's points ordered by shot time. This is
// the snapshot the walk ranking engine consumes; photos without GPS data
// never reach the engine.
func (r *PhotoRepository) GeotaggedPointsByUser() (map[string][]models.PhotoPoint, error) {
	rows, err := r.db.Query(`
		SELECT u.email, COALESCE(p.shot_time, ''), p.gps_latitude, p.gps_longitude
		FROM photos p
		JOIN users u ON p.user_id = u.user_id
		WHERE p.gps_latitude IS NOT NULL AND p.gps_longitude IS NOT NULL
		ORDER BY u.email, p.shot_time`)
	if err != nil {
		return nil, fmt.Errorf("failed to query geotagged points: %w", err)
	}
	defer rows.Close()

	points := make(map[string][]models.PhotoPoint)
	for rows.Next() {
		var email string
		var p models.PhotoPoint
		if err := rows.Scan(&email, &p.ShotTime, &p.Latitude, &p.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan photo point: %w", err)
		}
		points[email] = append(points[email], p)
	}

	return points, nil
}
