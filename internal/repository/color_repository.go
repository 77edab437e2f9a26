package repository

import (
	"database/sql"
	"fmt"

	"github.com/colorwalk/colorwalk-backend-go/internal/models"
)

// ColorRepository handles database operations for color categories
type ColorRepository struct {
	db *sql.DB
}

// NewColorRepository creates a new color repository
func NewColorRepository(db *sql.DB) *ColorRepository {
	return &ColorRepository{db: db}
}

// GetColors returns all color categories ordered by ID
func (r *ColorRepository) GetColors() ([]models.ColorCategory, error) {
	rows, err := r.db.Query(
		"SELECT color_id, color_key, color_name, emoji, hex FROM color_categories ORDER BY color_id")
	if err != nil {
		return nil, fmt.Errorf("failed to query colors: %w", err)
	}
	defer rows.Close()

	var colors []models.ColorCategory
	for rows.Next() {
		var c models.ColorCategory
		if err := rows.Scan(&c.ID, &c.Key, &c.Name, &c.Emoji, &c.Hex); err != nil {
			return nil, fmt.Errorf("failed to scan color: %w", err)
		}
		colors = append(colors, c)
	}

	return colors, nil
}
