package models

// ColorCategory is one of the fixed walk theme colors
type ColorCategory struct {
	ID    int64  `json:"id" db:"color_id"`
	Key   string `json:"key" db:"color_key"`
	Name  string `json:"name" db:"color_name"`
	Emoji string `json:"emoji" db:"emoji"`
	Hex   string `json:"hex" db:"hex"`
}

// DailyColor is the color drawn for a user on a given day
type DailyColor struct {
	ColorCategory
	Date string `json:"date"`
}
