package models

// PhotoPoint is one geotagged photo reduced to the fields the walk engine
// needs. ShotTime is kept as the raw string from storage; parsing is the
// engine's concern because EXIF timestamps come in several formats and may
// be garbage.
type PhotoPoint struct {
	ShotTime  string  `json:"shotTime"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UserScoreRecord is one user's aggregated walk activity. Distance is
// rounded to 2 decimals and score to 1 decimal for presentation; the
// engine sums unrounded values internally.
type UserScoreRecord struct {
	UserEmail       string  `json:"userEmail"`
	PhotoCount      int     `json:"photoCount"`
	TotalDistanceKm float64 `json:"totalDistanceKm"`
	Score           float64 `json:"score"`
}

// LeaderboardEntry is a UserScoreRecord with its 1-based rank assigned
type LeaderboardEntry struct {
	Rank            int     `json:"rank"`
	UserEmail       string  `json:"userEmail"`
	PhotoCount      int     `json:"photoCount"`
	TotalDistanceKm float64 `json:"totalDistanceKm"`
	Score           float64 `json:"score"`
}

// LeaderboardResponse is the API response for the ranking endpoint
type LeaderboardResponse struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
	TotalUsers  int                `json:"totalUsers"`
	TotalPhotos int                `json:"totalPhotos"`
	MeanScore   float64            `json:"meanScore"`
	TopScore    float64            `json:"topScore"`
}
