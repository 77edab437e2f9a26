package service

import (
	"fmt"

	"github.com/colorwalk/colorwalk-backend-go/internal/models"
	"github.com/colorwalk/colorwalk-backend-go/internal/stats"
	"github.com/colorwalk/colorwalk-backend-go/internal/walk"
)

// PointSource supplies the per-user geotagged point snapshot the ranking
// engine runs on
type PointSource interface {
	GeotaggedPointsByUser() (map[string][]models.PhotoPoint, error)
}

// RankingService computes the walk leaderboard on demand. Nothing is
// persisted; every call scores a fresh snapshot.
type RankingService struct {
	source     PointSource
	gapMinutes float64
}

// NewRankingService creates a new ranking service
func NewRankingService(source PointSource, gapMinutes float64) *RankingService {
	if gapMinutes <= 0 {
		gapMinutes = walk.DefaultGapMinutes
	}
	return &RankingService{
		source:     source,
		gapMinutes: gapMinutes,
	}
}

// Leaderboard loads all users' geotagged points, scores them and returns
// the ranked result with summary figures. An empty leaderboard is a normal
// "no activity yet" state, not an error.
func (s *RankingService) Leaderboard() (*models.LeaderboardResponse, error) {
	points, err := s.source.GeotaggedPointsByUser()
	if err != nil {
		return nil, fmt.Errorf("failed to load geotagged points: %w", err)
	}

	records := walk.RankWithGap(points, s.gapMinutes)

	entries := make([]models.LeaderboardEntry, len(records))
	scores := make([]float64, len(records))
	totalPhotos := 0
	for i, r := range records {
		entries[i] = models.LeaderboardEntry{
			Rank:            i + 1,
			UserEmail:       r.UserEmail,
			PhotoCount:      r.PhotoCount,
			TotalDistanceKm: r.TotalDistanceKm,
			Score:           r.Score,
		}
		scores[i] = r.Score
		totalPhotos += r.PhotoCount
	}

	return &models.LeaderboardResponse{
		Leaderboard: entries,
		TotalUsers:  len(entries),
		TotalPhotos: totalPhotos,
		MeanScore:   stats.Mean(scores),
		TopScore:    stats.Max(scores),
	}, nil
}
