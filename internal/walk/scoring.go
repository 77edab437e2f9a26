package walk

import (
	"math"
	"sort"

	"github.com/colorwalk/colorwalk-backend-go/internal/models"
)

// Score weights: each photo is worth 10 points, each kilometer walked 5
const (
	photoWeight    = 10.0
	distanceWeight = 5.0
)

// Rank computes every user's activity score and returns the leaderboard,
// descending by score. See RankWithGap for the full semantics.
func Rank(pointsByUser map[string][]models.PhotoPoint) []models.UserScoreRecord {
	return RankWithGap(pointsByUser, DefaultGapMinutes)
}

// RankWithGap segments each user's points into walk sessions with the
// given gap threshold, scores each session as photos*10 + km*5, and sums
// per user. Users with no points are omitted rather than listed with a
// zero score. Intermediate sums stay unrounded; distance is rounded to 2
// decimals and score to 1 only on the final record.
//
// Ties on score are broken by total distance descending, then user email
// ascending, so the ordering is deterministic regardless of map iteration
// order.
func RankWithGap(pointsByUser map[string][]models.PhotoPoint, gapMinutes float64) []models.UserScoreRecord {
	records := make([]models.UserScoreRecord, 0, len(pointsByUser))
	for email, points := range pointsByUser {
		if len(points) == 0 {
			continue
		}
		records = append(records, scoreUser(email, points, gapMinutes))
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Score != records[j].Score {
			return records[i].Score > records[j].Score
		}
		if records[i].TotalDistanceKm != records[j].TotalDistanceKm {
			return records[i].TotalDistanceKm > records[j].TotalDistanceKm
		}
		return records[i].UserEmail < records[j].UserEmail
	})

	return records
}

func scoreUser(email string, points []models.PhotoPoint, gapMinutes float64) models.UserScoreRecord {
	var photoCount int
	var totalKm, score float64

	for _, session := range Segment(points, gapMinutes) {
		km := session.DistanceKm()
		photoCount += session.PhotoCount()
		totalKm += km
		score += float64(session.PhotoCount())*photoWeight + km*distanceWeight
	}

	return models.UserScoreRecord{
		UserEmail:       email,
		PhotoCount:      photoCount,
		TotalDistanceKm: roundTo(totalKm, 2),
		Score:           roundTo(score, 1),
	}
}

func roundTo(v float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}
