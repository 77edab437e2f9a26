package walk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colorwalk/colorwalk-backend-go/internal/models"
)

func TestRankSinglePhotoScoresTen(t *testing.T) {
	records := Rank(map[string][]models.PhotoPoint{
		"a@x.com": {pt("2025-01-01 09:00:00", 37.5, 127.0)},
	})
	require.Len(t, records, 1)
	assert.Equal(t, "a@x.com", records[0].UserEmail)
	assert.Equal(t, 1, records[0].PhotoCount)
	assert.Zero(t, records[0].TotalDistanceKm)
	assert.Equal(t, 10.0, records[0].Score)
}

func TestRankOrdersByScoreDescending(t *testing.T) {
	// b has more photos spread over one session, a has fewer
	records := Rank(map[string][]models.PhotoPoint{
		"a@x.com": {
			pt("2025-01-01 09:00:00", 37.50, 127.00),
			pt("2025-01-01 09:30:00", 37.50, 127.00),
		},
		"b@x.com": {
			pt("2025-01-01 09:00:00", 37.50, 127.00),
			pt("2025-01-01 09:30:00", 37.50, 127.00),
			pt("2025-01-01 10:00:00", 37.50, 127.00),
		},
	})
	require.Len(t, records, 2)
	assert.Equal(t, "b@x.com", records[0].UserEmail)
	assert.Equal(t, 30.0, records[0].Score)
	assert.Equal(t, 20.0, records[1].Score)
}

func TestRankEmptyInput(t *testing.T) {
	assert.Empty(t, Rank(nil))
	assert.Empty(t, Rank(map[string][]models.PhotoPoint{}))
}

func TestRankOmitsUsersWithoutPoints(t *testing.T) {
	records := Rank(map[string][]models.PhotoPoint{
		"empty@x.com": {},
		"a@x.com":     {pt("2025-01-01 09:00:00", 37.5, 127.0)},
	})
	require.Len(t, records, 1)
	assert.Equal(t, "a@x.com", records[0].UserEmail)
}

func TestRankMultiSessionUser(t *testing.T) {
	// Two sessions: first with 2 photos and some distance, second a lone
	// photo that still counts toward the photo total
	records := Rank(map[string][]models.PhotoPoint{
		"a@x.com": {
			pt("2025-01-01 09:00:00", 37.50, 127.00),
			pt("2025-01-01 09:30:00", 37.51, 127.01),
			pt("2025-01-01 20:00:00", 37.60, 127.10),
		},
	})
	require.Len(t, records, 1)
	r := records[0]
	assert.Equal(t, 3, r.PhotoCount)
	assert.Greater(t, r.TotalDistanceKm, 0.0)
	// Distance comes only from the first session's single pair
	assert.InDelta(t, 1.42, r.TotalDistanceKm, 0.05)
	assert.InDelta(t, 30.0+r.TotalDistanceKm*5, r.Score, 0.1)
}

func TestRankDeterministicTieBreak(t *testing.T) {
	// Identical activity: tie on score and distance falls back to email order
	points := []models.PhotoPoint{pt("2025-01-01 09:00:00", 37.5, 127.0)}
	input := map[string][]models.PhotoPoint{
		"c@x.com": points,
		"a@x.com": points,
		"b@x.com": points,
	}
	for i := 0; i < 20; i++ {
		records := Rank(input)
		require.Len(t, records, 3)
		assert.Equal(t, "a@x.com", records[0].UserEmail)
		assert.Equal(t, "b@x.com", records[1].UserEmail)
		assert.Equal(t, "c@x.com", records[2].UserEmail)
	}
}

func TestRankTieBrokenByDistance(t *testing.T) {
	// Same score is impossible with different distances unless photo counts
	// differ; construct 2 photos+0km (score 20) vs 2 photos+0km for equal,
	// then verify distance ordering with a crafted pair
	records := Rank(map[string][]models.PhotoPoint{
		"near@x.com": {
			pt("2025-01-01 09:00:00", 37.50, 127.00),
			pt("2025-01-01 09:30:00", 37.50, 127.00),
		},
		"far@x.com": {
			pt("2025-01-01 09:00:00", 37.50, 127.00),
			pt("2025-01-01 09:30:00", 37.51, 127.01),
		},
	})
	require.Len(t, records, 2)
	assert.Equal(t, "far@x.com", records[0].UserEmail)
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 1.23, roundTo(1.2345, 2))
	assert.Equal(t, 1.24, roundTo(1.236, 2))
	assert.Equal(t, 10.0, roundTo(10.04, 1))
	assert.Equal(t, -1.23, roundTo(-1.2349, 2))
}
