package walk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colorwalk/colorwalk-backend-go/internal/models"
)

func pt(shotTime string, lat, lon float64) models.PhotoPoint {
	return models.PhotoPoint{ShotTime: shotTime, Latitude: lat, Longitude: lon}
}

func TestParseShotTime(t *testing.T) {
	cases := []struct {
		input string
		ok    bool
	}{
		{"2025-01-01 09:00:00", true},
		{"2025-01-01 09:00:00.123456", true},
		{"2025:01:01 09:00:00", true}, // EXIF DateTimeOriginal style
		{"not a timestamp", false},
		{"", false},
		{"2025-13-40 99:99:99", false},
	}
	for _, c := range cases {
		got := ParseShotTime(c.input)
		if c.ok {
			assert.NotNil(t, got, "expected %q to parse", c.input)
		} else {
			assert.Nil(t, got, "expected %q to fail", c.input)
		}
	}
}

func TestSegmentEmptyInput(t *testing.T) {
	assert.Empty(t, Segment(nil, DefaultGapMinutes))
	assert.Empty(t, Segment([]models.PhotoPoint{}, DefaultGapMinutes))
}

func TestSegmentSinglePoint(t *testing.T) {
	sessions := Segment([]models.PhotoPoint{pt("2025-01-01 09:00:00", 37.5, 127.0)}, DefaultGapMinutes)
	require.Len(t, sessions, 1)
	assert.Equal(t, 1, sessions[0].PhotoCount())
	assert.Zero(t, sessions[0].DistanceKm())
}

func TestSegmentSingleSessionWithinGap(t *testing.T) {
	points := []models.PhotoPoint{
		pt("2025-01-01 09:00:00", 37.50, 127.00),
		pt("2025-01-01 10:00:00", 37.51, 127.01),
		pt("2025-01-01 13:00:00", 37.52, 127.02),
		pt("2025-01-01 17:59:00", 37.53, 127.03),
	}
	sessions := Segment(points, DefaultGapMinutes)
	require.Len(t, sessions, 1)
	assert.Equal(t, len(points), sessions[0].PhotoCount())
}

func TestSegmentGapBoundary(t *testing.T) {
	// Exactly 300 minutes stays in one session
	sessions := Segment([]models.PhotoPoint{
		pt("2025-01-01 09:00:00", 37.5, 127.0),
		pt("2025-01-01 14:00:00", 37.6, 127.1),
	}, DefaultGapMinutes)
	assert.Len(t, sessions, 1)

	// 300.0001 minutes (6 ms over) splits
	sessions = Segment([]models.PhotoPoint{
		pt("2025-01-01 09:00:00", 37.5, 127.0),
		pt("2025-01-01 14:00:00.006000", 37.6, 127.1),
	}, DefaultGapMinutes)
	assert.Len(t, sessions, 2)
}

func TestSegmentScenarioTwoSessions(t *testing.T) {
	points := []models.PhotoPoint{
		pt("2025-01-01 09:00:00", 37.50, 127.00),
		pt("2025-01-01 09:30:00", 37.51, 127.01), // 30 min gap, same session
		pt("2025-01-01 20:00:00", 37.60, 127.10), // 630 min gap, new session
	}
	sessions := Segment(points, DefaultGapMinutes)
	require.Len(t, sessions, 2)
	assert.Equal(t, 2, sessions[0].PhotoCount())
	assert.Equal(t, 1, sessions[1].PhotoCount())
	assert.Greater(t, sessions[0].DistanceKm(), 0.0)
	assert.Zero(t, sessions[1].DistanceKm())
}

func TestSegmentUnparsableTimestampStaysInOpenSession(t *testing.T) {
	points := []models.PhotoPoint{
		pt("2025-01-01 09:00:00", 37.50, 127.00),
		pt("garbage", 37.51, 127.01),
		pt("2025-01-01 23:00:00", 37.52, 127.02), // comparison vs garbage skipped
	}
	sessions := Segment(points, DefaultGapMinutes)
	require.Len(t, sessions, 1)
	assert.Equal(t, 3, sessions[0].PhotoCount())
}

func TestSegmentPartitionInvariant(t *testing.T) {
	points := []models.PhotoPoint{
		pt("2025-01-01 09:00:00", 37.50, 127.00),
		pt("2025-01-01 09:30:00", 37.51, 127.01),
		pt("bad", 37.52, 127.02),
		pt("2025-01-02 08:00:00", 37.53, 127.03),
		pt("2025-01-02 08:10:00", 37.54, 127.04),
		pt("2025-01-03 12:00:00", 37.55, 127.05),
	}
	sessions := Segment(points, DefaultGapMinutes)

	var flattened []models.PhotoPoint
	for _, s := range sessions {
		flattened = append(flattened, s.Points...)
	}
	assert.Equal(t, points, flattened, "sessions must partition the input in order")
}

func TestSegmentDistanceSkipsUnparsablePairs(t *testing.T) {
	// Middle point has no usable timestamp, so both pairs touching it are
	// excluded from the distance sum
	points := []models.PhotoPoint{
		pt("2025-01-01 09:00:00", 37.50, 127.00),
		pt("bad", 40.00, 120.00),
		pt("2025-01-01 09:20:00", 37.51, 127.01),
	}
	sessions := Segment(points, DefaultGapMinutes)
	require.Len(t, sessions, 1)
	assert.Zero(t, sessions[0].DistanceKm())
}
