package walk

import (
	"time"

	"github.com/colorwalk/colorwalk-backend-go/internal/models"
	"github.com/colorwalk/colorwalk-backend-go/internal/spatial"
)

// DefaultGapMinutes is the inactivity threshold between consecutive photos.
// Two photos further apart than this belong to different walk sessions.
const DefaultGapMinutes = 300.0

// Session is a maximal run of one user's time-ordered geotagged photos
// where consecutive gaps stay within the inactivity threshold.
type Session struct {
	Points []models.PhotoPoint
}

// PhotoCount returns the number of photos in the session
func (s Session) PhotoCount() int {
	return len(s.Points)
}

// DistanceKm sums the haversine distance over consecutive point pairs
// within the session. A pair is skipped when either endpoint's shot time
// does not parse; a session with fewer than 2 points contributes 0.
func (s Session) DistanceKm() float64 {
	var total float64
	for i := 1; i < len(s.Points); i++ {
		prev, cur := s.Points[i-1], s.Points[i]
		if ParseShotTime(prev.ShotTime) == nil || ParseShotTime(cur.ShotTime) == nil {
			continue
		}
		total += spatial.HaversineKm(prev.Latitude, prev.Longitude, cur.Latitude, cur.Longitude)
	}
	return total
}

// Segment splits a user's time-ordered points into sessions. The gap is
// measured between each point and its immediate predecessor in the input,
// not the session start. A gap strictly greater than gapMinutes closes the
// current session. When either timestamp of a pair fails to parse the
// comparison is skipped and the point stays in the open session, so noisy
// timestamps never split a walk. The input must already be sorted by shot
// time; Segment does not re-sort.
//
// Every input point ends up in exactly one session: concatenating the
// returned sessions in order reproduces the input sequence.
func Segment(points []models.PhotoPoint, gapMinutes float64) []Session {
	if len(points) == 0 {
		return nil
	}

	parsed := make([]*time.Time, len(points))
	for i := range points {
		parsed[i] = ParseShotTime(points[i].ShotTime)
	}

	var sessions []Session
	current := Session{Points: []models.PhotoPoint{points[0]}}

	for i := 1; i < len(points); i++ {
		prev, cur := parsed[i-1], parsed[i]
		if prev != nil && cur != nil && cur.Sub(*prev).Minutes() > gapMinutes {
			sessions = append(sessions, current)
			current = Session{Points: []models.PhotoPoint{points[i]}}
			continue
		}
		current.Points = append(current.Points, points[i])
	}

	// The final open session always flushes, even with a single point
	return append(sessions, current)
}
