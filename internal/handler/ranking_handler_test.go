package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/colorwalk/colorwalk-backend-go/internal/models"
	"github.com/colorwalk/colorwalk-backend-go/internal/service"
)

type stubPointSource struct {
	points map[string][]models.PhotoPoint
}

func (s *stubPointSource) GeotaggedPointsByUser() (map[string][]models.PhotoPoint, error) {
	return s.points, nil
}

func TestLeaderboardEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	source := &stubPointSource{points: map[string][]models.PhotoPoint{
		"a@x.com": {
			{ShotTime: "2025-01-01 09:00:00", Latitude: 37.5, Longitude: 127.0},
		},
	}}
	h := NewRankingHandler(service.NewRankingService(source, 300))

	r := gin.New()
	r.GET("/api/v1/ranking", h.Leaderboard)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ranking", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Code int                        `json:"code"`
		Data models.LeaderboardResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Code != 0 {
		t.Errorf("expected code 0, got %d", body.Code)
	}
	if body.Data.TotalUsers != 1 || len(body.Data.Leaderboard) != 1 {
		t.Fatalf("unexpected leaderboard: %+v", body.Data)
	}
	entry := body.Data.Leaderboard[0]
	if entry.Rank != 1 || entry.UserEmail != "a@x.com" || entry.Score != 10.0 {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestLeaderboardEndpointEmpty(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewRankingHandler(service.NewRankingService(&stubPointSource{}, 300))

	r := gin.New()
	r.GET("/api/v1/ranking", h.Leaderboard)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ranking", nil))

	// No activity yet is a normal state, not an error
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for empty leaderboard, got %d", w.Code)
	}
}
