package service

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/colorwalk/colorwalk-backend-go/internal/models"
	"github.com/colorwalk/colorwalk-backend-go/internal/repository"
)

// ColorService draws each user's color of the day. The draw is cached per
// (user, date) so repeated calls within one day return the same color, and
// the entry rolls over automatically at local midnight.
type ColorService struct {
	colors *repository.ColorRepository

	mu    sync.Mutex
	cache map[int64]models.DailyColor

	now  func() time.Time
	pick func(n int) int
}

// NewColorService creates a new color service
func NewColorService(colors *repository.ColorRepository) *ColorService {
	return &ColorService{
		colors: colors,
		cache:  make(map[int64]models.DailyColor),
		now:    time.Now,
		pick:   rand.Intn,
	}
}

// ColorOfDay returns today's color for the user, drawing a new one only on
// the first call of each day
func (s *ColorService) ColorOfDay(userID int64) (*models.DailyColor, error) {
	today := s.now().Format("2006-01-02")

	s.mu.Lock()
	cached, ok := s.cache[userID]
	s.mu.Unlock()
	if ok && cached.Date == today {
		return &cached, nil
	}

	palette, err := s.colors.GetColors()
	if err != nil {
		return nil, fmt.Errorf("failed to load color palette: %w", err)
	}
	if len(palette) == 0 {
		return nil, fmt.Errorf("color palette is empty")
	}

	drawn := models.DailyColor{
		ColorCategory: palette[s.pick(len(palette))],
		Date:          today,
	}

	s.mu.Lock()
	s.cache[userID] = drawn
	s.mu.Unlock()

	return &drawn, nil
}

// Colors returns the full color palette
func (s *ColorService) Colors() ([]models.ColorCategory, error) {
	return s.colors.GetColors()
}
