package scheduler

import (
	"log"
	"sync"
	"time"

	"github.com/dev-toolbox/color-api/colorconv"
	"github.com/dev-toolbox/color-api/models"
	"github.com/dev-toolbox/color-api/palette"
)

type Scheduler struct {
	mu       sync.RWMutex
	current  models.DailyColor
	ticker   *time.Ticker
	timer    *time.Timer
	done     chan struct{}
	stopOnce sync.Once
	now      func() time.Time
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		done: make(chan struct{}),
		now:  time.Now,
	}
}

// Start picks today's color right away, then again at every midnight
func (s *Scheduler) Start() {
	now := s.now()
	s.GenerateDailyColor(now)

	// Calculate time until next midnight
	nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	durationUntilMidnight := nextMidnight.Sub(now)

	log.Printf("Scheduler started. Next daily color in %v", durationUntilMidnight)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer = time.AfterFunc(durationUntilMidnight, func() {
		s.GenerateDailyColor(s.now())

		// After first run, schedule to run every 24 hours
		s.mu.Lock()
		s.ticker = time.NewTicker(24 * time.Hour)
		ticks := s.ticker.C
		s.mu.Unlock()
		go func() {
			for {
				select {
				case <-ticks:
					s.GenerateDailyColor(s.now())
				case <-s.done:
					return
				}
			}
		}()
	})
}

// Stop stops the scheduler. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		if s.timer != nil {
			s.timer.Stop()
		}
		if s.ticker != nil {
			s.ticker.Stop()
		}
		s.mu.Unlock()
		close(s.done)
		log.Println("Scheduler stopped")
	})
}

// GenerateDailyColor picks the featured color for the day of now
func (s *Scheduler) GenerateDailyColor(now time.Time) models.DailyColor {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	s.mu.RLock()
	existing := s.current
	s.mu.RUnlock()
	if existing.Date.Equal(day) && existing.Hex != "" {
		log.Printf("Daily color already chosen for %s: %s", day.Format("2006-01-02"), existing.ColorName)
		return existing
	}

	hex := palette.ForDay(day)
	rgb, _ := colorconv.HexToRGB(hex)
	dailyColor := models.DailyColor{
		Date:      day,
		ColorName: palette.Closest(rgb).Value,
		Hex:       hex,
		CreatedAt: now,
	}

	s.mu.Lock()
	s.current = dailyColor
	s.mu.Unlock()

	log.Printf("Daily color for %s: %s (%s)", day.Format("2006-01-02"), dailyColor.ColorName, dailyColor.Hex)
	return dailyColor
}

// Current returns the color chosen last, picking one first if needed
func (s *Scheduler) Current() models.DailyColor {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()
	if current.Hex == "" {
		return s.GenerateDailyColor(s.now())
	}
	return current
}
