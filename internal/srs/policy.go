// Package srs implements the multiplier-based spaced-repetition scheduler:
// the interval policy, the next-state engine and the due-set selector.
package srs

import (
	"fmt"
	"math"
	"time"

	"github.com/conorfennell/memora/internal/domain"
)

const (
	minutesPerDay = 24 * 60
	day           = 24 * time.Hour
)

// FirstReview holds the intervals, in minutes, used for a card whose
// current interval is zero.
type FirstReview struct {
	Again float64 `koanf:"again" validate:"gte=0"`
	Hard  float64 `koanf:"hard" validate:"gte=0"`
	Good  float64 `koanf:"good" validate:"gte=0"`
	Easy  float64 `koanf:"easy" validate:"gte=0"`
}

// Multipliers scale a nonzero current interval.
type Multipliers struct {
	Hard float64 `koanf:"hard" validate:"gt=0"`
	Good float64 `koanf:"good" validate:"gt=0"`
	Easy float64 `koanf:"easy" validate:"gt=0"`
}

// Config holds the tunable constants of the scheduler.
type Config struct {
	FirstReview       FirstReview `koanf:"first_review"`
	Multipliers       Multipliers `koanf:"multipliers"`
	MaxInterval       float64     `koanf:"max_interval" validate:"gt=0,gtefield=MinInterval"`
	MinInterval       float64     `koanf:"min_interval" validate:"gte=0"`
	FlexibilityWindow float64     `koanf:"flexibility_window" validate:"gte=0,lte=1"`
	DefaultEaseFactor float64     `koanf:"default_ease_factor" validate:"gt=0"`
}

// DefaultConfig returns the stock review pacing.
func DefaultConfig() Config {
	return Config{
		FirstReview: FirstReview{
			Again: 15,
			Hard:  15,
			Good:  60,
			Easy:  1440,
		},
		Multipliers: Multipliers{
			Hard: 1.2,
			Good: 2.0,
			Easy: 3.0,
		},
		MaxInterval:       365,
		MinInterval:       0,
		FlexibilityWindow: 0.2,
		DefaultEaseFactor: domain.DefaultEaseFactor,
	}
}

// Policy maps a current interval and a grade to the next interval.
type Policy struct {
	cfg Config
}

// NewPolicy returns a policy for cfg.
func NewPolicy(cfg Config) *Policy {
	return &Policy{cfg: cfg}
}

// Config returns the constants the policy was built with.
func (p *Policy) Config() Config {
	return p.cfg
}

// Validate rejects grades outside the recognized scale.
func (p *Policy) Validate(g domain.Grade) error {
	if !g.Valid() {
		return fmt.Errorf("%w: %d", domain.ErrInvalidGrade, int(g))
	}
	return nil
}

// FirstReviewInterval returns the interval in days for a card that has
// never been successfully reviewed.
func (p *Policy) FirstReviewInterval(g domain.Grade) float64 {
	var minutes float64
	switch {
	case g.Failed():
		minutes = p.cfg.FirstReview.Again
	case g == domain.Hard:
		minutes = p.cfg.FirstReview.Hard
	case g == domain.Good:
		minutes = p.cfg.FirstReview.Good
	default:
		minutes = p.cfg.FirstReview.Easy
	}
	return MinutesToDays(minutes)
}

// Multiplier returns the growth factor for a successful grade.
func (p *Policy) Multiplier(g domain.Grade) float64 {
	switch g {
	case domain.Hard:
		return p.cfg.Multipliers.Hard
	case domain.Good:
		return p.cfg.Multipliers.Good
	default:
		return p.cfg.Multipliers.Easy
	}
}

// NextInterval computes the next interval in days. A failing grade always
// resets to zero; the result is clamped to [MinInterval, MaxInterval].
func (p *Policy) NextInterval(current float64, g domain.Grade) float64 {
	if g.Failed() {
		return 0
	}
	var next float64
	switch {
	case current == 0:
		next = p.FirstReviewInterval(g)
	default:
		next = current * p.Multiplier(g)
	}
	return math.Max(p.cfg.MinInterval, math.Min(next, p.cfg.MaxInterval))
}

// MinutesToDays converts minutes to fractional days.
func MinutesToDays(minutes float64) float64 {
	return minutes / minutesPerDay
}

// DaysToMinutes converts fractional days to minutes.
func DaysToMinutes(days float64) float64 {
	return days * minutesPerDay
}

// DaysToDuration converts fractional days to a duration with nanosecond
// precision.
func DaysToDuration(days float64) time.Duration {
	return time.Duration(math.Round(days * float64(day)))
}
