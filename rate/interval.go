package rate

import (
	"sync"
	"time"

	"github.com/pietro-andreoli/bboracle/logger"
)

const DefaultMinInterval = 1 * time.Second

type intervalConfig struct {
	now    func() time.Time
	sleep  func(d time.Duration)
	logger logger.Logger
}

type IntervalOption func(c *intervalConfig)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) IntervalOption {
	return func(c *intervalConfig) {
		c.now = now
	}
}

// WithSleeper replaces time.Sleep.
func WithSleeper(sleep func(d time.Duration)) IntervalOption {
	return func(c *intervalConfig) {
		c.sleep = sleep
	}
}

func WithLogger(log logger.Logger) IntervalOption {
	return func(c *intervalConfig) {
		c.logger = log
	}
}

// IntervalLimiter keeps at least minInterval between consecutive dispatches.
// Before the first Mark it never waits.
type IntervalLimiter struct {
	minInterval time.Duration
	config      intervalConfig

	mu             sync.Mutex
	lastDispatchAt time.Time
}

var _ Limiter = &IntervalLimiter{}

func NewIntervalLimiter(minInterval time.Duration, opts ...IntervalOption) *IntervalLimiter {
	config := intervalConfig{
		now:    time.Now,
		sleep:  time.Sleep,
		logger: &logger.Noop{},
	}
	for _, opt := range opts {
		opt(&config)
	}
	return &IntervalLimiter{
		minInterval: minInterval,
		config:      config,
	}
}

// Limit sleeps for the remaining part of minInterval, never for the elapsed part.
func (l *IntervalLimiter) Limit() {
	if wait := l.Remaining(); wait > 0 {
		l.config.logger.Debugf("rate.IntervalLimiter: throttling for %v", wait)
		l.config.sleep(wait)
	}
}

func (l *IntervalLimiter) Mark() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lastDispatchAt = l.config.now()
}

// Remaining returns how long the caller would have to wait right now.
func (l *IntervalLimiter) Remaining() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.lastDispatchAt.IsZero() {
		return 0
	}
	elapsed := l.config.now().Sub(l.lastDispatchAt)
	if elapsed < 0 {
		// the clock went backwards; wait out a full interval
		elapsed = 0
	}
	if elapsed >= l.minInterval {
		return 0
	}
	return l.minInterval - elapsed
}

// LastDispatchAt returns the time of the last Mark and false if there was none.
func (l *IntervalLimiter) LastDispatchAt() (time.Time, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.lastDispatchAt, !l.lastDispatchAt.IsZero()
}

func (l *IntervalLimiter) MinInterval() time.Duration {
	return l.minInterval
}
