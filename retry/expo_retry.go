package retry

import (
	"fmt"
	"time"

	"github.com/pietro-andreoli/bboracle/logger"
)

type expoConfig struct {
	initial time.Duration
	sleep   func(d time.Duration)
	logger  logger.Logger
}

func defaultExpoConfig() expoConfig {
	return expoConfig{
		initial: 50 * time.Millisecond,
		sleep:   time.Sleep,
		logger:  &logger.Noop{},
	}
}

type ExpoConfigOption func(c *expoConfig)

func WithLogger(log logger.Logger) ExpoConfigOption {
	return func(c *expoConfig) {
		c.logger = log
	}
}

func WithInitialDuration(d time.Duration) ExpoConfigOption {
	return func(c *expoConfig) {
		c.initial = d
	}
}

// WithSleeper replaces time.Sleep between attempts.
func WithSleeper(sleep func(d time.Duration)) ExpoConfigOption {
	return func(c *expoConfig) {
		c.sleep = sleep
	}
}

type expoRetry struct {
	config expoConfig
}

var _ Retry = &expoRetry{}

func NewExponentialRetry(opts ...ExpoConfigOption) Retry {
	var config = defaultExpoConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &expoRetry{config}
}

// Do runs fn until it returns no error, returns StopNow, or attempts
// is reached. The sleep doubles after every failed attempt:
// Do(3, "usage", fn) sleeps 50ms and 100ms between the three runs.
// Do(0, "usage", fn) never runs fn.
func (r *expoRetry) Do(
	attempts int,
	fnName string,
	fn RetriableFn,
) error {
	if attempts < 1 {
		return fmt.Errorf("attempts must be > 0")
	}

	var err error
	var i int

	sleep := r.config.initial
	for i < attempts {
		var exitNow ExitStrategy
		if err, exitNow = fn(i); err == nil {
			return nil
		}
		if exitNow {
			return err
		}

		i++
		if i >= attempts {
			break
		}

		r.config.logger.Warnf(
			"retry: %s failed; retrying. attempt=%d, maxAttempt=%d, backoff=%v, error=%v",
			fnName, i, attempts, sleep, err,
		)

		r.config.sleep(sleep)

		sleep = sleep * 2
	}

	r.config.logger.Warnf(
		"retry: exhausted all attempts for %s; giving up. attempt=%d, maxAttempt=%d, backoff=%v, error=%v",
		fnName, i, attempts, sleep, err,
	)

	return err
}
