package gmpcoro

import (
	"github.com/rs/zerolog"

	"github.com/coropkg/gmpcoro/internal/fault"
)

const (
	// DefaultWorkers is the worker count used when no WithWorkers option is
	// given. The original fixed this at compile time (16, or 24 on the
	// branch this runtime follows); here it is one constructor argument
	// away from being chosen per Runtime instead, but it is still fixed for
	// that Runtime's entire lifetime -- there is no way to add or remove
	// workers after New returns.
	DefaultWorkers = 24

	// TaskStackSize is the nominal stack reservation recorded against every
	// task. It has no operational effect under this redesign -- a task's
	// real stack is whatever the Go runtime gives its goroutine, grown and
	// shrunk automatically -- but the field is kept for parity with the
	// data model and for anything inspecting per-task memory accounting.
	TaskStackSize = 16 * 1024

	// runQueueCapacity is the fixed size of every worker's local run queue
	// and of the matching all-tasks and dead-tasks bookkeeping rings. It is
	// a true array bound, not a tunable: unlike worker count, it cannot be
	// made a runtime option without giving up the fixed-capacity,
	// lock-free-to-its-owner ring queue the scheduler's balancing policy
	// depends on.
	runQueueCapacity = 256
)

// Config holds a Runtime's fixed parameters. Build one with Option values
// passed to New or Init, not by constructing Config directly.
type Config struct {
	// Workers sizes the Runtime's worker slice, including the reserved
	// slot (worker 0) that never runs a scheduler loop and exists only so
	// tasks started from the main coroutine have a processor to be
	// recorded against -- so cfg.Workers-1 scheduler loops actually run.
	// Must be at least 1 (that one Runtime then has no background
	// workers at all, and every started task stays on the global queue and
	// never runs, so a Wait on it from main blocks forever; this is almost
	// never useful but is not rejected as invalid).
	Workers int

	// Logger receives structured events for runtime lifecycle and scheduler
	// diagnostics. The zero value is a disabled logger.
	Logger zerolog.Logger
}

// Option configures a Config. Apply options with New(opts...) or
// Init(opts...).
type Option func(*Config)

// WithWorkers overrides DefaultWorkers.
func WithWorkers(n int) Option {
	return func(c *Config) { c.Workers = n }
}

// WithLogger installs a structured logger for runtime diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}

func newConfig(opts ...Option) (Config, error) {
	cfg := Config{
		Workers: DefaultWorkers,
		Logger:  defaultLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Workers < 1 {
		return Config{}, fault.Errorf("gmpcoro: Workers must be >= 1, got %d", cfg.Workers)
	}
	return cfg, nil
}
