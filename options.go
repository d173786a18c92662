package vector

import (
	"github.com/go-kit/log"
)

type config struct {
	budget   *Budget
	logger   log.Logger
	recorder Recorder
}

var defaultConfig = &config{
	logger:   log.NewNopLogger(),
	recorder: nopRecorder{},
}

// Option configures a Vector or Buffer at construction time.
//
// Options stay attached to the vector: clones and copy-assignment temporaries
// allocate under the same budget and report to the same logger and recorder.
type Option func(*config)

// WithBudget charges every buffer allocation against b.
// A nil budget disables accounting.
func WithBudget(b *Budget) Option {
	return func(c *config) {
		c.budget = b
	}
}

// WithLogger sets the logger that receives growth and allocation failure events.
//
// If nil is passed, logging is disabled.
func WithLogger(l log.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = log.NewNopLogger()
		}
		c.logger = l
	}
}

// WithRecorder sets the Recorder that receives allocation events.
//
// If nil is passed, events are discarded.
func WithRecorder(r Recorder) Option {
	return func(c *config) {
		if r == nil {
			r = nopRecorder{}
		}
		c.recorder = r
	}
}

func newConfig(opts []Option) *config {
	if len(opts) == 0 {
		return defaultConfig
	}
	c := *defaultConfig
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

// orDefault makes the zero Vector usable.
func (c *config) orDefault() *config {
	if c == nil {
		return defaultConfig
	}
	return c
}
