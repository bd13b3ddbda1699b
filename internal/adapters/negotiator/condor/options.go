package condor

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stefan-k/cobald/internal/ports"
	"go.uber.org/zap"
)

const (
	DefaultMaxAge             = 30 * time.Second
	DefaultQueryTimeout       = 30 * time.Second
	DefaultReconfigureTimeout = 10 * time.Second

	DefaultUserprioBinary  = "condor_userprio"
	DefaultConfigValBinary = "condor_config_val"
)

type options struct {
	pool               string
	maxAge             time.Duration
	queryTimeout       time.Duration
	reconfigureTimeout time.Duration
	userprioBinary     string
	configValBinary    string
	clock              ports.Clock
	logger             *zap.Logger
}

type Option func(*options)

// WithPool scopes every command to the named negotiator pool.
func WithPool(pool string) Option {
	return func(o *options) {
		o.pool = pool
	}
}

func WithMaxAge(maxAge time.Duration) Option {
	return func(o *options) {
		if maxAge > 0 {
			o.maxAge = maxAge
		}
	}
}

// WithQueryTimeout bounds refresh queries. Zero disables the bound.
func WithQueryTimeout(timeout time.Duration) Option {
	return func(o *options) {
		if timeout >= 0 {
			o.queryTimeout = timeout
		}
	}
}

func WithReconfigureTimeout(timeout time.Duration) Option {
	return func(o *options) {
		if timeout > 0 {
			o.reconfigureTimeout = timeout
		}
	}
}

func WithBinaries(userprio, configVal string) Option {
	return func(o *options) {
		if userprio != "" {
			o.userprioBinary = userprio
		}
		if configVal != "" {
			o.configValBinary = configVal
		}
	}
}

func WithClock(c ports.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		maxAge:             DefaultMaxAge,
		queryTimeout:       DefaultQueryTimeout,
		reconfigureTimeout: DefaultReconfigureTimeout,
		userprioBinary:     DefaultUserprioBinary,
		configValBinary:    DefaultConfigValBinary,
		clock:              clock.New(),
		logger:             zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o options) withPool(argv []string) []string {
	if o.pool == "" {
		return argv
	}

	return append(argv, "-pool", o.pool)
}
