package libemitter

type (
	config struct {
		logger Logger
	}

	// Option configures an Emitter on construction.
	Option func(*config)
)

// WithLogger sets the logger used for registration and failure diagnostics.
func WithLogger(l Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts ...Option) config {
	c := config{logger: NewNoopLogger()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
