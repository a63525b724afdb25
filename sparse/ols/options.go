package ols

// Option configures a Select call.
type Option func(*config)

type config struct {
	maxAtoms  int
	hasBudget bool
	passes    int
	progress  func(iteration int)
}

func defaultConfig() config {
	return config{
		passes: 2,
	}
}

// WithMaxAtoms sets the atom budget M. When omitted the budget defaults
// to min(signal length, column count), and explicit values are clamped
// to that bound. Values below 1 cause Select to fail with
// ErrInvalidBudget.
func WithMaxAtoms(m int) Option {
	return func(c *config) {
		c.maxAtoms = m
		c.hasBudget = true
	}
}

// WithPasses sets how many subtract-and-renormalize sweeps the
// projector runs per selection step. The first sweep is the
// Gram-Schmidt step itself; additional sweeps re-orthogonalize the
// surviving columns to counter finite-precision drift. The default is
// 2. Values below 1 are clamped to 1.
func WithPasses(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.passes = n
	}
}

// WithProgress installs a callback invoked once per completed
// iteration with the 1-based iteration count. Purely observational; a
// nil callback is ignored.
func WithProgress(fn func(iteration int)) Option {
	return func(c *config) {
		c.progress = fn
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
