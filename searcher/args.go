package searcher

import "golang.org/x/exp/rand"

type Option func(m *Minimax)

// WithGoroutines searches the root moves on n goroutines.
func WithGoroutines(n int) Option {
	return func(m *Minimax) {
		if n > 0 {
			m.goroutines = n
		}
	}
}

// WithSeed makes the tie-breaking jitter reproducible.
func WithSeed(seed uint64) Option {
	return func(m *Minimax) {
		m.seeds = rand.New(rand.NewSource(seed))
	}
}

// WithJitter sets the half-width of the leaf perturbation. Zero disables it.
func WithJitter(width float64) Option {
	return func(m *Minimax) {
		if width >= 0 {
			m.jitter = width
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.collect = true
	}
}

// WithName labels the evaluation function in search metrics.
func WithName(name string) Option {
	return func(m *Minimax) {
		m.name = name
	}
}
