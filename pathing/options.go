package pathing

import "math/rand"

// defaultSeed is used when callers pass seed == 0.
const defaultSeed int64 = 1

// Option configures a Flowfield.
type Option func(*Options)

// Options holds the mover and randomness settings.
type Options struct {
	// Fly switches the mover to air semantics: walkability is ignored.
	Fly bool
	// Rand shuffles neighbour order. Not shared across goroutines.
	Rand *rand.Rand
}

// DefaultOptions returns a ground mover with a deterministic RNG seeded by
// defaultSeed.
func DefaultOptions() Options {
	return Options{
		Fly:  false,
		Rand: rngFromSeed(0),
	}
}

// WithFly sets air (true) or ground (false) semantics.
func WithFly(fly bool) Option {
	return func(o *Options) {
		o.Fly = fly
	}
}

// WithSeed uses a fresh RNG seeded with seed; 0 selects the default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rngFromSeed(seed)
	}
}

// WithRand uses r for neighbour shuffling. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}
