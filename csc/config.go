package csc

import "context"

// Config holds the tunable constants of the evolutionary search. Build
// one with DefaultConfig and Option values rather than constructing the
// struct literal directly, so future fields get sane defaults.
type Config struct {
	// PopulationSize is the number of individuals per generation.
	PopulationSize int

	// IterationLimit is the number of generations run by Optimize.
	IterationLimit int

	// MaxNewVertices caps how many target vertices a single mutate
	// call may add to a chain.
	MaxNewVertices int

	// ReduceIterationCoefficient scales the randomized-pruning budget
	// in reduce's phase 2: budget = ReduceIterationCoefficient * |chain|.
	ReduceIterationCoefficient int

	// EliteCount is the number of top parents carried into the next
	// generation unchanged (by re-seeding, see DESIGN.md).
	EliteCount int

	// TournamentAttemptMultiplier scales the crossover retry budget in
	// createNextGeneration: budget = TournamentAttemptMultiplier * PopulationSize.
	TournamentAttemptMultiplier int

	// Seed drives every PRNG derived for this reducer. Zero selects an
	// implementation-defined default stream rather than a time-based
	// seed, so results are reproducible unless a caller wants variety.
	Seed int64

	// Ctx, if non-nil, is checked once per generation (between
	// iterations, never mid-individual). A cancelled context stops
	// Optimize early; BestChain retains the last fully-adopted winner.
	Ctx context.Context
}

// DefaultConfig returns the constants named in the reducer's design:
// population 10, 10 generations, up to 10 new vertices per mutate, a
// reduce-phase-2 coefficient of 3, 3 elite survivors, and a tournament
// budget of 5x the population size.
func DefaultConfig() Config {
	return Config{
		PopulationSize:              10,
		IterationLimit:              10,
		MaxNewVertices:              10,
		ReduceIterationCoefficient:  3,
		EliteCount:                  3,
		TournamentAttemptMultiplier: 5,
		Seed:                        0,
		Ctx:                         context.Background(),
	}
}

// Option configures a Config value built by DefaultConfig.
type Option func(*Config)

// WithPopulationSize overrides PopulationSize. Values below EliteCount+1
// make createNextGeneration's slot loop a no-op; callers needing a tiny
// population for tests should also lower WithEliteCount.
func WithPopulationSize(n int) Option {
	return func(c *Config) { c.PopulationSize = n }
}

// WithIterationLimit overrides IterationLimit.
func WithIterationLimit(n int) Option {
	return func(c *Config) { c.IterationLimit = n }
}

// WithMaxNewVertices overrides MaxNewVertices.
func WithMaxNewVertices(n int) Option {
	return func(c *Config) { c.MaxNewVertices = n }
}

// WithReduceIterationCoefficient overrides ReduceIterationCoefficient.
func WithReduceIterationCoefficient(n int) Option {
	return func(c *Config) { c.ReduceIterationCoefficient = n }
}

// WithEliteCount overrides EliteCount.
func WithEliteCount(n int) Option {
	return func(c *Config) { c.EliteCount = n }
}

// WithTournamentAttemptMultiplier overrides TournamentAttemptMultiplier.
func WithTournamentAttemptMultiplier(n int) Option {
	return func(c *Config) { c.TournamentAttemptMultiplier = n }
}

// WithSeed fixes the RNG seed for deterministic replay in tests.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}

// WithContext installs a cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(c *Config) {
		if ctx != nil {
			c.Ctx = ctx
		}
	}
}
