// Package scheduler decides which vocabulary items are reviewed next and how
// a graded answer changes their adaptive state.
package scheduler

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/DanRulev/nihongo.git/internal/models"
)

// Request describes the batch a quiz asks for.
type Request struct {
	Count int
	// Exact turns a short due batch into an error instead of a smaller quiz.
	Exact bool
	// Seed replays a previous batch, see EncodeSeed.
	Seed string
}

// Scheduler is implemented by every review strategy.
type Scheduler interface {
	Strategy() models.Strategy
	// NewState resets item to the initial state of the strategy.
	NewState(item *models.VocabItem)
	Select(items []*models.VocabItem, req Request) (models.Batch, error)
	Update(item *models.VocabItem, correct bool) error
}

// Float64Source is the randomness the weighted strategy draws from.
// *rand.Rand satisfies it.
type Float64Source interface {
	Float64() float64
}

type Config struct {
	Strategy models.Strategy
	MaxBox   uint
	RandSeed int64
	Now      func() time.Time
}

// DefaultMaxBox matches the five boxes of the classic Leitner setup.
const DefaultMaxBox = 5

func New(cfg Config) (Scheduler, error) {
	now := cfg.Now
	if now == nil {
		now = utcNow
	}

	switch cfg.Strategy {
	case models.StrategyLeitner:
		maxBox := cfg.MaxBox
		if maxBox == 0 {
			maxBox = DefaultMaxBox
		}
		return NewLeitner(maxBox, now), nil
	case models.StrategyFrequency:
		seed := cfg.RandSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return NewFrequency(rand.New(rand.NewSource(seed))), nil
	default:
		return nil, fmt.Errorf("%w: unknown strategy %q", models.ErrValidation, cfg.Strategy)
	}
}

func utcNow() time.Time {
	return time.Now().UTC()
}

func validCount(count int) error {
	if count <= 0 {
		return fmt.Errorf("%w: quiz size must be positive, got %d", models.ErrValidation, count)
	}
	return nil
}
