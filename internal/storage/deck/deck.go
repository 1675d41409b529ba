// Package deck holds the vocabulary collection in memory for one invocation.
package deck

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/DanRulev/nihongo.git/internal/models"
	"github.com/DanRulev/nihongo.git/pkg/validator"
	"go.uber.org/zap"
)

//go:generate mockgen -source=deck.go -destination=mock/deck_mock.go

type BackendI interface {
	Load(ctx context.Context) (models.Collection, error)
	Save(ctx context.Context, c models.Collection) error
}

// StateI gives new and migrated items the state of the active strategy.
type StateI interface {
	Strategy() models.Strategy
	NewState(item *models.VocabItem)
}

type Deck struct {
	mu      sync.Mutex
	backend BackendI
	state   StateI
	maxBox  uint
	items   []*models.VocabItem
	index   map[string]*models.VocabItem
	log     *zap.Logger
}

func New(backend BackendI, state StateI, maxBox uint, log *zap.Logger) *Deck {
	return &Deck{
		backend: backend,
		state:   state,
		maxBox:  maxBox,
		index:   make(map[string]*models.VocabItem),
		log:     log,
	}
}

// Load replaces the in-memory collection with the persisted one. A collection
// written under another strategy has every item reset for the active one.
// Boxes beyond the configured box count are clamped to the last box; a
// success count above the attempt count makes the store corrupt.
func (d *Deck) Load(ctx context.Context) error {
	c, err := d.backend.Load(ctx)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	strategy := d.state.Strategy()
	migrate := c.Strategy != "" && c.Strategy != strategy
	if migrate {
		d.log.Warn("collection strategy differs from configuration, resetting review state",
			zap.String("stored", string(c.Strategy)),
			zap.String("configured", string(strategy)),
			zap.Int("items", len(c.Items)))
	}

	items := make([]*models.VocabItem, 0, len(c.Items))
	index := make(map[string]*models.VocabItem, len(c.Items))
	clamped := 0
	for i := range c.Items {
		item := c.Items[i]
		if migrate || !item.HasState(strategy) {
			d.state.NewState(&item)
		}

		if st := item.Frequency; st != nil && st.SuccessCount > st.AttemptCount {
			return fmt.Errorf("%w: %q has %d successes in %d attempts",
				models.ErrCorruptStore, item.Term, st.SuccessCount, st.AttemptCount)
		}
		if st := item.Box; st != nil && d.maxBox > 0 && st.BoxNumber >= d.maxBox {
			st.BoxNumber = d.maxBox - 1
			clamped++
		}

		items = append(items, &item)
		if _, ok := index[item.Term]; !ok {
			index[item.Term] = &item
		}
	}
	if clamped > 0 {
		d.log.Warn("boxes beyond configured box count moved to the last box",
			zap.Uint("stored_max_box", c.MaxBox),
			zap.Uint("configured_max_box", d.maxBox),
			zap.Int("items", clamped))
	}

	d.items = items
	d.index = index

	d.log.Debug("collection loaded", zap.Int("items", len(d.items)), zap.String("strategy", string(strategy)))
	return nil
}

func (d *Deck) Save(ctx context.Context) error {
	d.mu.Lock()
	c := d.snapshot()
	d.mu.Unlock()

	if err := d.backend.Save(ctx, c); err != nil {
		return err
	}

	d.log.Debug("collection saved", zap.Int("items", len(c.Items)))
	return nil
}

func (d *Deck) snapshot() models.Collection {
	c := models.Collection{
		Strategy: d.state.Strategy(),
		Items:    make([]models.VocabItem, 0, len(d.items)),
	}
	if c.Strategy == models.StrategyLeitner {
		c.MaxBox = d.maxBox
	}
	for _, it := range d.items {
		c.Items = append(c.Items, *it)
	}
	return c
}

// Add appends a new item in the initial state of the active strategy.
func (d *Deck) Add(item models.VocabItem) error {
	item.Term = strings.TrimSpace(item.Term)
	item.Translation = strings.TrimSpace(item.Translation)
	item.Theme = strings.TrimSpace(item.Theme)
	if item.Term == "" || item.Translation == "" {
		return models.ErrEmptyField
	}
	if err := validator.ValidateStruct(item); err != nil {
		return fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.index[item.Term]; ok {
		return fmt.Errorf("%w: %s", models.ErrDuplicateTerm, item.Term)
	}

	d.state.NewState(&item)
	d.items = append(d.items, &item)
	d.index[item.Term] = &item
	return nil
}

// Items returns the collection in stored order. The scheduler updates the
// returned items in place.
func (d *Deck) Items() []*models.VocabItem {
	d.mu.Lock()
	defer d.mu.Unlock()

	items := make([]*models.VocabItem, len(d.items))
	copy(items, d.items)
	return items
}

func (d *Deck) Find(term string) (*models.VocabItem, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	item, ok := d.index[term]
	return item, ok
}

// Sorted returns copies of all items ordered by term.
func (d *Deck) Sorted() []models.VocabItem {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]models.VocabItem, 0, len(d.items))
	for _, it := range d.items {
		out = append(out, *it)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Term < out[j].Term
	})
	return out
}

// Dedup drops every item whose term already appeared earlier and reports how
// many were removed.
func (d *Deck) Dedup() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	seen := make(map[string]bool, len(d.items))
	kept := d.items[:0]
	for _, it := range d.items {
		if seen[it.Term] {
			continue
		}
		seen[it.Term] = true
		kept = append(kept, it)
	}

	removed := len(d.items) - len(kept)
	for i := len(kept); i < len(d.items); i++ {
		d.items[i] = nil
	}
	d.items = kept

	d.index = make(map[string]*models.VocabItem, len(kept))
	for _, it := range kept {
		d.index[it.Term] = it
	}
	return removed
}

func (d *Deck) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.items)
}

func (d *Deck) Strategy() models.Strategy {
	return d.state.Strategy()
}
