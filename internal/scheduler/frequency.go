package scheduler

import (
	"errors"
	"fmt"

	"github.com/DanRulev/nihongo.git/internal/models"
)

// Frequency picks items at random, weighted by how often they were missed.
type Frequency struct {
	rng Float64Source
}

func NewFrequency(rng Float64Source) *Frequency {
	return &Frequency{rng: rng}
}

func (f *Frequency) Strategy() models.Strategy {
	return models.StrategyFrequency
}

func (f *Frequency) NewState(item *models.VocabItem) {
	item.Box = nil
	item.Frequency = &models.FrequencyState{}
}

// Select draws req.Count distinct items, recomputing weights for every draw.
// A non-empty req.Seed replays a previous batch instead.
func (f *Frequency) Select(items []*models.VocabItem, req Request) (models.Batch, error) {
	if req.Seed != "" {
		return replay(items, req.Seed)
	}
	if err := validCount(req.Count); err != nil {
		return models.Batch{}, err
	}
	if n := distinctTerms(items); n < req.Count {
		return models.Batch{}, fmt.Errorf("%w: requested %d, have %d", models.ErrNotEnoughItems, req.Count, n)
	}

	taken := make(map[string]bool, req.Count)
	batch := models.Batch{
		Items:   make([]*models.VocabItem, 0, req.Count),
		Indices: make([]int, 0, req.Count),
	}
	for len(batch.Items) < req.Count {
		idx, ok := f.draw(items, taken)
		if !ok {
			return models.Batch{}, fmt.Errorf("%w: selected %d of %d", models.ErrPoolExhausted, len(batch.Items), req.Count)
		}
		taken[items[idx].Term] = true
		batch.Items = append(batch.Items, items[idx])
		batch.Indices = append(batch.Indices, idx)
	}

	return batch, nil
}

// draw skips every item whose term is already in the batch, so duplicate
// terms left in the collection are asked at most once.
func (f *Frequency) draw(items []*models.VocabItem, taken map[string]bool) (int, bool) {
	var total float64
	last := -1
	for i, it := range items {
		if taken[it.Term] {
			continue
		}
		w := Weight(it)
		if w <= 0 {
			continue
		}
		total += w
		last = i
	}
	if last < 0 {
		return 0, false
	}

	r := f.rng.Float64() * total
	for i, it := range items {
		if taken[it.Term] {
			continue
		}
		w := Weight(it)
		if w <= 0 {
			continue
		}
		if untried(it) || w >= r {
			return i, true
		}
		r -= w
	}

	// rounding left a sliver of r past the last weight
	return last, true
}

func (f *Frequency) Update(item *models.VocabItem, correct bool) error {
	if item == nil {
		return errors.New("update: nil item")
	}
	if item.Frequency == nil {
		f.NewState(item)
	}

	item.Frequency.AttemptCount++
	if correct {
		item.Frequency.SuccessCount++
	}
	return nil
}

// Weight is 1 - successes/attempts. Items never attempted weigh 1 whatever
// their success counter says.
func Weight(item *models.VocabItem) float64 {
	if untried(item) {
		return 1
	}
	st := item.Frequency
	if st.SuccessCount >= st.AttemptCount {
		return 0
	}
	return 1 - float64(st.SuccessCount)/float64(st.AttemptCount)
}

func distinctTerms(items []*models.VocabItem) int {
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		seen[it.Term] = true
	}
	return len(seen)
}

func untried(item *models.VocabItem) bool {
	return item.Frequency == nil || item.Frequency.AttemptCount == 0
}

func replay(items []*models.VocabItem, seed string) (models.Batch, error) {
	indices, err := DecodeSeed(seed, len(items))
	if err != nil {
		return models.Batch{}, err
	}

	batch := models.Batch{
		Items:   make([]*models.VocabItem, 0, len(indices)),
		Indices: indices,
	}
	for _, idx := range indices {
		batch.Items = append(batch.Items, items[idx])
	}
	return batch, nil
}
