package scheduler

import (
	"errors"
	"fmt"
	"time"

	"github.com/DanRulev/nihongo.git/internal/models"
)

// Leitner moves items between boxes. A correct answer promotes an item one
// box, a miss sends it back to box 0, and box n is reviewed again after 2^n
// days.
type Leitner struct {
	maxBox uint
	now    func() time.Time
}

func NewLeitner(maxBox uint, now func() time.Time) *Leitner {
	if maxBox == 0 {
		maxBox = DefaultMaxBox
	}
	return &Leitner{maxBox: maxBox, now: now}
}

func (l *Leitner) Strategy() models.Strategy {
	return models.StrategyLeitner
}

func (l *Leitner) MaxBox() uint {
	return l.maxBox
}

// NewState puts item in box 0, due immediately.
func (l *Leitner) NewState(item *models.VocabItem) {
	item.Frequency = nil
	item.Box = &models.BoxState{NextReview: l.now()}
}

// SelectDue returns the indices of at most max due items in collection order.
// A term is returned once even if the collection still holds duplicates.
func (l *Leitner) SelectDue(items []*models.VocabItem, max int) []int {
	now := l.now()
	due := make([]int, 0, max)
	taken := make(map[string]bool, max)
	for i, it := range items {
		if len(due) == max {
			break
		}
		if it.IsDue(now) && !taken[it.Term] {
			taken[it.Term] = true
			due = append(due, i)
		}
	}
	return due
}

func (l *Leitner) DueCount(items []*models.VocabItem) int {
	return len(l.SelectDue(items, len(items)))
}

func (l *Leitner) Select(items []*models.VocabItem, req Request) (models.Batch, error) {
	if req.Seed != "" {
		return models.Batch{}, models.ErrSeedUnsupported
	}
	if err := validCount(req.Count); err != nil {
		return models.Batch{}, err
	}

	due := l.SelectDue(items, req.Count)
	if len(due) == 0 {
		return models.Batch{}, models.ErrNoItemsDue
	}
	if req.Exact && len(due) < req.Count {
		return models.Batch{}, fmt.Errorf("%w: %d due, %d requested", models.ErrNotEnoughDue, len(due), req.Count)
	}

	batch := models.Batch{
		Items:   make([]*models.VocabItem, 0, len(due)),
		Indices: due,
	}
	for _, idx := range due {
		batch.Items = append(batch.Items, items[idx])
	}
	return batch, nil
}

func (l *Leitner) Update(item *models.VocabItem, correct bool) error {
	if item == nil {
		return errors.New("update: nil item")
	}
	if item.Box == nil {
		l.NewState(item)
	}

	switch {
	case !correct:
		item.Box.BoxNumber = 0
	case item.Box.BoxNumber < l.maxBox-1:
		item.Box.BoxNumber++
	default:
		item.Box.BoxNumber = l.maxBox - 1
	}
	item.Box.NextReview = NextReview(l.now(), item.Box.BoxNumber)
	return nil
}

// NextReview is from plus 2^box calendar days.
func NextReview(from time.Time, box uint) time.Time {
	return from.AddDate(0, 0, 1<<box)
}
