package models

// Batch is the ordered selection for one quiz session. Indices point into the
// collection snapshot the batch was selected from.
type Batch struct {
	Items   []*VocabItem
	Indices []int
}

func (b Batch) Len() int {
	return len(b.Items)
}

type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

type Question struct {
	Number int
	Total  int
	Term   string
	Theme  string
}

type QuizResult struct {
	Term        string
	Translation string
	Answer      string
	Correct     bool
}

type QuizReport struct {
	SessionID string
	Score     int
	Total     int
	Tier      Tier
	Seed      string
	Results   []QuizResult
}

func (r QuizReport) Ratio() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Score) / float64(r.Total)
}
