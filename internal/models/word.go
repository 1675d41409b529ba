package models

import (
	"database/sql"
	"fmt"
	"time"
)

// Strategy tags which adaptive state shape a collection carries.
type Strategy string

const (
	StrategyLeitner   Strategy = "leitner"
	StrategyFrequency Strategy = "frequency"
)

func (s Strategy) Valid() bool {
	return s == StrategyLeitner || s == StrategyFrequency
}

func ParseStrategy(s string) (Strategy, error) {
	st := Strategy(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: unknown strategy %q", ErrValidation, s)
	}
	return st, nil
}

// FrequencyState is the adaptive state of the weighted-random strategy.
type FrequencyState struct {
	SuccessCount uint `json:"success_count" yaml:"success_count"`
	AttemptCount uint `json:"attempt_count" yaml:"attempt_count"`
}

// BoxState is the adaptive state of the Leitner strategy.
type BoxState struct {
	BoxNumber  uint      `json:"box_number" yaml:"box_number"`
	NextReview time.Time `json:"next_review" yaml:"next_review"`
}

// VocabItem pairs a Japanese term with its French translation. Exactly one of
// Frequency and Box is set, matching the strategy of the owning Collection.
type VocabItem struct {
	Term        string          `json:"term" yaml:"term" validate:"required,max=128"`
	Translation string          `json:"translation" yaml:"translation" validate:"required,max=256"`
	Theme       string          `json:"theme,omitempty" yaml:"theme,omitempty" validate:"max=64"`
	Frequency   *FrequencyState `json:"frequency,omitempty" yaml:"frequency,omitempty"`
	Box         *BoxState       `json:"box,omitempty" yaml:"box,omitempty"`
}

// IsDue reports whether a box-state item should be reviewed at now.
func (i *VocabItem) IsDue(now time.Time) bool {
	return i.Box != nil && !i.Box.NextReview.After(now)
}

// HasState reports whether the item carries the state shape of s.
func (i *VocabItem) HasState(s Strategy) bool {
	switch s {
	case StrategyLeitner:
		return i.Box != nil && i.Frequency == nil
	case StrategyFrequency:
		return i.Frequency != nil && i.Box == nil
	}
	return false
}

// Collection is the persisted form of the record store.
type Collection struct {
	Strategy Strategy    `json:"strategy" yaml:"strategy"`
	MaxBox   uint        `json:"max_box,omitempty" yaml:"max_box,omitempty"`
	Items    []VocabItem `json:"items" yaml:"items"`
}

type WordStats struct {
	TotalCount int
	DueCount   int
}

// DeckMeta and VocabRow are the SQL shapes of a Collection.
type DeckMeta struct {
	Strategy string `db:"strategy"`
	MaxBox   int64  `db:"max_box"`
}

type VocabRow struct {
	Position     int           `db:"position"`
	Term         string        `db:"term"`
	Translation  string        `db:"translation"`
	Theme        string        `db:"theme"`
	SuccessCount sql.NullInt64 `db:"success_count"`
	AttemptCount sql.NullInt64 `db:"attempt_count"`
	BoxNumber    sql.NullInt64 `db:"box_number"`
	NextReview   sql.NullTime  `db:"next_review"`
}
