package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DanRulev/nihongo.git/internal/models"
	"go.uber.org/zap"
)

type WordS struct {
	deck       DeckI
	translator TranslatorI
	source     string
	target     string
	now        func() time.Time
	log        *zap.Logger
}

func NewWordService(deck DeckI, tr TranslatorI, opts Options, log *zap.Logger) *WordS {
	now := opts.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &WordS{
		deck:       deck,
		translator: tr,
		source:     opts.Source,
		target:     opts.Target,
		now:        now,
		log:        log,
	}
}

// AddWord stores a new card and persists the collection.
func (w *WordS) AddWord(ctx context.Context, item models.VocabItem) error {
	if err := w.deck.Add(item); err != nil {
		w.log.Debug("card rejected", zap.String("term", item.Term), zap.Error(err))
		return err
	}
	if err := w.deck.Save(ctx); err != nil {
		w.log.Error("failed to save after add", zap.String("term", item.Term), zap.Error(err))
		return err
	}
	w.log.Info("card added", zap.String("term", item.Term))
	return nil
}

// Words returns the collection sorted by term. An empty theme means all cards.
func (w *WordS) Words(theme string) []models.VocabItem {
	all := w.deck.Sorted()
	if theme == "" {
		return all
	}

	words := make([]models.VocabItem, 0, len(all))
	for _, item := range all {
		if strings.EqualFold(item.Theme, theme) {
			words = append(words, item)
		}
	}
	return words
}

// WordStat counts cards and, for the box strategy, how many are due now.
func (w *WordS) WordStat() models.WordStats {
	stats := models.WordStats{TotalCount: w.deck.Len()}
	if w.deck.Strategy() != models.StrategyLeitner {
		return stats
	}

	now := w.now()
	for _, item := range w.deck.Items() {
		if item.IsDue(now) {
			stats.DueCount++
		}
	}
	return stats
}

// Dedup drops repeated terms and saves only when something was removed.
func (w *WordS) Dedup(ctx context.Context) (int, error) {
	removed := w.deck.Dedup()
	if removed == 0 {
		return 0, nil
	}
	if err := w.deck.Save(ctx); err != nil {
		return 0, err
	}
	w.log.Info("duplicates removed", zap.Int("count", removed))
	return removed, nil
}

// Suggest asks the translation provider for a translation of term.
func (w *WordS) Suggest(ctx context.Context, term string) (models.TranslationResult, error) {
	if w.translator == nil {
		return models.TranslationResult{}, fmt.Errorf("%w: suggestions are disabled", models.ErrTranslation)
	}

	term = strings.TrimSpace(term)
	if term == "" {
		return models.TranslationResult{}, models.ErrEmptyField
	}

	res, err := w.translator.Translate(ctx, term, w.source, w.target)
	if err != nil {
		w.log.Warn("failed to translate word", zap.String("term", term), zap.Error(err))
		return models.TranslationResult{}, err
	}
	if res.Error != "" {
		return models.TranslationResult{}, fmt.Errorf("%w: %s", models.ErrTranslation, res.Error)
	}
	if res.Text == "" {
		return models.TranslationResult{}, fmt.Errorf("%w: empty translation for %q", models.ErrTranslation, term)
	}
	res.Alternatives = removeDuplicates(res.Alternatives)
	return res, nil
}

func (w *WordS) SuggestionsEnabled() bool {
	return w.translator != nil
}

func removeDuplicates(slice []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0)
	for _, item := range slice {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}
