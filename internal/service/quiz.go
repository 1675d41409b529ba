package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/DanRulev/nihongo.git/internal/models"
	"github.com/DanRulev/nihongo.git/internal/scheduler"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	highTier   = 0.8
	mediumTier = 0.5
)

type QuizS struct {
	deck  DeckI
	sched SchedulerI
	log   *zap.Logger
}

func NewQuizService(deck DeckI, sched SchedulerI, log *zap.Logger) *QuizS {
	return &QuizS{
		deck:  deck,
		sched: sched,
		log:   log,
	}
}

// RunQuiz asks every item of one batch, then applies the outcomes and saves
// once. An error from answers discards the whole session.
func (q *QuizS) RunQuiz(ctx context.Context, req scheduler.Request, answers AnswerProviderI) (models.QuizReport, error) {
	sessionID := uuid.NewString()
	log := q.log.With(zap.String("session_id", sessionID))

	batch, err := q.sched.Select(q.deck.Items(), req)
	if err != nil {
		log.Info("no batch for quiz", zap.Int("count", req.Count), zap.Error(err))
		return models.QuizReport{}, err
	}

	report := models.QuizReport{
		SessionID: sessionID,
		Total:     batch.Len(),
		Results:   make([]models.QuizResult, 0, batch.Len()),
	}
	if q.sched.Strategy() == models.StrategyFrequency {
		report.Seed = scheduler.EncodeSeed(batch.Indices)
	}

	for i, item := range batch.Items {
		if err := ctx.Err(); err != nil {
			log.Warn("quiz aborted", zap.Int("answered", i), zap.Error(err))
			return models.QuizReport{}, err
		}

		answer, err := answers.Ask(ctx, models.Question{
			Number: i + 1,
			Total:  batch.Len(),
			Term:   item.Term,
			Theme:  item.Theme,
		})
		if err != nil {
			log.Warn("quiz aborted", zap.Int("answered", i), zap.Error(err))
			return models.QuizReport{}, fmt.Errorf("quiz aborted: %w", err)
		}

		result := models.QuizResult{
			Term:        item.Term,
			Translation: item.Translation,
			Answer:      answer,
			Correct:     Grade(answer, item.Translation),
		}
		if result.Correct {
			report.Score++
		}
		report.Results = append(report.Results, result)
		answers.Reveal(result)
	}

	for i, item := range batch.Items {
		if err := q.sched.Update(item, report.Results[i].Correct); err != nil {
			return models.QuizReport{}, err
		}
	}

	report.Tier = TierFor(report.Score, report.Total)

	if err := q.deck.Save(ctx); err != nil {
		log.Error("failed to save quiz results", zap.Error(err))
		return report, err
	}

	log.Info("quiz completed",
		zap.Int("score", report.Score),
		zap.Int("total", report.Total),
		zap.String("tier", string(report.Tier)),
	)
	return report, nil
}

// Grade compares case-insensitively, ignoring surrounding whitespace.
func Grade(answer, expected string) bool {
	return strings.ToLower(strings.TrimSpace(answer)) == strings.ToLower(strings.TrimSpace(expected))
}

func TierFor(score, total int) models.Tier {
	if total <= 0 {
		return models.TierLow
	}
	ratio := float64(score) / float64(total)
	switch {
	case ratio >= highTier:
		return models.TierHigh
	case ratio >= mediumTier:
		return models.TierMedium
	default:
		return models.TierLow
	}
}
