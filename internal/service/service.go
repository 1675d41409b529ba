package service

import (
	"context"
	"time"

	"github.com/DanRulev/nihongo.git/internal/models"
	"github.com/DanRulev/nihongo.git/internal/scheduler"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mock/service_mock.go

type DeckI interface {
	Items() []*models.VocabItem
	Add(item models.VocabItem) error
	Sorted() []models.VocabItem
	Dedup() int
	Len() int
	Strategy() models.Strategy
	Save(ctx context.Context) error
}

type SchedulerI interface {
	Strategy() models.Strategy
	Select(items []*models.VocabItem, req scheduler.Request) (models.Batch, error)
	Update(item *models.VocabItem, correct bool) error
}

// AnswerProviderI is whatever collects answers from the learner.
type AnswerProviderI interface {
	Ask(ctx context.Context, q models.Question) (string, error)
	Reveal(result models.QuizResult)
}

type TranslatorI interface {
	Translate(ctx context.Context, text, source, target string) (models.TranslationResult, error)
}

type Options struct {
	Source string
	Target string
	Now    func() time.Time
}

type Service struct {
	*WordS
	*QuizS
}

// InitServices wires the services. tr may be nil when suggestions are disabled.
func InitServices(deck DeckI, sched SchedulerI, tr TranslatorI, opts Options, log *zap.Logger) *Service {
	return &Service{
		WordS: NewWordService(deck, tr, opts, log),
		QuizS: NewQuizService(deck, sched, log),
	}
}
