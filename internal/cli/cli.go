// Package cli is the command line front-end: a cobra command tree over the
// word and quiz services.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/DanRulev/nihongo.git/internal/config"
	"github.com/DanRulev/nihongo.git/internal/models"
	"github.com/DanRulev/nihongo.git/internal/scheduler"
	"github.com/DanRulev/nihongo.git/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type WordsI interface {
	AddWord(ctx context.Context, item models.VocabItem) error
	Words(theme string) []models.VocabItem
	WordStat() models.WordStats
	Dedup(ctx context.Context) (int, error)
	Suggest(ctx context.Context, term string) (models.TranslationResult, error)
	SuggestionsEnabled() bool
}

type QuizI interface {
	RunQuiz(ctx context.Context, req scheduler.Request, answers service.AnswerProviderI) (models.QuizReport, error)
}

// App is what a command needs once configuration is resolved.
type App struct {
	Words    WordsI
	Quiz     QuizI
	Strategy models.Strategy
	Log      *zap.Logger
	Close    func() error
}

// Factory wires an App for cfg. It runs once per invocation, before the
// selected command.
type Factory func(ctx context.Context, cfg *config.Config) (*App, error)

type runner struct {
	factory Factory

	configFile string
	storePath  string
	strategy   string

	cfg *config.Config
	app *App
}

// Run executes one command line and releases whatever the factory opened.
func Run(ctx context.Context, factory Factory, args []string, in io.Reader, out io.Writer) error {
	r := &runner{factory: factory}

	root := r.rootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(out)

	err := root.ExecuteContext(ctx)
	if r.app != nil && r.app.Close != nil {
		if cerr := r.app.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func (r *runner) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "nihongo",
		Short:             "Learn Japanese words with French translations",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: r.setup,
	}

	root.PersistentFlags().StringVar(&r.configFile, "config", "", "config file (default: config.yaml in the usual places)")
	root.PersistentFlags().StringVar(&r.storePath, "store", "", "path of the vocabulary store")
	root.PersistentFlags().StringVar(&r.strategy, "strategy", "", "review strategy: leitner or frequency")

	root.AddCommand(
		r.addCmd(),
		r.quizCmd(),
		r.listCmd(),
		r.dedupCmd(),
		r.suggestCmd(),
	)
	return root
}

func (r *runner) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Init(r.configFile)
	if err != nil {
		return err
	}

	if r.storePath != "" {
		cfg.Store.Path = r.storePath
	}
	if r.strategy != "" {
		cfg.Scheduler.Strategy = r.strategy
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	app, err := r.factory(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	r.cfg = cfg
	r.app = app
	return nil
}

// report prints conditions the user can act on and swallows them; anything
// else goes back to the caller.
func report(out io.Writer, err error) error {
	if errors.Is(err, models.ErrValidation) || errors.Is(err, models.ErrInsufficientData) {
		fmt.Fprintln(out, WarnStyle.Render(err.Error()))
		return nil
	}
	return err
}
