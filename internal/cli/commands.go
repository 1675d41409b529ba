package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/DanRulev/nihongo.git/internal/models"
	"github.com/DanRulev/nihongo.git/internal/scheduler"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (r *runner) addCmd() *cobra.Command {
	var theme string

	cmd := &cobra.Command{
		Use:   "add [term] [translation]",
		Short: "Add a new word",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			prompt := NewPrompter(cmd.InOrStdin(), out)

			var term, translation string
			var err error

			if len(args) > 0 {
				term = args[0]
			} else if term, err = prompt.Line(ctx, "Enter the Japanese word: "); err != nil {
				return err
			}

			if len(args) > 1 {
				translation = args[1]
			} else {
				suggestion := r.suggestion(cmd, term)
				label := "Enter the French translation: "
				if suggestion != "" {
					label = fmt.Sprintf("Enter the French translation [%s]: ", TranslationStyle.Render(suggestion))
				}
				if translation, err = prompt.Line(ctx, label); err != nil {
					return err
				}
				if strings.TrimSpace(translation) == "" {
					translation = suggestion
				}
			}

			item := models.VocabItem{Term: term, Translation: translation, Theme: theme}
			if err := r.app.Words.AddWord(ctx, item); err != nil {
				return report(out, err)
			}

			fmt.Fprintf(out, "%s Card added successfully!\n", SuccessStyle.Render("Success:"))
			return nil
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "optional theme of the word")
	return cmd
}

// suggestion returns a translation hint, or "" when none is available.
func (r *runner) suggestion(cmd *cobra.Command, term string) string {
	if strings.TrimSpace(term) == "" || !r.app.Words.SuggestionsEnabled() {
		return ""
	}
	res, err := r.app.Words.Suggest(cmd.Context(), term)
	if err != nil {
		r.app.Log.Warn("no suggestion", zap.String("term", term), zap.Error(err))
		return ""
	}
	return res.Text
}

func (r *runner) quizCmd() *cobra.Command {
	var (
		count int
		seed  string
		exact bool
	)

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Start a quiz session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			req := scheduler.Request{
				Count: r.cfg.Quiz.Count,
				Exact: r.cfg.Quiz.Exact,
				Seed:  seed,
			}
			if cmd.Flags().Changed("count") {
				req.Count = count
			}
			if cmd.Flags().Changed("exact") {
				req.Exact = exact
			}

			rep, err := r.app.Quiz.RunQuiz(cmd.Context(), req, NewPrompter(cmd.InOrStdin(), out))
			if err != nil && !errors.Is(err, models.ErrPersistence) {
				return report(out, err)
			}
			if rep.Total > 0 {
				printReport(cmd, rep)
			}
			return err
		},
	}

	cmd.Flags().IntVarP(&count, "count", "c", 10, "number of questions")
	cmd.Flags().StringVar(&seed, "seed", "", "replay a previous frequency quiz")
	cmd.Flags().BoolVar(&exact, "exact", false, "fail instead of asking fewer questions than requested")
	return cmd
}

func printReport(cmd *cobra.Command, rep models.QuizReport) {
	out := cmd.OutOrStdout()

	var badge string
	switch rep.Tier {
	case models.TierHigh:
		badge = "Excellent!"
	case models.TierMedium:
		badge = "Good job."
	default:
		badge = "Keep practicing."
	}

	fmt.Fprintf(out, "\n%s Your score: %s out of %d %s\n",
		HeaderStyle.Render("Quiz completed!"),
		ScoreStyle.Render(fmt.Sprint(rep.Score)),
		rep.Total,
		badge,
	)
	if rep.Seed != "" {
		fmt.Fprintf(out, "%s %s\n", FooterStyle.Render("Replay with --seed"), rep.Seed)
	}
}

func (r *runner) listCmd() *cobra.Command {
	var theme string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			words := r.app.Words.Words(theme)
			for _, w := range words {
				fmt.Fprintf(out, "%s: %s", TermStyle.Render(w.Term), TranslationStyle.Render(w.Translation))
				if w.Theme != "" {
					fmt.Fprintf(out, " %s", ThemeStyle.Render("["+w.Theme+"]"))
				}
				fmt.Fprintln(out)
			}

			stats := r.app.Words.WordStat()
			footer := fmt.Sprintf("%d cards", stats.TotalCount)
			if theme != "" {
				footer = fmt.Sprintf("%d of %d cards", len(words), stats.TotalCount)
			}
			if r.app.Strategy == models.StrategyLeitner {
				footer += fmt.Sprintf(", %d due", stats.DueCount)
			}
			fmt.Fprintln(out, FooterStyle.Render(footer))
			return nil
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "only words of this theme")
	return cmd
}

func (r *runner) dedupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dedup",
		Short: "Remove repeated words, keeping the first one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			removed, err := r.app.Words.Dedup(cmd.Context())
			if err != nil {
				return err
			}
			if removed == 0 {
				fmt.Fprintln(out, "No duplicates found.")
				return nil
			}
			fmt.Fprintf(out, "%s Removed %d duplicate cards.\n", SuccessStyle.Render("Success:"), removed)
			return nil
		},
	}
}

func (r *runner) suggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <term>",
		Short: "Suggest a French translation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			res, err := r.app.Words.Suggest(cmd.Context(), args[0])
			if err != nil {
				return report(out, err)
			}

			fmt.Fprintf(out, "%s: %s", TermStyle.Render(args[0]), TranslationStyle.Render(res.Text))
			if !res.Reliable {
				fmt.Fprintf(out, " %s", WarnStyle.Render(fmt.Sprintf("(match %.2f)", res.Match)))
			}
			fmt.Fprintln(out)
			if len(res.Alternatives) > 0 {
				fmt.Fprintf(out, "%s %s\n", FooterStyle.Render("Alternatives:"), strings.Join(res.Alternatives, ", "))
			}
			return nil
		},
	}
}
