package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/DanRulev/nihongo.git/internal/config"
	"github.com/DanRulev/nihongo.git/internal/models"
	"github.com/DanRulev/nihongo.git/internal/repository"
	"github.com/DanRulev/nihongo.git/internal/scheduler"
	"github.com/DanRulev/nihongo.git/internal/service"
	"github.com/DanRulev/nihongo.git/internal/storage/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func testFactory(ctx context.Context, cfg *config.Config) (*App, error) {
	clock := func() time.Time { return testNow }

	sched, err := scheduler.New(scheduler.Config{
		Strategy: models.Strategy(cfg.Scheduler.Strategy),
		MaxBox:   cfg.Scheduler.MaxBox,
		RandSeed: 7,
		Now:      clock,
	})
	if err != nil {
		return nil, err
	}

	d := deck.New(repository.NewFileRepository(cfg.Store.Path), sched, cfg.Scheduler.MaxBox, zap.NewNop())
	if err := d.Load(ctx); err != nil {
		return nil, err
	}

	svc := service.InitServices(d, sched, nil, service.Options{Now: clock}, zap.NewNop())
	return &App{
		Words:    svc.WordS,
		Quiz:     svc.QuizS,
		Strategy: sched.Strategy(),
		Log:      zap.NewNop(),
	}, nil
}

// workspace writes a config pointing at a fresh store and returns the
// global flags that select it.
func workspace(t *testing.T, strategy string) []string {
	t.Helper()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	body := "store:\n  path: " + filepath.Join(dir, "cards.json") + "\nscheduler:\n  strategy: " + strategy + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o644))
	return []string{"--config", cfgPath}
}

func run(t *testing.T, global []string, input string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	err := Run(context.Background(), testFactory, append(args, global...), strings.NewReader(input), &out)
	return out.String(), err
}

func TestRun_AddAndList(t *testing.T) {
	t.Parallel()

	ws := workspace(t, "leitner")

	out, err := run(t, ws, "", "add", "猫", "chat", "--theme", "animaux")
	require.NoError(t, err)
	assert.Contains(t, out, "Card added successfully!")

	out, err = run(t, ws, "犬\nchien\n", "add")
	require.NoError(t, err)
	assert.Contains(t, out, "Enter the Japanese word:")
	assert.Contains(t, out, "Enter the French translation:")

	out, err = run(t, ws, "", "add", "猫", "minou")
	require.NoError(t, err)
	assert.Contains(t, out, "card already exists")

	out, err = run(t, ws, "", "add", " ", "vide")
	require.NoError(t, err)
	assert.Contains(t, out, "term and translation are required")

	out, err = run(t, ws, "", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "犬: chien", lines[0])
	assert.Equal(t, "猫: chat [animaux]", lines[1])
	assert.Equal(t, "2 cards, 2 due", lines[2])

	out, err = run(t, ws, "", "list", "--theme", "animaux")
	require.NoError(t, err)
	assert.Contains(t, out, "猫: chat")
	assert.NotContains(t, out, "犬")
	assert.Contains(t, out, "1 of 2 cards")
}

func TestRun_QuizLeitner(t *testing.T) {
	t.Parallel()

	ws := workspace(t, "leitner")
	for _, w := range [][2]string{{"水", "eau"}, {"火", "feu"}, {"木", "arbre"}} {
		_, err := run(t, ws, "", "add", w[0], w[1])
		require.NoError(t, err)
	}

	out, err := run(t, ws, "EAU\nflamme\narbre\n", "quiz", "--count", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Question 1 of 3:")
	assert.Contains(t, out, "Correct!")
	assert.Contains(t, out, "Incorrect. The correct answer is: feu")
	assert.Contains(t, out, "Your score: 2 out of 3")
	assert.NotContains(t, out, "--seed")

	// every card moved forward, so nothing is due on the same day
	out, err = run(t, ws, "", "quiz")
	require.NoError(t, err)
	assert.Contains(t, out, "no cards due for quiz")
}

func TestRun_QuizShortBatch(t *testing.T) {
	t.Parallel()

	ws := workspace(t, "leitner")
	_, err := run(t, ws, "", "add", "水", "eau")
	require.NoError(t, err)

	out, err := run(t, ws, "eau\n", "quiz", "--count", "5", "--exact")
	require.NoError(t, err)
	assert.Contains(t, out, "not enough cards due for quiz")
	assert.NotContains(t, out, "Question")

	out, err = run(t, ws, "eau\n", "quiz", "--count", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Your score: 1 out of 1")
}

func TestRun_QuizFrequencySeed(t *testing.T) {
	t.Parallel()

	ws := workspace(t, "frequency")
	for _, w := range [][2]string{{"水", "eau"}, {"火", "feu"}} {
		_, err := run(t, ws, "", "add", w[0], w[1])
		require.NoError(t, err)
	}

	out, err := run(t, ws, "x\ny\n", "quiz", "--count", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Your score: 0 out of 2")
	assert.Contains(t, out, "Replay with --seed")

	out, err = run(t, ws, "feu\neau\n", "quiz", "--count", "2", "--seed", "1,0")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "火"), strings.Index(out, "水"))
	assert.Contains(t, out, "Your score: 2 out of 2")
	assert.Contains(t, out, "Replay with --seed 1,0")

	_, err = run(t, ws, "", "quiz", "--seed", "0,7")
	require.ErrorIs(t, err, models.ErrSeedOutOfRange)
}

func TestRun_QuizAbortPersistsNothing(t *testing.T) {
	t.Parallel()

	ws := workspace(t, "leitner")
	for _, w := range [][2]string{{"水", "eau"}, {"火", "feu"}} {
		_, err := run(t, ws, "", "add", w[0], w[1])
		require.NoError(t, err)
	}

	_, err := run(t, ws, "eau\n", "quiz", "--count", "2")
	require.ErrorIs(t, err, ErrInputClosed)

	out, err := run(t, ws, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "2 cards, 2 due")
}

func TestRun_Dedup(t *testing.T) {
	t.Parallel()

	ws := workspace(t, "leitner")
	_, err := run(t, ws, "", "add", "水", "eau")
	require.NoError(t, err)

	out, err := run(t, ws, "", "dedup")
	require.NoError(t, err)
	assert.Contains(t, out, "No duplicates found.")
}

func TestRun_SuggestDisabled(t *testing.T) {
	t.Parallel()

	ws := workspace(t, "leitner")
	_, err := run(t, ws, "", "suggest", "猫")
	require.ErrorIs(t, err, models.ErrTranslation)
}

func TestRun_BadConfig(t *testing.T) {
	t.Parallel()

	ws := workspace(t, "leitner")

	_, err := run(t, ws, "", "list", "--strategy", "sm2")
	require.Error(t, err)

	_, err = run(t, []string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, "", "list")
	require.Error(t, err)
}

func TestRun_StoreOverride(t *testing.T) {
	t.Parallel()

	ws := workspace(t, "leitner")
	other := filepath.Join(t.TempDir(), "other.yaml")

	_, err := run(t, ws, "", "add", "水", "eau", "--store", other)
	require.NoError(t, err)

	data, err := os.ReadFile(other)
	require.NoError(t, err)
	assert.Contains(t, string(data), "水")

	out, err := run(t, ws, "", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "0 cards")
}

func TestPrompter_Line(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "line", input: "chat\n", want: "chat"},
		{name: "crlf", input: "chat\r\n", want: "chat"},
		{name: "no trailing newline", input: "chat", want: "chat"},
		{name: "empty line", input: "\n", want: ""},
		{name: "closed", input: "", wantErr: ErrInputClosed},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &out)
			got, err := p.Line(context.Background(), "> ")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "> ", out.String())
		})
	}
}

func TestPrompter_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPrompter(strings.NewReader("chat\n"), &bytes.Buffer{})
	_, err := p.Line(ctx, "> ")
	require.ErrorIs(t, err, context.Canceled)
}

func TestPrompter_CanceledPromptKeepsReader(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	defer pr.Close()

	p := NewPrompter(pr, &bytes.Buffer{})

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		_, err := p.Line(ctx, "> ")
		errc <- err
	}()
	cancel()
	require.ErrorIs(t, <-errc, context.Canceled)

	go func() {
		_, _ = pw.Write([]byte("chat\n"))
		_ = pw.Close()
	}()

	got, err := p.Line(context.Background(), "> ")
	require.NoError(t, err)
	assert.Equal(t, "chat", got)

	for i := 0; i < 2; i++ {
		_, err = p.Line(context.Background(), "> ")
		require.ErrorIs(t, err, ErrInputClosed)
	}
}
