package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/DanRulev/nihongo.git/internal/models"
)

// ErrInputClosed is returned when the input ends before an answer was typed.
var ErrInputClosed = errors.New("input closed")

// Prompter reads one answer per line. It works with a terminal as well as
// with piped input. A single goroutine started on the first prompt owns the
// reader for the life of the Prompter; a canceled prompt leaves it blocked
// until the next line or the end of input, and the next prompt gets that line.
type Prompter struct {
	in    *bufio.Reader
	out   io.Writer
	start sync.Once
	lines chan line
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:    bufio.NewReader(in),
		out:   out,
		lines: make(chan line, 1),
	}
}

type line struct {
	text string
	err  error
}

func (p *Prompter) read() {
	defer close(p.lines)
	for {
		text, err := p.in.ReadString('\n')
		p.lines <- line{text: text, err: err}
		if err != nil {
			return
		}
	}
}

// Line prints label and waits for one line of input or ctx cancellation.
func (p *Prompter) Line(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.out, label)
	p.start.Do(func() { go p.read() })

	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return "", ctx.Err()
	case l, ok := <-p.lines:
		if !ok {
			fmt.Fprintln(p.out)
			return "", ErrInputClosed
		}
		if l.err != nil {
			if errors.Is(l.err, io.EOF) && l.text != "" {
				return strings.TrimRight(l.text, "\r\n"), nil
			}
			if errors.Is(l.err, io.EOF) {
				fmt.Fprintln(p.out)
				return "", ErrInputClosed
			}
			return "", fmt.Errorf("read input: %w", l.err)
		}
		return strings.TrimRight(l.text, "\r\n"), nil
	}
}

func (p *Prompter) Ask(ctx context.Context, q models.Question) (string, error) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, HeaderStyle.Render(fmt.Sprintf("Question %d of %d:", q.Number, q.Total)))

	label := fmt.Sprintf("What's the French translation of '%s'", TermStyle.Render(q.Term))
	if q.Theme != "" {
		label += " " + ThemeStyle.Render("("+q.Theme+")")
	}
	return p.Line(ctx, label+"? ")
}

func (p *Prompter) Reveal(result models.QuizResult) {
	if result.Correct {
		fmt.Fprintln(p.out, SuccessStyle.Render("Correct!"))
		return
	}
	fmt.Fprintf(p.out, "%s The correct answer is: %s\n",
		ErrorStyle.Render("Incorrect."),
		TranslationStyle.Render(result.Translation),
	)
}
