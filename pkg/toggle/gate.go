package toggle

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/apimkit/apimctl/pkg/selection"
)

// Confirmer asks the user whether to apply action to the selection.
type Confirmer interface {
	Confirm(ctx context.Context, triples []selection.Triple, action Action) (bool, error)
}

// Gate is a line based Confirmer reading answers from a terminal or pipe.
//
// A Gate reads one line at a time. When Confirm returns early because its
// context was cancelled, the read already started stays pending and the next
// Confirm receives its line. A Gate is not safe for concurrent use.
type Gate struct {
	in      *bufio.Reader
	out     io.Writer
	pending chan answer
}

type answer struct {
	line string
	err  error
}

// NewGate creates a Gate prompting on out and reading answers from in.
func NewGate(in io.Reader, out io.Writer) *Gate {
	return &Gate{in: bufio.NewReader(in), out: out}
}

// Prompt renders the confirmation question for triples.
func Prompt(triples []selection.Triple, action Action) string {
	var b strings.Builder
	b.WriteString("The following endpoints match with predicate:\n")
	for _, t := range triples {
		fmt.Fprintf(&b, "\t- %s\n", t)
	}
	fmt.Fprintf(&b, "These endpoints will be %s. Continue? (y/n) ", action.PastTense())
	return b.String()
}

// Affirmative reports whether answer accepts the prompt. Only "y" and "yes"
// do; everything else, including an empty line, declines.
func Affirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

// Confirm prints the prompt and blocks until one line is read.
// End of input without an answer declines. Cancelling ctx returns ctx.Err()
// without waiting for the read, which is then handed to the next call.
func (g *Gate) Confirm(ctx context.Context, triples []selection.Triple, action Action) (bool, error) {
	if _, err := io.WriteString(g.out, Prompt(triples, action)); err != nil {
		return false, fmt.Errorf("%w: %w", ErrConfirmation, err)
	}

	if g.pending == nil {
		answers := make(chan answer, 1)
		go func() {
			line, err := g.in.ReadString('\n')
			answers <- answer{line: line, err: err}
		}()
		g.pending = answers
	}

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case a := <-g.pending:
		g.pending = nil
		if a.err != nil && !errors.Is(a.err, io.EOF) {
			return false, fmt.Errorf("%w: %w", ErrConfirmation, a.err)
		}
		return Affirmative(a.line), nil
	}
}
