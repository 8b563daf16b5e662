package merge

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/dshills/ecmerge/internal/compare"
)

// Side selects which source's value wins a conflict.
type Side int

const (
	SideA Side = iota
	SideB
)

func (s Side) String() string {
	if s == SideB {
		return "b"
	}
	return "a"
}

// ParseSide converts "a" or "b" (any case) into a Side.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a":
		return SideA, nil
	case "b":
		return SideB, nil
	default:
		return SideA, fmt.Errorf("side must be a or b, got %q", s)
	}
}

// ErrAborted is returned when the user cancels an interactive prompt.
var ErrAborted = errors.New("merge aborted")

// Resolver decides which value of a conflicting key goes into the output.
type Resolver interface {
	Resolve(d compare.Diff) (Side, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(d compare.Diff) (Side, error)

func (f ResolverFunc) Resolve(d compare.Diff) (Side, error) {
	return f(d)
}

// Prefer returns a Resolver that always picks side.
func Prefer(side Side) Resolver {
	return ResolverFunc(func(compare.Diff) (Side, error) {
		return side, nil
	})
}

// LineReader reads one line of input after showing a prompt.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// Prompter asks the user to pick a side for every conflicting key.
// An empty answer picks A.
type Prompter struct {
	out   io.Writer
	in    LineReader
	state *liner.State
}

// NewPrompter returns a Prompter reading from the terminal through liner.
// Call Close when done.
func NewPrompter(out io.Writer) *Prompter {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return &Prompter{out: out, in: state, state: state}
}

// NewPrompterWithReader returns a Prompter reading answers from in.
func NewPrompterWithReader(out io.Writer, in LineReader) *Prompter {
	return &Prompter{out: out, in: in}
}

// Resolve shows the key and both values, then waits for a yes/no answer.
// Yes picks A, no picks B. Unrecognised answers ask again.
func (p *Prompter) Resolve(d compare.Diff) (Side, error) {
	fmt.Fprintf(p.out, "%s\ny : %s\nn : %s\n", d.Key, d.A(), d.B())
	for {
		answer, err := p.in.Prompt("? [Y/n] ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return SideA, ErrAborted
			}
			return SideA, fmt.Errorf("reading answer: %w", err)
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "", "y", "yes":
			return SideA, nil
		case "n", "no":
			return SideB, nil
		}
		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}

// Close restores the terminal.
func (p *Prompter) Close() error {
	if p.state == nil {
		return nil
	}
	return p.state.Close()
}
