package rcs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSyntax is the base of every lexical/structural parse failure.
	ErrSyntax = errors.New("syntax error")
	// ErrMerge reports a delta header and delta text that cannot be
	// paired by revision number.
	ErrMerge = errors.New("cannot pair delta with text")
)

// Frame records one rule on the failure path together with the input
// that remained when the rule gave up.
type Frame struct {
	Rule string
	Rest string
}

// SyntaxError carries the full innermost-to-outermost trace of a parse
// failure. There is no recovery: the first grammar violation anywhere
// aborts the whole parse and propagates one of these up the call chain.
type SyntaxError struct {
	Frames []Frame
}

func (e *SyntaxError) Error() string {
	if len(e.Frames) == 0 {
		return ErrSyntax.Error()
	}
	inner := e.Frames[0]
	at := inner.Rest
	if nl := strings.IndexByte(at, '\n'); nl != -1 {
		at = at[:nl]
	}
	if len(at) > 24 {
		at = at[:24] + "..."
	}
	if len(e.Frames) == 1 {
		return fmt.Sprintf("%s: expected %s at %q", ErrSyntax, inner.Rule, at)
	}
	outer := e.Frames[len(e.Frames)-1]
	return fmt.Sprintf("%s: in %s: expected %s at %q", ErrSyntax, outer.Rule, inner.Rule, at)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// fail starts a trace at the given remaining input.
func fail(rule, rest string) error {
	return &SyntaxError{Frames: []Frame{{Rule: rule, Rest: rest}}}
}

// inRule pushes an enclosing rule onto an existing trace.
func inRule(rule, rest string, err error) error {
	var syn *SyntaxError
	if !errors.As(err, &syn) {
		return err
	}
	syn.Frames = append(syn.Frames, Frame{Rule: rule, Rest: rest})
	return syn
}

// Verbose renders a parse failure against the original input as a
// line/column annotated trace, innermost rule first.
func Verbose(input string, err error) string {
	var syn *SyntaxError
	if !errors.As(err, &syn) {
		return err.Error()
	}

	var b strings.Builder
	for i, f := range syn.Frames {
		offset := len(input) - len(f.Rest)
		if offset < 0 || offset > len(input) {
			offset = len(input)
		}
		line := 1 + strings.Count(input[:offset], "\n")
		start := strings.LastIndexByte(input[:offset], '\n') + 1
		column := offset - start + 1
		end := strings.IndexByte(input[start:], '\n')
		if end == -1 {
			end = len(input)
		} else {
			end += start
		}

		fmt.Fprintf(&b, "%d: at line %d, column %d, in %s:\n", i+1, line, column, f.Rule)
		fmt.Fprintf(&b, "%s\n", input[start:end])
		fmt.Fprintf(&b, "%s^\n", strings.Repeat(" ", column-1))
	}
	return b.String()
}
