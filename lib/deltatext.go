package rcs

import (
	"errors"
	"strings"
)

const ctxDeltaText = "DeltaText"

// TextKind distinguishes the two body forms of a deltatext block.
type TextKind int

const (
	// TextHead is a full revision body, used by the first deltatext
	// block in the file (conventionally the most recent revision).
	TextHead TextKind = iota
	// TextDiff is a decoded diff instruction stream deriving every
	// other revision.
	TextDiff
)

// Text is one revision's body.
type Text struct {
	Kind TextKind
	Full string        // TextHead only
	Diff []DiffCommand // TextDiff only
}

// Empty reports whether the body carries no content.
func (t Text) Empty() bool {
	if t.Kind == TextHead {
		return t.Full == ""
	}
	return len(t.Diff) == 0
}

// DeltaText is one revision's commit log plus body, parsed
// independently of the delta headers and merged in afterwards.
type DeltaText struct {
	Num  Num
	Log  string
	Text Text
}

// ParseDeltaTextHead parses the head form: the text payload is a plain
// escaped string holding the revision's full contents.
//
//g: deltatext ::= num "log" string "text" string
func ParseDeltaTextHead(input string) (rest string, dt DeltaText, err error) {
	rest, dt, err = parseDeltaTextPrefix(input)
	if err != nil {
		return input, DeltaText{}, err
	}
	var full string
	rest, full, err = ParseString(rest)
	if err != nil {
		return input, DeltaText{}, inRule(ctxDeltaText, input, err)
	}
	dt.Text = Text{Kind: TextHead, Full: full}
	return rest, dt, nil
}

// ParseDeltaText parses the ordinary form: the text payload is an
// escaped string whose interior is a diff instruction stream. The
// interior is handed to the diff decoder raw, so diff lines resolve
// the doubled "@" themselves.
func ParseDeltaText(input string) (rest string, dt DeltaText, err error) {
	rest, dt, err = parseDeltaTextPrefix(input)
	if err != nil {
		return input, DeltaText{}, err
	}
	var text Text
	rest, text, err = parseDiffText(rest)
	if err != nil {
		return input, DeltaText{}, inRule(ctxDeltaText, input, err)
	}
	dt.Text = text
	return rest, dt, nil
}

// parseDeltaTextPrefix parses the shared "num log string text" prefix,
// leaving the input positioned at the text payload.
func parseDeltaTextPrefix(input string) (rest string, dt DeltaText, err error) {
	rest, dt.Num, err = ParseNum(ws0(input))
	if err != nil {
		return input, DeltaText{}, inRule(ctxDeltaText, input, err)
	}
	rest, err = literal(ws0(rest), "log")
	if err != nil {
		return input, DeltaText{}, inRule(ctxDeltaText, input, err)
	}
	rest, dt.Log, err = ParseString(ws0(rest))
	if err != nil {
		return input, DeltaText{}, inRule(ctxDeltaText, input, err)
	}
	rest, err = literal(ws0(rest), "text")
	if err != nil {
		return input, DeltaText{}, inRule(ctxDeltaText, input, err)
	}
	return ws0(rest), dt, nil
}

// parseDiffText consumes the outer "@...@" markers and decodes the raw
// interior as zero or more diff commands. The whole interior must be
// consumed by the command stream.
func parseDiffText(input string) (rest string, t Text, err error) {
	rest, lerr := literal(input, "@")
	if lerr != nil {
		return input, Text{}, lerr
	}
	body, rest, berr := rawBody(rest)
	if berr != nil {
		return input, Text{}, inRule("string", input, berr)
	}

	cmds := []DiffCommand{}
	b := body
	for b != "" {
		var cmd DiffCommand
		var cerr error
		b, cmd, cerr = ParseDiffCommand(b)
		if cerr != nil {
			return input, Text{}, remapFrames(input, body, cerr)
		}
		cmds = append(cmds, cmd)
	}
	return rest, Text{Kind: TextDiff, Diff: cmds}, nil
}

// rawBody scans the interior of an escaped string without decoding:
// doubled "@" are skipped over, the first lone "@" terminates.
func rawBody(input string) (body, rest string, err error) {
	for i := 0; i < len(input); {
		at := strings.IndexByte(input[i:], '@')
		if at == -1 {
			return "", input, fail(`"@"`, "")
		}
		at += i
		if at+1 < len(input) && input[at+1] == '@' {
			i = at + 2
			continue
		}
		return input[:at], input[at+1:], nil
	}
	return "", input, fail(`"@"`, "")
}

// remapFrames translates failure positions recorded against the raw
// string interior back onto the whole input, so the trace points into
// the file rather than into a detached slice. The interior begins one
// byte past the opening "@".
func remapFrames(input, body string, err error) error {
	var syn *SyntaxError
	if !errors.As(err, &syn) {
		return err
	}
	for i, f := range syn.Frames {
		if off := len(body) - len(f.Rest); off >= 0 && off <= len(body) {
			syn.Frames[i].Rest = input[1+off:]
		}
	}
	return syn
}
