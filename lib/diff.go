package rcs

import "strings"

const ctxDiff = "Diff"

// DiffOp is the opcode of one diff instruction. The opcode set is
// exactly {a, d}; anything else is a syntax error.
type DiffOp byte

const (
	// OpAdd inserts lines after a position.
	OpAdd DiffOp = 'a'
	// OpDelete removes a count of lines starting at a position.
	OpDelete DiffOp = 'd'
)

// DiffCommand is one decoded instruction from a revision's diff
// stream. GNU diffutils documents the format under "RCS scripts".
type DiffCommand struct {
	Op       DiffOp
	Position int
	Count    int
	Lines    []string // add only; escaping already resolved
}

// ParseDiffCommand decodes one instruction. An add reads exactly Count
// raw text lines after the instruction line; running out of input
// mid-read is a hard failure, not a partial result. Because the stream
// sits inside the outer escaped string undecoded, each line still has
// its doubled "@" collapsed here.
//
//g: diffcmd ::= ( "a" | "d" ) digit+ ws digit+ sp* line-ending
func ParseDiffCommand(input string) (rest string, cmd DiffCommand, err error) {
	if len(input) == 0 || (input[0] != 'a' && input[0] != 'd') {
		return input, cmd, inRule(ctxDiff, input, fail(`one of "ad"`, input))
	}
	cmd.Op = DiffOp(input[0])

	rest = ws0(input[1:])
	rest, cmd.Position, err = digits(rest)
	if err != nil {
		return input, DiffCommand{}, inRule(ctxDiff, input, err)
	}
	rest, err = ws1(rest)
	if err != nil {
		return input, DiffCommand{}, inRule(ctxDiff, input, err)
	}
	rest, cmd.Count, err = digits(rest)
	if err != nil {
		return input, DiffCommand{}, inRule(ctxDiff, input, err)
	}
	rest = strings.TrimLeft(rest, " \t")
	rest, err = lineEnding(rest)
	if err != nil {
		return input, DiffCommand{}, inRule(ctxDiff, input, err)
	}

	if cmd.Op == OpAdd {
		rest, cmd.Lines, err = parseDiffLines(rest, cmd.Count)
		if err != nil {
			return input, DiffCommand{}, err
		}
	}
	return rest, cmd, nil
}

// parseDiffLines reads exactly count lines, resolving the "@@" escape
// on each.
func parseDiffLines(input string, count int) (rest string, lines []string, err error) {
	rest = input
	lines = make([]string, 0, count)
	for i := 0; i < count; i++ {
		var line string
		rest, line, err = ParseDiffLine(rest)
		if err != nil {
			return input, nil, err
		}
		lines = append(lines, strings.ReplaceAll(line, "@@", "@"))
	}
	return rest, lines, nil
}

// ParseDiffLine consumes one raw text line terminated by "\n" or
// "\r\n". A missing terminator is a failure at end of input.
func ParseDiffLine(input string) (rest, line string, err error) {
	end := strings.IndexAny(input, "\r\n")
	if end == -1 {
		return input, "", inRule(ctxDiff, input, fail("line ending", ""))
	}
	line = input[:end]
	rest, lerr := lineEnding(input[end:])
	if lerr != nil {
		return input, "", inRule(ctxDiff, input, lerr)
	}
	return rest, line, nil
}
