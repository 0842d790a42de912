package rcs

// Primitive lexers. Every parser in this package consumes from the
// front of its input and returns the unconsumed remainder; on failure
// the original input is returned untouched so callers can report the
// exact position.

import (
	"strconv"
	"strings"
)

const spaceChars = " \t\r\n"

// ws0 skips any run of whitespace, including newlines.
func ws0(input string) string {
	return strings.TrimLeft(input, spaceChars)
}

// ws1 skips a run of whitespace and fails if there was none.
func ws1(input string) (string, error) {
	rest := ws0(input)
	if len(rest) == len(input) {
		return input, fail("whitespace", input)
	}
	return rest, nil
}

// literal consumes an exact token.
func literal(input, tok string) (string, error) {
	if !strings.HasPrefix(input, tok) {
		return input, fail(strconv.Quote(tok), input)
	}
	return input[len(tok):], nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// digits consumes a maximal run of decimal digits as a non-negative int.
func digits(input string) (rest string, value int, err error) {
	n := 0
	for n < len(input) && isDigit(input[n]) {
		n++
	}
	if n == 0 {
		return input, 0, fail("digits", input)
	}
	value, aerr := strconv.Atoi(input[:n])
	if aerr != nil {
		return input, 0, fail("digits", input)
	}
	return input[n:], value, nil
}

// span splits the input at the first rune not satisfying pred.
func span(input string, pred func(rune) bool) (match, rest string) {
	for i, r := range input {
		if !pred(r) {
			return input[:i], input[i:]
		}
	}
	return input, ""
}

// lineEnding consumes a single "\n" or "\r\n".
func lineEnding(input string) (string, error) {
	if strings.HasPrefix(input, "\n") {
		return input[1:], nil
	}
	if strings.HasPrefix(input, "\r\n") {
		return input[2:], nil
	}
	return input, fail("line ending", input)
}
