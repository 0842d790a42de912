package rcs

// Character classes of the comma-v grammar.

// IsSpecial reports whether a character is one of the grammar's
// reserved punctuation characters.
//
//g: special ::= "$" | "," | "." | ":" | ";" | "@"
func IsSpecial(r rune) bool {
	switch r {
	case '$', ',', '.', ':', ';', '@':
		return true
	}
	return false
}

// IsVisible reports whether a character is a visible graphic character:
// octal codes 041-176 and 240-377 (accented characters included).
func IsVisible(r rune) bool {
	return (r >= 0x21 && r <= 0x7e) || (r >= 0xa0 && r <= 0xff)
}

// IsIdChar reports whether a character may appear in an identifier.
//
//g: idchar ::= any visible graphic character except special
func IsIdChar(r rune) bool {
	return IsVisible(r) && !IsSpecial(r)
}

// ParseSym consumes a symbolic name: one or more idchars, periods
// excluded.
//
//g: sym ::= idchar+
func ParseSym(input string) (rest, sym string, err error) {
	sym, rest = span(input, IsIdChar)
	if sym == "" {
		return input, "", inRule("sym", input, fail("idchar", input))
	}
	return rest, sym, nil
}

// ParseId consumes an identifier: one or more idchars or periods.
// Periods are allowed so that revision-number-like names qualify.
//
//g: id ::= { idchar | "." }+
func ParseId(input string) (rest, id string, err error) {
	id, rest = span(input, func(r rune) bool { return IsIdChar(r) || r == '.' })
	if id == "" {
		return input, "", inRule("id", input, fail("idchar", input))
	}
	return rest, id, nil
}
