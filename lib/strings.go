package rcs

import "strings"

// ParseString consumes an escaped string literal: "@" delimited, with
// every literal "@" in the body written twice. The decoded body is
// returned with doubled "@" collapsed; a single unescaped "@" ends the
// string. An unterminated string fails at end of input.
//
//g: string ::= "@" { any character, with "@" doubled }* "@"
func ParseString(input string) (rest, value string, err error) {
	rest, lerr := literal(input, "@")
	if lerr != nil {
		return input, "", inRule("string", input, lerr)
	}
	var b strings.Builder
	for {
		at := strings.IndexByte(rest, '@')
		if at == -1 {
			return input, "", inRule("string", input, fail(`"@"`, ""))
		}
		b.WriteString(rest[:at])
		if strings.HasPrefix(rest[at+1:], "@") {
			b.WriteByte('@')
			rest = rest[at+2:]
			continue
		}
		return rest[at+1:], b.String(), nil
	}
}

// ParseIntString consumes the raw string variant used by the integrity
// field: "@" delimited, read verbatim up to the next "@" with no
// un-escaping. The integrity payload is defined never to contain
// escaped content.
//
//g: intstring ::= "@" { any character except "@" }* "@"
func ParseIntString(input string) (rest, value string, err error) {
	rest, lerr := literal(input, "@")
	if lerr != nil {
		return input, "", inRule("intstring", input, lerr)
	}
	at := strings.IndexByte(rest, '@')
	if at == -1 {
		return input, "", inRule("intstring", input, fail(`"@"`, rest))
	}
	return rest[at+1:], rest[:at], nil
}
