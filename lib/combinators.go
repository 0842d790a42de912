package rcs

// The admin and delta grammars are nothing but one clause shape
// repeated with different keywords and payloads:
//
//	keyword payload... ";"
//
// The four combinators below cover every field: a required value, a
// value whose payload may be absent after the keyword, a clause that
// may be absent entirely, and a repeated value list. All tolerate
// arbitrary whitespace between tokens.
//
// Every parser here consumes a value from the front of its input and
// returns the unconsumed remainder. On failure the input is returned
// untouched and the error carries the rule trace.

// value parses "keyword payload ;".
func value[T any](ctx, key string, p func(string) (string, T, error)) func(string) (string, T, error) {
	return func(input string) (string, T, error) {
		var zero T
		rest, err := literal(ws0(input), key)
		if err != nil {
			return input, zero, inRule(ctx, input, err)
		}
		rest, v, err := p(ws0(rest))
		if err != nil {
			return input, zero, inRule(ctx, input, err)
		}
		rest, err = literal(ws0(rest), ";")
		if err != nil {
			return input, zero, inRule(ctx, input, err)
		}
		return rest, v, nil
	}
}

// valueOpt parses "keyword [payload] ;": the keyword and terminator
// are required, the payload is not, so a bare "keyword;" matches.
func valueOpt[T any](ctx, key string, p func(string) (string, T, error)) func(string) (string, *T, error) {
	return func(input string) (string, *T, error) {
		rest, err := literal(ws0(input), key)
		if err != nil {
			return input, nil, inRule(ctx, input, err)
		}
		var opt *T
		if next, v, perr := p(ws0(rest)); perr == nil {
			opt, rest = &v, next
		}
		rest, err = literal(ws0(rest), ";")
		if err != nil {
			return input, nil, inRule(ctx, input, err)
		}
		return rest, opt, nil
	}
}

// clauseOpt parses "[keyword payload ;]": the whole clause may be
// absent. Any failure inside the clause, keyword included, backs out
// without consuming input; the next rule in the fixed order then
// decides whether the input was malformed.
func clauseOpt[T any](ctx, key string, p func(string) (string, T, error)) func(string) (string, *T, error) {
	return func(input string) (string, *T, error) {
		rest, err := literal(ws0(input), key)
		if err != nil {
			return input, nil, nil
		}
		rest, v, err := p(ws0(rest))
		if err != nil {
			return input, nil, nil
		}
		rest, err = literal(ws0(rest), ";")
		if err != nil {
			return input, nil, nil
		}
		return rest, &v, nil
	}
}

// valueMany parses "keyword payload* ;". The list may be empty;
// payloads are separated by at least one whitespace character.
func valueMany[T any](ctx, key string, p func(string) (string, T, error)) func(string) (string, []T, error) {
	return func(input string) (string, []T, error) {
		rest, err := literal(ws0(input), key)
		if err != nil {
			return input, nil, inRule(ctx, input, err)
		}
		items := []T{}
		for {
			sep, werr := ws1(rest)
			if werr != nil {
				break
			}
			next, v, perr := p(sep)
			if perr != nil {
				break
			}
			items = append(items, v)
			rest = next
		}
		rest, err = literal(ws0(rest), ";")
		if err != nil {
			return input, nil, inRule(ctx, input, err)
		}
		return rest, items, nil
	}
}
