package rcs

const ctxAdmin = "Admin"

// Symbol binds a symbolic name to a revision number. The admin block
// keeps symbols in file order and does not deduplicate repeated names.
type Symbol struct {
	Name string
	Num  Num
}

// Lock records a user holding a lock on a revision.
type Lock struct {
	Owner string
	Num   Num
}

// ParseAdmin parses the file-level header block. The clause order is
// fixed; any deviation is a grammar violation. The returned document
// has Desc and Deltas left empty for the assembler to fill in.
//
//g: admin ::= "head" num ";" { "branch" num ";" }
//g:           "access" id* ";" "symbols" { sym ":" num }* ";"
//g:           "locks" { id ":" num }* ";" { "strict" ";" }
//g:           { "integrity" intstring ";" } { "comment" string ";" }
//g:           { "expand" string ";" }
func ParseAdmin(input string) (rest string, data *RcsData, err error) {
	data = &RcsData{}
	rest = input

	if rest, data.Head, err = value(ctxAdmin, "head", ParseNum)(rest); err != nil {
		return input, nil, err
	}
	var branch *Num
	if rest, branch, err = clauseOpt(ctxAdmin, "branch", ParseNum)(rest); err != nil {
		return input, nil, err
	}
	if branch != nil {
		data.Branch = *branch
	}
	if rest, data.Access, err = valueMany(ctxAdmin, "access", ParseId)(rest); err != nil {
		return input, nil, err
	}
	if rest, data.Symbols, err = valueMany(ctxAdmin, "symbols", parseSymbol)(rest); err != nil {
		return input, nil, err
	}
	if rest, data.Locks, err = valueMany(ctxAdmin, "locks", parseLock)(rest); err != nil {
		return input, nil, err
	}
	rest, data.Strict = parseStrict(rest)
	if rest, data.Integrity, err = clauseOpt(ctxAdmin, "integrity", ParseIntString)(rest); err != nil {
		return input, nil, err
	}
	if rest, data.Comment, err = clauseOpt(ctxAdmin, "comment", ParseString)(rest); err != nil {
		return input, nil, err
	}
	if rest, data.Expand, err = clauseOpt(ctxAdmin, "expand", ParseString)(rest); err != nil {
		return input, nil, err
	}
	return rest, data, nil
}

// parseStrict consumes an optional bare "strict;" clause. It is a
// presence flag, not a value.
func parseStrict(input string) (rest string, strict bool) {
	rest, err := literal(ws0(input), "strict")
	if err != nil {
		return input, false
	}
	rest, err = literal(ws0(rest), ";")
	if err != nil {
		return input, false
	}
	return rest, true
}

//g: symbols payload ::= sym ":" num
func parseSymbol(input string) (rest string, s Symbol, err error) {
	rest, name, err := ParseSym(input)
	if err != nil {
		return input, Symbol{}, err
	}
	rest, err = literal(rest, ":")
	if err != nil {
		return input, Symbol{}, err
	}
	rest, num, err := ParseNum(rest)
	if err != nil {
		return input, Symbol{}, err
	}
	return rest, Symbol{Name: name, Num: num}, nil
}

//g: locks payload ::= id ":" num
func parseLock(input string) (rest string, l Lock, err error) {
	rest, owner, err := ParseId(input)
	if err != nil {
		return input, Lock{}, err
	}
	rest, err = literal(rest, ":")
	if err != nil {
		return input, Lock{}, err
	}
	rest, num, err := ParseNum(rest)
	if err != nil {
		return input, Lock{}, err
	}
	return rest, Lock{Owner: owner, Num: num}, nil
}
