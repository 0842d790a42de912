package rcs

const ctxDelta = "Delta"

// Delta is one revision's full record. Log and Text are placeholders
// until the assembler pairs the header with its deltatext block.
type Delta struct {
	Num      Num
	Date     Num // commit date reuses the dotted shape: YYYY.MM.DD.HH.MM.SS
	Author   string
	State    *string
	Branches []Num
	Next     Num // empty when the revision has no successor
	CommitID *string
	Log      string
	Text     Text
}

// ParseDelta parses one per-revision metadata block. Zero or more of
// these appear consecutively between the admin block and "desc".
//
//g: delta ::= num "date" num ";" "author" id ";" "state" {id} ";"
//g:           "branches" num* ";" "next" {num} ";" { "commitid" sym ";" }
func ParseDelta(input string) (rest string, delta *Delta, err error) {
	delta = &Delta{}

	rest, delta.Num, err = ParseNum(ws0(input))
	if err != nil {
		return input, nil, inRule(ctxDelta, input, err)
	}
	if rest, delta.Date, err = value(ctxDelta, "date", ParseNum)(rest); err != nil {
		return input, nil, err
	}
	if rest, delta.Author, err = value(ctxDelta, "author", ParseId)(rest); err != nil {
		return input, nil, err
	}
	if rest, delta.State, err = valueOpt(ctxDelta, "state", ParseId)(rest); err != nil {
		return input, nil, err
	}
	if rest, delta.Branches, err = valueMany(ctxDelta, "branches", ParseNum)(rest); err != nil {
		return input, nil, err
	}
	var next *Num
	if rest, next, err = valueOpt(ctxDelta, "next", ParseNum)(rest); err != nil {
		return input, nil, err
	}
	if next != nil {
		delta.Next = *next
	}
	if rest, delta.CommitID, err = clauseOpt(ctxDelta, "commitid", ParseSym)(rest); err != nil {
		return input, nil, err
	}
	return rest, delta, nil
}
