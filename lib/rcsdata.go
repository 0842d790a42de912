package rcs

import (
	"fmt"
	"sort"
)

const ctxRcs = "RCS"

// RcsData is a whole parsed comma-v document.
type RcsData struct {
	Head      Num
	Branch    Num // default branch; empty when unset
	Access    []string
	Symbols   []Symbol // file order, duplicates preserved
	Locks     []Lock
	Strict    bool
	Integrity *string
	Comment   *string
	Expand    *string
	Desc      string
	Deltas    []*Delta // one per revision, ordered by revision number
}

// Delta returns the record for the given revision number, or nil if
// the document has none.
func (d *RcsData) Delta(num Num) *Delta {
	i := sort.Search(len(d.Deltas), func(i int) bool {
		return !d.Deltas[i].Num.Less(num)
	})
	if i < len(d.Deltas) && d.Deltas[i].Num.Compare(num) == 0 {
		return d.Deltas[i]
	}
	return nil
}

// ParseRcs parses an entire comma-v document: admin block, delta
// headers, description, one head deltatext followed by ordinary
// deltatexts, and a single trailing line terminator. Headers and
// bodies are merged into one delta table ordered by revision number.
// Trailing input past the terminator is returned unconsumed.
//
//g: document ::= admin delta* "desc" string deltatext+ line-ending
func ParseRcs(input string) (rest string, data *RcsData, err error) {
	rest, data, err = ParseAdmin(input)
	if err != nil {
		return input, nil, inRule(ctxRcs, input, err)
	}

	var deltas []*Delta
	for {
		next, delta, derr := ParseDelta(rest)
		if derr != nil {
			break
		}
		deltas = append(deltas, delta)
		rest = next
	}

	if rest, data.Desc, err = parseDesc(rest); err != nil {
		return input, nil, inRule(ctxRcs, input, err)
	}

	texts, next, terr := parseDeltaTexts(rest)
	if terr != nil {
		return input, nil, inRule(ctxRcs, input, terr)
	}
	rest = next

	if rest, err = lineEnding(rest); err != nil {
		return input, nil, inRule(ctxRcs, rest, err)
	}

	if data.Deltas, err = mergeDeltas(deltas, texts); err != nil {
		return input, nil, err
	}
	return rest, data, nil
}

//g: desc ::= "desc" string
func parseDesc(input string) (rest, desc string, err error) {
	rest, err = literal(ws0(input), "desc")
	if err != nil {
		return input, "", inRule("desc", input, err)
	}
	rest, desc, err = ParseString(ws0(rest))
	if err != nil {
		return input, "", inRule("desc", input, err)
	}
	return rest, desc, nil
}

// parseDeltaTexts parses exactly one head-form block followed by zero
// or more ordinary blocks.
func parseDeltaTexts(input string) (texts []DeltaText, rest string, err error) {
	rest, head, err := ParseDeltaTextHead(input)
	if err != nil {
		return nil, input, inRule("deltatexts", input, err)
	}
	texts = []DeltaText{head}
	for {
		next, dt, derr := ParseDeltaText(rest)
		if derr != nil {
			break
		}
		texts = append(texts, dt)
		rest = next
	}
	return texts, rest, nil
}

// mergeDeltas pairs each deltatext with its header by revision number
// and returns the completed table ordered by the Num total order. The
// pairing is total: a duplicate header, a body without a header, and a
// header without a body are all merge errors rather than silently
// dropped or, worse, unchecked lookups.
func mergeDeltas(deltas []*Delta, texts []DeltaText) ([]*Delta, error) {
	sorted := make([]*Delta, 0, len(deltas))
	for _, d := range deltas {
		i := sort.Search(len(sorted), func(i int) bool {
			return !sorted[i].Num.Less(d.Num)
		})
		if i < len(sorted) && sorted[i].Num.Compare(d.Num) == 0 {
			return nil, fmt.Errorf("%w: duplicate revision %s", ErrMerge, d.Num)
		}
		sorted = append(sorted, nil)
		copy(sorted[i+1:], sorted[i:])
		sorted[i] = d
	}

	filled := make(map[*Delta]bool, len(sorted))
	table := RcsData{Deltas: sorted}
	for _, t := range texts {
		d := table.Delta(t.Num)
		if d == nil {
			return nil, fmt.Errorf("%w: no delta header for revision %s", ErrMerge, t.Num)
		}
		if filled[d] {
			return nil, fmt.Errorf("%w: duplicate text for revision %s", ErrMerge, t.Num)
		}
		d.Log = t.Log
		d.Text = t.Text
		filled[d] = true
	}
	for _, d := range sorted {
		if !filled[d] {
			return nil, fmt.Errorf("%w: no text for revision %s", ErrMerge, d.Num)
		}
	}
	return sorted, nil
}
