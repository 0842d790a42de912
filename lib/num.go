package rcs

import (
	"strconv"
	"strings"
)

// Num is an RCS revision or branch number: a dotted sequence of
// non-negative integers, e.g. 1.2.3.4 is Num{1, 2, 3, 4}. Commit dates
// reuse the same shape (YYYY.MM.DD.HH.MM.SS). A parsed Num always has
// at least one element; the empty Num only stands in for an absent
// optional field.
type Num []int

func (n Num) String() string {
	parts := make([]string, len(n))
	for i, v := range n {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ".")
}

// Compare orders numbers element-wise numerically, shorter-is-smaller
// on a common prefix. This is the total order of the delta table, and
// deliberately not a string comparison: 1.10 sorts after 1.9.
func (n Num) Compare(o Num) int {
	for i := 0; i < len(n) && i < len(o); i++ {
		if n[i] != o[i] {
			if n[i] < o[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(n) < len(o):
		return -1
	case len(n) > len(o):
		return 1
	}
	return 0
}

func (n Num) Less(o Num) bool {
	return n.Compare(o) < 0
}

// IsBranch reports whether n names a branch (odd element count).
func (n Num) IsBranch() bool {
	return len(n)%2 == 1
}

// IsRevision reports whether n names a revision (even element count).
func (n Num) IsRevision() bool {
	return !n.IsBranch()
}

// IsValidRevision reports whether n is a well-formed revision number:
// non-empty, even length, every element positive.
func (n Num) IsValidRevision() bool {
	if len(n) == 0 || n.IsBranch() {
		return false
	}
	for _, v := range n {
		if v <= 0 {
			return false
		}
	}
	return true
}

// BranchingPoint returns the revision this number descends from: the
// prefix without the last element for a branch, without the last two
// for a revision.
func (n Num) BranchingPoint() Num {
	if len(n) < 2 {
		return nil
	}
	if n.IsBranch() {
		return n[:len(n)-1]
	}
	return n[:len(n)-2]
}

// BranchingPoints returns every ancestor branching point: the prefixes
// of length 2, 4, 6, ... strictly below the full length.
func (n Num) BranchingPoints() []Num {
	points := make([]Num, 0, len(n)/2)
	for i := 2; i < len(n); i += 2 {
		points = append(points, n[:i])
	}
	return points
}

// ParseNum consumes a maximal dotted-decimal run. At least one digit
// group is required and a trailing "." is never consumed: "134a.1"
// yields Num{134} with "a.1" left over.
//
//g: num ::= digit+ ( "." digit+ )*
func ParseNum(input string) (rest string, num Num, err error) {
	rest, v, err := digits(input)
	if err != nil {
		return input, nil, inRule("Num", input, err)
	}
	num = Num{v}
	for strings.HasPrefix(rest, ".") && len(rest) > 1 && isDigit(rest[1]) {
		rest, v, err = digits(rest[1:])
		if err != nil {
			return input, nil, inRule("Num", input, err)
		}
		num = append(num, v)
	}
	return rest, num, nil
}
