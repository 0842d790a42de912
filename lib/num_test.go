package rcs

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNum(t *testing.T) {
	for _, tc := range []struct {
		input string
		want  Num
		rest  string
	}{
		{"1", Num{1}, ""},
		{"1.1", Num{1, 1}, ""},
		{"1.1.1", Num{1, 1, 1}, ""},
		{"134.1.4.2w", Num{134, 1, 4, 2}, "w"},
		{"134a.1.4.2w", Num{134}, "a.1.4.2w"},
		{"2021.04.07.12.00.00;", Num{2021, 4, 7, 12, 0, 0}, ";"},
		{"1.", Num{1}, "."}, // trailing separator is never consumed
	} {
		rest, num, err := ParseNum(tc.input)
		assert.NoError(t, err, tc.input)
		assert.Equal(t, tc.want, num, tc.input)
		assert.Equal(t, tc.rest, rest, tc.input)
	}
}

func TestParseNumErrors(t *testing.T) {
	for _, input := range []string{"", "not_number", "  1", ".1"} {
		rest, num, err := ParseNum(input)
		assert.ErrorIs(t, err, ErrSyntax, input)
		assert.Nil(t, num, input)
		assert.Equal(t, input, rest, input)
	}
}

func TestNumCompare(t *testing.T) {
	assert.Equal(t, 0, Num{1, 2}.Compare(Num{1, 2}))
	assert.Equal(t, -1, Num{1, 2}.Compare(Num{2, 1}))
	assert.Equal(t, 1, Num{2, 1}.Compare(Num{1, 2}))

	// Numeric, not lexicographic: 1.9 sorts before 1.10.
	assert.True(t, Num{1, 9}.Less(Num{1, 10}))

	// Shorter is smaller on a common prefix.
	assert.True(t, Num{1, 2}.Less(Num{1, 2, 1}))
	assert.False(t, Num{1, 2, 1}.Less(Num{1, 2}))
}

func TestNumOrdering(t *testing.T) {
	nums := []Num{{2, 1}, {1, 2}, {1, 10}, {1, 2, 1, 1}, {1, 9}}
	sort.Slice(nums, func(i, j int) bool { return nums[i].Less(nums[j]) })
	assert.Equal(t, []Num{{1, 2}, {1, 2, 1, 1}, {1, 9}, {1, 10}, {2, 1}}, nums)
}

func TestIsBranch(t *testing.T) {
	// Odd element count means branch, for any length.
	n := Num{}
	for k := 1; k <= 8; k++ {
		n = append(n, k)
		assert.Equal(t, k%2 == 1, n.IsBranch(), "length %d", k)
		assert.Equal(t, k%2 == 0, n.IsRevision(), "length %d", k)
	}
}

func TestIsValidRevision(t *testing.T) {
	for _, tc := range []struct {
		num  Num
		want bool
	}{
		{Num{1}, false},
		{Num{1, 2}, true},
		{Num{1, 2, 3}, false},
		{Num{1, 2, 3, 4}, true},
		{Num{}, false},
		{Num{0}, false},
		{Num{1, 0, 2}, false},
		{Num{1, 1, 0}, false},
	} {
		assert.Equal(t, tc.want, tc.num.IsValidRevision(), tc.num.String())
	}
}

func TestBranchingPoint(t *testing.T) {
	assert.Equal(t, Num{1, 2}, Num{1, 2, 3}.BranchingPoint())
	assert.Equal(t, Num{1, 2}, Num{1, 2, 3, 4}.BranchingPoint())

	// Length n-1 for odd n, n-2 for even n.
	for n := 3; n <= 8; n++ {
		num := make(Num, n)
		for i := range num {
			num[i] = i + 1
		}
		want := n - 2
		if n%2 == 1 {
			want = n - 1
		}
		assert.Len(t, num.BranchingPoint(), want, "length %d", n)
	}
}

func TestBranchingPoints(t *testing.T) {
	assert.Equal(t,
		[]Num{{1, 2}, {1, 2, 3, 4}, {1, 2, 3, 4, 5, 6}},
		Num{1, 2, 3, 4, 5, 6, 7, 8}.BranchingPoints())
	assert.Empty(t, Num{1, 2}.BranchingPoints())
	assert.Empty(t, Num{1}.BranchingPoints())
}

func TestNumString(t *testing.T) {
	assert.Equal(t, "1.2.3.4", Num{1, 2, 3, 4}.String())
	assert.Equal(t, "1", Num{1}.String())
	assert.Equal(t, "", Num{}.String())
}
