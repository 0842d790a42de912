package rcs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const adminFixture = `head    2.1;
access;
symbols
        Fix2:1.2.2.3
        Fix1:1.2.1.1
        v2_1:2.1
        v1_1:1.2;
locks
        dseres:2.1; strict;
comment @# @;`

func TestParseAdmin(t *testing.T) {
	rest, data, err := ParseAdmin(adminFixture)
	assert.NoError(t, err)
	assert.Equal(t, "", rest)

	assert.Equal(t, Num{2, 1}, data.Head)
	assert.Empty(t, data.Branch)
	assert.Empty(t, data.Access)
	assert.Equal(t, []Symbol{
		{"Fix2", Num{1, 2, 2, 3}},
		{"Fix1", Num{1, 2, 1, 1}},
		{"v2_1", Num{2, 1}},
		{"v1_1", Num{1, 2}},
	}, data.Symbols)
	assert.Equal(t, []Lock{{"dseres", Num{2, 1}}}, data.Locks)
	assert.True(t, data.Strict)
	assert.Nil(t, data.Integrity)
	assert.NotNil(t, data.Comment)
	assert.Equal(t, "# ", *data.Comment)
	assert.Nil(t, data.Expand)

	// Desc and deltas are the assembler's job.
	assert.Equal(t, "", data.Desc)
	assert.Empty(t, data.Deltas)
}

// The clause order is fixed: a well-formed block is identical under
// any whitespace layout, and a reordered one is a grammar violation.
func TestParseAdminWhitespaceInvariance(t *testing.T) {
	flat := "head 2.1;access;symbols Fix2:1.2.2.3 Fix1:1.2.1.1 v2_1:2.1 v1_1:1.2;" +
		"locks dseres:2.1;strict;comment @# @;"

	_, want, err := ParseAdmin(adminFixture)
	assert.NoError(t, err)
	_, got, err := ParseAdmin(flat)
	assert.NoError(t, err)

	assert.Equal(t, want.Head, got.Head)
	assert.Equal(t, want.Symbols, got.Symbols)
	assert.Equal(t, want.Locks, got.Locks)
	assert.Equal(t, want.Strict, got.Strict)
}

func TestParseAdminOrder(t *testing.T) {
	// access before head: structural error.
	_, _, err := ParseAdmin("access;head 2.1;symbols;locks;")
	assert.ErrorIs(t, err, ErrSyntax)

	// Missing required clause.
	_, _, err = ParseAdmin("head 2.1;symbols;locks;")
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestParseAdminOptionalClauses(t *testing.T) {
	rest, data, err := ParseAdmin(
		"head 1.1;branch 1.1.1;access;symbols;locks;integrity @ck@;comment @c@;expand @kv@;")
	assert.NoError(t, err)
	assert.Equal(t, "", rest)
	assert.Equal(t, Num{1, 1, 1}, data.Branch)
	assert.Equal(t, "ck", *data.Integrity)
	assert.Equal(t, "c", *data.Comment)
	assert.Equal(t, "kv", *data.Expand)
	assert.False(t, data.Strict)
}

func TestParseStrict(t *testing.T) {
	rest, strict := parseStrict("strict;")
	assert.True(t, strict)
	assert.Equal(t, "", rest)

	rest, strict = parseStrict(" strict ;")
	assert.True(t, strict)
	assert.Equal(t, "", rest)

	rest, strict = parseStrict("strict")
	assert.False(t, strict)
	assert.Equal(t, "strict", rest)

	rest, strict = parseStrict(";")
	assert.False(t, strict)
	assert.Equal(t, ";", rest)
}
