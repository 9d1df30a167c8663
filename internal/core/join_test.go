package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoin(t *testing.T) {
	primary := &Table{Records: []*Record{
		record("Address_Number", "12", "Street", "Main Street"),
		record("Address_Number", "34", "Street", "Oak Street"),
		record("Address_Number", "56", "Street", "Elm Street", "Owner", "prior"),
	}}
	lookup := &Table{Records: []*Record{
		record("Address_Number", "12", "Street", "Main Street", "Owner", "Smith"),
		record("Address_Number", "99", "Street", "Elm Street", "Owner", "Jones"),
		record("Address_Number", "56", "Street", "Elm Street", "Owner", "Brown"),
	}}

	stats := Join(primary, lookup, AddressKey)

	assert.Equal(t, JoinStats{Primary: 3, Lookup: 3, Matched: 2, NoMatch: 1}, stats)
	require.Len(t, primary.Records, 3)

	assert.Equal(t, "Smith", primary.Records[0].Value("Owner"))
	assert.False(t, primary.Records[1].Has("Owner"))
	assert.Equal(t, "Brown", primary.Records[2].Value("Owner"), "lookup value overrides primary")
	assert.Equal(t, "34", primary.Records[1].Value("Address_Number"), "order preserved")
}

func TestJoin_FirstMatchWins(t *testing.T) {
	primary := &Table{Records: []*Record{
		record("Address_Number", "12", "Street", "Main Street"),
	}}
	lookup := &Table{Records: []*Record{
		record("Address_Number", "12", "Street", "Main Street", "Owner", "first"),
		record("Address_Number", "12", "Street", "Main Street", "Owner", "second", "Extra", "x"),
	}}

	stats := Join(primary, lookup, AddressKey)

	assert.Equal(t, 1, stats.Matched)
	assert.Equal(t, 1, stats.DuplicateKeys)
	assert.Equal(t, "first", primary.Records[0].Value("Owner"))
	assert.False(t, primary.Records[0].Has("Extra"))
}

func TestJoin_KeyIsExactAndCaseSensitive(t *testing.T) {
	primary := &Table{Records: []*Record{
		record("Address_Number", "12", "Street", "Main Street"),
		record("Address_Number", "012", "Street", "Main Street"),
		record("Address_Number", "12", "Street", "main Street"),
	}}
	lookup := &Table{Records: []*Record{
		record("Address_Number", "12", "Street", "Main Street", "Owner", "Smith"),
	}}

	stats := Join(primary, lookup, AddressKey)

	assert.Equal(t, 1, stats.Matched)
	assert.Equal(t, 2, stats.NoMatch)
}

func TestJoin_BothKeyColumnsRequired(t *testing.T) {
	// Same number, different street; and same street, different number.
	primary := &Table{Records: []*Record{
		record("Address_Number", "12", "Street", "Oak Street"),
		record("Address_Number", "13", "Street", "Main Street"),
	}}
	lookup := &Table{Records: []*Record{
		record("Address_Number", "12", "Street", "Main Street", "Owner", "Smith"),
	}}

	stats := Join(primary, lookup, AddressKey)

	assert.Equal(t, 0, stats.Matched)
	assert.Equal(t, 2, stats.NoMatch)
}

func TestJoin_NoMatchCountEqualsUnmergedRecords(t *testing.T) {
	primary := &Table{Records: []*Record{
		record("Address_Number", "1", "Street", "A Street"),
		record("Address_Number", "2", "Street", "B Street"),
		record("Address_Number", "3", "Street", "C Street"),
		record("Address_Number", "4", "Street", "D Street"),
	}}
	lookup := &Table{Records: []*Record{
		record("Address_Number", "2", "Street", "B Street", "Owner", "x"),
		record("Address_Number", "4", "Street", "D Street", "Owner", "y"),
	}}

	stats := Join(primary, lookup, AddressKey)

	unmerged := 0
	for _, rec := range primary.Records {
		if !rec.Has("Owner") {
			unmerged++
		}
	}
	assert.Equal(t, unmerged, stats.NoMatch)
	assert.Equal(t, len(primary.Records), stats.Matched+stats.NoMatch)
}

func TestJoin_EmptyLookup(t *testing.T) {
	primary := &Table{Records: []*Record{
		record("Address_Number", "12", "Street", "Main Street"),
	}}

	stats := Join(primary, &Table{}, AddressKey)

	assert.Equal(t, 1, stats.NoMatch)
	assert.Equal(t, []string{"Address_Number", "Street"}, primary.Records[0].Fields())
}

func TestJoinKey_NoCollisionAcrossColumns(t *testing.T) {
	a := record("Address_Number", "1", "Street", "2 Street")
	b := record("Address_Number", "1 2", "Street", "Street")
	assert.NotEqual(t, AddressKey.value(a), AddressKey.value(b))
}

func TestJoinKey_NoCollisionWithControlBytes(t *testing.T) {
	tests := []struct {
		name string
		a, b *Record
	}{
		{
			name: "NUL moved between columns",
			a:    record("Address_Number", "1\x00a", "Street", "b"),
			b:    record("Address_Number", "1", "Street", "a\x00b"),
		},
		{
			name: "quote and comma moved between columns",
			a:    record("Address_Number", `1","`, "Street", "b"),
			b:    record("Address_Number", "1", "Street", `","b`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, AddressKey.value(tt.a), AddressKey.value(tt.b))
		})
	}
}

func TestJoin_NULInKeyDoesNotMatchDifferentFields(t *testing.T) {
	primary, err := ParseTable("a.csv", strings.NewReader("Address_Number,Street\n\"1\x00a\",b\n"), DefaultLoadOptions())
	require.NoError(t, err)
	lookup, err := ParseTable("b.csv", strings.NewReader("Address_Number,Street,Owner\n1,\"a\x00b\",Smith\n"), DefaultLoadOptions())
	require.NoError(t, err)

	stats := Join(primary, lookup, AddressKey)

	assert.Equal(t, 0, stats.Matched)
	assert.Equal(t, 1, stats.NoMatch)
	rec := primary.Records[0]
	assert.Equal(t, "1\x00a", rec.Value("Address_Number"))
	assert.Equal(t, "b Street", rec.Value("Street"))
	assert.False(t, rec.Has("Owner"))
}
