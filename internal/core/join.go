package core

import (
	"strconv"
	"strings"
)

// JoinKey names the columns whose values must all be equal for two records
// to match. Comparison is exact and case-sensitive.
type JoinKey []string

// AddressKey is the (Address_Number, Street) key used by the CLI.
var AddressKey = JoinKey{ColAddressNumber, ColStreet}

// value builds the lookup key for rec. Absent columns contribute "".
func (k JoinKey) value(rec *Record) string {
	parts := make([]string, len(k))
	for i, col := range k {
		// Quoted parts are self-delimiting, so distinct tuples always
		// produce distinct keys whatever bytes the values contain.
		parts[i] = strconv.Quote(rec.Value(col))
	}
	return strings.Join(parts, ",")
}

// JoinStats summarizes one join.
type JoinStats struct {
	Primary       int // Records in the primary table
	Lookup        int // Records in the lookup table
	Matched       int // Primary records that received a merge
	NoMatch       int // Primary records left unchanged
	DuplicateKeys int // Lookup records shadowed by an earlier record with the same key
}

// Join merges lookup into primary in place. For each primary record, in
// order, the first lookup record with an equal key has all of its fields
// copied over the primary record's. Unmatched primary records are left as
// they are and counted. lookup is not modified.
func Join(primary, lookup *Table, key JoinKey) JoinStats {
	stats := JoinStats{
		Primary: len(primary.Records),
		Lookup:  len(lookup.Records),
	}

	index := make(map[string]*Record, len(lookup.Records))
	for _, rec := range lookup.Records {
		k := key.value(rec)
		if _, ok := index[k]; ok {
			// first in file order wins
			stats.DuplicateKeys++
			continue
		}
		index[k] = rec
	}

	for _, rec := range primary.Records {
		match, ok := index[key.value(rec)]
		if !ok {
			stats.NoMatch++
			continue
		}
		rec.Merge(match)
		stats.Matched++
	}

	return stats
}
