package core

import "strings"

// StreetSuffix is appended to street names that lack it.
const StreetSuffix = " Street"

// Normalizer transforms a single field value on load.
type Normalizer func(string) string

// DefaultNormalizers are applied by the loader unless overridden.
var DefaultNormalizers = map[string]Normalizer{
	ColStreet: NormalizeStreet,
}

// NormalizeStreet appends " Street" to a non-empty value that does not
// already end with it. Applying it twice yields the same result as once.
func NormalizeStreet(s string) string {
	if s == "" || strings.HasSuffix(s, StreetSuffix) {
		return s
	}
	return s + StreetSuffix
}

// applyNormalizers rewrites each field of rec that has a normalizer.
func applyNormalizers(rec *Record, normalizers map[string]Normalizer) {
	for name, fn := range normalizers {
		if v, ok := rec.Get(name); ok {
			rec.Set(name, fn(v))
		}
	}
}
