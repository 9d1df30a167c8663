// Package core provides the address join: loading two CSV tables, merging
// the second into the first on (Address_Number, Street), and writing the
// merged table back out as CSV.
//
// # Pipeline
//
// [Pipeline.Run] drives one invocation:
//
//  1. Both inputs are loaded concurrently with [LoadTable]. The UTF-8 BOM is
//     skipped, invalid UTF-8 is replaced and the Street field is normalized
//     by [NormalizeStreet] as each record is parsed.
//  2. [Join] merges the lookup table into the primary table in place. The
//     first lookup record with a matching key wins; unmatched primary records
//     pass through unchanged and are counted in [JoinStats].
//  3. [WriteTable] encodes the merged table and writes it to a new file.
//
// # Records
//
// A [Record] maps column names to string values and remembers the order in
// which names were added, so output columns follow input order with merged
// columns appended.
//
// # Error Handling
//
// Every failure is terminal. Stages return typed errors ([UsageError],
// [ParseError], [SerializationError], [WriteError]) and [MapError] turns them
// into user-facing messages with a support code.
package core
