// Package core provides the data layer for the aptamer database browser.
//
// This package holds all domain logic independent of any UI or transport
// layer. It can be used by web handlers, CLI tools, or tests without
// modification.
//
// # Architecture
//
// The package is organized around three steps that run over one shared,
// immutable record list:
//
//   - Loader: a [Store] fetches newline-delimited JSON from a [Source],
//     normalizes every line into a [Record] and caches the result for the
//     life of the process.
//   - Query engine: [Search] filters records by a free-text query, groups
//     them by target and picks a bounded preview per group.
//   - Detail accessors: [FindRecord] and [BuildTargetGroup] are point
//     lookups by record id and exact target name.
//
// [Service] ties these together: each method loads (once) and then runs the
// pure function over the cached records.
//
// # Loading
//
// The first call to [Store.Load] triggers the fetch. Callers arriving while
// that fetch is in flight wait for the same result instead of starting their
// own. A fetch that fails, or yields no records, is replaced by a small
// built-in sample set and logged; callers never see a load error.
//
// Malformed lines are skipped one at a time:
//
//	{"Target name": "Thrombin", "Level": "P", "pKd": 9.0}
//	{not json                                   <- skipped
//	{"Target name": "ATP", "Year": "1995"}
//
// # Preview tiers
//
// Each [TargetGroup] carries a preview chosen by the first rule that applies:
//
//  1. Any level P records: top 5 P records by pKd, descending.
//  2. Any level A records: top 5 A records by pKd, descending.
//  3. Otherwise: top 3 of the B and C records by year, descending.
//
// # Error Handling
//
// Not-found lookups return [ErrRecordNotFound] or [ErrTargetNotFound].
// Technical errors are mapped to user-friendly messages using [MapError].
package core
