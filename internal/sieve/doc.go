// Package sieve runs filtering passes: it applies one parsed rule to an
// ordered listing of titles and reports a visibility decision per row.
//
// A pass is synchronous and runs to completion; there is no cancellation.
// The UI debounces rule edits and simply applies the newest pass's output,
// so an in-flight pass is never torn down, only superseded. Within one
// pass, script conversions are memoized per unique input string; the memo
// does not outlive the pass because the listing may change between passes.
package sieve
