// Package tui implements the interactive listing: a rule input box over a
// scrolling list of titles, with rows shown or hidden by the filtering
// pass.
//
// Rule edits are debounced: each keystroke bumps a generation counter and
// schedules a tick for the configured quiet period; only a tick carrying
// the current generation triggers a pass. The pass itself runs
// synchronously inside Update, which is fine at listing scale (tens to low
// hundreds of rows) and guarantees a newer pass's output always replaces
// an older one's. A file watcher can swap the listing out underneath the
// rule; the current rule is re-applied to the new listing immediately.
package tui
