// Package rule implements the filter rule language applied to title
// listings.
//
// A raw rule string is a sequence of AND-groups separated by ";" (ASCII) or
// "；" (full-width), all of which must match. Each group is either a regex
// term, written /pattern/ and always case-insensitive, or a plain term: one
// or more literal alternatives separated by "|", of which at least one must
// be contained in the title. Plain-term containment and regex search both
// run against all three script-variant forms of the title (original,
// Simplified, Traditional), and plain alternatives are themselves expanded
// into their variant forms, so a Traditional-script term matches a
// Simplified-script title and vice versa.
//
// Parsing is total: no input string is an error. An empty or
// whitespace-only rule parses to a match-all sentinel, and a regex term
// whose pattern does not compile degrades to case-insensitive literal
// containment of the pattern body.
package rule
