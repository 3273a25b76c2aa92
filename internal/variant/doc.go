// Package variant normalizes titles and rule terms into their script-variant
// forms for matching across Simplified and Traditional Chinese.
//
// A [Converter] supplies the two conversion directions. The real converter
// wraps OpenCC; tests substitute a static table so no dictionary data is
// needed. A [Normalizer] produces, for any string, the lowercased original
// plus the lowercased result of each conversion direction — the three forms
// a match is tested against.
//
// The process-wide converter pair is built lazily on first use via
// [Default] and reused for the life of the process; OpenCC instance
// construction is expensive enough that per-call construction is not
// acceptable.
package variant
