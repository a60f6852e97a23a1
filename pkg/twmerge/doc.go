// Package twmerge resolves conflicts between Tailwind utility classes.
//
// A class list is validated token by token, each surviving token is assigned
// to at most one utility group, and within a group only the last token is
// kept:
//
//	twmerge.MergeString("px-4 py-2 bg-white px-8") // "py-2 bg-white px-8"
//
// Tokens that match no group are passed through untouched, duplicates
// included. Tokens that fail validation (blank, longer than MaxTokenLength,
// containing script-like substrings or characters outside the class-name
// alphabet) are dropped without error.
//
// Classification results are memoized in a bounded LRU owned by each Merger.
// The package-level functions share one default Merger.
package twmerge
