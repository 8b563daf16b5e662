// Package compare classifies the properties of two parsed .editorconfig files.
//
// Sections are matched by literal header. For every matched section each key
// lands in exactly one of four buckets: same (present in both with equal
// values), diff (present in both, values differ), onlyA or onlyB. Sections
// present on one side only contribute all of their keys to that side's bucket.
//
// [CompareAll] returns matched sections first (in A's order), then A-only
// sections, then B-only sections. All functions are pure.
package compare
