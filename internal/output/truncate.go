package output

import "github.com/mattn/go-runewidth"

// Ellipsis marks a truncated value.
const Ellipsis = "…"

// Truncate cuts s to limit display columns and appends Ellipsis. Strings that
// already fit, and any string when limit <= 0, are returned unchanged.
func Truncate(s string, limit int) string {
	if limit <= 0 || runewidth.StringWidth(s) <= limit {
		return s
	}
	return runewidth.Truncate(s, limit, "") + Ellipsis
}
