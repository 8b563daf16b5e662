// Package output formats compare reports for display or machine consumption.
//
// Three formats are supported:
//   - text: summary and per-section tables for the terminal (default)
//   - json: the full structured report
//   - markdown: the same tables as GitHub-flavoured markdown
//
// Use [GetWriter] to obtain a [Writer] for a given format string, then call
// [Writer.Write] with an [io.Writer] and a [*compare.Report]. [WriteReport]
// handles destination selection. Values wider than [Options.Limit] display
// columns are cut by [Truncate] and end in [Ellipsis].
package output
