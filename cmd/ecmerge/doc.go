// Ecmerge merges and compares two .editorconfig files, section by section.
//
// Usage:
//
//	ecmerge merge a/.editorconfig b/.editorconfig -o merged.editorconfig
//	ecmerge merge a/.editorconfig b/.editorconfig -o out --first2win
//	ecmerge compare a/.editorconfig b/.editorconfig --limit 20
//	ecmerge compare a/.editorconfig b/.editorconfig --format markdown --out report.md
//	ecmerge config set limit 60
package main
