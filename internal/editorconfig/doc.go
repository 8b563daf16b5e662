// Package editorconfig parses .editorconfig-style text into ordered sections.
//
// A section starts at a bracketed header line such as [*.ts] and collects the
// key = value lines that follow it. Headers are compared as literal strings;
// a header that appears again later in the file resumes the existing section
// instead of starting a new one. Comment lines (#...), lines before the first
// header and lines that are not a single key = value assignment are dropped
// silently, so [Parse] never fails.
//
// [Format] writes sections back out in the same shape, and [ParseFile] reads
// and parses a file from disk.
package editorconfig
