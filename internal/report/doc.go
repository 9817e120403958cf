// Package report provides report output functionality.
//
// This package contains writers for different output formats:
//   - JSONWriter: Structured JSON arrays, the default and the format
//     downstream consumers read
//   - MarkdownWriter: GitHub Flavored Markdown for sharing
//   - SimpleWriter: Human-readable text output for terminal display
//
// Report rows are defined in the model package and built by the training
// package; writers only render them.
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed for multi-format output.
package report
