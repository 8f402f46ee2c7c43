// Package parsers turns raw kernel counter files and diagnostic command
// output into numbers. Every function here is pure: callers do the I/O and
// hand over the text, which keeps the parsing testable with literal fixtures.
//
// Parsers return an error for anything they cannot make sense of. Callers in
// the metrics package fold those errors into an absent reading.
package parsers
