// Package printer renders an alignment to a terminal: sequences wrapped
// into terminal-width blocks with their names left-aligned, followed by
// the overall similarity percentage. Terminal width comes from
// golang.org/x/term, falling back to 80 columns for piped output.
package printer
