// Package model defines the data structures for the inlining pipeline.
package model

// Span is a half-open byte range [Start, End) within a file's content.
type Span struct {
	Start int
	End   int
}

// Kind distinguishes how a module reference resolved on disk.
type Kind string

const (
	// KindPackage means the reference resolved to a package __init__ file.
	KindPackage Kind = "package"

	// KindSubmodule means the reference resolved to a plain module file.
	KindSubmodule Kind = "submodule"
)

// ImportMatch is one located import statement. End spans to the closing
// parenthesis line's terminator for multi-line imports and to end-of-line
// (terminator excluded) otherwise.
type ImportMatch struct {
	Indent string
	Ref    string
	Names  string
	Span
}

// Options holds the per-run switches threaded through the pipeline.
type Options struct {
	Release bool
	Verbose bool
}
