package model

// InlineStatus describes what happened to one located import statement.
type InlineStatus string

const (
	// StatusInlined means the referenced file was substituted in full.
	StatusInlined InlineStatus = "inlined"

	// StatusElided means the file was already inlined earlier in the run and
	// the statement was dropped (or replaced by a one-line marker).
	StatusElided InlineStatus = "elided"

	// StatusExternal means no search root contained the module; the import
	// statement was left untouched.
	StatusExternal InlineStatus = "external"
)

// InlineRecord is one row of the per-run summary shown in verbose mode.
type InlineRecord struct {
	Ref    string
	File   Path
	Kind   Kind
	Status InlineStatus
}
