// Package controller provides output adapters for displaying inlining
// results.
package controller

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "github.com/shock/pyliner/internal/model"
)

// UI defines the interface for reporting a run to the user. Implementations
// can use different output methods (simple text, TUI pager).
type UI interface {
	// TraceRoots shows the resolved search roots (verbose only).
	TraceRoots(roots []m.Path)

	// DisplaySummary shows what happened to each located import.
	DisplaySummary(records []m.InlineRecord) error

	// DisplaySuccess confirms the written output file.
	DisplaySuccess(output m.Path)
}

// NewUI picks the UI implementation: a pager-capable TUI on a terminal, plain
// text otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether the file is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
