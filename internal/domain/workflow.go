package domain

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/shock/pyliner/internal/adapter"
	"github.com/shock/pyliner/internal/controller"
	m "github.com/shock/pyliner/internal/model"
)

// RunArgs holds everything one inlining run needs.
type RunArgs struct {
	Input   m.Path
	Output  m.Path
	Modules []string
	Options m.Options
}

// Workflow wires storage, search-path resolution, the inliner, and the
// post-processor into the fixed pipeline order.
type Workflow interface {
	Run(args RunArgs) error
}

type workflow struct {
	storage adapter.Storage
	sysPath adapter.SysPathProvider
	ui      controller.UI
}

// NewWorkflow constructs the Workflow over the given adapters.
func NewWorkflow(storage adapter.Storage, sysPath adapter.SysPathProvider, ui controller.UI) Workflow {
	return &workflow{storage: storage, sysPath: sysPath, ui: ui}
}

// Run executes one inlining run: canonicalize the entry file, assemble the
// search roots, inline depth-first, optionally post-process, and write the
// output. The first unrecoverable error aborts.
func (w *workflow) Run(args RunArgs) error {
	entry, err := w.storage.Canonicalize(args.Input)
	if err != nil {
		return fmt.Errorf("input file: %w", err)
	}

	workingDir := m.Path(filepath.Dir(string(entry)))

	resolver := NewSearchPathResolver(w.storage, w.sysPath)

	roots, err := resolver.Roots(workingDir)
	if err != nil {
		return err
	}

	if args.Options.Verbose {
		w.ui.TraceRoots(roots)
	}

	spec := m.NewModuleSpec(args.Modules...)

	inliner := NewInliner(w.storage, spec, roots, args.Options)
	inliner.Seed(entry)

	slog.Info("inlining", "input", entry, "output", args.Output, "release", args.Options.Release)

	content, err := inliner.InlineFile(entry)
	if err != nil {
		return err
	}

	if args.Options.Release {
		content = PostProcess(content)
	}

	if err := w.storage.WriteFile(args.Output, []byte(content), 0o644); err != nil {
		return err
	}

	if args.Options.Verbose {
		if err := w.ui.DisplaySummary(inliner.Records()); err != nil {
			return err
		}
	}

	w.ui.DisplaySuccess(args.Output)

	return nil
}
