package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shock/pyliner/internal/adapter"
	m "github.com/shock/pyliner/internal/model"
)

// runExample inlines examples/<name>/main.py from the repository tree and
// returns the produced output.
func runExample(t *testing.T, name string, opts m.Options) string {
	t.Helper()

	output := filepath.Join(t.TempDir(), "out.py")

	workflow := NewWorkflow(adapter.NewLocalStorage(), &adapter.StaticSysPath{}, &captureUI{})

	err := workflow.Run(RunArgs{
		Input:   m.Path(filepath.Join("../../examples", name, "main.py")),
		Output:  m.Path(output),
		Modules: []string{"modules", "tacos"},
		Options: opts,
	})
	require.NoError(t, err)

	content, err := os.ReadFile(output)
	require.NoError(t, err)

	return string(content)
}

func TestExamples_Basic(t *testing.T) {
	got := runExample(t, "basic", m.Options{})

	want := `#!/usr/bin/env python
"""Entry point exercising a plain local import."""

# ↓↓↓ inlined submodule: modules.util
def helper():
    return "helper"
# ↑↑↑ inlined submodule: modules.util
import json


def main():
    """Run the helper and report."""
    # call into the inlined module
    print(helper())
    print(json.dumps({"ok": True}))


if __name__ == "__main__":
    main()
`
	assert.Equal(t, want, got)
}

func TestExamples_BasicRelease(t *testing.T) {
	got := runExample(t, "basic", m.Options{Release: true})

	want := `#!/usr/bin/env python
import json
def helper():
    return "helper"
def main():
    print(helper())
    print(json.dumps({"ok": True}))
if __name__ == "__main__":
    main()
`
	assert.Equal(t, want, got)
}

func TestExamples_Package(t *testing.T) {
	got := runExample(t, "package", m.Options{})

	want := `# ↓↓↓ inlined package: tacos
# ↓↓↓ inlined submodule: .taco
class Taco:
    def __init__(self, name):
        self.name = name

    def __str__(self):
        return f"Taco: {self.name}"
# ↑↑↑ inlined submodule: .taco

__all__ = ["Taco"]
# ↑↑↑ inlined package: tacos


def main():
    print(Taco("Carnitas"))


if __name__ == "__main__":
    main()
`
	assert.Equal(t, want, got)
}

func TestExamples_TypeChecking(t *testing.T) {
	got := runExample(t, "typechecking", m.Options{})

	want := `#!/usr/bin/env python
"""Test case for multi-line TYPE_CHECKING imports."""
# ↓↓↓ inlined submodule: modules.provider_config
"""Provider configuration with TYPE_CHECKING imports."""
from typing import TYPE_CHECKING

def get_provider_name() -> str:
    """Get the provider name."""
    return "LiteLLM Provider"
# ↑↑↑ inlined submodule: modules.provider_config

def main():
    provider = get_provider_name()
    print(f"Provider: {provider}")

if __name__ == "__main__":
    main()
`
	assert.Equal(t, want, got)
}

func TestExamples_Cycle(t *testing.T) {
	got := runExample(t, "cycle", m.Options{})

	want := `# ↓↓↓ inlined submodule: modules.alpha
# ↓↓↓ inlined submodule: modules.beta
# →→ modules.alpha ←← already inlined


def helper():
    return "beta"
# ↑↑↑ inlined submodule: modules.beta


def start():
    return helper()
# ↑↑↑ inlined submodule: modules.alpha


def main():
    print(start())


if __name__ == "__main__":
    main()
`
	assert.Equal(t, want, got)
}
