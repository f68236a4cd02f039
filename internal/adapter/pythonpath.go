package adapter

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	m "github.com/shock/pyliner/internal/model"
)

// sysPathScript asks the interpreter for its module search path, one entry
// per stdout line.
const sysPathScript = "import sys; print('\\n'.join(sys.path))"

// SysPathProvider yields the module search path configured in the host
// Python runtime.
type SysPathProvider interface {
	SysPath() ([]m.Path, error)
}

// PythonSysPath queries the host interpreter via a subprocess.
type PythonSysPath struct {
	binary string
}

// NewPythonSysPath constructs a PythonSysPath for the given interpreter
// binary (e.g. "python3").
func NewPythonSysPath(binary string) *PythonSysPath {
	return &PythonSysPath{binary: binary}
}

// SysPath launches the interpreter and parses its sys.path. Launch failures
// and non-zero exits are hard errors carrying the captured output.
func (p *PythonSysPath) SysPath() ([]m.Path, error) {
	cmd := exec.Command(p.binary, "-c", sysPathScript)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf(
			"%s sys.path query failed: %w\nstdout: %s\nstderr: %s",
			p.binary, err, stdout.String(), stderr.String(),
		)
	}

	var paths []m.Path

	for _, line := range strings.Split(stdout.String(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		paths = append(paths, m.Path(line))
	}

	return paths, nil
}

// StaticSysPath returns a fixed search path. Used in tests and wherever the
// interpreter must not be consulted.
type StaticSysPath struct {
	Paths []m.Path
}

// SysPath returns the configured paths.
func (s *StaticSysPath) SysPath() ([]m.Path, error) {
	return s.Paths, nil
}
