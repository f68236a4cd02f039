package model

import "strings"

// Path represents a file system path.
type Path string

// relativePrefix marks an import reference as relative to the importing file.
const relativePrefix = "."

// ModuleSpec is the ordered list of local module name prefixes that qualify an
// import for inlining. References starting with a dot (relative to the current
// file) always qualify, whether or not any names are configured.
type ModuleSpec struct {
	Names []string
}

// NewModuleSpec builds a ModuleSpec from the given names, dropping empties.
func NewModuleSpec(names ...string) ModuleSpec {
	spec := ModuleSpec{Names: make([]string, 0, len(names))}

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		spec.Names = append(spec.Names, name)
	}

	return spec
}

// ParseModuleSpec splits a comma-separated list of module names.
func ParseModuleSpec(list string) ModuleSpec {
	return NewModuleSpec(strings.Split(list, ",")...)
}

// Matches reports whether the dotted import reference qualifies for inlining.
func (s ModuleSpec) Matches(ref string) bool {
	if strings.HasPrefix(ref, relativePrefix) {
		return true
	}

	for _, name := range s.Names {
		if strings.HasPrefix(ref, name) {
			return true
		}
	}

	return false
}
