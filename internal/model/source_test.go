package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseModuleSpec(t *testing.T) {
	tests := []struct {
		name string
		list string
		want []string
	}{
		{"empty", "", []string{}},
		{"single", "mylib", []string{"mylib"}},
		{"multiple", "mylib,vendorlib", []string{"mylib", "vendorlib"}},
		{"whitespace and empties", " mylib , ,vendorlib,", []string{"mylib", "vendorlib"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseModuleSpec(tt.list).Names)
		})
	}
}

func TestModuleSpec_Matches(t *testing.T) {
	spec := NewModuleSpec("mylib", "tools")

	tests := []struct {
		name string
		ref  string
		want bool
	}{
		{"exact", "mylib", true},
		{"submodule", "mylib.util", true},
		{"prefix continuation", "toolsbox", true},
		{"relative always matches", ".sibling", true},
		{"parent relative", "..shared.config", true},
		{"unknown", "requests", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, spec.Matches(tt.ref))
		})
	}
}

func TestModuleSpec_RelativeOnlyDefault(t *testing.T) {
	spec := NewModuleSpec()

	assert.True(t, spec.Matches(".local"))
	assert.False(t, spec.Matches("anything"))
}
