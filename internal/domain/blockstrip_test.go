package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripDeadBlocks(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "no guard",
			content: "import os\n\ndef f():\n    pass\n",
			want:    "import os\n\ndef f():\n    pass\n",
		},
		{
			name: "guard with body and trailing blank",
			content: "import os\n" +
				"if TYPE_CHECKING:\n" +
				"    from mylib import Thing\n" +
				"\n" +
				"def f():\n" +
				"    pass\n",
			want: "import os\ndef f():\n    pass\n",
		},
		{
			name: "qualified guard",
			content: "if typing.TYPE_CHECKING:\n" +
				"    import mylib\n" +
				"x = 1\n",
			want: "x = 1\n",
		},
		{
			name: "guard with no deeper lines",
			content: "if TYPE_CHECKING:\n" +
				"x = 1\n",
			want: "x = 1\n",
		},
		{
			name: "indented guard stops at sibling indentation",
			content: "class C:\n" +
				"    if TYPE_CHECKING:\n" +
				"        from mylib import Thing\n" +
				"    def method(self):\n" +
				"        pass\n",
			want: "class C:\n    def method(self):\n        pass\n",
		},
		{
			name: "multi-line import inside guard",
			content: "if TYPE_CHECKING:\n" +
				"    from mylib.environment import (\n" +
				"        API_KEY,\n" +
				"    )\n" +
				"\n" +
				"def f():\n" +
				"    pass\n",
			want: "def f():\n    pass\n",
		},
		{
			name:    "guard at end of file",
			content: "x = 1\nif TYPE_CHECKING:\n    import mylib",
			want:    "x = 1\n",
		},
		{
			name:    "condition mentioning the flag is not a guard",
			content: "if TYPE_CHECKING and debug:\n    import mylib\n",
			want:    "if TYPE_CHECKING and debug:\n    import mylib\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripDeadBlocks(tt.content))
		})
	}
}

func TestDeadBlocks_Spans(t *testing.T) {
	content := "if TYPE_CHECKING:\n    import a\nx = 1\nif TYPE_CHECKING:\n    import b\n"

	spans := DeadBlocks(content)

	assert.Len(t, spans, 2)
	assert.Equal(t, "if TYPE_CHECKING:\n    import a\n", content[spans[0].Start:spans[0].End])
	assert.Equal(t, "if TYPE_CHECKING:\n    import b\n", content[spans[1].Start:spans[1].End])
}
