package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsolidateImports(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "deduplicated and sorted",
			content: "import os\nx = 1\nimport json\nimport os\ny = 2\n",
			want:    "import json\nimport os\n\nx = 1\ny = 2\n",
		},
		{
			name:    "shebang stays on top",
			content: "#!/usr/bin/env python\nx = 1\nimport os\n",
			want:    "#!/usr/bin/env python\nimport os\n\nx = 1\n",
		},
		{
			name:    "indented import hoisted to top level",
			content: "def f():\n    import os\n    return os.getpid()\n",
			want:    "import os\n\ndef f():\n    return os.getpid()\n",
		},
		{
			name:    "from imports and aliases",
			content: "from mylib import thing\nimport os as o, sys\nx = 1\n",
			want:    "from mylib import thing\nimport os as o, sys\n\nx = 1\n",
		},
		{
			name: "metadata block kept ahead of imports",
			content: "#!/usr/bin/env python\n" +
				"# /// script\n" +
				"# dependencies = []\n" +
				"# ///\n" +
				"import os\n" +
				"x = 1\n",
			want: "#!/usr/bin/env python\n" +
				"# /// script\n" +
				"# dependencies = []\n" +
				"# ///\n" +
				"\n" +
				"import os\n" +
				"\n" +
				"x = 1\n",
		},
		{
			name:    "foreign import syntax stays in place",
			content: "code = 1\nimport { x } from \"y\"\n",
			want:    "code = 1\nimport { x } from \"y\"\n",
		},
		{
			name:    "no imports at all",
			content: "x = 1\ny = 2\n",
			want:    "x = 1\ny = 2\n",
		},
		{
			name:    "single trailing newline enforced",
			content: "import os\nx = 1\n\n\n",
			want:    "import os\n\nx = 1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConsolidateImports(tt.content))
		})
	}
}

func TestStripBlankLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "blank and whitespace only lines dropped",
			content: "x = 1\n\n   \n\ty = 2\n",
			want:    "x = 1\n\ty = 2\n",
		},
		{
			name:    "no trailing newline preserved",
			content: "x = 1\n\ny = 2",
			want:    "x = 1\ny = 2",
		},
		{
			name:    "all blank input",
			content: "\n\n  \n",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripBlankLines(tt.content))
		})
	}
}

func TestPostProcess(t *testing.T) {
	content := "#!/usr/bin/env python\n" +
		"\"\"\"Entry.\"\"\"\n" +
		"\n" +
		"def helper():\n" +
		"    return \"helper\"\n" +
		"\n" +
		"import json\n" +
		"\n" +
		"def main():\n" +
		"    # report\n" +
		"    print(helper())\n" +
		"\n" +
		"main()\n"

	want := "#!/usr/bin/env python\n" +
		"import json\n" +
		"def helper():\n" +
		"    return \"helper\"\n" +
		"def main():\n" +
		"    print(helper())\n" +
		"main()\n"

	assert.Equal(t, want, PostProcess(content))
}

func TestPostProcess_KeepsMetadataBlock(t *testing.T) {
	content := "#!/usr/bin/env python\n" +
		"# /// script\n" +
		"# requires-python = \">=3.11\"\n" +
		"# ///\n" +
		"\"\"\"Doc.\"\"\"\n" +
		"import os\n" +
		"print(os.getpid())\n"

	want := "#!/usr/bin/env python\n" +
		"# /// script\n" +
		"# requires-python = \">=3.11\"\n" +
		"# ///\n" +
		"import os\n" +
		"print(os.getpid())\n"

	assert.Equal(t, want, PostProcess(content))
}
