package domain

import (
	"regexp"
	"sort"
	"strings"
)

// Inline-script-metadata block delimiters (PEP 723). The opening marker names
// a block type; the closing marker is the bare form.
var metadataBlockMarker = regexp.MustCompile(`^# /// [A-Za-z][\w-]*$`)

const metadataBlockEnd = "# ///"

// pythonImportLine classifies a line as a genuine Python import statement.
// The module name must be identifier-like, which keeps foreign import syntax
// embedded in string literals (e.g. JavaScript's `import { x } from "y"`)
// out of the consolidated header.
var pythonImportLine = regexp.MustCompile(
	`^(?:` +
		`from[ \t]+[A-Za-z_][\w.]*[ \t]+import[ \t]+[A-Za-z_*(][^;]*` +
		`|` +
		`import[ \t]+[A-Za-z_][\w.]*(?:[ \t]+as[ \t]+[A-Za-z_]\w*)?` +
		`(?:[ \t]*,[ \t]*[A-Za-z_][\w.]*(?:[ \t]+as[ \t]+[A-Za-z_]\w*)?)*` +
		`)[ \t]*$`,
)

// PostProcess runs the release pipeline: docstrings, then comments, then
// import consolidation, then blank lines. Comments go before consolidation so
// import lines with trailing comments consolidate cleanly; blanks go last so
// the gaps the earlier passes leave behind disappear.
func PostProcess(content string) string {
	content = StripDocstrings(content)
	content = StripComments(content)
	content = ConsolidateImports(content)

	return StripBlankLines(content)
}

// ConsolidateImports splits off the shebang and a well-formed
// inline-script-metadata block, deduplicates and sorts the import statements
// of the remainder, and reassembles header + imports + content with a single
// trailing newline.
func ConsolidateImports(content string) string {
	lines := splitLines(content)

	var header []string

	if len(lines) > 0 && strings.HasPrefix(lines[0], "#!") {
		header = append(header, lines[0])
		lines = lines[1:]
	}

	metadata, rest := splitMetadataBlock(lines)
	lines = rest

	importSet := make(map[string]struct{})

	var body []string

	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if pythonImportLine.MatchString(trimmed) {
			importSet[trimmed] = struct{}{}
			continue
		}

		body = append(body, line)
	}

	imports := make([]string, 0, len(importSet))
	for line := range importSet {
		imports = append(imports, line)
	}

	sort.Strings(imports)

	var out []string

	out = append(out, header...)

	if len(metadata) > 0 {
		out = append(out, metadata...)
		out = append(out, "")
	}

	out = append(out, imports...)

	if len(imports) > 0 {
		out = append(out, "")
	}

	out = append(out, body...)

	return strings.TrimRight(strings.Join(out, "\n"), "\n") + "\n"
}

// splitMetadataBlock peels a leading inline-script-metadata block off lines.
// The block must start with a typed marker and end at the bare end marker; an
// unterminated block is not split off.
func splitMetadataBlock(lines []string) (metadata, rest []string) {
	if len(lines) == 0 || !metadataBlockMarker.MatchString(lines[0]) {
		return nil, lines
	}

	for i, line := range lines {
		if i > 0 && line == metadataBlockEnd {
			return lines[:i+1], lines[i+1:]
		}
	}

	return nil, lines
}

// StripBlankLines drops every line whose trimmed content is empty, keeping
// relative order and the input's final trailing-newline presence.
func StripBlankLines(content string) string {
	terminated := strings.HasSuffix(content, "\n")
	lines := splitLines(content)

	kept := make([]string, 0, len(lines))

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		kept = append(kept, line)
	}

	out := strings.Join(kept, "\n")
	if terminated && out != "" {
		out += "\n"
	}

	return out
}

// splitLines splits content into lines without terminators, dropping the
// phantom empty element a trailing newline produces.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}

	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}
