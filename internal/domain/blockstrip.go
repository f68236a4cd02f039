// Package domain implements the inlining pipeline: dead-block stripping,
// import location and recursive substitution, search-path resolution, and the
// release-mode post-processing passes.
package domain

import (
	"regexp"
	"strings"

	m "github.com/shock/pyliner/internal/model"
)

// typeCheckingGuard matches a static-type-checking-only conditional. Such
// blocks never execute at runtime, so import statements inside them must not
// be treated as live imports.
var typeCheckingGuard = regexp.MustCompile(`^([ \t]*)if[ \t]+(?:typing\.)?TYPE_CHECKING[ \t]*:[ \t]*$`)

// DeadBlocks returns non-overlapping byte ranges covering every
// type-checking-only block: the guard line plus all immediately following
// lines that are blank or indented strictly deeper. A guard with no deeper
// lines still yields a span covering the guard line itself.
func DeadBlocks(content string) []m.Span {
	var spans []m.Span

	offset := 0
	for offset < len(content) {
		lineEnd := lineEndAfter(content, offset)
		line := strings.TrimSuffix(content[offset:lineEnd], "\n")

		sub := typeCheckingGuard.FindStringSubmatch(line)
		if sub == nil {
			offset = lineEnd
			continue
		}

		guardIndent := len(sub[1])
		end := lineEnd

		for end < len(content) {
			nextEnd := lineEndAfter(content, end)
			next := strings.TrimSuffix(content[end:nextEnd], "\n")

			if strings.TrimSpace(next) != "" && indentWidth(next) <= guardIndent {
				break
			}

			end = nextEnd
		}

		spans = append(spans, m.Span{Start: offset, End: end})
		offset = end
	}

	return spans
}

// StripDeadBlocks removes every dead block span from the content.
func StripDeadBlocks(content string) string {
	spans := DeadBlocks(content)
	if len(spans) == 0 {
		return content
	}

	var out strings.Builder

	last := 0
	for _, span := range spans {
		out.WriteString(content[last:span.Start])
		last = span.End
	}

	out.WriteString(content[last:])

	return out.String()
}

// lineEndAfter returns the offset just past the line starting at offset,
// including its terminator when present.
func lineEndAfter(content string, offset int) int {
	if idx := strings.IndexByte(content[offset:], '\n'); idx >= 0 {
		return offset + idx + 1
	}

	return len(content)
}

// indentWidth counts the leading space/tab characters of a line.
func indentWidth(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return i
		}
	}

	return len(line)
}
