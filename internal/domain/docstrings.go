package domain

import (
	"regexp"
	"strings"
)

// assignmentPrefix matches a `name(.name)* =` tail, which marks a
// triple-quoted string as an assigned value rather than a docstring.
var assignmentPrefix = regexp.MustCompile(`(?:^|[^\w.])[A-Za-z_]\w*(?:\.[A-Za-z_]\w*)*[ \t]*=[ \t]*$`)

// StripDocstrings removes bare triple-quoted strings while preserving
// triple-quoted literals that are assigned, imported, decorated, or
// f-prefixed. A run of exactly three identical quote characters delimits a
// string; four or more in a row is not a delimiter. Unterminated openers are
// copied through verbatim.
func StripDocstrings(content string) string {
	var out strings.Builder

	i := 0
	for i < len(content) {
		c := content[i]

		if c != '"' && c != '\'' {
			out.WriteByte(c)
			i++

			continue
		}

		if quoteRun(content, i, c) != 3 {
			// 1, 2, or 4+: not a delimiter here, skip one char and retry.
			out.WriteByte(c)
			i++

			continue
		}

		delim := strings.Repeat(string(c), 3)

		closing := strings.Index(content[i+3:], delim)
		if closing < 0 {
			// Unterminated: ordinary text.
			out.WriteByte(c)
			i++

			continue
		}

		end := i + 3 + closing + 3

		if preserveTripleString(content, i) {
			out.WriteString(content[i:end])
		}

		i = end
	}

	return out.String()
}

// preserveTripleString inspects the text on the same line immediately before
// the opening delimiter at start.
func preserveTripleString(content string, start int) bool {
	lineStart := strings.LastIndexByte(content[:start], '\n') + 1
	preceding := content[lineStart:start]

	// String prefix letters attach directly to the quotes: f""", rf""", Rf""".
	prefix := trailingLetters(preceding)
	if strings.ContainsAny(prefix, "fF") {
		return true
	}

	stripped := preceding[:len(preceding)-len(prefix)]
	if assignmentPrefix.MatchString(stripped) {
		return true
	}

	trimmed := strings.TrimSpace(preceding)

	return strings.HasPrefix(trimmed, "from ") ||
		strings.HasPrefix(trimmed, "import ") ||
		strings.HasPrefix(trimmed, "@")
}

// quoteRun counts the consecutive occurrences of quote starting at i.
func quoteRun(content string, i int, quote byte) int {
	n := 0
	for i+n < len(content) && content[i+n] == quote {
		n++
	}

	return n
}

// trailingLetters returns the run of ASCII letters ending the text.
func trailingLetters(text string) string {
	end := len(text)

	i := end
	for i > 0 {
		c := text[i-1]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			break
		}

		i--
	}

	return text[i:end]
}
