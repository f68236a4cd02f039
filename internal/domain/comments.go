package domain

import "strings"

// StripComments removes comment lines and trailing inline comments. The
// shebang on line 0 and inline-script-metadata blocks are preserved verbatim,
// and a `#` inside a single-, double-, or triple-quoted string (including
// multi-line triple-quoted strings) never starts a comment. The input's final
// trailing-newline presence is preserved.
func StripComments(content string) string {
	terminated := strings.HasSuffix(content, "\n")
	lines := splitLines(content)

	kept := make([]string, 0, len(lines))

	inMetadata := false

	// The quote character of a still-open triple-quoted string carried over
	// from a previous line, or 0.
	var openTriple byte

	for idx, line := range lines {
		if idx == 0 && strings.HasPrefix(line, "#!") {
			kept = append(kept, line)
			continue
		}

		if openTriple == 0 {
			trimmed := strings.TrimSpace(line)

			if inMetadata {
				kept = append(kept, line)

				if trimmed == metadataBlockEnd {
					inMetadata = false
				}

				continue
			}

			if metadataBlockMarker.MatchString(trimmed) {
				inMetadata = true

				kept = append(kept, line)

				continue
			}
		}

		stripped, drop := stripLineComment(line, &openTriple)
		if drop {
			continue
		}

		kept = append(kept, stripped)
	}

	out := strings.Join(kept, "\n")
	if terminated && out != "" {
		out += "\n"
	}

	return out
}

// stripLineComment scans one line, tracking string state, and returns the
// line with any comment removed. drop is true when the line held nothing but
// a comment. openTriple carries triple-quoted string state across lines.
func stripLineComment(line string, openTriple *byte) (string, bool) {
	// Quote character of an open short string on this line, or 0. Short
	// strings do not span lines.
	var short byte

	i := 0
	for i < len(line) {
		c := line[i]

		if *openTriple != 0 {
			if c == *openTriple && quoteRun(line, i, c) >= 3 {
				*openTriple = 0
				i += 3

				continue
			}

			i++

			continue
		}

		if short != 0 {
			switch c {
			case '\\':
				i += 2
			case short:
				short = 0
				i++
			default:
				i++
			}

			continue
		}

		switch c {
		case '\'', '"':
			if quoteRun(line, i, c) >= 3 {
				*openTriple = c
				i += 3
			} else {
				short = c
				i++
			}

		case '\\':
			i += 2

		case '#':
			code := strings.TrimRight(line[:i], " \t")
			if strings.TrimSpace(code) == "" {
				return "", true
			}

			return code, false

		default:
			i++
		}
	}

	return line, false
}
