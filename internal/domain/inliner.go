package domain

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/shock/pyliner/internal/adapter"
	m "github.com/shock/pyliner/internal/model"
)

// sourceExt is the module file extension consulted during resolution.
const sourceExt = ".py"

// packageInit is the file that marks a directory as a package.
const packageInit = "__init__" + sourceExt

// importStmt captures indentation, dotted module reference and the imported
// names clause of a from-import statement.
var importStmt = regexp.MustCompile(`^([ \t]*)from[ \t]+(\S+)[ \t]+import[ \t]+(.+)$`)

// Inliner recursively replaces local from-imports with the literal source of
// the referenced files. One Inliner serves one run: the processed set only
// grows, so a file inlined once is never inlined again, which also guarantees
// termination on cyclic import graphs.
type Inliner struct {
	storage   adapter.Storage
	spec      m.ModuleSpec
	roots     []m.Path
	opts      m.Options
	processed map[m.Path]struct{}
	records   []m.InlineRecord
}

// NewInliner constructs an Inliner over the given search roots.
func NewInliner(storage adapter.Storage, spec m.ModuleSpec, roots []m.Path, opts m.Options) *Inliner {
	return &Inliner{
		storage:   storage,
		spec:      spec,
		roots:     roots,
		opts:      opts,
		processed: make(map[m.Path]struct{}),
	}
}

// Seed marks a file as already processed. The entry file is seeded before the
// run so a cycle back to it elides instead of duplicating the body.
func (in *Inliner) Seed(path m.Path) {
	in.processed[path] = struct{}{}
}

// Records returns what happened to each located import, in order of
// appearance across the whole run.
func (in *Inliner) Records() []m.InlineRecord {
	return in.records
}

// InlineFile reads and inlines one file.
func (in *Inliner) InlineFile(path m.Path) (string, error) {
	raw, err := in.storage.ReadFile(path)
	if err != nil {
		return "", err
	}

	return in.Inline(string(raw), path)
}

// Inline substitutes every matching import statement in content. The output
// is built in a single left-to-right pass with a monotonically advancing
// cursor; unmatched content is copied verbatim.
func (in *Inliner) Inline(content string, current m.Path) (string, error) {
	working := StripDeadBlocks(content)
	matches := locateImports(working, in.spec)

	var out strings.Builder

	last := 0

	for _, match := range matches {
		out.WriteString(working[last:match.Start])

		statement := working[match.Start:match.End]
		terminated := strings.HasSuffix(statement, "\n")

		resolved, kind := in.resolve(match.Ref, current)

		switch {
		case resolved == "":
			// No search root has this module: leave the import intact.
			slog.Debug("import left intact", "ref", match.Ref, "file", current)
			in.record(match.Ref, "", "", m.StatusExternal)
			out.WriteString(statement)

		case in.done(resolved):
			slog.Warn("already inlined, skipping", "ref", match.Ref, "path", resolved)
			in.record(match.Ref, resolved, kind, m.StatusElided)

			if !in.opts.Release {
				out.WriteString(match.Indent + "# →→ " + match.Ref + " ←← already inlined")

				if terminated {
					out.WriteString("\n")
				}
			}

		default:
			in.processed[resolved] = struct{}{}

			slog.Debug("inlining module", "ref", match.Ref, "path", resolved, "kind", kind)
			in.record(match.Ref, resolved, kind, m.StatusInlined)

			body, err := in.InlineFile(resolved)
			if err != nil {
				return "", err
			}

			if !in.opts.Release {
				out.WriteString(fmt.Sprintf("%s# ↓↓↓ inlined %s: %s\n", match.Indent, kind, match.Ref))
			}

			block := reindent(body, match.Indent)
			if !strings.HasSuffix(block, "\n") {
				block += "\n"
			}

			out.WriteString(block)

			if !in.opts.Release {
				out.WriteString(fmt.Sprintf("%s# ↑↑↑ inlined %s: %s", match.Indent, kind, match.Ref))

				if terminated {
					out.WriteString("\n")
				}
			}
		}

		last = match.End
	}

	out.WriteString(working[last:])

	return out.String(), nil
}

func (in *Inliner) done(path m.Path) bool {
	_, ok := in.processed[path]

	return ok
}

func (in *Inliner) record(ref string, path m.Path, kind m.Kind, status m.InlineStatus) {
	in.records = append(in.records, m.InlineRecord{Ref: ref, File: path, Kind: kind, Status: status})
}

// resolve maps a dotted module reference to a concrete file. Relative
// references resolve against the current file's directory; bare references
// try each search root in order, package form before plain-module form.
func (in *Inliner) resolve(ref string, current m.Path) (m.Path, m.Kind) {
	if strings.HasPrefix(ref, ".") {
		trimmed := strings.TrimLeft(ref, ".")
		rel := strings.ReplaceAll(trimmed, ".", string(filepath.Separator))

		return in.probe(filepath.Join(filepath.Dir(string(current)), rel))
	}

	rel := strings.ReplaceAll(ref, ".", string(filepath.Separator))

	for _, root := range in.roots {
		if path, kind := in.probe(filepath.Join(string(root), rel)); path != "" {
			return path, kind
		}
	}

	return "", ""
}

func (in *Inliner) probe(base string) (m.Path, m.Kind) {
	initFile := m.Path(filepath.Join(base, packageInit))
	if in.storage.Exists(initFile) {
		return initFile, m.KindPackage
	}

	moduleFile := m.Path(base + sourceExt)
	if in.storage.Exists(moduleFile) {
		return moduleFile, m.KindSubmodule
	}

	return "", ""
}

// locateImports scans content line by line for qualifying import statements.
// A statement whose names clause leaves parentheses open is multi-line; its
// span extends through the line holding the matching closing parenthesis,
// terminator included. Single-line spans exclude the terminator.
func locateImports(content string, spec m.ModuleSpec) []m.ImportMatch {
	var matches []m.ImportMatch

	offset := 0
	for offset < len(content) {
		lineEnd := lineEndAfter(content, offset)
		line := strings.TrimSuffix(content[offset:lineEnd], "\n")

		sub := importStmt.FindStringSubmatch(line)
		if sub == nil || !spec.Matches(sub[2]) {
			offset = lineEnd
			continue
		}

		end := offset + len(line)
		depth := parenDepth(sub[3])

		for depth > 0 && lineEnd < len(content) {
			next := lineEndAfter(content, lineEnd)
			depth += parenDepth(strings.TrimSuffix(content[lineEnd:next], "\n"))
			end = next
			lineEnd = next
		}

		matches = append(matches, m.ImportMatch{
			Indent: sub[1],
			Ref:    sub[2],
			Names:  sub[3],
			Span:   m.Span{Start: offset, End: end},
		})

		offset = lineEnd
	}

	return matches
}

// parenDepth returns the net parenthesis nesting introduced by the text.
func parenDepth(text string) int {
	depth := 0

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
	}

	return depth
}

// reindent prefixes every non-empty line with the import site's indentation.
// Truly empty lines stay empty so no trailing whitespace is injected.
func reindent(text, indent string) string {
	if indent == "" {
		return text
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = indent + line
		}
	}

	return strings.Join(lines, "\n")
}
