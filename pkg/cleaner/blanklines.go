package cleaner

import (
	"sort"
	"strings"

	"github.com/rigby-dev/rigby/pkg/config"
	"github.com/rigby-dev/rigby/pkg/pyast"
	"github.com/rigby-dev/rigby/pkg/utils"
)

// boundary records which definition owns an end line. When a class and a
// nested function end on the same line, the innermost definition (largest
// start line) wins and its spacer count applies.
type boundary struct {
	kind  pyast.StmtKind
	start int
}

// NormalizeBlankLines removes blank lines inside every function and class
// body (docstring spacing exempt when configured) and makes the number of
// blank lines after each definition exactly match the configured counts.
// Blank lines that already follow a definition end are deleted first; the
// pass owns spacing at definition boundaries outright.
func NormalizeBlankLines(src string, cfg *config.Config) (string, error) {
	mod, err := pyast.Parse(src)
	if err != nil {
		return "", err
	}
	lines := utils.SplitLines(src)

	var defs []*pyast.Stmt
	mod.Walk(func(s *pyast.Stmt) {
		if s.IsDef() {
			defs = append(defs, s)
		}
	})

	if cfg.SortMethods {
		// Reorders bookkeeping traversal only; statements are not relocated.
		sort.SliceStable(defs, func(i, j int) bool {
			if defs[i].StartLine != defs[j].StartLine {
				return defs[i].StartLine < defs[j].StartLine
			}
			if defs[i].Kind != defs[j].Kind {
				return defs[i].Kind.String() < defs[j].Kind.String()
			}
			return defs[i].Name < defs[j].Name
		})
	}

	remove := make(map[int]bool)
	ends := make(map[int]boundary)

	for _, def := range defs {
		var doc *pyast.Stmt
		if cfg.PreserveDocstringSpacing {
			doc = def.Docstring()
		}
		for i := def.StartLine; i <= def.EndLine && i < len(lines); i++ {
			if strings.TrimSpace(lines[i]) != "" {
				continue
			}
			// The docstring guard covers one line past the literal so the
			// conventional blank separating a docstring from the first
			// statement survives.
			if doc != nil && i <= doc.EndLine+1 {
				continue
			}
			remove[i] = true
		}
		if b, ok := ends[def.EndLine]; !ok || def.StartLine > b.start {
			ends[def.EndLine] = boundary{kind: def.Kind, start: def.StartLine}
		}
	}

	for e := range ends {
		for i := e + 1; i < len(lines) && strings.TrimSpace(lines[i]) == ""; i++ {
			remove[i] = true
		}
	}

	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if remove[i] {
			continue
		}
		out = append(out, line)
		if b, ok := ends[i]; ok {
			n := cfg.LinesBetweenFunctions
			if b.kind == pyast.StmtClass {
				n = cfg.LinesBetweenClasses
			}
			for k := 0; k < n; k++ {
				out = append(out, "")
			}
		}
	}
	return strings.Join(out, "\n"), nil
}
