package cleaner

import (
	"path"
	"sort"
	"strings"

	"github.com/rigby-dev/rigby/pkg/config"
	"github.com/rigby-dev/rigby/pkg/pyast"
	"github.com/rigby-dev/rigby/pkg/utils"
)

// FormatImports extracts every import statement in src, classifies each into
// the first configured group whose patterns match its module path, sorts
// within groups, and substitutes the rendered groups over the contiguous
// line span the original imports occupied. Lines outside that span are
// emitted verbatim.
//
// The replaced span runs from the first to the last import line, so
// non-import statements interleaved between imports are replaced along with
// them. Known limitation; keep unrelated code out of the import block.
func FormatImports(src string, cfg *config.Config) (string, error) {
	if !cfg.SortImports {
		return src, nil
	}

	mod, err := pyast.Parse(src)
	if err != nil {
		return "", err
	}

	var imports []pyast.Import
	mod.Walk(func(s *pyast.Stmt) {
		imports = append(imports, s.Imports...)
	})
	if len(imports) == 0 {
		return src, nil
	}

	minLine, maxLine := imports[0].StartLine, imports[0].EndLine
	for _, imp := range imports[1:] {
		if imp.StartLine < minLine {
			minLine = imp.StartLine
		}
		if imp.EndLine > maxLine {
			maxLine = imp.EndLine
		}
	}

	rendered := renderGroups(groupImports(imports, cfg), cfg.LinesBetweenImportGroups)

	lines := utils.SplitLines(src)
	out := make([]string, 0, len(lines))
	out = append(out, lines[:minLine]...)
	out = append(out, rendered...)
	if maxLine+1 < len(lines) {
		out = append(out, lines[maxLine+1:]...)
	}
	return strings.Join(out, "\n"), nil
}

// groupImports assigns each import to a bucket per the configured group
// order. The extra trailing bucket catches unmatched imports when no group
// named config.FallbackGroup exists.
func groupImports(imports []pyast.Import, cfg *config.Config) [][]pyast.Import {
	groups := make([][]pyast.Import, len(cfg.ImportGroups)+1)
	fallback := len(cfg.ImportGroups)
	for i, g := range cfg.ImportGroups {
		if g.Name == config.FallbackGroup {
			fallback = i
			break
		}
	}

	for _, imp := range imports {
		idx := fallback
		for i, g := range cfg.ImportGroups {
			if matchAny(g.Patterns, imp.Module) {
				idx = i
				break
			}
		}
		groups[idx] = append(groups[idx], imp)
	}

	for i := range groups {
		sortGroup(groups[i])
	}
	return groups
}

// matchAny tests a dotted module path against shell-glob patterns. Module
// paths contain no path separators, so path.Match gives fnmatch semantics.
// A "pkg.*" pattern additionally covers the bare package "pkg", so one
// pattern claims a package together with its submodules.
func matchAny(patterns []string, module string) bool {
	for _, pattern := range patterns {
		if ok, err := path.Match(pattern, module); err == nil && ok {
			return true
		}
		if strings.HasSuffix(pattern, ".*") && module == strings.TrimSuffix(pattern, ".*") {
			return true
		}
	}
	return false
}

// sortGroup orders a group by (module path, sorted imported names),
// case-sensitive, matching the rendered text order.
func sortGroup(imports []pyast.Import) {
	sort.SliceStable(imports, func(i, j int) bool {
		if imports[i].Module != imports[j].Module {
			return imports[i].Module < imports[j].Module
		}
		return namesKey(imports[i].Names) < namesKey(imports[j].Names)
	})
}

func namesKey(names []string) string {
	return strings.Join(sortedNames(names), ",")
}

func sortedNames(names []string) []string {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	return sorted
}

// renderGroups renders non-empty groups in declaration order, separated by
// the configured number of blank lines, with no trailing blank line.
func renderGroups(groups [][]pyast.Import, separator int) []string {
	var out []string
	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		if len(out) > 0 {
			for i := 0; i < separator; i++ {
				out = append(out, "")
			}
		}
		for _, imp := range group {
			out = append(out, renderImport(imp))
		}
	}
	return out
}

// renderImport renders the canonical text of one import statement.
func renderImport(imp pyast.Import) string {
	if imp.IsFrom {
		return "from " + imp.Module + " import " + strings.Join(sortedNames(imp.Names), ", ")
	}
	return "import " + imp.Module
}
