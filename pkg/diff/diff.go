// Package diff renders textual diffs for the CLI's --diff mode.
package diff

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Unified returns a unified diff between the original and cleaned content of
// one file, with three lines of context.
func Unified(path, original, cleaned string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(cleaned),
		FromFile: path,
		ToFile:   path,
		Context:  3,
	})
}
