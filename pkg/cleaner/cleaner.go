// Package cleaner implements the source transformation: import grouping
// followed by blank-line normalization. Every pass is a pure function from
// (text, config) to text; parse trees never outlive the pass that produced
// them, since line numbers go stale after any rewrite.
package cleaner

import (
	"github.com/rigby-dev/rigby/pkg/config"
)

// CleanSource rewrites Python source text according to the configuration:
// imports first, then blank-line normalization over the re-parsed result.
// The transformation is deterministic and idempotent; a nil config means
// the defaults.
func CleanSource(src string, cfg *config.Config) (string, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	out, err := FormatImports(src, cfg)
	if err != nil {
		return "", err
	}
	return NormalizeBlankLines(out, cfg)
}
