// Package config holds the formatting rules for a run. A single Config value
// is loaded once, then shared read-only by every cleaning pass.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// FallbackGroup is the import group that receives imports matching no
// configured pattern.
const FallbackGroup = "standard_library"

// ImportGroup is a named, ordered bucket of glob patterns matched against
// dotted module paths. Groups are tried in declaration order; the first
// match wins.
type ImportGroup struct {
	Name     string   `toml:"name"`
	Patterns []string `toml:"patterns"`
}

// Config is the single source of truth for formatting rules.
type Config struct {
	LinesBetweenFunctions    int      `toml:"lines_between_functions"`
	LinesBetweenClasses      int      `toml:"lines_between_classes"`
	PreserveDocstringSpacing bool     `toml:"preserve_docstring_spacing"`
	ExcludePatterns          []string `toml:"exclude_patterns"`

	// SortMethods re-sorts the definition bookkeeping order during
	// normalization. It does not relocate source text; output is unaffected.
	SortMethods bool `toml:"sort_methods"`

	SortImports              bool `toml:"sort_imports"`
	LinesBetweenImportGroups int  `toml:"lines_between_import_groups"`

	// ImportGroups stays last so TOML encoding keeps scalar keys out of the
	// [[import_groups]] tables.
	ImportGroups []ImportGroup `toml:"import_groups"`
}

// Default returns the built-in configuration: one blank line after
// functions, two after classes, docstring spacing preserved, import sorting
// on with the four conventional groups.
func Default() *Config {
	return &Config{
		LinesBetweenFunctions:    1,
		LinesBetweenClasses:      2,
		PreserveDocstringSpacing: true,
		ExcludePatterns:          []string{"venv/**", ".git/**", "__pycache__/**"},
		SortMethods:              false,
		SortImports:              true,
		LinesBetweenImportGroups: 1,
		ImportGroups: []ImportGroup{
			{Name: "future", Patterns: []string{"__future__"}},
			{Name: "standard_library", Patterns: []string{"typing", "pathlib", "os", "sys"}},
			{Name: "third_party", Patterns: []string{"click.*", "rich.*", "pydantic.*", "loguru.*"}},
			{Name: "local", Patterns: []string{"rigby.*"}},
		},
	}
}

// Save writes the configuration as TOML to path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(c)
}
