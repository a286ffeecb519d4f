package cleaner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rigby-dev/rigby/pkg/config"
	"github.com/rigby-dev/rigby/pkg/pyast"
)

func TestCleanSource_EndToEnd(t *testing.T) {
	req := require.New(t)
	src := "def foo():\n" +
		"    x = 1\n" +
		"\n" +
		"    y = 2\n" +
		"def bar():\n" +
		"    pass\n"

	want := "def foo():\n" +
		"    x = 1\n" +
		"    y = 2\n" +
		"\n" +
		"def bar():\n" +
		"    pass\n"

	got, err := CleanSource(src, config.Default())
	req.NoError(err)
	req.Equal(want, got)
}

func TestCleanSource_ImportsThenBlankLines(t *testing.T) {
	req := require.New(t)
	src := "import sys\n" +
		"import click\n" +
		"import os\n" +
		"\n" +
		"def foo():\n" +
		"    x = 1\n" +
		"\n" +
		"    return x\n"

	want := "import os\n" +
		"import sys\n" +
		"\n" +
		"import click\n" +
		"\n" +
		"def foo():\n" +
		"    x = 1\n" +
		"    return x\n"

	got, err := CleanSource(src, config.Default())
	req.NoError(err)
	req.Equal(want, got)
}

func TestCleanSource_NilConfigUsesDefaults(t *testing.T) {
	req := require.New(t)
	src := "def foo():\n" +
		"    x = 1\n" +
		"\n" +
		"    return x\n"

	got, err := CleanSource(src, nil)
	req.NoError(err)

	want := "def foo():\n" +
		"    x = 1\n" +
		"    return x\n"
	req.Equal(want, got)
}

func TestCleanSource_ParseFailurePropagates(t *testing.T) {
	req := require.New(t)

	_, err := CleanSource("x = \"unterminated\n", config.Default())
	req.Error(err)
	var synErr *pyast.SyntaxError
	req.ErrorAs(err, &synErr)
}

func TestCleanSource_Idempotent(t *testing.T) {
	req := require.New(t)
	inputs := []string{
		"def foo():\n    x = 1\n\n    y = 2\ndef bar():\n    pass\n",
		"import sys\nimport os\n\ndef f():\n    pass\n",
		"import click\nimport os\nfrom rigby.config import RigbyConfig\n\n\nclass C:\n    \"\"\"Doc.\"\"\"\n\n    def m(self):\n        return 1\n",
		"x = 1\n",
		"",
	}

	cfg := config.Default()
	for _, src := range inputs {
		once, err := CleanSource(src, cfg)
		req.NoError(err)
		twice, err := CleanSource(once, cfg)
		req.NoError(err)
		req.Equal(once, twice, "input %q", src)
	}
}

func TestCleanSource_PreservesUntouchedLines(t *testing.T) {
	req := require.New(t)

	// Lines outside the import span and outside definition bodies come
	// through byte for byte, odd spacing included.
	src := "import os\n" +
		"\n" +
		"CONSTANT   =   {'weird':   'spacing'}\n" +
		"\n" +
		"\n" +
		"def f():\n" +
		"    return CONSTANT\n"

	want := "import os\n" +
		"\n" +
		"CONSTANT   =   {'weird':   'spacing'}\n" +
		"\n" +
		"\n" +
		"def f():\n" +
		"    return CONSTANT\n"

	got, err := CleanSource(src, config.Default())
	req.NoError(err)
	req.Equal(want, got)
}
