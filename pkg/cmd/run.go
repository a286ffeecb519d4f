package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rigby-dev/rigby/pkg/cleaner"
	"github.com/rigby-dev/rigby/pkg/config"
	"github.com/rigby-dev/rigby/pkg/diff"
	"github.com/rigby-dev/rigby/pkg/errors"
	"github.com/rigby-dev/rigby/pkg/utils"
)

var (
	configPath string
	checkMode  bool
	showDiff   bool
	verbose    bool
	quiet      bool
)

var (
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

var runCmd = &cobra.Command{
	Use:   "run [flags] [PATH...]",
	Short: "Clean Python files by managing blank lines",
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "Path to configuration file")
	runCmd.Flags().BoolVar(&checkMode, "check", false, "Check if files would be reformatted without making changes")
	runCmd.Flags().BoolVar(&showDiff, "diff", false, "Show diff of changes")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed output")
	runCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.AddCommand(runCmd)
}

// fileResult is the outcome of cleaning one file. Processing never stops on
// a per-file failure; errors are collected and reported at the end.
type fileResult struct {
	path    string
	changed bool
	diff    string
	err     error
}

func runRun(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		if !quiet {
			warnColor.Println(errors.WarnMsgNoPaths)
		}
		paths = []string{"."}
	}

	cfg, warning := config.Load(configPath)
	if warning != "" && !quiet {
		warnColor.Printf(errors.WarnMsgConfigFallback+"\n", warning)
	}

	files, err := collectFiles(paths, cfg)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		if !quiet {
			warnColor.Printf(errors.InfoMsgNoPyFilesFound+"\n", paths[0])
		}
		return nil
	}

	results := processFiles(files, cfg)
	return report(results)
}

// collectFiles expands the path arguments into the list of files to clean.
// Directories are walked recursively with the configured exclude patterns;
// explicitly named files are always included.
func collectFiles(paths []string, cfg *config.Config) ([]string, error) {
	var files []string
	for _, p := range paths {
		isDir, err := utils.IsDirectory(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
		}
		if !isDir {
			files = append(files, p)
			continue
		}
		found, err := utils.FindPythonFiles(p, cfg.ExcludePatterns)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errors.ErrMsgFailedToFindPyFiles, err)
		}
		files = append(files, found...)
	}
	return files, nil
}

// processFiles cleans files in parallel. Safe because CleanSource is pure,
// the configuration is read-only, and every file is written by exactly one
// worker.
func processFiles(files []string, cfg *config.Config) []fileResult {
	results := make([]fileResult, len(files))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			results[i] = processFile(path, cfg)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// processFile runs the pure transform and, unless in check mode, writes the
// result back. Nothing is ever written for a file whose transform failed.
func processFile(path string, cfg *config.Config) fileResult {
	res := fileResult{path: path}

	src, err := os.ReadFile(path)
	if err != nil {
		res.err = fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
		return res
	}
	original := string(src)

	cleaned, err := cleaner.CleanSource(original, cfg)
	if err != nil {
		res.err = fmt.Errorf("%s: %w", errors.ErrMsgFailedToParseFile, err)
		return res
	}
	if cleaned == original {
		return res
	}
	res.changed = true

	if showDiff {
		d, err := diff.Unified(path, original, cleaned)
		if err != nil {
			res.err = fmt.Errorf("%s: %w", errors.ErrMsgFailedToRenderDiff, err)
			return res
		}
		res.diff = d
	}

	if !checkMode {
		if err := os.WriteFile(path, []byte(cleaned), 0644); err != nil {
			res.err = fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
		}
	}
	return res
}

// report prints per-file output and the run summary, and turns the outcome
// into the process exit status: non-nil on any error, or in check mode when
// at least one file would change.
func report(results []fileResult) error {
	modified := 0
	errored := 0

	for _, res := range results {
		if res.err != nil {
			errored++
			errorColor.Printf(errors.InfoMsgErrorProcessing+"\n", res.path, res.err)
			continue
		}
		if !res.changed {
			continue
		}
		modified++
		if res.diff != "" && !quiet {
			fmt.Print(res.diff)
		}
		if verbose && !quiet {
			if checkMode {
				warnColor.Printf(errors.InfoMsgWouldChange+"\n", res.path)
			} else {
				successColor.Printf(errors.InfoMsgProcessedFile+"\n", res.path)
			}
		}
	}

	if !quiet {
		if modified > 0 {
			if checkMode {
				warnColor.Printf(errors.InfoMsgCheckCount+"\n", modified)
			} else {
				successColor.Printf(errors.InfoMsgModifiedCount+"\n", modified)
			}
		}
		if errored > 0 {
			errorColor.Printf(errors.InfoMsgErrorCount+"\n", errored)
		}
		if modified == 0 && errored == 0 {
			successColor.Println(errors.InfoMsgAllClean)
		}
	}

	if errored > 0 {
		return fmt.Errorf(errors.ErrMsgFilesFailedToProcess, errored)
	}
	if checkMode && modified > 0 {
		return fmt.Errorf(errors.ErrMsgFilesWouldChange, modified)
	}
	return nil
}
