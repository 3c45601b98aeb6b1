// Command html_compare locates and annotates textual differences
// between two versions of an HTML document.
//
// Usage:
//
//	html_compare before.html after.html
//	html_compare --git v1.0 v2.0 docs/page.html
//	html_compare --tui --watch before.html after.html
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"
)

const appVersion = "1.0.0"

const defaultOutputPath = "comparison.html"

type cliOptions struct {
	output    string
	threshold float64
	gitMode   bool
	tui       bool
	watch     bool
	quiet     bool
	debug     bool
	help      bool
	version   bool
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := flag.NewFlagSet("html_compare", flag.ContinueOnError)
	opts := cliOptions{}
	flags.StringVarP(&opts.output, "output", "o", defaultOutputPath, "comparison page output path")
	flags.Float64Var(&opts.threshold, "threshold", absoluteThreshold, "match acceptance threshold")
	flags.BoolVar(&opts.gitMode, "git", false, "compare two revisions of one file: --git <rev1> <rev2> <path>")
	flags.BoolVar(&opts.tui, "tui", false, "review changes interactively")
	flags.BoolVar(&opts.watch, "watch", false, "re-run the comparison when inputs change")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "log errors only")
	flags.BoolVar(&opts.debug, "debug", false, "log candidate scoring detail")
	flags.BoolVarP(&opts.help, "help", "h", false, "show help")
	flags.BoolVarP(&opts.version, "version", "v", false, "show version")

	if err := flags.Parse(args); err != nil {
		return err
	}

	if opts.help {
		printUsage(flags)
		return nil
	}
	if opts.version {
		printVersion()
		return nil
	}

	load, beforeLabel, afterLabel, watchPaths, err := buildLoader(opts, flags.Args())
	if err != nil {
		return err
	}

	logger := initLogger(opts)
	defer func() {
		if closeErr := logger.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "warning: close logger: %v\n", closeErr)
		}
	}()

	logger.Info("html_compare starting", map[string]any{
		"version": appVersion,
		"before":  beforeLabel,
		"after":   afterLabel,
	})

	comparator := NewComparatorWithThreshold(opts.threshold, logger)

	if opts.tui {
		return runTUI(load, comparator, logger, opts, watchPaths, beforeLabel, afterLabel)
	}
	return runBatch(load, comparator, logger, opts, watchPaths, beforeLabel, afterLabel)
}

// buildLoader resolves the positional arguments into a loader for the
// two document versions, display labels, and the paths watch mode
// should observe (none in git mode: revisions do not change).
func buildLoader(opts cliOptions, args []string) (load loadFunc, beforeLabel, afterLabel string, watchPaths []string, err error) {
	if opts.gitMode {
		if len(args) != 3 {
			return nil, "", "", nil, fmt.Errorf("git mode expects <rev1> <rev2> <path>, got %d arguments", len(args))
		}
		rev1, rev2, path := args[0], args[1], args[2]

		source, err := NewGitSource()
		if err != nil {
			return nil, "", "", nil, err
		}
		load = func() (string, string, error) {
			before, err := source.FileAtRevision(rev1, path)
			if err != nil {
				return "", "", err
			}
			after, err := source.FileAtRevision(rev2, path)
			if err != nil {
				return "", "", err
			}
			return before, after, nil
		}
		return load, rev1 + ":" + path, rev2 + ":" + path, nil, nil
	}

	if len(args) != 2 {
		return nil, "", "", nil, fmt.Errorf("expected <before.html> <after.html>, got %d arguments", len(args))
	}
	beforePath, afterPath := args[0], args[1]

	load = func() (string, string, error) {
		before, err := os.ReadFile(beforePath)
		if err != nil {
			return "", "", fmt.Errorf("read before document: %w", err)
		}
		after, err := os.ReadFile(afterPath)
		if err != nil {
			return "", "", fmt.Errorf("read after document: %w", err)
		}
		return string(before), string(after), nil
	}
	return load, beforePath, afterPath, []string{beforePath, afterPath}, nil
}

func initLogger(opts cliOptions) *Logger {
	level := INFO
	if opts.debug {
		level = DEBUG
	}

	logger, err := NewLogger(level, filepath.Dir(opts.output))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	logger.SetQuiet(opts.quiet)
	return logger
}

// runBatch performs one comparison and writes the comparison page; in
// watch mode it repeats whenever an input changes.
func runBatch(load loadFunc, comparator *Comparator, logger *Logger, opts cliOptions, watchPaths []string, beforeLabel, afterLabel string) error {
	runOnce := func() error {
		before, after, err := load()
		if err != nil {
			return err
		}
		cmp, err := comparator.Compare(before, after)
		if err != nil {
			return err
		}

		page, err := BuildComparisonPage(cmp, beforeLabel, afterLabel)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.output, []byte(page), 0o644); err != nil {
			return fmt.Errorf("write comparison page: %w", err)
		}

		total, located := countLocated(cmp.Hunks)
		if !opts.quiet {
			fmt.Printf("%s: %d changes, %d located\n", opts.output, total, located)
		}
		return nil
	}

	if err := runOnce(); err != nil {
		return err
	}

	if !opts.watch {
		return nil
	}
	if len(watchPaths) == 0 {
		return fmt.Errorf("watch mode needs file inputs")
	}

	watcher, err := NewWatcher(watchPaths...)
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	for {
		if err := watcher.Wait(); err != nil {
			return err
		}
		logger.Info("inputs changed, rerunning", nil)
		if err := runOnce(); err != nil {
			// Keep watching: a transient read failure mid-save resolves
			// on the next change event.
			logger.Error("comparison failed", err, nil)
		}
	}
}

func runTUI(load loadFunc, comparator *Comparator, logger *Logger, opts cliOptions, watchPaths []string, beforeLabel, afterLabel string) error {
	var watcher *Watcher
	if opts.watch && len(watchPaths) > 0 {
		w, err := NewWatcher(watchPaths...)
		if err != nil {
			return fmt.Errorf("start watcher: %w", err)
		}
		watcher = w
		defer watcher.Close()
	}

	program := tea.NewProgram(
		NewModel(load, comparator, logger, watcher, beforeLabel, afterLabel),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		logger.Error("program error", err, nil)
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func countLocated(hunks []Hunk) (total, located int) {
	total = len(hunks)
	for i := range hunks {
		h := hunks[i].Highlight
		if h != nil && (h.BeforeMatched || h.AfterMatched) {
			located++
		}
	}
	return total, located
}

func printVersion() {
	fmt.Printf("html_compare %s\n", appVersion)
}

func printUsage(flags *flag.FlagSet) {
	fmt.Printf("html_compare %s\n\n", appVersion)
	fmt.Println("Usage:")
	fmt.Println("  html_compare [options] <before.html> <after.html>")
	fmt.Println("  html_compare [options] --git <rev1> <rev2> <path>")
	fmt.Println("\nOptions:")
	fmt.Print(flags.FlagUsages())
}
