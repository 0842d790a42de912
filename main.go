package main

// rcs-go reads RCS comma-v files and reports their structure.
//
// Pass one or more ,v paths (globs allowed):
//
//	rcs-go 'RCS/*.txt,v'
//
// By default each file gets a short summary: head revision, default
// branch, symbols, lock holders and the revision table. With -yaml the
// full parsed document is emitted instead. A grammar violation prints
// the full rule trace with line/column positions and exits non-zero.

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	rcs "github.com/tmaynard/rcs-go/lib"
)

func main() {
	patterns := parseCommandLine()

	if err := run(patterns); err != nil {
		color.Red("error: %s", err)
		os.Exit(1)
	}
}

func Log(format string, args ...any) {
	if *verbose {
		s := fmt.Sprintf("-- "+format, args...)
		s = strings.ReplaceAll(s, "\r", "<cr>")
		s = strings.ReplaceAll(s, "\n", "<lf>")
		fmt.Println(s)
	}
}

// Info prints a message if -quiet was not specified.
func Info(format string, args ...any) {
	if !*quiet {
		fmt.Printf("-- "+format+"\n", args...)
	}
}

func run(patterns []string) error {
	// Determine what files we're going to read.
	var filenames []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid ,v file/glob: %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			return fmt.Errorf("no matching ,v files found: %s", pattern)
		}
		filenames = append(filenames, matches...)
	}

	Info("Loading %d ,v files", len(filenames))
	for _, filename := range filenames {
		if err := show(filename); err != nil {
			return err
		}
	}

	Info("Finished")

	return nil
}

func show(filename string) error {
	Log("Loading ,v file: %s", filename)

	file, err := rcs.NewRcsFile(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := file.Load(); err != nil {
		fmt.Fprint(os.Stderr, rcs.Verbose(file.Text(), err))
		return err
	}

	report := NewReport(filename, file.Doc)
	if *yamlOut {
		return report.WriteYAML(os.Stdout)
	}
	report.Print()

	return nil
}
