package main

import (
	"flag"
	"fmt"
	"os"
)

// -yaml: emit the full parsed document instead of a summary.
var yamlOut = flag.Bool("yaml", false, "emit the parsed document as yaml")

// -verbose: print per-file progress.
var verbose = flag.Bool("verbose", false, "print more output")

// -quiet: suppress informational output.
var quiet = flag.Bool("quiet", false, "suppress more output")

func parseCommandLine() []string {
	// Process command line flags.
	flag.Parse()

	if len(flag.Args()) == 0 {
		fmt.Println("missing ,v filename(s)")
		flag.Usage()
		os.Exit(1)
	}

	if *verbose && *quiet {
		fmt.Println("-quiet and -verbose are mutually exclusive")
		os.Exit(1)
	}

	return flag.Args()
}
