package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dinject/dinject/internal/cli"
	"github.com/dinject/dinject/internal/diagnostics"
)

func main() {
	var (
		moduleFlag  = flag.String("module", "", "Custom module name for imports (defaults to go.mod module)")
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output, including per-bean trace detail")
		quietFlag   = flag.Bool("quiet", false, "Only show errors")
		cleanFlag   = flag.Bool("clean", false, "Delete every autogen_module.go under the given directories")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <directory-paths...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "dinject code generator\n")
		fmt.Fprintf(os.Stderr, "Scans the given directories for //dinject:-annotated declarations and writes one autogen_module.go per directory.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nArguments:\n")
		fmt.Fprintf(os.Stderr, "  directory-paths    One or more package directories to scan (no recursive ./... patterns)\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s ./internal/widgets                          # Scan one package directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s ./internal/widgets ./internal/motor         # Scan several directories\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --module github.com/myorg/myapp ./internal/widgets  # Override the module path\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --verbose ./internal/widgets                # Per-bean trace output\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --clean ./internal/widgets                  # Remove generated files\n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error: at least one directory path is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	level := diagnostics.Info
	switch {
	case *quietFlag:
		level = diagnostics.Error
	case *verboseFlag:
		level = diagnostics.Verbose
	}
	reporter := diagnostics.New(level)

	reporter.Section("dinject")

	if *cleanFlag {
		cleaner := cli.NewCleaner()
		removed, err := cleaner.CleanGeneratedFiles(args)
		if err != nil {
			reporter.Error("clean failed: %v", err)
			os.Exit(1)
		}
		for _, file := range removed {
			reporter.Info("removed %s", file)
		}
		reporter.Success("removed %d generated file(s)", len(removed))
		return
	}

	if *verboseFlag {
		reporter.Verbose("target directories: %s", strings.Join(args, ", "))
		if *moduleFlag != "" {
			reporter.Verbose("module override: %s", *moduleFlag)
		}
	}

	generator := cli.NewGenerator(reporter)
	summary, err := generator.Run(cli.Config{
		Directories: args,
		ModuleName:  *moduleFlag,
		Verbose:     *verboseFlag,
	})
	if err != nil {
		reporter.Error("generation failed: %v", err)
		os.Exit(1)
	}

	reporter.Summary("Generation complete", map[string]any{
		"Packages scanned": summary.PackagesScanned,
		"Beans registered": summary.BeansRegistered,
		"Modules written":  len(summary.ModulesWritten),
	})

	if *verboseFlag {
		for _, file := range summary.ModulesWritten {
			reporter.Info("wrote %s", file)
		}
	}
}
