// Command oasdowngrade downgrades OpenAPI 3.1 specification files to version
// 3.0.3, so that they can be used with common generators that still lack full
// support for 3.1, including the popular openapi-generator
// (https://openapi-generator.tech).
//
// It provides workarounds for the following incompatibilities:
//
//   - const definitions       -> enum with single value
//   - null types              -> remove and set the nullable property for siblings
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/erraggy/oasdowngrade"
	"github.com/erraggy/oasdowngrade/downgrader"
	"github.com/erraggy/oasdowngrade/internal/cliutil"
	"github.com/erraggy/oasdowngrade/parser"
	"github.com/erraggy/oasdowngrade/writer"
)

// stdinFilePath is the special file path used to indicate reading from stdin.
const stdinFilePath = "-"

func main() {
	args := os.Args[1:]
	if len(args) == 1 {
		switch args[0] {
		case "version", "-v", "--version":
			fmt.Printf("oasdowngrade v%s\n", oasdowngrade.Version())
			return
		case "help":
			fs, _ := setupFlags()
			fs.Usage()
			return
		}
	}

	if err := run(args, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// downgradeFlags contains flags for the downgrade run
type downgradeFlags struct {
	outputFile string
	format     string
	write      bool
	strict     bool
	noInfo     bool
	quiet      bool
	verbose    bool
}

func setupFlags() (*flag.FlagSet, *downgradeFlags) {
	fs := flag.NewFlagSet("oasdowngrade", flag.ContinueOnError)
	flags := &downgradeFlags{}

	fs.StringVar(&flags.outputFile, "o", "", "output file name (default: stdout)")
	fs.StringVar(&flags.outputFile, "outputfile", "", "output file name (default: stdout)")
	fs.StringVar(&flags.format, "f", "", "output format (json, yaml, redoc) (default: json)")
	fs.StringVar(&flags.format, "format", "", "output format (json, yaml, redoc) (default: json)")
	fs.BoolVar(&flags.write, "w", false, "write to a file named after the input (e.g. api.3.0.3.json) instead of stdout")
	fs.BoolVar(&flags.write, "write", false, "write to a file named after the input (e.g. api.3.0.3.json) instead of stdout")
	fs.BoolVar(&flags.strict, "strict", false, "fail on any downgrade issues (even warnings)")
	fs.BoolVar(&flags.noInfo, "no-info", false, "suppress per-rewrite info messages")
	fs.BoolVar(&flags.quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.verbose, "verbose", false, "enable debug logging to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oasdowngrade [flags] <file|url|->\n\n")
		cliutil.Writef(fs.Output(), "Downgrade an OpenAPI 3.1 specification to version 3.0.3.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nRewrites Applied:\n")
		cliutil.Writef(fs.Output(), "  - const definitions       -> enum with single value\n")
		cliutil.Writef(fs.Output(), "  - null types              -> removed, with nullable set on siblings\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  oasdowngrade openapi-3.1.json\n")
		cliutil.Writef(fs.Output(), "  oasdowngrade -o openapi-3.0.3.json openapi-3.1.json\n")
		cliutil.Writef(fs.Output(), "  oasdowngrade -f redoc -o docs.html https://example.com/openapi.json\n")
		cliutil.Writef(fs.Output(), "  oasdowngrade -f yaml -w openapi-3.1.yaml\n")
		cliutil.Writef(fs.Output(), "  cat openapi-3.1.json | oasdowngrade -q - > openapi-3.0.3.json\n")
		cliutil.Writef(fs.Output(), "\nPipelining:\n")
		cliutil.Writef(fs.Output(), "  - Use '-' as the file path to read from stdin\n")
		cliutil.Writef(fs.Output(), "  - Use --quiet/-q to suppress diagnostic output for pipelining\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Downgrade successful\n")
		cliutil.Writef(fs.Output(), "  1    Downgrade failed; no output is written\n")
	}

	return fs, flags
}

// run executes the downgrade: load, rewrite, report, serialize.
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs, flags := setupFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("oasdowngrade requires exactly one file path, URL, or '-' for stdin")
	}
	specPath := fs.Arg(0)

	format, err := writer.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	d := downgrader.New()
	d.StrictMode = flags.strict
	d.IncludeInfo = !flags.noInfo
	if flags.verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		d.Logger = parser.NewSlogAdapter(slog.New(handler))
	}

	// Downgrade the file, URL, or stdin with timing
	startTime := time.Now()
	var result *downgrader.Result

	if specPath == stdinFilePath {
		p := parser.New()
		p.Logger = d.Logger
		parseResult, err := p.ParseReader(stdin)
		if err != nil {
			return fmt.Errorf("parsing stdin: %w", err)
		}
		result, err = d.DowngradeParsed(*parseResult)
		if err != nil {
			return fmt.Errorf("downgrading stdin: %w", err)
		}
	} else {
		result, err = d.Downgrade(specPath)
		if err != nil {
			return fmt.Errorf("downgrading file: %w", err)
		}
	}
	totalTime := time.Since(startTime)

	// Print results (diagnostics go to stderr so the document can go to stdout)
	if !flags.quiet {
		printReport(result, specPath, totalTime)
	}

	// No partial output on failure
	if !result.Success {
		return fmt.Errorf("downgrade completed with %d critical issue(s)", result.CriticalCount)
	}

	title := writer.TitleFromPath(specPath)
	if flags.outputFile == "" && !flags.write {
		data, err := writer.Marshal(result.Document, format, title)
		if err != nil {
			return fmt.Errorf("marshaling downgraded document: %w", err)
		}
		if _, err = stdout.Write(data); err != nil {
			return fmt.Errorf("writing downgraded document to stdout: %w", err)
		}
		return nil
	}

	writtenPath, err := writer.WriteFile(result.Document, flags.outputFile, specPath, format)
	if err != nil {
		return err
	}
	if !flags.quiet {
		cliutil.Writef(os.Stderr, "\nOutput written to: %s\n", writtenPath)
	}
	return nil
}

// printReport writes the diagnostic summary to stderr in the same shape for
// files, URLs, and stdin.
func printReport(result *downgrader.Result, specPath string, totalTime time.Duration) {
	cliutil.Writef(os.Stderr, "OpenAPI 3.1 to 3.0.3 Downgrader\n")
	cliutil.Writef(os.Stderr, "===============================\n\n")
	cliutil.Writef(os.Stderr, "oasdowngrade version: %s\n", oasdowngrade.Version())
	if specPath == stdinFilePath {
		cliutil.Writef(os.Stderr, "Specification: <stdin>\n")
	} else {
		cliutil.Writef(os.Stderr, "Specification: %s\n", specPath)
	}
	cliutil.Writef(os.Stderr, "Source Version: %s\n", result.SourceVersion)
	cliutil.Writef(os.Stderr, "Target Version: %s\n", result.TargetVersion)
	cliutil.Writef(os.Stderr, "Source Size: %s\n", parser.FormatBytes(result.SourceSize))
	cliutil.Writef(os.Stderr, "Load Time: %v\n", result.LoadTime)
	cliutil.Writef(os.Stderr, "Total Time: %v\n\n", totalTime)

	if len(result.Issues) > 0 {
		cliutil.Writef(os.Stderr, "Downgrade Issues (%d):\n", len(result.Issues))
		for _, issue := range result.Issues {
			cliutil.Writef(os.Stderr, "  %s\n", issue.String())
		}
		cliutil.Writef(os.Stderr, "\n")
	}

	if result.Success {
		cliutil.Writef(os.Stderr, "✓ Downgrade successful")
		if result.InfoCount > 0 || result.WarningCount > 0 {
			cliutil.Writef(os.Stderr, " (%d rewrites, %d warnings)", result.InfoCount, result.WarningCount)
		}
		cliutil.Writef(os.Stderr, "\n")
	} else {
		cliutil.Writef(os.Stderr, "✗ Downgrade completed with %d critical issue(s)", result.CriticalCount)
		if result.WarningCount > 0 {
			cliutil.Writef(os.Stderr, ", %d warning(s)", result.WarningCount)
		}
		cliutil.Writef(os.Stderr, "\n")
	}
}
