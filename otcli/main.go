/*
Command otcli prints the metadata of a TrueType or OpenType font.

Usage:

	otcli <filename>

For each record of the font's 'name' table one line is printed, followed by
the font revision and the creation and modification time from table 'head'.
Errors are reported on stderr, one line each. The exit code is 1 if the font
cannot be read, or if one of the tables is missing or malformed.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/fontmeta"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// tracer traces with key 'fontmeta.cli'
func tracer() tracing.Trace {
	return tracing.Select("fontmeta.cli")
}

func main() {
	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":      "go",
		"trace.fontmeta":       "Error",
		"trace.fontmeta.ot":    "Error",
		"trace.fontmeta.query": "Error",
		"trace.fontmeta.cli":   "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Fprintln(os.Stderr, "error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run inspects the font given as the first argument. It returns the exit code.
// Arguments following the file name are ignored.
func run(args []string, stdout, stderr io.Writer) int {
	prog := "otcli"
	if len(args) > 0 {
		prog = args[0]
	}
	if len(args) < 2 {
		usage(stdout, prog)
		return 0
	}
	if len(args) > 2 {
		tracer().Infof("ignoring %d extra argument(s)", len(args)-2)
	}
	report, err := fontmeta.InspectFile(args[1])
	if err != nil {
		reportError(stderr, err)
		return 1
	}
	if report.Name != nil {
		printNames(stdout, report.Name)
	}
	if report.Head != nil {
		printHead(stdout, report.Head)
	}
	for _, w := range report.Warnings() {
		tracer().Infof("%s", w)
	}
	for _, err := range report.Errors() {
		reportError(stderr, err)
	}
	if report.Failed() {
		return 1
	}
	return 0
}

func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
}

func usage(w io.Writer, prog string) {
	fmt.Fprintf(w, `Output meta data for TrueType (TTF) and OpenType (OTF) files.

   Usage: %s <filename>

For every record of table 'name' one line is printed, followed by revision,
creation and modification time from table 'head'.
`, prog)
}
