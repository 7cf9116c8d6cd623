// Command xmlfmt parses an XML document and prints it re-indented.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jacoelho/xmldom"
	"github.com/jacoelho/xmldom/dom"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("xmlfmt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	indent := fs.String("indent", "  ", "indentation per nesting level (spaces or a single tab)")
	outPath := fs.String("o", "", "write output to file instead of stdout")
	verbose := fs.Bool("v", false, "log skipped constructs to stderr")
	fs.Usage = func() {
		_ = writef(stderr, "Usage: xmlfmt [options] <document.xml | ->\n\n")
		_ = writef(stderr, "Re-indents an XML document. '-' reads from stdin.\n\n")
		_ = writef(stderr, "Options:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if len(fs.Args()) != 1 {
		_ = writef(stderr, "error: exactly one input argument is required\n")
		fs.Usage()
		return 2
	}
	input := fs.Arg(0)

	var opts []xmldom.Option
	if *verbose {
		opts = append(opts, xmldom.WithLogger(verboseLogger(stderr)))
	}

	doc, err := parseInput(input, stdin, opts)
	if err != nil {
		_ = writef(stderr, "error: %v\n", err)
		return 1
	}

	if *outPath != "" {
		if err := doc.WriteFileIndent(*outPath, *indent); err != nil {
			_ = writef(stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}
	if err := writef(stdout, "%s", doc.Render(*indent)); err != nil {
		return 1
	}
	return 0
}

func parseInput(input string, stdin io.Reader, opts []xmldom.Option) (*dom.Document, error) {
	if input == "-" {
		return xmldom.Parse(stdin, opts...)
	}
	return xmldom.ParseFile(input, opts...)
}

func verboseLogger(stderr io.Writer) *zap.Logger {
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(stderr), zap.WarnLevel))
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}
