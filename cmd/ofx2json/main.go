// Command ofx2json converts an OFX file to JSON.
//
// Usage:
//
//	ofx2json [flags] [OFXFILE]
//
// Reads OFXFILE, or standard input when the argument is "-" or absent, and
// writes the JSON document to standard output or to the file given with
// --output. Non-fatal notices and errors go to standard error unless
// --quiet is set.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	ofx "github.com/reactsoft/go-ofx"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ofx2json", flag.ContinueOnError)
	fs.SetOutput(stderr)
	output := fs.StringP("output", "o", "", "write JSON output to `FILE`")
	quiet := fs.BoolP("quiet", "q", false, "do not output errors")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: ofx2json [flags] [OFXFILE]\n\nConverts an OFX file to JSON.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return 2
	}

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if *quiet {
		log.SetOutput(io.Discard)
	} else {
		log.SetLevel(logrus.DebugLevel)
	}

	data, err := readInput(fs.Arg(0))
	if err != nil {
		log.Error(err)
		return 1
	}

	out, err := ofx.Convert(data, ofx.WithDiagnostics(diagnostics{log: log}))
	if err != nil {
		log.Error(err)
		return 1
	}

	if err := writeOutput(*output, stdout, out); err != nil {
		log.Error(err)
		return 1
	}
	return 0
}

// readInput reads the named file, or standard input when path is empty
// or "-".
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return data, errors.Wrap(err, "read stdin")
	}
	data, err := os.ReadFile(path)
	return data, errors.Wrapf(err, "read %s", path)
}

// writeOutput writes the JSON document with a trailing newline to the
// named file, or to stdout when path is empty.
func writeOutput(path string, stdout io.Writer, out []byte) error {
	out = append(out, '\n')
	if path == "" {
		_, err := stdout.Write(out)
		return errors.Wrap(err, "write stdout")
	}
	return errors.Wrapf(os.WriteFile(path, out, 0o644), "write %s", path)
}

// diagnostics routes the library's non-fatal notices to the logger.
type diagnostics struct {
	log *logrus.Logger
}

func (d diagnostics) Unrecognized(container, element, text string) {
	d.log.WithFields(logrus.Fields{
		"container": container,
		"element":   element,
	}).Warnf("unhandled element, text: %q", text)
}

func (d diagnostics) Processed(err error) {
	if err != nil {
		d.log.Debug("processing failed")
		return
	}
	d.log.Debug("processing succeeded")
}
