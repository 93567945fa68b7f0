// Command fonttoglyphs exports the glyphs for code points 0 to 575 of a
// TrueType or OpenType font as individual PNG files.
//
// Usage:
//   fonttoglyphs -f font.ttf -s 32 -d glyphs/
//
// Each glyph is rendered in white over a transparent background into a
// size x size image named glyph<code point>.png. Code points without a
// glyph in the font are skipped.
package main

import "os"
import "io"
import "fmt"
import "errors"

import "github.com/sirupsen/logrus"

import "github.com/tinne26/fontglyphs/convert"
import "github.com/tinne26/fontglyphs/internal/cli"
import "github.com/tinne26/fontglyphs/output"

const (
	exitOK = 0
	exitFailure = 1
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func newLogger(stderr io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.TextFormatter{ DisableTimestamp: true })
	return logger
}

func run(args []string, stdout, stderr io.Writer) int {
	// parse arguments
	config, err := cli.ParseArgs(args)
	if err != nil {
		if err != cli.ErrUsage { fmt.Fprintln(stderr, err) }
		if cli.IsUsage(err) { cli.Usage(stdout) }
		return exitFailure
	}

	// prepare output directory
	err = output.EnsureDir(config.OutputDir)
	if err != nil {
		var notDir *output.NotDirError
		if errors.As(err, &notDir) {
			fmt.Fprintf(stderr, "File: %q already exists and is not a directory.\n", config.OutputDir)
		} else {
			fmt.Fprintf(stderr, "Failed to create directory: %q (%s)\n", config.OutputDir, errors.Unwrap(err))
		}
		return exitFailure
	}

	// open font
	logger := newLogger(stderr)
	session, err := convert.Open(config, logger)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to open TTF Font: %s\n", errors.Unwrap(err))
		return exitFailure
	}
	defer session.Close()

	// export glyphs
	fmt.Fprintf(stdout, "[Writing Glyphs to %q]\n", config.OutputDir)
	summary, err := session.Run()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to render glyphs: %s\n", err)
		return exitFailure
	}
	fmt.Fprint(stdout, "[Finished Writing Glyphs!]\n")

	logger.WithFields(logrus.Fields{
		"font": session.FontName(),
		"written": summary.Written,
		"missing": summary.Missing,
		"failed": summary.Failed,
	}).Info("glyph export complete")
	return exitOK
}
