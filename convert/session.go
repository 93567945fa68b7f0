package convert

import "io"
import "errors"
import "runtime"
import "strconv"
import "sync/atomic"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/sync/errgroup"
import "github.com/sirupsen/logrus"

import "github.com/tinne26/fontglyphs/font"
import "github.com/tinne26/fontglyphs/glyph"
import "github.com/tinne26/fontglyphs/mask"
import "github.com/tinne26/fontglyphs/output"

var ErrClosed = errors.New("session already closed")

// Returned by [Open]() when the font can't be loaded at the requested
// size. Err contains the underlying parser diagnostic.
type FontError struct {
	Path string
	Size int
	Err  error
}

func (self *FontError) Error() string {
	return "font '" + self.Path + "' at size " + strconv.Itoa(self.Size) + ": " + self.Err.Error()
}

func (self *FontError) Unwrap() error { return self.Err }

// Counters for a finished run. Written + Missing + Failed
// always adds up to [glyph.Count].
type Summary struct {
	Written int // PNG files successfully stored
	Missing int // code points without a glyph in the font
	Failed  int // glyphs that couldn't be rendered or written
}

// A Session holds a font opened at a specific size and everything
// needed to export its glyphs. It must be released with
// [Session.Close]() on every exit path.
type Session struct {
	config Config
	font *sfnt.Font
	fontName string
	log logrus.FieldLogger
	writer *output.Writer
	workers int
}

// Opens the configured font at the configured size. The output
// directory is not touched here; see [output.EnsureDir]().
func Open(config Config, log logrus.FieldLogger) (*Session, error) {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	sfntFont, fontName, err := font.ParseFromPath(config.FontPath)
	if err != nil {
		return nil, &FontError{ Path: config.FontPath, Size: config.FontSize, Err: err }
	}

	// make sure faces can actually be created before starting
	_, err = glyph.NewFace(sfntFont, config.FontSize)
	if err != nil {
		return nil, &FontError{ Path: config.FontPath, Size: config.FontSize, Err: err }
	}

	mapped, err := font.CountMapped(sfntFont, 0, glyph.Count)
	if err != nil {
		log.WithError(err).Warn("failed to inspect font cmap")
	}
	log.WithFields(logrus.Fields{
		"font": fontName,
		"size": config.FontSize,
		"mapped": mapped,
	}).Debug("font opened")

	return &Session{
		config: config,
		font: sfntFont,
		fontName: fontName,
		log: log,
		writer: output.NewWriter(config.OutputDir),
		workers: runtime.GOMAXPROCS(0),
	}, nil
}

// Returns the name of the opened font. May be empty.
func (self *Session) FontName() string { return self.fontName }

// Sets the number of glyphs that can be processed in parallel.
// Values below 1 are treated as 1. Defaults to GOMAXPROCS.
func (self *Session) SetWorkers(workers int) {
	if workers < 1 { workers = 1 }
	self.workers = workers
}

// Releases the font. Calling Close() more than once is allowed.
func (self *Session) Close() error {
	self.font = nil
	return nil
}

// Renders every code point in [0, glyph.Count) and stores each glyph
// that the font defines as glyph<index>.png in the output directory.
//
// Per-glyph problems never stop the run: missing glyphs are skipped,
// and render or write failures are logged as warnings and counted in
// the returned summary. Only errors that prevent rendering altogether
// are returned.
func (self *Session) Run() (Summary, error) {
	if self.font == nil { return Summary{}, ErrClosed }

	var written, missing, failed atomic.Int64
	indices := make(chan int)

	var group errgroup.Group
	group.SetLimit(self.workers + 1)
	group.Go(func() error {
		defer close(indices)
		for index := 0; index < glyph.Count; index++ {
			indices <- index
		}
		return nil
	})

	for w := 0; w < self.workers; w++ {
		group.Go(func() error {
			face, err := glyph.NewFace(self.font, self.config.FontSize)
			if err != nil {
				// keep draining so the producer doesn't block
				for index := range indices {
					self.logFailure(index, "render", err)
					failed.Add(1)
				}
				return err
			}
			if self.config.Monochrome {
				face.SetRasterizer(&mask.SharpRasterizer{})
			}

			for index := range indices {
				switch self.export(face, index) {
				case outcomeWritten: written.Add(1)
				case outcomeMissing: missing.Add(1)
				default: failed.Add(1)
				}
			}
			return nil
		})
	}

	err := group.Wait()
	summary := Summary{
		Written: int(written.Load()),
		Missing: int(missing.Load()),
		Failed:  int(failed.Load()),
	}
	return summary, err
}

type outcome uint8
const (
	outcomeWritten outcome = iota
	outcomeMissing
	outcomeFailed
)

// Renders and writes a single glyph. The face surface is reused by the
// next call, so it's released as soon as this function returns.
func (self *Session) export(face *glyph.Face, index int) outcome {
	surface, err := face.Render(rune(index))
	if err != nil {
		self.logFailure(index, "render", err)
		return outcomeFailed
	}
	if surface == nil { return outcomeMissing }

	path, err := self.writer.Write(index, surface)
	if err != nil {
		self.logFailure(index, "write", err)
		return outcomeFailed
	}

	self.log.WithFields(logrus.Fields{
		"index": index,
		"cell": glyph.GridRect(index, face.Size()),
		"path": path,
	}).Debug("glyph written")
	return outcomeWritten
}

func (self *Session) logFailure(index int, stage string, err error) {
	self.log.WithFields(logrus.Fields{
		"index": index,
		"stage": stage,
	}).WithError(err).Warn("glyph skipped")
}
