package convert

// Parameters for a conversion run. Configs are plain values and
// are never modified once a [Session] has been opened with them.
type Config struct {
	FontPath  string // path to a single TrueType or OpenType font
	FontSize  int    // pixel size, also the width and height of each PNG
	OutputDir string // directory where glyph<index>.png files are written

	// Renders glyphs without anti-aliasing: every pixel is either fully
	// transparent or opaque. Not reachable from the command line.
	Monochrome bool
}
