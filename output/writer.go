package output

import "os"
import "sync"
import "image"
import "image/png"
import "strconv"
import "path/filepath"

// Returns the file name for the glyph with the given index.
func GlyphName(index int) string {
	return "glyph" + strconv.Itoa(index) + ".png"
}

// Returns the path for the glyph with the given index inside dir.
// A separator is always placed between both, whether dir ends with
// one or not.
func GlyphPath(dir string, index int) string {
	return filepath.Join(dir, GlyphName(index))
}

// A Writer encodes glyph surfaces as PNG files inside a directory.
// Writers can be used concurrently.
type Writer struct {
	dir string
	encoder png.Encoder
}

// Creates a writer targeting the given directory. The directory
// must already exist (see [EnsureDir]()).
func NewWriter(dir string) *Writer {
	return &Writer{
		dir: dir,
		encoder: png.Encoder{
			CompressionLevel: png.DefaultCompression,
			BufferPool: &bufferPool{},
		},
	}
}

// Encodes the given image and stores it as glyph<index>.png. The data
// is first written to a temporary file in the same directory and then
// renamed, so a failed write never leaves a truncated PNG behind.
// Returns the final path and any error.
func (self *Writer) Write(index int, img image.Image) (string, error) {
	path := GlyphPath(self.dir, index)
	file, err := os.CreateTemp(self.dir, "." + GlyphName(index) + ".*")
	if err != nil { return path, err }
	tmpPath := file.Name()

	err = self.encoder.Encode(file, img)
	if err != nil {
		_ = file.Close()
		_ = os.Remove(tmpPath)
		return path, err
	}
	err = file.Close()
	if err != nil {
		_ = os.Remove(tmpPath)
		return path, err
	}

	// CreateTemp uses 0600, but glyphs are regular output files
	_ = os.Chmod(tmpPath, 0o644)
	err = os.Rename(tmpPath, path)
	if err != nil {
		_ = os.Remove(tmpPath)
		return path, err
	}
	return path, nil
}

// png.EncoderBufferPool backed by a sync.Pool, so concurrent
// writers reuse their compression buffers.
type bufferPool struct {
	pool sync.Pool
}

func (self *bufferPool) Get() *png.EncoderBuffer {
	buffer, _ := self.pool.Get().(*png.EncoderBuffer)
	return buffer
}

func (self *bufferPool) Put(buffer *png.EncoderBuffer) {
	self.pool.Put(buffer)
}
