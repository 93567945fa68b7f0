package font

import "golang.org/x/image/font/sfnt"
import "sync/atomic"
import "errors"

var ErrNotFound = errors.New("font property not found or empty")

// We allocate one sfnt.Buffer so it can be used in GetProperty() calls.
// These buffers can't be used concurrently though, so sfntBuffer will only
// be used if no one else is using it at the moment. Otherwise, a nil buffer
// is passed, which sfnt accepts at the cost of an allocation.
var sfntBuffer *sfnt.Buffer
var usingSfntBuffer uint32 = 0
func getSfntBuffer() *sfnt.Buffer {
	if !atomic.CompareAndSwapUint32(&usingSfntBuffer, 0, 1) {
		return nil
	}
	if sfntBuffer == nil {
		sfntBuffer = &sfnt.Buffer{}
	}
	return sfntBuffer
}

func releaseSfntBuffer(buffer *sfnt.Buffer) {
	if buffer != nil {
		atomic.StoreUint32(&usingSfntBuffer, 0)
	}
}

// Returns the requested font property for the given font.
// If the property is missing or empty, [ErrNotFound] will
// be returned.
func GetProperty(font *sfnt.Font, property sfnt.NameID) (string, error) {
	buffer := getSfntBuffer()
	str, err := font.Name(buffer, property)
	releaseSfntBuffer(buffer)
	if err == sfnt.ErrNotFound { return "", ErrNotFound }
	if err == nil && str == "" { return "", ErrNotFound }
	return str, err
}

// Returns the name of the given font. If the information is missing,
// [ErrNotFound] will be returned. Other errors are also possible (e.g.,
// if the font naming table is invalid).
func GetName(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFull)
}

// Returns how many code points in [from, to) are mapped by the font
// to an actual glyph (a glyph index other than zero, which is always
// reserved for the .notdef glyph).
func CountMapped(font *sfnt.Font, from, to rune) (int, error) {
	buffer := getSfntBuffer()
	defer releaseSfntBuffer(buffer)

	mapped := 0
	for codePoint := from; codePoint < to; codePoint++ {
		index, err := font.GlyphIndex(buffer, codePoint)
		if err != nil { return mapped, err }
		if index != 0 { mapped += 1 }
	}
	return mapped, nil
}
