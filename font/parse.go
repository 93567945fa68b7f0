package font

import "os"
import "io"

import "golang.org/x/image/font/sfnt"

// Similar to [sfnt.Parse](), but also including the font name
// in the returned values. Fonts without a name are accepted, with
// an empty name being returned in that case. The bytes must not be
// modified while the font is in use.
//
// [sfnt.Parse]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Parse.
func ParseFromBytes(fontBytes []byte) (*sfnt.Font, string, error) {
	newFont, err := sfnt.Parse(fontBytes)
	if err != nil {
		return nil, "", err
	}
	fontName, err := GetName(newFont)
	if err == ErrNotFound { err = nil }
	return newFont, fontName, err
}

// Attempts to parse the font located at the given filepath and returns
// it along its name and any possible error. The file name is irrelevant;
// whether the contents are a supported .ttf or .otf font is decided by
// the parser alone.
func ParseFromPath(path string) (*sfnt.Font, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	return parseFontFileAndClose(file)
}

// ---- helpers ----

func parseFontFileAndClose(file io.ReadCloser) (*sfnt.Font, string, error) {
	fontBytes, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, "", err
	}
	err = file.Close()
	if err != nil {
		return nil, "", err
	}
	return ParseFromBytes(fontBytes)
}
