// Package cli parses the fonttoglyphs command line.
package cli

import "io"
import "fmt"
import "errors"
import "strconv"

import "github.com/tinne26/fontglyphs/convert"

const ProgramName = "FontToGlyphs"
const Version = "V. 1.0"

// Number of tokens expected after the program name: three
// flags with one value each.
const ExpectedArgs = 6

// Returned when the number of arguments is wrong.
var ErrUsage = errors.New("invalid usage")

// Returned when a flag is the last token or never appears.
type MissingValueError struct {
	Flag string // as written by the user, empty if never given
	What string // "font file", "font size" or "output directory"
}

func (self *MissingValueError) Error() string {
	return "Missing " + self.What + " argument!"
}

// Returned when the size is not a positive integer.
type InvalidSizeError struct {
	Value string
}

func (self *InvalidSizeError) Error() string {
	return "Invalid font size '" + self.Value + "': must be a positive integer"
}

// Reports whether the error must be followed by the usage banner.
func IsUsage(err error) bool {
	var sizeErr *InvalidSizeError
	return errors.Is(err, ErrUsage) || errors.As(err, &sizeErr)
}

type flagSpec struct {
	short string
	long  string
	what  string
	help  string
}

var flagFile = flagSpec{"-f", "--file", "font file", "TTF Font File"}
var flagSize = flagSpec{"-s", "--size", "font size", "TTF Font Size"}
var flagDir  = flagSpec{"-d", "--dir", "output directory", "Output Directory for font glyphs"}

func (self flagSpec) matches(token string) bool {
	return token == self.short || token == self.long
}

// Parses the arguments that follow the program name. Flags can come in
// any order, and unrecognized tokens are ignored as long as the total
// count is [ExpectedArgs].
func ParseArgs(args []string) (convert.Config, error) {
	var config convert.Config
	if len(args) != ExpectedArgs { return config, ErrUsage }

	var sizeValue string
	var sizeGiven bool
	for i := 0; i < len(args); i++ {
		var spec flagSpec
		switch {
		case flagFile.matches(args[i]): spec = flagFile
		case flagSize.matches(args[i]): spec = flagSize
		case flagDir.matches(args[i]):  spec = flagDir
		default:
			continue // unrecognized, ignore
		}

		if i + 1 >= len(args) {
			return config, &MissingValueError{ Flag: args[i], What: spec.what }
		}
		value := args[i + 1]
		i += 1

		switch spec {
		case flagFile: config.FontPath = value
		case flagSize: sizeValue, sizeGiven = value, true
		case flagDir:  config.OutputDir = value
		}
	}

	if config.FontPath == "" { return config, &MissingValueError{ What: flagFile.what } }
	if !sizeGiven { return config, &MissingValueError{ What: flagSize.what } }
	if config.OutputDir == "" { return config, &MissingValueError{ What: flagDir.what } }

	size, err := strconv.Atoi(sizeValue)
	if err != nil || size <= 0 {
		return config, &InvalidSizeError{ Value: sizeValue }
	}
	config.FontSize = size
	return config, nil
}

// Writes the usage banner.
func Usage(w io.Writer) {
	fmt.Fprint(w, "Invalid Usage!\n")
	fmt.Fprintf(w, "%s %s\n", ProgramName, Version)
	fmt.Fprintf(w, "Usage: %s <Font File> <Font Size> <Output Directory>\n", ProgramName)
	for _, spec := range []flagSpec{flagFile, flagSize, flagDir} {
		fmt.Fprintf(w, "\t%s, %s\t%s\n", spec.short, spec.long, spec.help)
	}
}
