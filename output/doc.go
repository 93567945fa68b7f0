// The output subpackage prepares the destination directory and
// writes rendered glyph surfaces to it as individual PNG files
// named glyph<index>.png.
package output
