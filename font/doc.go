// The font subpackage contains helper methods to parse fonts from
// disk and obtain information from them (name, family, code point
// coverage), on top of [golang.org/x/image/font/sfnt].
//
// Only single TrueType and OpenType fonts are supported, whatever their
// file name. Font collections (.ttc, .otc) are rejected by the parser.
package font
