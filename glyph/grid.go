package glyph

import "image"

// Number of cells per grid row and column.
const GridWidth = 24

// Number of code points processed per run, [0, Count).
const Count = GridWidth*GridWidth

// Returns the cell that the glyph with the given index occupies
// within a grid of GridWidth x GridWidth cells of the given size.
func GridRect(index, size int) image.Rectangle {
	x := (index % GridWidth)*size
	y := (index / GridWidth)*size
	return image.Rect(x, y, x + size, y + size)
}
