package model

// Rect is a screen region in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// InteractiveRects are the clickable regions of the last rendered frame.
// A nil field was not drawn in that frame.
type InteractiveRects struct {
	SelectConfigButton *Rect
	FileList           *Rect
	Tabs               *Rect
	ConfigList         *Rect
}

// Clear forgets every region.
func (r *InteractiveRects) Clear() {
	*r = InteractiveRects{}
}

// frame is what View writes back for the next Update: hit-test regions and
// list scroll offsets. AppModel holds it by pointer so value copies share it.
type frame struct {
	rects      InteractiveRects
	fileOffset int
	itemOffset int
}

// listRow maps a click at y inside a bordered list to an index, or -1 on the border.
func listRow(r *Rect, y, offset, count int) int {
	if r == nil || count == 0 || y <= r.Y || y >= r.Y+r.Height-1 {
		return -1
	}
	return min(y-r.Y-1+offset, count-1)
}

// scrollOffset keeps selected visible in a window of rows lines.
func scrollOffset(offset, selected, rows, count int) int {
	if rows <= 0 || count <= rows {
		return 0
	}
	if selected < offset {
		offset = selected
	}
	if selected >= offset+rows {
		offset = selected - rows + 1
	}
	return max(0, min(offset, count-rows))
}
