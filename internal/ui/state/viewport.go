package state

// Viewport tracks the scroll position of the page body.
type Viewport struct {
	Offset int
	Total  int
	Height int
}

func (v *Viewport) maxOffset() int {
	height := v.Height
	if height <= 0 {
		height = 1
	}
	limit := v.Total - height
	if limit < 0 {
		return 0
	}
	return limit
}

// Clamp keeps the offset inside the scrollable range.
func (v *Viewport) Clamp() {
	if v.Offset > v.maxOffset() {
		v.Offset = v.maxOffset()
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
}

// ScrollBy moves the offset by delta lines and reports whether it changed.
func (v *Viewport) ScrollBy(delta int) bool {
	old := v.Offset
	v.Offset += delta
	v.Clamp()
	return old != v.Offset
}

// ScrollTo places line at the top of the viewport where possible.
func (v *Viewport) ScrollTo(line int) bool {
	old := v.Offset
	v.Offset = line
	v.Clamp()
	return old != v.Offset
}

// Resize updates the content length and visible height.
func (v *Viewport) Resize(total, height int) {
	v.Total = total
	v.Height = height
	v.Clamp()
}
