// Package scrollspy tracks which parts of a long page are on screen. It
// reveals fade-in blocks the first time they scroll into view and highlights
// the nav link of the section crossing the middle of the viewport.
package scrollspy

// Rect is the vertical extent of an element in document coordinates. Bottom
// is exclusive.
type Rect struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// Height returns the rect's height, never negative.
func (r Rect) Height() float64 {
	if r.Bottom < r.Top {
		return 0
	}
	return r.Bottom - r.Top
}

// Viewport is the visible window of the document.
type Viewport struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Rect returns the viewport's extent.
func (v Viewport) Rect() Rect {
	return Rect{Top: v.Top, Bottom: v.Top + v.Height}
}

// Center returns the document coordinate of the viewport's middle line.
func (v Viewport) Center() float64 {
	return v.Top + v.Height/2
}

// Band shrinks the viewport by fractions of its height from the top and
// bottom, like a negative root margin. Band(0.5, 0.5) is the center line.
func (v Viewport) Band(topMargin, bottomMargin float64) Rect {
	return Rect{
		Top:    v.Top + v.Height*topMargin,
		Bottom: v.Top + v.Height*(1-bottomMargin),
	}
}

// IntersectionRatio returns the fraction of r that lies inside root, in [0,1].
// A zero-height r counts as fully visible when it lies within root.
func IntersectionRatio(r, root Rect) float64 {
	if r.Height() == 0 {
		if r.Top >= root.Top && r.Top < root.Bottom {
			return 1
		}
		return 0
	}
	top := max(r.Top, root.Top)
	bottom := min(r.Bottom, root.Bottom)
	if bottom <= top {
		return 0
	}
	return (bottom - top) / r.Height()
}
