// Package layout partitions a terminal rectangle into regions.
package layout

// Rect is a region of terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inner shrinks r by margin cells on every side, never below zero.
func (r Rect) Inner(margin int) Rect {
	if margin <= 0 {
		return r
	}
	inner := Rect{
		X:      r.X + margin,
		Y:      r.Y + margin,
		Width:  max(0, r.Width-2*margin),
		Height: max(0, r.Height-2*margin),
	}
	return inner
}

// Direction is the axis a Split divides along.
type Direction int

const (
	// Vertical stacks regions top to bottom.
	Vertical Direction = iota
	// Horizontal places regions left to right.
	Horizontal
)

type constraintKind int

const (
	kindLength constraintKind = iota
	kindMin
	kindPercentage
)

// Constraint sizes one segment of a Split.
type Constraint struct {
	kind  constraintKind
	value int
}

// Length is exactly n cells, or whatever is left if less.
func Length(n int) Constraint { return Constraint{kind: kindLength, value: n} }

// Min is at least n cells and absorbs leftover space.
func Min(n int) Constraint { return Constraint{kind: kindMin, value: n} }

// Percentage is p percent of the available space.
func Percentage(p int) Constraint { return Constraint{kind: kindPercentage, value: p} }

// Split divides area along dir after shrinking it by margin. Fixed lengths
// and percentages are allocated first in order, each clipped to what is
// left; Min segments then share the remainder, and any rounding slack goes
// to the last Min segment, or the last segment if there is none.
// The returned slice always has one Rect per constraint.
func Split(area Rect, dir Direction, margin int, constraints ...Constraint) []Rect {
	inner := area.Inner(margin)
	if len(constraints) == 0 {
		return nil
	}

	total := inner.Height
	if dir == Horizontal {
		total = inner.Width
	}

	sizes := make([]int, len(constraints))
	remaining := total
	lastFlex := -1

	for i, c := range constraints {
		want := 0
		switch c.kind {
		case kindLength:
			want = c.value
		case kindPercentage:
			want = total * c.value / 100
		case kindMin:
			want = c.value
			lastFlex = i
		}
		want = clamp(want, 0, remaining)
		sizes[i] = want
		remaining -= want
	}

	if remaining > 0 {
		target := lastFlex
		if target < 0 {
			target = len(constraints) - 1
		}
		sizes[target] += remaining
	}

	rects := make([]Rect, len(constraints))
	offset := 0
	for i, size := range sizes {
		if dir == Horizontal {
			rects[i] = Rect{X: inner.X + offset, Y: inner.Y, Width: size, Height: inner.Height}
		} else {
			rects[i] = Rect{X: inner.X, Y: inner.Y + offset, Width: inner.Width, Height: size}
		}
		offset += size
	}
	return rects
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
