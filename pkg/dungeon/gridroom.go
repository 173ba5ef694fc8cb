package dungeon

// GridRoom is a room placed on a grid as the rectangle
// [MinX, MinX+Width) x [MinY, MinY+Height).
type GridRoom[R any] struct {
	MinX   int
	MinY   int
	Width  int
	Height int
	Data   R
}

// NewGridRoom creates a placed room
func NewGridRoom[R any](minX, minY, width, height int, data R) GridRoom[R] {
	return GridRoom[R]{MinX: minX, MinY: minY, Width: width, Height: height, Data: data}
}

// MaxX returns the last column covered by the room
func (r GridRoom[R]) MaxX() int {
	return r.MinX + r.Width - 1
}

// MaxY returns the last row covered by the room
func (r GridRoom[R]) MaxY() int {
	return r.MinY + r.Height - 1
}

// Center returns the room's centre cell, rounding toward MinX/MinY
func (r GridRoom[R]) Center() (x, y int) {
	return r.MinX + r.Width/2, r.MinY + r.Height/2
}

// Contains returns true if the cell (x, y) lies inside the room
func (r GridRoom[R]) Contains(x, y int) bool {
	return x >= r.MinX && x <= r.MaxX() && y >= r.MinY && y <= r.MaxY()
}

// Overlaps returns true if the two rooms share at least one cell
func (r GridRoom[R]) Overlaps(o GridRoom[R]) bool {
	return r.MinX <= o.MaxX() && o.MinX <= r.MaxX() &&
		r.MinY <= o.MaxY() && o.MinY <= r.MaxY()
}

// Abuts returns true if the rooms do not overlap but share part of a border,
// i.e. some cell of one is 4-adjacent to some cell of the other.
func (r GridRoom[R]) Abuts(o GridRoom[R]) bool {
	if r.Overlaps(o) {
		return false
	}
	spanX := r.MinX <= o.MaxX() && o.MinX <= r.MaxX()
	spanY := r.MinY <= o.MaxY() && o.MinY <= r.MaxY()
	touchX := r.MaxX()+1 == o.MinX || o.MaxX()+1 == r.MinX
	touchY := r.MaxY()+1 == o.MinY || o.MaxY()+1 == r.MinY
	return (touchX && spanY) || (touchY && spanX)
}

// RoomDistance returns the number of empty cells separating two rooms along
// x plus along y. Rooms that touch or overlap are at distance 0.
func RoomDistance[R any](a, b GridRoom[R]) int {
	xDistance, yDistance := 0, 0
	x2 := a.MinX + a.Width
	u2 := b.MinX + b.Width
	y2 := a.MinY + a.Height
	v2 := b.MinY + b.Height

	switch {
	case x2 < b.MinX:
		xDistance = b.MinX - x2
	case u2 < a.MinX:
		xDistance = a.MinX - u2
	}
	switch {
	case y2 < b.MinY:
		yDistance = b.MinY - y2
	case v2 < a.MinY:
		yDistance = a.MinY - v2
	}
	return xDistance + yDistance
}
