package gamemath

// Rect is an integer pixel rectangle anchored at its top-left corner.
// Centres use integer halving, so a rect of odd width is centred one pixel
// to the left of its true midpoint.
type Rect struct {
	X, Y, W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Bottom() int { return r.Y + r.H }

func (r Rect) CenterX() int { return r.X + r.W/2 }
func (r Rect) CenterY() int { return r.Y + r.H/2 }

// Center returns the integer centre as a vector.
func (r Rect) Center() Vec2 {
	return Vec2{X: float64(r.CenterX()), Y: float64(r.CenterY())}
}

func (r *Rect) SetLeft(x int)   { r.X = x }
func (r *Rect) SetRight(x int)  { r.X = x - r.W }
func (r *Rect) SetTop(y int)    { r.Y = y }
func (r *Rect) SetBottom(y int) { r.Y = y - r.H }

func (r *Rect) SetCenterX(cx int) { r.X = cx - r.W/2 }
func (r *Rect) SetCenterY(cy int) { r.Y = cy - r.H/2 }

// Inflate grows the rect by dx, dy around its centre. Negative values shrink
// it. The top-left moves by half the delta, truncated toward zero.
func (r Rect) Inflate(dx, dy int) Rect {
	return Rect{
		X: r.X - dx/2,
		Y: r.Y - dy/2,
		W: r.W + dx,
		H: r.H + dy,
	}
}

// Intersects reports whether the rects overlap. Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Contains reports whether o lies entirely within r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y &&
		o.X+o.W <= r.X+r.W && o.Y+o.H <= r.Y+r.H
}
