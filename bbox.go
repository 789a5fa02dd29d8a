package rbush

import "math"

// BBox is an axis-aligned bounding box with float64 coordinates.
type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// EmptyBBox returns the empty sentinel box. Extending it with any real box
// yields that box unchanged.
func EmptyBBox() BBox {
	return BBox{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

// IsEmpty reports whether b is the empty sentinel (or otherwise inverted).
func (b BBox) IsEmpty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

// Extend returns the tightest box covering both b and o.
func (b BBox) Extend(o BBox) BBox {
	return BBox{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// Area returns the area of b. The empty sentinel reports -Inf.
func (b BBox) Area() float64 {
	if b.IsEmpty() {
		return math.Inf(-1)
	}
	return (b.MaxX - b.MinX) * (b.MaxY - b.MinY)
}

// Margin returns the half-perimeter of b.
func (b BBox) Margin() float64 {
	return (b.MaxX - b.MinX) + (b.MaxY - b.MinY)
}

// EnlargedArea returns the area of the union of b and o without mutating
// either box.
func (b BBox) EnlargedArea(o BBox) float64 {
	return (math.Max(b.MaxX, o.MaxX) - math.Min(b.MinX, o.MinX)) *
		(math.Max(b.MaxY, o.MaxY) - math.Min(b.MinY, o.MinY))
}

// IntersectionArea returns the area of overlap between b and o, or 0 when
// the boxes do not overlap.
func (b BBox) IntersectionArea(o BBox) float64 {
	minX := math.Max(b.MinX, o.MinX)
	minY := math.Max(b.MinY, o.MinY)
	maxX := math.Min(b.MaxX, o.MaxX)
	maxY := math.Min(b.MaxY, o.MaxY)
	return math.Max(0, maxX-minX) * math.Max(0, maxY-minY)
}

// Contains reports whether o lies entirely within b. Bounds are closed.
func (b BBox) Contains(o BBox) bool {
	return b.MinX <= o.MinX && b.MinY <= o.MinY &&
		o.MaxX <= b.MaxX && o.MaxY <= b.MaxY
}

// Intersects reports whether b and o overlap. Touching edges count.
func (b BBox) Intersects(o BBox) bool {
	return o.MinX <= b.MaxX && o.MinY <= b.MaxY &&
		o.MaxX >= b.MinX && o.MaxY >= b.MinY
}

// DistSq returns the squared distance from the point (x, y) to the nearest
// point on b, or 0 if the point lies inside b.
func (b BBox) DistSq(x, y float64) float64 {
	dx := axisDist(x, b.MinX, b.MaxX)
	dy := axisDist(y, b.MinY, b.MaxY)
	return dx*dx + dy*dy
}

func axisDist(k, min, max float64) float64 {
	if k < min {
		return min - k
	}
	if k <= max {
		return 0
	}
	return k - max
}
