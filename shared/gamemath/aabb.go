package gamemath

// AABB is an axis-aligned bounding box stored as a center and half extents.
type AABB struct {
	Center Vec2
	HalfX  float64
	HalfY  float64
}

// NewAABBFromMinMax builds a box spanning min to max.
func NewAABBFromMinMax(min, max Vec2) AABB {
	return AABB{
		Center: Vec2{X: (min.X + max.X) * 0.5, Y: (min.Y + max.Y) * 0.5},
		HalfX:  (max.X - min.X) * 0.5,
		HalfY:  (max.Y - min.Y) * 0.5,
	}
}

func (a AABB) Min() Vec2 {
	return Vec2{X: a.Center.X - a.HalfX, Y: a.Center.Y - a.HalfY}
}

func (a AABB) Max() Vec2 {
	return Vec2{X: a.Center.X + a.HalfX, Y: a.Center.Y + a.HalfY}
}

// Contains reports whether p lies inside or on the box.
func (a AABB) Contains(p Vec2) bool {
	min, max := a.Min(), a.Max()
	return p.X >= min.X && p.X <= max.X && p.Y >= min.Y && p.Y <= max.Y
}
