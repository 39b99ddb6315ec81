// Package leveldata parses Tiled scenes into plain data. It does not import
// any simulation package.
package leveldata

// Scene holds everything needed to build a world from a level file.
type Scene struct {
	Boundary Rect
	Bodies   []BodySpec
}

// Rect is a rectangle with its top-left corner at X, Y.
type Rect struct {
	X, Y, W, H float64
}

// ShapeKind is the hull used for a body.
type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeCircle
)

// BodySpec describes one body to spawn. X, Y is the body's center.
type BodySpec struct {
	ID     int
	Shape  ShapeKind
	X, Y   float64
	W, H   float64 // Box size, or circle diameter in W
	Angle  float64 // Radians
	VX, VY float64
	Spin   float64 // Angular velocity, radians per second
	Fixed  bool

	Restitution float64
	Friction    float64
}
