package model

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

const (
	minFovDegrees = 1.0
	maxFovDegrees = 179.0
)

// Camera is a viewer pose on the grid. Dir and Plane stay perpendicular; the
// ratio of their lengths sets the horizontal field of view.
type Camera struct {
	Pos   geom.Vector2
	Dir   geom.Vector2
	Plane geom.Vector2
}

func NewCamera(x, y, dirX, dirY, planeX, planeY float64) Camera {
	return Camera{
		Pos:   geom.Vector2{X: x, Y: y},
		Dir:   geom.Vector2{X: dirX, Y: dirY},
		Plane: geom.Vector2{X: planeX, Y: planeY},
	}
}

// NewCameraAngle builds a camera with a unit direction at heading (radians)
// and a plane sized for fovDegrees, clamped to [1, 179].
func NewCameraAngle(x, y, heading, fovDegrees float64) Camera {
	fov := geom.Clamp(fovDegrees, minFovDegrees, maxFovDegrees) * math.Pi / 180
	dirX, dirY := math.Cos(heading), math.Sin(heading)
	planeLen := math.Tan(fov / 2)
	return NewCamera(x, y, dirX, dirY, -dirY*planeLen, dirX*planeLen)
}

// Rotate turns Dir and Plane by angle radians. Positive angles turn right on a
// y-down screen.
func (c *Camera) Rotate(angle float64) {
	sin, cos := math.Sincos(angle)
	c.Dir = geom.Vector2{
		X: c.Dir.X*cos - c.Dir.Y*sin,
		Y: c.Dir.X*sin + c.Dir.Y*cos,
	}
	c.Plane = geom.Vector2{
		X: c.Plane.X*cos - c.Plane.Y*sin,
		Y: c.Plane.X*sin + c.Plane.Y*cos,
	}
}

// RayDir returns the ray direction for screen column x of width columns.
func (c Camera) RayDir(x, width int) (float64, float64) {
	if width <= 0 {
		return c.Dir.X, c.Dir.Y
	}
	cameraX := 2*float64(x)/float64(width) - 1
	return c.Dir.X + c.Plane.X*cameraX, c.Dir.Y + c.Plane.Y*cameraX
}

// FOV returns the horizontal field of view in degrees.
func (c Camera) FOV() float64 {
	return 2 * math.Atan2(math.Hypot(c.Plane.X, c.Plane.Y), math.Hypot(c.Dir.X, c.Dir.Y)) * 180 / math.Pi
}

// Heading returns the direction angle in radians.
func (c Camera) Heading() float64 {
	return math.Atan2(c.Dir.Y, c.Dir.X)
}

// Move walks dist units along Dir (negative walks backwards), sliding along
// walls one axis at a time. It reports whether the position changed.
func (c *Camera) Move(grid *Grid, dist float64) bool {
	return c.step(grid, c.Dir.X*dist, c.Dir.Y*dist)
}

// Strafe walks dist units sideways along the plane, positive to the right.
func (c *Camera) Strafe(grid *Grid, dist float64) bool {
	l := math.Hypot(c.Plane.X, c.Plane.Y)
	if l == 0 {
		return false
	}
	scale := math.Hypot(c.Dir.X, c.Dir.Y) / l * dist
	return c.step(grid, c.Plane.X*scale, c.Plane.Y*scale)
}

func (c *Camera) step(grid *Grid, dx, dy float64) bool {
	moved := false
	if nx := c.Pos.X + dx; dx != 0 && grid.Walkable(nx, c.Pos.Y) {
		c.Pos.X = nx
		moved = true
	}
	if ny := c.Pos.Y + dy; dy != 0 && grid.Walkable(c.Pos.X, ny) {
		c.Pos.Y = ny
		moved = true
	}
	return moved
}
