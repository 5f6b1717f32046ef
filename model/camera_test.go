package model

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestRotateRoundTrip(t *testing.T) {
	angles := []float64{0.1, -0.7, math.Pi / 2, 3.0, 1.5 / 60}

	for _, angle := range angles {
		c := NewCamera(2.5, 2.5, 1, 0, 0, 0.66)
		c.Rotate(angle)
		c.Rotate(-angle)

		if !almostEqual(c.Dir.X, 1) || !almostEqual(c.Dir.Y, 0) {
			t.Errorf("angle %v: expected dir (1,0), got (%v,%v)", angle, c.Dir.X, c.Dir.Y)
		}
		if !almostEqual(c.Plane.X, 0) || !almostEqual(c.Plane.Y, 0.66) {
			t.Errorf("angle %v: expected plane (0,0.66), got (%v,%v)", angle, c.Plane.X, c.Plane.Y)
		}
	}
}

func TestRotatePreservesShape(t *testing.T) {
	c := NewCamera(2.5, 2.5, 1, 0, 0, 0.66)
	for i := 0; i < 1000; i++ {
		c.Rotate(0.025)
	}

	if got := math.Hypot(c.Dir.X, c.Dir.Y); math.Abs(got-1) > 1e-6 {
		t.Errorf("expected |dir| 1, got %v", got)
	}
	if got := math.Hypot(c.Plane.X, c.Plane.Y); math.Abs(got-0.66) > 1e-6 {
		t.Errorf("expected |plane| 0.66, got %v", got)
	}
	if dot := c.Dir.X*c.Plane.X + c.Dir.Y*c.Plane.Y; math.Abs(dot) > 1e-6 {
		t.Errorf("expected dir perpendicular to plane, dot %v", dot)
	}
}

func TestRayDir(t *testing.T) {
	c := NewCamera(2.5, 2.5, 1, 0, 0, 0.66)

	x, y := c.RayDir(400, 800)
	if !almostEqual(x, 1) || !almostEqual(y, 0) {
		t.Errorf("centre column: expected (1,0), got (%v,%v)", x, y)
	}

	x, y = c.RayDir(0, 800)
	if !almostEqual(x, 1) || !almostEqual(y, -0.66) {
		t.Errorf("left column: expected (1,-0.66), got (%v,%v)", x, y)
	}
}

func TestNewCameraAngle(t *testing.T) {
	c := NewCameraAngle(1.5, 1.5, 0, 90)
	if !almostEqual(c.Plane.Y, 1) {
		t.Errorf("expected plane length 1 for 90 degrees, got %v", c.Plane.Y)
	}
	if got := c.FOV(); math.Abs(got-90) > 1e-6 {
		t.Errorf("expected fov 90, got %v", got)
	}

	c = NewCameraAngle(1.5, 1.5, 0, 500)
	if got := c.FOV(); math.Abs(got-179) > 1e-6 {
		t.Errorf("expected fov clamped to 179, got %v", got)
	}
}

func TestMoveCollides(t *testing.T) {
	g := DefaultGrid()
	c := NewCamera(1.5, 1.5, -1, 0, 0, -0.66)

	if c.Move(g, 1) {
		t.Error("expected move into the border to be blocked")
	}
	if !almostEqual(c.Pos.X, 1.5) {
		t.Errorf("expected x 1.5, got %v", c.Pos.X)
	}

	c = NewCamera(1.5, 1.5, 1, 0, 0, 0.66)
	if !c.Move(g, 0.5) {
		t.Error("expected open move to succeed")
	}
	if !almostEqual(c.Pos.X, 2.0) {
		t.Errorf("expected x 2.0, got %v", c.Pos.X)
	}
}

func TestMoveSlidesAlongWall(t *testing.T) {
	g := DefaultGrid()
	s := math.Sqrt(0.5)
	c := NewCamera(1.5, 1.5, -s, s, -s*0.66, -s*0.66)

	if !c.Move(g, 0.8) {
		t.Fatal("expected the y component to slide")
	}
	if !almostEqual(c.Pos.X, 1.5) {
		t.Errorf("expected x to stay 1.5, got %v", c.Pos.X)
	}
	if c.Pos.Y <= 1.5 {
		t.Errorf("expected y to grow, got %v", c.Pos.Y)
	}
}

func TestStrafe(t *testing.T) {
	g := DefaultGrid()
	c := NewCamera(2.5, 2.5, 1, 0, 0, 0.66)

	if !c.Strafe(g, 0.5) {
		t.Fatal("expected strafe to succeed")
	}
	if !almostEqual(c.Pos.Y, 3.0) || !almostEqual(c.Pos.X, 2.5) {
		t.Errorf("expected (2.5,3.0), got (%v,%v)", c.Pos.X, c.Pos.Y)
	}
}
