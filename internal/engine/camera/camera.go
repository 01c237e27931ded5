// Package camera provides the preview viewer's orbit camera.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/pathway/pkg/math"
)

// OrbitCamera orbits around a center point. The world is Z-up.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance float32
	Pitch    float32 // elevation above the XY plane, radians
	Yaw      float32 // heading around Z, radians, 0 looks along +X

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates an orbit camera with default limits.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        800,
		Pitch:           0.6,
		Yaw:             -2.4,
		MinDistance:     10,
		MaxDistance:     50000,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	sp, cp := math32.Sincos(c.Pitch)
	sy, cy := math32.Sincos(c.Yaw)
	offset := math.Vec3{
		X: -c.Distance * cp * cy,
		Y: -c.Distance * cp * sy,
		Z: c.Distance * sp,
	}
	return c.Center.Add(offset)
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3Up)
}

// HandleDrag updates the angles from a mouse drag delta in pixels.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch = clamp(c.Pitch+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom scales the distance from a wheel delta; positive zooms in.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance = clamp(c.Distance-delta*c.Distance*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)
}

// HandlePan moves the center in the ground plane relative to the heading.
func (c *OrbitCamera) HandlePan(forward, right float32) {
	speed := c.Distance * 0.01
	sy, cy := math32.Sincos(c.Yaw)
	c.Center.X += (cy*forward + sy*right) * speed
	c.Center.Y += (sy*forward - cy*right) * speed
}

// FitToPoints centers the camera on the points' bounding box and backs off
// far enough to see all of it.
func (c *OrbitCamera) FitToPoints(points []math.Vec3) {
	if len(points) == 0 {
		return
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = math.Vec3{X: min(lo.X, p.X), Y: min(lo.Y, p.Y), Z: min(lo.Z, p.Z)}
		hi = math.Vec3{X: max(hi.X, p.X), Y: max(hi.Y, p.Y), Z: max(hi.Z, p.Z)}
	}

	c.Center = lo.Lerp(hi, 0.5)
	c.Distance = clamp(hi.Sub(lo).Length()*1.2, c.MinDistance, c.MaxDistance)
	if c.Distance < 200 {
		c.Distance = min(200, c.MaxDistance)
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
