package boardkit

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera is the 3D-mode per-frame camera state. Y-up, yaw around the Y axis,
// pitch around the local right axis.
type Camera struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32
	Fovy     float32
	Near     float32
	Far      float32
}

func NewCamera() *Camera {
	return &Camera{
		Position: mgl32.Vec3{0, 2, 20},
		Yaw:      0,
		Pitch:    0,
		Fovy:     0.8,
		Near:     0.1,
		Far:      5000.0,
	}
}

func (c *Camera) Forward() mgl32.Vec3 {
	return mgl32.Vec3{
		float32(math.Cos(float64(c.Pitch)) * math.Sin(float64(c.Yaw))),
		float32(math.Sin(float64(c.Pitch))),
		float32(-math.Cos(float64(c.Pitch)) * math.Cos(float64(c.Yaw))),
	}
}

func (c *Camera) Right() mgl32.Vec3 {
	return mgl32.Vec3{
		float32(math.Cos(float64(c.Yaw))),
		0,
		float32(math.Sin(float64(c.Yaw))),
	}
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	eye := c.Position
	target := eye.Add(c.Forward())
	up := mgl32.Vec3{0, 1, 0}
	return mgl32.LookAtV(eye, target, up)
}

func (c *Camera) ProjMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(c.Fovy, aspect, c.Near, c.Far)
}

func (c *Camera) ViewProj(aspect float32) mgl32.Mat4 {
	return c.ProjMatrix(aspect).Mul4(c.ViewMatrix())
}

// ToRaw snapshots the camera into the uniform-shaped form the vertex stage
// consumes.
func (c *Camera) ToRaw(screen Screen) CameraRaw {
	return CameraRaw{
		ViewProj: c.ViewProj(screen.Aspect()),
		ViewPos:  c.Position,
	}
}

// CameraRaw is the read-only per-frame camera uniform: view-projection matrix
// plus view position.
type CameraRaw struct {
	ViewProj mgl32.Mat4
	ViewPos  mgl32.Vec3
}
