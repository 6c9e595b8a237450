package scene

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/goodnatureofminers/blockinsight7000-chainviz/pkg/geom"
)

const (
	DefaultFOV         = 60.0
	DefaultHeight      = 20.0
	DefaultNear        = 0.1
	DefaultFar         = 1000.0
	DefaultSensitivity = 0.05
)

// The rig always looks straight down, so its basis never changes: screen right is +X
// and screen up is -Z.
var (
	forward = r3.Vec{Y: -1}
	right   = r3.Vec{X: 1}
	up      = r3.Vec{Z: -1}
)

// Viewport is the output surface size. CellAspect is the height/width ratio of one
// output unit: 1 for pixels, about 2 for terminal cells.
type Viewport struct {
	Width      int
	Height     int
	CellAspect float64
}

// Aspect returns the physical width/height ratio.
func (v Viewport) Aspect() float64 {
	ca := v.CellAspect
	if ca <= 0 {
		ca = 1
	}
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return float64(v.Width) / (float64(v.Height) * ca)
}

// Output receives size changes of the viewport the camera renders into.
type Output interface {
	SetSize(width, height int)
}

// Camera is a fixed-pitch top-down perspective camera that can only pan along X.
type Camera struct {
	FOV         float64
	Height      float64
	Near        float64
	Far         float64
	Sensitivity float64

	viewport Viewport
	aspect   float64
	pan      r3.Vec
	position r3.Vec
	target   r3.Vec
	out      Output
}

// NewCamera returns a camera with the default lens and height.
func NewCamera() *Camera {
	return &Camera{
		FOV:         DefaultFOV,
		Height:      DefaultHeight,
		Near:        DefaultNear,
		Far:         DefaultFar,
		Sensitivity: DefaultSensitivity,
		aspect:      1,
	}
}

// Initialize places the camera above the origin looking straight down and sizes out.
func (c *Camera) Initialize(vp Viewport, out Output) {
	c.out = out
	c.pan = r3.Vec{}
	c.place()
	c.OnResize(vp)
}

// OnResize updates the projection aspect ratio and the output size.
func (c *Camera) OnResize(vp Viewport) {
	c.viewport = vp
	c.aspect = vp.Aspect()
	if c.out != nil {
		c.out.SetSize(vp.Width, vp.Height)
	}
}

// Pan shifts the view horizontally by a screen-space delta. Height and pitch are fixed.
func (c *Camera) Pan(deltaScreenX float64) {
	c.pan.X -= deltaScreenX * c.Sensitivity
	c.place()
}

func (c *Camera) place() {
	c.position = r3.Vec{X: c.pan.X, Y: c.Height, Z: c.pan.Z}
	c.target = r3.Vec{X: c.pan.X, Z: c.pan.Z}
}

// PanOffset returns the accumulated pan as (x, 0, z).
func (c *Camera) PanOffset() r3.Vec { return c.pan }

// Position returns the eye position.
func (c *Camera) Position() r3.Vec { return c.position }

// LookAt returns the point the camera looks at.
func (c *Camera) LookAt() r3.Vec { return c.target }

// Viewport returns the current output size.
func (c *Camera) Viewport() Viewport { return c.viewport }

func (c *Camera) tanHalf() float64 {
	return math.Tan(c.FOV * math.Pi / 360)
}

// Project maps a world point to viewport coordinates. ok is false when the point is
// outside the near/far range.
func (c *Camera) Project(p r3.Vec) (x, y float64, ok bool) {
	rel := r3.Sub(p, c.position)
	depth := r3.Dot(rel, forward)
	if depth < c.Near || depth > c.Far {
		return 0, 0, false
	}
	th := c.tanHalf()
	ndcX := r3.Dot(rel, right) / (depth * th * c.aspect)
	ndcY := r3.Dot(rel, up) / (depth * th)
	x = (ndcX + 1) / 2 * float64(c.viewport.Width)
	y = (1 - ndcY) / 2 * float64(c.viewport.Height)
	return x, y, true
}

// NDC normalizes viewport coordinates to [-1, 1] device coordinates, Y up.
func (c *Camera) NDC(x, y float64) (float64, float64) {
	w, h := float64(c.viewport.Width), float64(c.viewport.Height)
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	return 2*x/w - 1, 1 - 2*y/h
}

// Ray returns the ray from the eye through viewport coordinates (x, y).
func (c *Camera) Ray(x, y float64) geom.Ray {
	ndcX, ndcY := c.NDC(x, y)
	th := c.tanHalf()
	dir := r3.Add(forward, r3.Add(
		r3.Scale(ndcX*th*c.aspect, right),
		r3.Scale(ndcY*th, up),
	))
	return geom.NewRay(c.position, dir)
}
