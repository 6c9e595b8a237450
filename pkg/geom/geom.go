// Package geom holds the small amount of 3D math the scene needs on top of gonum's r3:
// rays, box and sphere intersection, minimal rotations and color blending.
package geom

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

const eps = 1e-9

var (
	// AxisX is the unit X axis.
	AxisX = r3.Vec{X: 1}
	// AxisY is the unit Y axis.
	AxisY = r3.Vec{Y: 1}
	// AxisZ is the unit Z axis.
	AxisZ = r3.Vec{Z: 1}
)

// Identity returns the rotation that leaves every vector unchanged.
func Identity() r3.Rotation {
	return r3.Rotation{Real: 1}
}

// Compose returns the rotation that applies inner first and then outer.
func Compose(outer, inner r3.Rotation) r3.Rotation {
	return r3.Rotation(quat.Mul(quat.Number(outer), quat.Number(inner)))
}

// Inverse returns the inverse of a unit rotation.
func Inverse(r r3.Rotation) r3.Rotation {
	return r3.Rotation(quat.Conj(quat.Number(r)))
}

// RotationBetween returns the minimal rotation mapping the direction of from onto the
// direction of to. Degenerate (zero) inputs yield the identity.
func RotationBetween(from, to r3.Vec) r3.Rotation {
	if r3.Norm(from) < eps || r3.Norm(to) < eps {
		return Identity()
	}
	f := r3.Unit(from)
	t := r3.Unit(to)
	d := r3.Dot(f, t)
	switch {
	case d >= 1-eps:
		return Identity()
	case d <= -1+eps:
		axis := r3.Cross(f, AxisX)
		if r3.Norm(axis) < 1e-6 {
			axis = r3.Cross(f, AxisY)
		}
		return r3.NewRotation(math.Pi, r3.Unit(axis))
	}
	return r3.NewRotation(math.Acos(d), r3.Unit(r3.Cross(f, t)))
}

// Ray is a half-line from Origin along the unit vector Dir.
type Ray struct {
	Origin r3.Vec
	Dir    r3.Vec
}

// NewRay normalizes dir.
func NewRay(origin, dir r3.Vec) Ray {
	return Ray{Origin: origin, Dir: r3.Unit(dir)}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) r3.Vec {
	return r3.Add(r.Origin, r3.Scale(t, r.Dir))
}

// IntersectBox intersects the ray with an axis-aligned box centered on the origin with
// the given half extents, returning the nearest non-negative distance.
func IntersectBox(r Ray, half r3.Vec) (float64, bool) {
	tmin, tmax := math.Inf(-1), math.Inf(1)
	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Dir.X, r.Dir.Y, r.Dir.Z}
	ext := [3]float64{half.X, half.Y, half.Z}

	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < eps {
			if origin[i] < -ext[i] || origin[i] > ext[i] {
				return 0, false
			}
			continue
		}
		t1 := (-ext[i] - origin[i]) / dir[i]
		t2 := (ext[i] - origin[i]) / dir[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// IntersectSphere intersects the ray with a sphere, returning the nearest non-negative distance.
func IntersectSphere(r Ray, center r3.Vec, radius float64) (float64, bool) {
	oc := r3.Sub(r.Origin, center)
	b := r3.Dot(oc, r.Dir)
	c := r3.Dot(oc, oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// LerpColor blends two 0xRRGGBB colors channel by channel; t is clamped to [0, 1].
func LerpColor(a, b uint32, t float64) uint32 {
	t = math.Max(0, math.Min(1, t))
	mix := func(shift uint) uint32 {
		ca := float64((a >> shift) & 0xFF)
		cb := float64((b >> shift) & 0xFF)
		return uint32(math.Round(ca+(cb-ca)*t)) << shift
	}
	return mix(16) | mix(8) | mix(0)
}
