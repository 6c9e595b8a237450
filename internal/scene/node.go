// Package scene is a minimal retained scene graph: grouped nodes with local transforms,
// a handle registry for attached nodes, a top-down camera rig and ray casting.
package scene

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/goodnatureofminers/blockinsight7000-chainviz/pkg/geom"
)

// Handle identifies a node while it is attached to a Scene. Zero means detached.
type Handle uint64

// Kind is the primitive a node draws.
type Kind int

const (
	KindGroup Kind = iota
	KindBox
	KindEdges
	KindSprite
	KindTorus
	KindCylinder
)

func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindBox:
		return "box"
	case KindEdges:
		return "edges"
	case KindSprite:
		return "sprite"
	case KindTorus:
		return "torus"
	case KindCylinder:
		return "cylinder"
	default:
		return "unknown"
	}
}

// Geometry describes a primitive in its local frame.
// Box and Edges use Size; Sprite uses Radius as its pick radius and Text as its label;
// Torus uses Radius and Tube; Cylinder uses Radius with unit height along +Y.
type Geometry struct {
	Kind   Kind
	Size   r3.Vec
	Radius float64
	Tube   float64
	Text   string
}

// Transform places a node relative to its parent: scale, then rotate, then translate.
type Transform struct {
	Position r3.Vec
	Rotation r3.Rotation
	Scale    r3.Vec
}

// IdentityTransform returns a transform with no effect.
func IdentityTransform() Transform {
	return Transform{Rotation: geom.Identity(), Scale: r3.Vec{X: 1, Y: 1, Z: 1}}
}

// Apply maps a local point into the parent frame.
func (t Transform) Apply(p r3.Vec) r3.Vec {
	scaled := r3.Vec{X: p.X * t.Scale.X, Y: p.Y * t.Scale.Y, Z: p.Z * t.Scale.Z}
	return r3.Add(t.Position, t.Rotation.Rotate(scaled))
}

// Then returns the transform equivalent to applying t and then parent.
// Non-uniform parent scale is not supported; parents only ever carry unit scale.
func (t Transform) Then(parent Transform) Transform {
	return Transform{
		Position: parent.Apply(t.Position),
		Rotation: geom.Compose(parent.Rotation, t.Rotation),
		Scale: r3.Vec{
			X: t.Scale.X * parent.Scale.X,
			Y: t.Scale.Y * parent.Scale.Y,
			Z: t.Scale.Z * parent.Scale.Z,
		},
	}
}

// ToLocal maps a ray from the parent frame into the transform's local frame.
// The returned direction is not normalized when the scale is non-uniform, so distances
// along it are measured in parent units.
func (t Transform) ToLocal(r geom.Ray) geom.Ray {
	inv := geom.Inverse(t.Rotation)
	o := inv.Rotate(r3.Sub(r.Origin, t.Position))
	d := inv.Rotate(r.Dir)
	return geom.Ray{
		Origin: r3.Vec{X: o.X / t.Scale.X, Y: o.Y / t.Scale.Y, Z: o.Z / t.Scale.Z},
		Dir:    r3.Vec{X: d.X / t.Scale.X, Y: d.Y / t.Scale.Y, Z: d.Z / t.Scale.Z},
	}
}

// Node is a scene graph element. A group carries no geometry of its own.
type Node struct {
	Name      string
	Geometry  Geometry
	Color     uint32
	Transform Transform

	handle   Handle
	parent   *Node
	children []*Node
	disposed bool
}

// NewGroup returns an empty group node.
func NewGroup(name string) *Node {
	return &Node{Name: name, Geometry: Geometry{Kind: KindGroup}, Transform: IdentityTransform()}
}

// NewMesh returns a drawable node.
func NewMesh(name string, g Geometry, color uint32) *Node {
	return &Node{Name: name, Geometry: g, Color: color, Transform: IdentityTransform()}
}

// Handle returns the node's handle, zero while detached.
func (n *Node) Handle() Handle { return n.handle }

// Parent returns the node's parent or nil.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's direct children. Callers must not modify the slice.
func (n *Node) Children() []*Node { return n.children }

// Disposed reports whether the node was released by its scene.
func (n *Node) Disposed() bool { return n.disposed }

// Add attaches child to n, detaching it from any previous parent.
func (n *Node) Add(child *Node) {
	if child.parent != nil {
		child.parent.remove(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

func (n *Node) remove(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Walk visits n and its descendants depth first.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// World returns the node's transform in scene coordinates.
func (n *Node) World() Transform {
	t := n.Transform
	for p := n.parent; p != nil; p = p.parent {
		t = t.Then(p.Transform)
	}
	return t
}

// RotateOnAxis turns the node by angle radians about a local axis.
func (n *Node) RotateOnAxis(axis r3.Vec, angle float64) {
	n.Transform.Rotation = geom.Compose(n.Transform.Rotation, r3.NewRotation(angle, axis))
}
