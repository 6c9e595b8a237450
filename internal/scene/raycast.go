package scene

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/goodnatureofminers/blockinsight7000-chainviz/pkg/geom"
)

// Hit is one ray intersection.
type Hit struct {
	Distance float64
	Point    r3.Vec
	Node     *Node
}

// Intersect casts ray against nodes (and their descendants when recursive) and returns
// the hits nearest first. Groups and edge overlays are never hit themselves.
func Intersect(ray geom.Ray, nodes []*Node, recursive bool) []Hit {
	var hits []Hit
	test := func(n *Node) {
		if t, ok := intersectNode(ray, n); ok {
			hits = append(hits, Hit{Distance: t, Point: ray.At(t), Node: n})
		}
	}
	for _, n := range nodes {
		if recursive {
			n.Walk(test)
		} else {
			test(n)
		}
	}
	slices.SortStableFunc(hits, func(a, b Hit) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
	return hits
}

func intersectNode(ray geom.Ray, n *Node) (float64, bool) {
	g := n.Geometry
	switch g.Kind {
	case KindBox:
		return geom.IntersectBox(n.World().ToLocal(ray), r3.Scale(0.5, g.Size))
	case KindCylinder:
		return geom.IntersectBox(n.World().ToLocal(ray), r3.Vec{X: g.Radius, Y: 0.5, Z: g.Radius})
	case KindSprite:
		return geom.IntersectSphere(ray, n.World().Position, g.Radius)
	case KindTorus:
		return geom.IntersectSphere(ray, n.World().Position, g.Radius+g.Tube)
	default:
		return 0, false
	}
}
