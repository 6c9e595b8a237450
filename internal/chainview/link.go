package chainview

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/scene"
	"github.com/goodnatureofminers/blockinsight7000-chainviz/pkg/geom"
)

const (
	LinkSegments = 8
	RingRadius   = 0.25
	RingTube     = 0.06
	RodRadius    = 0.05
	LinkColor    = 0xAAAAAA

	minRodLength = 1e-6
)

// ChainLink is the decorative connector between two neighbouring blocks. The group sits
// at the midpoint; rings and rods are placed relative to it.
type ChainLink struct {
	Group *scene.Node
	Rings []*scene.Node
	Rods  []*scene.Node
}

// BuildLink builds a connector from one block position to the next: a ring at the middle
// of every segment, alternately turned a quarter about the link axis, joined by rods.
func BuildLink(from, to r3.Vec) *ChainLink {
	d := r3.Sub(to, from)
	mid := r3.Add(from, r3.Scale(0.5, d))
	segment := r3.Norm(d) / LinkSegments

	group := scene.NewGroup("link")
	group.Transform.Position = mid

	align := geom.RotationBetween(geom.AxisX, d)
	twisted := geom.Compose(align, r3.NewRotation(math.Pi/2, geom.AxisX))

	link := &ChainLink{Group: group}
	positions := make([]r3.Vec, LinkSegments)
	for k := range LinkSegments {
		positions[k] = r3.Scale((float64(k)+0.5)/LinkSegments-0.5, d)

		ring := scene.NewMesh("ring", scene.Geometry{Kind: scene.KindTorus, Radius: RingRadius, Tube: RingTube}, LinkColor)
		ring.Transform.Position = positions[k]
		if k%2 == 0 {
			ring.Transform.Rotation = align
		} else {
			ring.Transform.Rotation = twisted
		}
		group.Add(ring)
		link.Rings = append(link.Rings, ring)
	}

	for k := 0; k+1 < LinkSegments; k++ {
		a, b := positions[k], positions[k+1]
		rod := scene.NewMesh("rod", scene.Geometry{Kind: scene.KindCylinder, Radius: RodRadius}, LinkColor)
		rod.Transform.Position = r3.Scale(0.5, r3.Add(a, b))
		rod.Transform.Rotation = geom.RotationBetween(geom.AxisY, r3.Sub(b, a))
		rod.Transform.Scale = r3.Vec{X: 1, Y: max(segment, minRodLength), Z: 1}
		group.Add(rod)
		link.Rods = append(link.Rods, rod)
	}

	return link
}
