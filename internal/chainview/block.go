package chainview

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/scene"
	"github.com/goodnatureofminers/blockinsight7000-chainviz/pkg/geom"
)

const (
	BlockSize       = 2.0
	LabelOffset     = 1.8
	LabelPickRadius = 0.6
	HashLabelLength = 8
	GenesisColor    = 0xFFD700
	GradientStart   = 0x00AAFF
	GradientEnd     = 0xFF3399
	OutlineColor    = 0xFFFFFF
	LabelColor      = 0xFFFFFF
)

// VisualBlock is the rendered form of one block: a group holding the cube body, its
// outline and two labels. Record is kept for display only; picking goes through the
// synchronizer's handle map.
type VisualBlock struct {
	Group       *scene.Node
	Body        *scene.Node
	Outline     *scene.Node
	HeightLabel *scene.Node
	HashLabel   *scene.Node
	Record      model.BlockRecord
}

// Nodes returns the block's group and every node under it.
func (v *VisualBlock) Nodes() []*scene.Node {
	var out []*scene.Node
	v.Group.Walk(func(n *scene.Node) { out = append(out, n) })
	return out
}

// BlockColor picks the body color of the block at index of n. Genesis is recognized by
// height, not by position.
func BlockColor(b model.BlockRecord, index, n int) uint32 {
	if b.IsGenesis() {
		return GenesisColor
	}
	return geom.LerpColor(GradientStart, GradientEnd, float64(index)/float64(max(n-1, 1)))
}

// BuildBlock constructs the visual for b at pos.
func BuildBlock(b model.BlockRecord, index, n int, pos r3.Vec) *VisualBlock {
	size := r3.Vec{X: BlockSize, Y: BlockSize, Z: BlockSize}
	color := BlockColor(b, index, n)

	group := scene.NewGroup(fmt.Sprintf("block-%d", b.Height))
	group.Transform.Position = pos

	body := scene.NewMesh("body", scene.Geometry{Kind: scene.KindBox, Size: size}, color)
	outline := scene.NewMesh("outline", scene.Geometry{Kind: scene.KindEdges, Size: size}, OutlineColor)

	// The camera looks down -Y with screen up at -Z, so -Z is "above" on screen.
	heightLabel := scene.NewMesh("height-label", scene.Geometry{
		Kind:   scene.KindSprite,
		Radius: LabelPickRadius,
		Text:   fmt.Sprintf("#%d", b.Height),
	}, LabelColor)
	heightLabel.Transform.Position = r3.Vec{Z: -LabelOffset}

	hashLabel := scene.NewMesh("hash-label", scene.Geometry{
		Kind:   scene.KindSprite,
		Radius: LabelPickRadius,
		Text:   b.ShortHash(HashLabelLength),
	}, LabelColor)
	hashLabel.Transform.Position = r3.Vec{Z: LabelOffset}

	group.Add(body)
	group.Add(outline)
	group.Add(heightLabel)
	group.Add(hashLabel)

	return &VisualBlock{
		Group:       group,
		Body:        body,
		Outline:     outline,
		HeightLabel: heightLabel,
		HashLabel:   hashLabel,
		Record:      b,
	}
}

// Layout returns the position of block i of n: evenly spaced along X and centred on
// the origin.
func Layout(i, n int, spacing float64) r3.Vec {
	return r3.Vec{X: float64(i)*spacing - float64(n-1)*spacing/2}
}
