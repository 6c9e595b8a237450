package tui

import (
	"cmp"
	"math"
	"slices"
	"unicode/utf8"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/scene"
)

const (
	fillRune  = '█'
	edgeRune  = '·'
	ringRune  = 'o'
	rodRune   = '-'
	emptyRune = ' '
)

// Cell is one character of the rasterized scene. Zero Color with Rune ' ' is background.
type Cell struct {
	Rune  rune
	Color uint32
	Set   bool
}

// Canvas rasterizes a scene into a grid of terminal cells. It implements the
// chainview renderer.
type Canvas struct {
	width  int
	height int
	cells  []Cell
}

// NewCanvas returns an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// SetSize resizes the canvas and clears it.
func (c *Canvas) SetSize(width, height int) {
	c.width, c.height = max(width, 0), max(height, 0)
	c.cells = make([]Cell, c.width*c.height)
}

// Size returns the canvas dimensions in cells.
func (c *Canvas) Size() (width, height int) { return c.width, c.height }

// At returns the cell at (x, y); out of range cells are empty.
func (c *Canvas) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return Cell{Rune: emptyRune}
	}
	return c.cells[y*c.width+x]
}

func (c *Canvas) set(x, y int, r rune, color uint32) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = Cell{Rune: r, Color: color, Set: true}
}

func (c *Canvas) clear() {
	for i := range c.cells {
		c.cells[i] = Cell{Rune: emptyRune}
	}
}

type drawable struct {
	node  *scene.Node
	world scene.Transform
	layer int
	order int
	depth float64
}

func layerOf(k scene.Kind) int {
	switch k {
	case scene.KindEdges:
		return 1
	case scene.KindSprite:
		return 2
	default:
		return 0
	}
}

// orderOf breaks depth ties: rods under rings under boxes.
func orderOf(k scene.Kind) int {
	switch k {
	case scene.KindCylinder:
		return 0
	case scene.KindTorus:
		return 1
	default:
		return 2
	}
}

// Render draws sc as seen by cam in painter's order: far to near within a layer,
// solids first, then outlines, then labels.
func (c *Canvas) Render(sc *scene.Scene, cam *scene.Camera) {
	c.clear()
	eye := cam.Position()

	var items []drawable
	sc.Root().Walk(func(n *scene.Node) {
		if n.Geometry.Kind == scene.KindGroup {
			return
		}
		w := n.World()
		items = append(items, drawable{
			node:  n,
			world: w,
			layer: layerOf(n.Geometry.Kind),
			order: orderOf(n.Geometry.Kind),
			depth: eye.Y - w.Position.Y,
		})
	})
	slices.SortStableFunc(items, func(a, b drawable) int {
		if a.layer != b.layer {
			return cmp.Compare(a.layer, b.layer)
		}
		if a.depth != b.depth {
			return cmp.Compare(b.depth, a.depth)
		}
		return cmp.Compare(a.order, b.order)
	})

	for _, it := range items {
		switch it.node.Geometry.Kind {
		case scene.KindBox:
			c.fillBox(cam, it)
		case scene.KindEdges:
			c.strokeBox(cam, it)
		case scene.KindSprite:
			c.drawText(cam, it)
		case scene.KindTorus:
			if p, ok := project(cam, it.world.Position); ok {
				c.set(cellOf(p.X), cellOf(p.Y), ringRune, it.node.Color)
			}
		case scene.KindCylinder:
			a, okA := project(cam, it.world.Apply(r3.Vec{Y: -0.5}))
			b, okB := project(cam, it.world.Apply(r3.Vec{Y: 0.5}))
			if okA && okB {
				c.line(a, b, rodRune, it.node.Color)
			}
		}
	}
}

func project(cam *scene.Camera, p r3.Vec) (r2.Vec, bool) {
	x, y, ok := cam.Project(p)
	return r2.Vec{X: x, Y: y}, ok
}

func cellOf(v float64) int { return int(math.Floor(v)) }

func boxCorners(t scene.Transform, size r3.Vec) [8]r3.Vec {
	h := r3.Scale(0.5, size)
	var out [8]r3.Vec
	for i := range out {
		local := r3.Vec{X: h.X, Y: h.Y, Z: h.Z}
		if i&1 != 0 {
			local.X = -h.X
		}
		if i&2 != 0 {
			local.Y = -h.Y
		}
		if i&4 != 0 {
			local.Z = -h.Z
		}
		out[i] = t.Apply(local)
	}
	return out
}

func (c *Canvas) fillBox(cam *scene.Camera, it drawable) {
	var pts []r2.Vec
	for _, corner := range boxCorners(it.world, it.node.Geometry.Size) {
		if p, ok := project(cam, corner); ok {
			pts = append(pts, p)
		}
	}
	hull := convexHull(pts)
	if len(hull) < 3 {
		return
	}
	minX, minY, maxX, maxY := bounds(hull)
	for y := max(cellOf(minY), 0); y <= min(cellOf(maxY), c.height-1); y++ {
		for x := max(cellOf(minX), 0); x <= min(cellOf(maxX), c.width-1); x++ {
			if insideConvex(hull, r2.Vec{X: float64(x) + 0.5, Y: float64(y) + 0.5}) {
				c.set(x, y, fillRune, it.node.Color)
			}
		}
	}
}

// strokeBox outlines the silhouette of a box.
func (c *Canvas) strokeBox(cam *scene.Camera, it drawable) {
	var pts []r2.Vec
	for _, corner := range boxCorners(it.world, it.node.Geometry.Size) {
		if p, ok := project(cam, corner); ok {
			pts = append(pts, p)
		}
	}
	hull := convexHull(pts)
	for i := range hull {
		c.line(hull[i], hull[(i+1)%len(hull)], edgeRune, it.node.Color)
	}
}

func (c *Canvas) drawText(cam *scene.Camera, it drawable) {
	p, ok := project(cam, it.world.Position)
	if !ok {
		return
	}
	text := it.node.Geometry.Text
	x := cellOf(p.X) - utf8.RuneCountInString(text)/2
	y := cellOf(p.Y)
	for _, r := range text {
		c.set(x, y, r, it.node.Color)
		x++
	}
}

// line draws from a to b with Bresenham's algorithm.
func (c *Canvas) line(a, b r2.Vec, r rune, color uint32) {
	x0, y0 := cellOf(a.X), cellOf(a.Y)
	x1, y1 := cellOf(b.X), cellOf(b.Y)
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		c.set(x0, y0, r, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// convexHull returns the hull of pts in counter-clockwise order (monotone chain).
func convexHull(pts []r2.Vec) []r2.Vec {
	pts = slices.Clone(pts)
	slices.SortFunc(pts, func(a, b r2.Vec) int {
		if a.X != b.X {
			return cmp.Compare(a.X, b.X)
		}
		return cmp.Compare(a.Y, b.Y)
	})
	pts = slices.Compact(pts)
	if len(pts) < 3 {
		return pts
	}
	turn := func(o, a, b r2.Vec) float64 {
		return r2.Cross(r2.Sub(a, o), r2.Sub(b, o))
	}
	hull := make([]r2.Vec, 0, 2*len(pts))
	for _, p := range pts {
		for len(hull) >= 2 && turn(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(pts) - 2; i >= 0; i-- {
		p := pts[i]
		for len(hull) >= lower && turn(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}

func insideConvex(hull []r2.Vec, p r2.Vec) bool {
	for i := range hull {
		a, b := hull[i], hull[(i+1)%len(hull)]
		if r2.Cross(r2.Sub(b, a), r2.Sub(p, a)) < 0 {
			return false
		}
	}
	return true
}

func bounds(pts []r2.Vec) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}
