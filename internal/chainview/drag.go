package chainview

import (
	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/scene"
)

// DragState is the input controller state.
type DragState int

const (
	Idle DragState = iota
	Dragging
)

// Cursor is the pointer affordance: open while the view can be grabbed, closed while
// it is held.
type Cursor int

const (
	CursorOpen Cursor = iota
	CursorClosed
)

// PickFunc resolves viewport coordinates to a block.
type PickFunc func(x, y float64) (model.BlockRecord, error)

// DragController turns pointer events into pans and picks. A press and release with
// no movement in between is a click; any movement makes it a drag.
type DragController struct {
	camera *scene.Camera
	pick   PickFunc
	opener DetailOpener

	state        DragState
	lastX, lastY float64
	moved        bool
}

// NewDragController constructs a DragController.
func NewDragController(camera *scene.Camera, pick PickFunc) *DragController {
	return &DragController{camera: camera, pick: pick}
}

// SetOpener sets the receiver of picked blocks.
func (d *DragController) SetOpener(o DetailOpener) { d.opener = o }

// State returns the current state.
func (d *DragController) State() DragState { return d.state }

// Cursor returns the pointer affordance for the current state.
func (d *DragController) Cursor() Cursor {
	if d.state == Dragging {
		return CursorClosed
	}
	return CursorOpen
}

// PointerDown starts a drag session.
func (d *DragController) PointerDown(x, y float64) {
	d.state = Dragging
	d.lastX, d.lastY = x, y
	d.moved = false
}

// PointerMove pans by the horizontal delta while dragging.
func (d *DragController) PointerMove(x, y float64) {
	if d.state != Dragging {
		return
	}
	if x == d.lastX && y == d.lastY {
		return
	}
	d.moved = true
	d.camera.Pan(x - d.lastX)
	d.lastX, d.lastY = x, y
}

// PointerUp ends the session and picks if the pointer never moved.
func (d *DragController) PointerUp(x, y float64) {
	if d.state != Dragging {
		return
	}
	d.PointerMove(x, y)
	d.state = Idle
	if d.moved {
		return
	}

	rec, err := d.pick(x, y)
	if err != nil || d.opener == nil {
		return
	}
	d.opener.OpenBlock(rec)
}
