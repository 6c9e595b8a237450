// Package chainview turns the backend's block list into a 3D scene and handles the
// viewer's panning, picking and animation.
package chainview

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/eventloop"
	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/scene"
)

const DefaultFPS = 30

// VisualizerContext owns everything the 3D view needs for one mount: the scene, the
// camera and the controllers over them. It is created on mount and discarded on
// unmount. Apart from Run and ReadScene its methods must be called on the UI thread.
type VisualizerContext struct {
	Scene    *scene.Scene
	Camera   *scene.Camera
	Sync     *Synchronizer
	Picker   *Picker
	Drag     *DragController
	Animator *Animator

	renderer   Renderer
	dispatcher eventloop.Dispatcher
	metrics    Metrics
	logger     *zap.Logger

	framePending atomic.Bool
	mounted      atomic.Bool
}

// NewVisualizerContext wires a fresh scene and camera to source and renderer.
func NewVisualizerContext(
	source ChainSource,
	renderer Renderer,
	dispatcher eventloop.Dispatcher,
	metrics Metrics,
	logger *zap.Logger,
) *VisualizerContext {
	logger = logger.Named("chainview")
	sc := scene.New()
	cam := scene.NewCamera()
	sync := NewSynchronizer(sc, source, dispatcher, metrics, logger)
	picker := NewPicker(cam, sync)

	return &VisualizerContext{
		Scene:      sc,
		Camera:     cam,
		Sync:       sync,
		Picker:     picker,
		Drag:       NewDragController(cam, picker.Pick),
		Animator:   NewAnimator(sync),
		renderer:   renderer,
		dispatcher: dispatcher,
		metrics:    metrics,
		logger:     logger,
	}
}

// Bind connects the load listener and the detail opener.
func (v *VisualizerContext) Bind(listener Listener, opener DetailOpener) {
	v.Sync.SetListener(listener)
	v.Drag.SetOpener(opener)
}

// Mount initializes the camera for vp.
func (v *VisualizerContext) Mount(vp scene.Viewport) {
	v.Camera.Initialize(vp, v.renderer)
	v.mounted.Store(true)
	v.logger.Info("view mounted", zap.Int("width", vp.Width), zap.Int("height", vp.Height))
}

// Unmount disposes the scene contents and detaches the listeners. Frames stop being
// scheduled and chain loads still in flight are dropped.
func (v *VisualizerContext) Unmount() {
	v.mounted.Store(false)
	v.Sync.Discard()
	v.Bind(nil, nil)
	v.logger.Info("view unmounted")
}

// Mounted reports whether the view is live.
func (v *VisualizerContext) Mounted() bool { return v.mounted.Load() }

// OnResize forwards a viewport change to the camera and renderer.
func (v *VisualizerContext) OnResize(vp scene.Viewport) {
	v.Camera.OnResize(vp)
}

// PointerDown, PointerMove and PointerUp forward pointer input in viewport coordinates.
func (v *VisualizerContext) PointerDown(x, y float64) { v.Drag.PointerDown(x, y) }

func (v *VisualizerContext) PointerMove(x, y float64) { v.Drag.PointerMove(x, y) }

func (v *VisualizerContext) PointerUp(x, y float64) { v.Drag.PointerUp(x, y) }

// Pan moves the camera by a screen-space delta, as a drag of that length would.
func (v *VisualizerContext) Pan(deltaScreenX float64) { v.Camera.Pan(deltaScreenX) }

// Frame advances the animation one step and renders.
func (v *VisualizerContext) Frame() {
	started := time.Now()
	v.Animator.Step()
	v.renderer.Render(v.Scene, v.Camera)
	v.metrics.ObserveFrame(started)
}

// Run schedules a frame on the UI thread fps times a second until ctx is done. A frame
// is not queued while the previous one is still waiting to run.
func (v *VisualizerContext) Run(ctx context.Context, fps int) error {
	if fps <= 0 {
		fps = DefaultFPS
	}
	limiter := ratelimit.New(fps)
	for {
		limiter.Take()
		if err := ctx.Err(); err != nil {
			return err
		}
		if !v.mounted.Load() || !v.framePending.CompareAndSwap(false, true) {
			continue
		}
		if !v.dispatcher.Post(v.runFrame) {
			v.framePending.Store(false)
		}
	}
}

func (v *VisualizerContext) runFrame() {
	v.framePending.Store(false)
	if v.mounted.Load() {
		v.Frame()
	}
}

// Snapshot is a read-only description of the live scene.
type Snapshot struct {
	Blocks []BlockSnapshot `json:"blocks"`
	Links  int             `json:"links"`
	PanX   float64         `json:"pan_x"`
	Nodes  int             `json:"nodes"`
}

// BlockSnapshot describes one visual block.
type BlockSnapshot struct {
	Height uint64  `json:"height"`
	Hash   string  `json:"hash"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
	Color  string  `json:"color"`
}

// Snapshot describes the live scene.
func (v *VisualizerContext) Snapshot() Snapshot {
	snap := Snapshot{
		Blocks: make([]BlockSnapshot, 0, len(v.Sync.Blocks())),
		Links:  len(v.Sync.Links()),
		PanX:   v.Camera.PanOffset().X,
		Nodes:  v.Scene.Len(),
	}
	for _, vb := range v.Sync.Blocks() {
		pos := vb.Group.Transform.Position
		snap.Blocks = append(snap.Blocks, BlockSnapshot{
			Height: vb.Record.Height,
			Hash:   vb.Record.Hash,
			X:      pos.X,
			Y:      pos.Y,
			Z:      pos.Z,
			Color:  fmt.Sprintf("#%06x", vb.Body.Color),
		})
	}
	return snap
}

// SceneReader takes snapshots of a view from outside the UI thread.
type SceneReader struct {
	View *VisualizerContext
	Loop Doer
}

// ReadScene runs Snapshot on the UI thread and waits for it.
func (r SceneReader) ReadScene(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	err := r.Loop.Do(ctx, func() { snap = r.View.Snapshot() })
	return snap, err
}
