package chainview

import (
	"github.com/goodnatureofminers/blockinsight7000-chainviz/pkg/geom"
)

// RotationStep is the per-frame tumble of every block and link, in radians.
const RotationStep = 0.01

// Animator tumbles the whole chain about the chain axis in unison.
type Animator struct {
	sync *Synchronizer
	step float64
}

// NewAnimator constructs an Animator over the synchronizer's live objects.
func NewAnimator(sync *Synchronizer) *Animator {
	return &Animator{sync: sync, step: RotationStep}
}

// Step advances the animation by one frame.
func (a *Animator) Step() {
	for _, vb := range a.sync.Blocks() {
		vb.Group.RotateOnAxis(geom.AxisX, a.step)
	}
	for _, l := range a.sync.Links() {
		l.Group.RotateOnAxis(geom.AxisX, a.step)
	}
}
