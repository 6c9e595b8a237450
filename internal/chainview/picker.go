package chainview

import (
	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/scene"
)

// Picker resolves viewport coordinates to the block drawn there.
type Picker struct {
	camera *scene.Camera
	sync   *Synchronizer
}

// NewPicker constructs a Picker.
func NewPicker(camera *scene.Camera, sync *Synchronizer) *Picker {
	return &Picker{camera: camera, sync: sync}
}

// Pick casts a ray through (x, y) and returns the record of the nearest block hit.
func (p *Picker) Pick(x, y float64) (model.BlockRecord, error) {
	hits := scene.Intersect(p.camera.Ray(x, y), p.sync.Roots(), true)
	for _, hit := range hits {
		if rec, ok := p.sync.Lookup(hit.Node.Handle()); ok {
			return rec, nil
		}
	}
	return model.BlockRecord{}, ErrNoBlock
}
