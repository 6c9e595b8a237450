package chainview

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/eventloop"
	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/scene"
)

const DefaultSpacing = 4.0

// ErrNoBlock is returned when a lookup does not resolve to a live block.
var ErrNoBlock = errors.New("no block at position")

// Synchronizer keeps the scene in step with the backend's block list. All methods must
// be called on the UI thread; fetches run through the dispatcher.
type Synchronizer struct {
	scene      *scene.Scene
	source     ChainSource
	dispatcher eventloop.Dispatcher
	metrics    Metrics
	logger     *zap.Logger
	listener   Listener
	spacing    float64

	seq    uint64
	blocks []*VisualBlock
	links  []*ChainLink
	owners map[scene.Handle]int
}

// NewSynchronizer constructs a Synchronizer drawing into sc.
func NewSynchronizer(
	sc *scene.Scene,
	source ChainSource,
	dispatcher eventloop.Dispatcher,
	metrics Metrics,
	logger *zap.Logger,
) *Synchronizer {
	return &Synchronizer{
		scene:      sc,
		source:     source,
		dispatcher: dispatcher,
		metrics:    metrics,
		logger:     logger.Named("synchronizer"),
		listener:   nopListener{},
		spacing:    DefaultSpacing,
		owners:     make(map[scene.Handle]int),
	}
}

// SetListener registers the receiver of load outcomes. nil restores the no-op listener.
func (s *Synchronizer) SetListener(l Listener) {
	if l == nil {
		l = nopListener{}
	}
	s.listener = l
}

// LoadAndRender fetches the block list off the UI thread and applies it when it
// arrives, unless a newer load was started in the meantime.
func (s *Synchronizer) LoadAndRender(ctx context.Context) {
	s.seq++
	seq := s.seq
	s.dispatcher.Go(func() {
		blocks, err := s.source.Blocks(ctx)
		s.dispatcher.Post(func() {
			s.apply(seq, blocks, err)
		})
	})
}

func (s *Synchronizer) apply(seq uint64, blocks []model.BlockRecord, err error) {
	if seq != s.seq {
		s.metrics.ObserveStaleResponse()
		s.logger.Debug("discarding stale chain response", zap.Uint64("seq", seq), zap.Uint64("latest", s.seq))
		return
	}
	if err != nil {
		s.logger.Warn("failed to load chain", zap.Error(err))
		s.listener.ChainFailed(err)
		return
	}
	if len(blocks) == 0 {
		s.Clear()
	} else {
		s.Rebuild(blocks)
	}
	s.listener.ChainLoaded(blocks)
}

// Rebuild replaces every visual block and link with ones built from blocks, in order.
func (s *Synchronizer) Rebuild(blocks []model.BlockRecord) {
	started := time.Now()
	s.Clear()

	n := len(blocks)
	for i, b := range blocks {
		vb := BuildBlock(b, i, n, Layout(i, n, s.spacing))
		s.scene.Add(vb.Group)
		for _, node := range vb.Nodes() {
			s.owners[node.Handle()] = i
		}
		s.blocks = append(s.blocks, vb)

		if i > 0 {
			link := BuildLink(s.blocks[i-1].Group.Transform.Position, vb.Group.Transform.Position)
			s.scene.Add(link.Group)
			s.links = append(s.links, link)
		}
	}

	s.metrics.ObserveRebuild(n, started)
	s.logger.Debug("chain rebuilt", zap.Int("blocks", n), zap.Int("links", len(s.links)))
}

// Clear disposes every visual block and link.
func (s *Synchronizer) Clear() {
	for _, vb := range s.blocks {
		s.scene.Remove(vb.Group)
	}
	for _, l := range s.links {
		s.scene.Remove(l.Group)
	}
	s.blocks = nil
	s.links = nil
	clear(s.owners)
}

// Discard clears the scene and drops every load still in flight.
func (s *Synchronizer) Discard() {
	s.seq++
	s.Clear()
}

// Blocks returns the live visual blocks in layout order.
func (s *Synchronizer) Blocks() []*VisualBlock { return s.blocks }

// Links returns the live links in layout order.
func (s *Synchronizer) Links() []*ChainLink { return s.links }

// Roots returns the group node of every live visual block.
func (s *Synchronizer) Roots() []*scene.Node {
	out := make([]*scene.Node, len(s.blocks))
	for i, vb := range s.blocks {
		out[i] = vb.Group
	}
	return out
}

// Lookup resolves any node of a live visual block to the block's record.
func (s *Synchronizer) Lookup(h scene.Handle) (model.BlockRecord, bool) {
	i, ok := s.owners[h]
	if !ok {
		return model.BlockRecord{}, false
	}
	return s.blocks[i].Record, true
}

type nopListener struct{}

func (nopListener) ChainLoaded([]model.BlockRecord) {}
func (nopListener) ChainFailed(error)               {}
