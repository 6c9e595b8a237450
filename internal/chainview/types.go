package chainview

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/scene"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ChainSource fetches the full ordered block list.
	ChainSource interface {
		Blocks(ctx context.Context) ([]model.BlockRecord, error)
	}
	// Renderer draws the scene as seen by the camera. SetSize is called on every
	// viewport change.
	Renderer interface {
		Render(sc *scene.Scene, cam *scene.Camera)
		SetSize(width, height int)
	}
	// Listener is told about the outcome of every chain load that was applied.
	Listener interface {
		ChainLoaded(blocks []model.BlockRecord)
		ChainFailed(err error)
	}
	// DetailOpener shows the detail view of a picked block.
	DetailOpener interface {
		OpenBlock(block model.BlockRecord)
	}
	// Metrics records scene metrics.
	Metrics interface {
		ObserveRebuild(blocks int, started time.Time)
		ObserveStaleResponse()
		ObserveFrame(started time.Time)
	}
	// Doer runs a task on the UI thread and waits for it to finish.
	Doer interface {
		Do(ctx context.Context, task func()) error
	}
)
