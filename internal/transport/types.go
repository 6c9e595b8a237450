package transport

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/chainview"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// SceneReader snapshots the live chain view.
type SceneReader interface {
	ReadScene(ctx context.Context) (chainview.Snapshot, error)
}
