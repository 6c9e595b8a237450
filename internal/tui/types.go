package tui

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/dashboard"
	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/scene"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Controller is the dashboard as driven by the keyboard.
	Controller interface {
		Attach(ctx context.Context)
		SwitchTab(ctx context.Context, tab dashboard.Tab)
		ReloadChain(ctx context.Context)
		CreateWallet(ctx context.Context, name string) error
		SelectWallet(ctx context.Context, name string) error
		CheckBalance(ctx context.Context, name string)
		LoadWalletBalances(ctx context.Context)
		CreateTransaction(ctx context.Context, req model.TransferRequest) error
		StartMining(ctx context.Context) error
		TraceAsset(ctx context.Context, assetID string) error
		CloseDetail()
		Close()
	}
	// Visualizer is the 3D chain view.
	Visualizer interface {
		Mount(vp scene.Viewport)
		Unmount()
		OnResize(vp scene.Viewport)
		PointerDown(x, y float64)
		PointerMove(x, y float64)
		PointerUp(x, y float64)
		Pan(deltaScreenX float64)
		Run(ctx context.Context, fps int) error
	}
	// Loop is the UI thread.
	Loop interface {
		Post(task func()) bool
		Run(ctx context.Context) error
	}
)
