package dashboard

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Backend is the explorer API.
	Backend interface {
		Block(ctx context.Context, height uint64) (model.BlockRecord, error)
		Wallets(ctx context.Context) ([]model.WalletSummary, error)
		CreateWallet(ctx context.Context, name string) (model.MutationResult, error)
		SelectWallet(ctx context.Context, name string) (model.MutationResult, error)
		Balance(ctx context.Context, name string) (model.Balance, error)
		CreateTransaction(ctx context.Context, req model.TransferRequest) (model.MutationResult, error)
		PendingTransactions(ctx context.Context) ([]model.TxView, error)
		StartMining(ctx context.Context) error
		MiningStatus(ctx context.Context) (model.MiningStatus, error)
		TraceAsset(ctx context.Context, assetID string) ([]model.TraceEntry, error)
	}
	// ChainLoader reloads the 3D chain view. Its outcome comes back through
	// Controller.ChainLoaded and Controller.ChainFailed.
	ChainLoader interface {
		LoadAndRender(ctx context.Context)
	}
	// View displays what the controller loads.
	View interface {
		ShowTab(tab Tab)
		ShowWallets(wallets []model.WalletSummary)
		ShowWalletBalances(rows []WalletBalance)
		ShowBalance(balance model.Balance)
		ShowChain(blocks []model.BlockRecord)
		ShowBlockDetail(block model.BlockRecord)
		ShowPending(txs []model.TxView)
		ShowMiningLog(lines []string, active bool)
		ShowTrace(assetID string, entries []model.TraceEntry)
		SetStatus(text string)
		Notify(n Notice)
	}
	// Metrics records mining poll metrics.
	Metrics interface {
		ObservePoll(err error, started time.Time)
		ObserveSession(polls int)
	}
)
