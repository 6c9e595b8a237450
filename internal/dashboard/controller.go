// Package dashboard keeps the dashboard panels in step with the backend: tab loaders,
// wallet and transaction mutations, the mining start/poll cycle, balance, asset trace
// and block detail.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/eventloop"
	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-chainviz/pkg/workerpool"
)

const (
	DefaultPollInterval = time.Second
	DefaultWorkers      = 4
)

var (
	ErrMiningInProgress   = errors.New("mining already in progress")
	ErrWalletNameRequired = errors.New("please enter a wallet name")
	ErrAssetRequired      = errors.New("please enter an asset ID")
)

// Config tunes a Controller.
type Config struct {
	PollInterval time.Duration
	Workers      int
}

// WalletBalance is one row of the wallet balance overview.
type WalletBalance struct {
	Name    string
	Balance model.Balance
	Err     error
}

type everyFunc func(ctx context.Context, d time.Duration, fn func(context.Context, *clock.Task)) *clock.Task

// Controller drives the dashboard. Its exported methods must be called on the UI
// thread; backend calls run through the dispatcher and report back on the UI thread.
type Controller struct {
	backend    Backend
	chain      ChainLoader
	view       View
	dispatcher eventloop.Dispatcher
	metrics    Metrics
	logger     *zap.Logger

	pollInterval time.Duration
	workers      int
	every        everyFunc

	ctx    context.Context
	tab    Tab
	mining *miningSession
	detail *model.BlockRecord
}

type miningSession struct {
	task  *clock.Task
	polls int
	log   []string
}

// NewController constructs a Controller.
func NewController(
	backend Backend,
	chain ChainLoader,
	view View,
	dispatcher eventloop.Dispatcher,
	metrics Metrics,
	logger *zap.Logger,
	cfg Config,
) *Controller {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	return &Controller{
		backend:      backend,
		chain:        chain,
		view:         view,
		dispatcher:   dispatcher,
		metrics:      metrics,
		logger:       logger.Named("dashboard"),
		pollInterval: cfg.PollInterval,
		workers:      cfg.Workers,
		every:        clock.Every,
		ctx:          context.Background(),
	}
}

// Attach sets the context used by work that is not started with one, such as detail
// fetches triggered by a pick.
func (c *Controller) Attach(ctx context.Context) {
	c.ctx = ctx
}

// async runs fetch off the UI thread and apply on it.
func async[T any](c *Controller, fetch func() (T, error), apply func(T, error)) {
	c.dispatcher.Go(func() {
		v, err := fetch()
		c.dispatcher.Post(func() { apply(v, err) })
	})
}

func (c *Controller) fail(action string, err error) {
	c.logger.Warn(action+" failed", zap.Error(err))
	c.view.Notify(errorNotice(action, err))
}

func (c *Controller) reject(err error) error {
	c.view.Notify(Notice{Level: LevelError, Text: capitalize(err.Error())})
	return err
}

// Tab returns the active tab.
func (c *Controller) Tab() Tab { return c.tab }

// Mining reports whether a mining session is active.
func (c *Controller) Mining() bool { return c.mining != nil }

// SwitchTab activates tab and runs its loader, if it has one.
func (c *Controller) SwitchTab(ctx context.Context, tab Tab) {
	c.tab = tab
	c.view.ShowTab(tab)
	switch tab {
	case TabWallets:
		c.LoadWallets(ctx)
	case TabBlockchain:
		c.ReloadChain(ctx)
	case TabTransactions:
		c.LoadPending(ctx)
	}
}

// LoadWallets refreshes the wallet list.
func (c *Controller) LoadWallets(ctx context.Context) {
	async(c, func() ([]model.WalletSummary, error) {
		return c.backend.Wallets(ctx)
	}, func(wallets []model.WalletSummary, err error) {
		if err != nil {
			c.fail("load wallets", err)
			return
		}
		c.view.ShowWallets(wallets)
		c.view.SetStatus(fmt.Sprintf("Loaded %d wallets", len(wallets)))
	})
}

// ReloadChain refreshes the chain view and, through ChainLoaded, the block list.
func (c *Controller) ReloadChain(ctx context.Context) {
	c.chain.LoadAndRender(ctx)
}

// ChainLoaded implements chainview.Listener.
func (c *Controller) ChainLoaded(blocks []model.BlockRecord) {
	c.view.ShowChain(blocks)
	c.view.SetStatus(fmt.Sprintf("Blockchain: %d blocks", len(blocks)))
}

// ChainFailed implements chainview.Listener.
func (c *Controller) ChainFailed(err error) {
	c.fail("load blockchain", err)
}

// LoadPending refreshes the pending transaction list.
func (c *Controller) LoadPending(ctx context.Context) {
	async(c, func() ([]model.TxView, error) {
		return c.backend.PendingTransactions(ctx)
	}, func(txs []model.TxView, err error) {
		if err != nil {
			c.fail("load pending transactions", err)
			return
		}
		c.view.ShowPending(txs)
		c.view.SetStatus(fmt.Sprintf("Pending transactions: %d", len(txs)))
	})
}

// CreateWallet creates a wallet and reloads the list.
func (c *Controller) CreateWallet(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return c.reject(ErrWalletNameRequired)
	}
	async(c, func() (model.MutationResult, error) {
		return c.backend.CreateWallet(ctx, name)
	}, func(res model.MutationResult, err error) {
		if err != nil {
			c.fail("create wallet", err)
			return
		}
		c.view.Notify(info(orDefault(res.Message, fmt.Sprintf("Wallet '%s' created", name))))
		c.LoadWallets(ctx)
	})
	return nil
}

// SelectWallet makes name the session wallet and reloads the list.
func (c *Controller) SelectWallet(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return c.reject(ErrWalletNameRequired)
	}
	async(c, func() (model.MutationResult, error) {
		return c.backend.SelectWallet(ctx, name)
	}, func(res model.MutationResult, err error) {
		if err != nil {
			c.fail("select wallet", err)
			return
		}
		c.view.Notify(info(orDefault(res.Message, "Selected wallet: "+name)))
		c.LoadWallets(ctx)
	})
	return nil
}

// CreateTransaction validates and submits a transfer, then reloads pending transactions.
// Invalid forms are rejected without a request.
func (c *Controller) CreateTransaction(ctx context.Context, req model.TransferRequest) error {
	if err := req.Validate(); err != nil {
		return c.reject(err)
	}
	req = req.Normalize()
	async(c, func() (model.MutationResult, error) {
		return c.backend.CreateTransaction(ctx, req)
	}, func(res model.MutationResult, err error) {
		if err != nil {
			c.fail("create transaction", err)
			return
		}
		c.view.Notify(info("Transaction created: " + orDefault(res.TxID, "(no txid)")))
		c.LoadPending(ctx)
	})
	return nil
}

// CheckBalance shows the holdings of name, or of the selected wallet when name is empty.
func (c *Controller) CheckBalance(ctx context.Context, name string) {
	name = strings.TrimSpace(name)
	async(c, func() (model.Balance, error) {
		return c.backend.Balance(ctx, name)
	}, func(b model.Balance, err error) {
		if err != nil {
			c.fail("check balance", err)
			return
		}
		c.view.ShowBalance(b)
		c.view.SetStatus("Balance for wallet: " + orDefault(b.WalletName, name))
	})
}

// LoadWalletBalances fetches every wallet's balance with a bounded pool of workers.
// A failing wallet gets an error row; the others still load.
func (c *Controller) LoadWalletBalances(ctx context.Context) {
	async(c, func() ([]WalletBalance, error) {
		wallets, err := c.backend.Wallets(ctx)
		if err != nil {
			return nil, err
		}
		results := workerpool.Map(ctx, c.workers, wallets, func(ctx context.Context, w model.WalletSummary) (model.Balance, error) {
			return c.backend.Balance(ctx, w.Name)
		})
		rows := make([]WalletBalance, len(wallets))
		for i, w := range wallets {
			rows[i] = WalletBalance{Name: w.Name, Balance: results[i].Value, Err: results[i].Err}
		}
		return rows, nil
	}, func(rows []WalletBalance, err error) {
		if err != nil {
			c.fail("load wallet balances", err)
			return
		}
		c.view.ShowWalletBalances(rows)
		c.view.SetStatus(fmt.Sprintf("Balances for %d wallets", len(rows)))
	})
}

// TraceAsset shows the provenance of an asset.
func (c *Controller) TraceAsset(ctx context.Context, assetID string) error {
	assetID = strings.TrimSpace(assetID)
	if assetID == "" {
		return c.reject(ErrAssetRequired)
	}
	async(c, func() ([]model.TraceEntry, error) {
		return c.backend.TraceAsset(ctx, assetID)
	}, func(entries []model.TraceEntry, err error) {
		if err != nil {
			c.fail("trace asset", err)
			return
		}
		c.view.ShowTrace(assetID, entries)
		c.view.SetStatus(fmt.Sprintf("Trace %s: %d entries", assetID, len(entries)))
	})
	return nil
}

// OpenBlock implements chainview.DetailOpener. The picked record is shown at once and
// replaced by the full block, with transactions, when it arrives and is still shown.
func (c *Controller) OpenBlock(block model.BlockRecord) {
	c.detail = &block
	c.view.ShowBlockDetail(block)

	async(c, func() (model.BlockRecord, error) {
		return c.backend.Block(c.ctx, block.Height)
	}, func(full model.BlockRecord, err error) {
		if c.detail == nil || c.detail.Height != block.Height || c.detail.Hash != block.Hash {
			return
		}
		if err != nil {
			c.fail("load block detail", err)
			return
		}
		if full.Hash != "" && full.Hash != block.Hash {
			c.logger.Warn("block detail hash mismatch",
				zap.Uint64("height", block.Height),
				zap.String("picked", block.Hash),
				zap.String("fetched", full.Hash),
			)
			return
		}
		if full.Hash == "" {
			full.Hash = block.Hash
		}
		c.detail = &full
		c.view.ShowBlockDetail(full)
	})
}

// CloseDetail hides the block detail.
func (c *Controller) CloseDetail() {
	c.detail = nil
}

// Detail returns the block whose detail is shown.
func (c *Controller) Detail() (model.BlockRecord, bool) {
	if c.detail == nil {
		return model.BlockRecord{}, false
	}
	return *c.detail, true
}

// Close stops the mining poll, if any.
func (c *Controller) Close() {
	if c.mining != nil && c.mining.task != nil {
		c.mining.task.Cancel()
	}
	c.mining = nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
