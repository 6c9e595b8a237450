// Package api is the HTTP client of the explorer backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/model"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const maxBodySize = 16 << 20

// Config configures a Client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// RPS caps outgoing requests per second. Zero disables pacing.
	RPS int
}

// Client calls the backend's JSON API. The backend keeps the selected wallet in a
// cookie session, so a Client owns a cookie jar and should be shared.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	limiter ratelimit.Limiter
	metrics Metrics
	logger  *zap.Logger
}

// NewClient builds a Client.
func NewClient(cfg Config, metrics Metrics, logger *zap.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", cfg.BaseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}

	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: cfg.Timeout, Jar: jar},
		limiter: limiter,
		metrics: metrics,
		logger:  logger.Named("api"),
	}, nil
}

// Blocks lists the whole chain, without transactions.
func (c *Client) Blocks(ctx context.Context) ([]model.BlockRecord, error) {
	body, err := c.do(ctx, "blocks", http.MethodGet, "/api/blockchain", nil, nil)
	if err != nil {
		return nil, err
	}
	return model.DecodeList[model.BlockRecord](body), nil
}

// Block returns one block with its transactions.
func (c *Client) Block(ctx context.Context, height uint64) (model.BlockRecord, error) {
	var block model.BlockRecord
	path := "/api/blockchain/block/" + strconv.FormatUint(height, 10)
	body, err := c.do(ctx, "block", http.MethodGet, path, nil, nil)
	if err != nil {
		return block, err
	}
	if err := json.Unmarshal(body, &block); err != nil {
		return block, fmt.Errorf("decode block %d: %w", height, err)
	}
	return block, nil
}

// Wallets lists the server's wallets.
func (c *Client) Wallets(ctx context.Context) ([]model.WalletSummary, error) {
	body, err := c.do(ctx, "wallets", http.MethodGet, "/api/wallets", nil, nil)
	if err != nil {
		return nil, err
	}
	return model.DecodeList[model.WalletSummary](body), nil
}

// CreateWallet creates a named wallet.
func (c *Client) CreateWallet(ctx context.Context, name string) (model.MutationResult, error) {
	return c.mutate(ctx, "create_wallet", "/api/wallets", map[string]string{"name": name})
}

// SelectWallet makes name the session's wallet.
func (c *Client) SelectWallet(ctx context.Context, name string) (model.MutationResult, error) {
	return c.mutate(ctx, "select_wallet", "/api/wallets/select", map[string]string{"name": name})
}

// Balance returns the holdings of wallet name, or of the selected wallet when name is empty.
func (c *Client) Balance(ctx context.Context, name string) (model.Balance, error) {
	var balance model.Balance
	var query url.Values
	if name != "" {
		query = url.Values{"name": {name}}
	}
	body, err := c.do(ctx, "balance", http.MethodGet, "/api/wallets/balance", query, nil)
	if err != nil {
		return balance, err
	}
	if err := json.Unmarshal(body, &balance); err != nil {
		return balance, fmt.Errorf("decode balance: %w", err)
	}
	return balance, nil
}

// CreateTransaction submits a transfer from the selected wallet.
func (c *Client) CreateTransaction(ctx context.Context, req model.TransferRequest) (model.MutationResult, error) {
	return c.mutate(ctx, "create_transaction", "/api/transactions", req)
}

// PendingTransactions lists the mempool.
func (c *Client) PendingTransactions(ctx context.Context) ([]model.TxView, error) {
	body, err := c.do(ctx, "pending_transactions", http.MethodGet, "/api/transactions/pending", nil, nil)
	if err != nil {
		return nil, err
	}
	return model.DecodeList[model.TxView](body), nil
}

// StartMining asks the backend to mine a block in the background.
func (c *Client) StartMining(ctx context.Context) error {
	_, err := c.do(ctx, "start_mining", http.MethodPost, "/api/mine", nil, struct{}{})
	return err
}

// MiningStatus returns the backend's mining flag and log.
func (c *Client) MiningStatus(ctx context.Context) (model.MiningStatus, error) {
	var status model.MiningStatus
	body, err := c.do(ctx, "mining_status", http.MethodGet, "/api/mine/status", nil, nil)
	if err != nil {
		return status, err
	}
	if err := json.Unmarshal(body, &status); err != nil {
		return status, fmt.Errorf("decode mining status: %w", err)
	}
	return status, nil
}

// TraceAsset returns the provenance of an asset, oldest first.
func (c *Client) TraceAsset(ctx context.Context, assetID string) ([]model.TraceEntry, error) {
	body, err := c.do(ctx, "trace_asset", http.MethodGet, "/api/trace/"+url.PathEscape(assetID), nil, nil)
	if err != nil {
		return nil, err
	}
	return model.DecodeList[model.TraceEntry](body), nil
}

func (c *Client) mutate(ctx context.Context, op, path string, payload any) (model.MutationResult, error) {
	var res model.MutationResult
	body, err := c.do(ctx, op, http.MethodPost, path, nil, payload)
	if err != nil {
		return res, err
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return res, fmt.Errorf("decode %s: %w", op, err)
	}
	return res, nil
}

// do performs one call. path must already be escaped.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, payload any) (body []byte, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(op, err, started)
	}()

	u := *c.baseURL
	u.RawPath = u.EscapedPath() + path
	if u.Path, err = url.PathUnescape(u.RawPath); err != nil {
		return nil, fmt.Errorf("build %s path: %w", op, err)
	}
	u.RawQuery = query.Encode()

	var reader io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", op, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.limiter.Take()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", op, err)
	}

	if appErr := appError(resp.StatusCode, body); appErr != nil {
		c.logger.Debug("backend rejected request",
			zap.String("operation", op),
			zap.Int("status", appErr.Status),
			zap.String("message", appErr.Message),
		)
		return nil, appErr
	}
	return body, nil
}
