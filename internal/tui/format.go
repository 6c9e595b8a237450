package tui

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/dashboard"
	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/model"
)

const (
	hashPreview = 16
	txidPreview = 10
)

func preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// WalletLines renders the wallet list.
func WalletLines(wallets []model.WalletSummary) []string {
	if len(wallets) == 0 {
		return []string{"No wallets yet. Press n to create one."}
	}
	lines := []string{fmt.Sprintf("%-3s %-20s %s", "", "NAME", "PUBKEY HASH")}
	for _, w := range wallets {
		mark := ""
		if w.Selected {
			mark = "*"
		}
		lines = append(lines, fmt.Sprintf("%-3s %-20s %s", mark, w.Name, preview(w.PubKeyHash, hashPreview)))
	}
	return lines
}

// WalletBalanceLines renders the balance overview of every wallet.
func WalletBalanceLines(rows []dashboard.WalletBalance) []string {
	if len(rows) == 0 {
		return []string{"No wallets yet. Press n to create one."}
	}
	var lines []string
	for _, row := range rows {
		if row.Err != nil {
			lines = append(lines, fmt.Sprintf("%s: unavailable (%v)", row.Name, row.Err))
			continue
		}
		holdings := row.Balance.Sorted()
		if len(holdings) == 0 {
			lines = append(lines, fmt.Sprintf("%s: no assets", row.Name))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s:", row.Name))
		for _, h := range holdings {
			lines = append(lines, fmt.Sprintf("  %s  %d%%", h.AssetID, h.Portion))
		}
	}
	return lines
}

// BalanceLines renders one wallet's holdings.
func BalanceLines(b model.Balance) []string {
	lines := []string{
		"Balance for wallet: " + b.WalletName,
		"Public Key Hash: " + b.PubKeyHash,
	}
	holdings := b.Sorted()
	if len(holdings) == 0 {
		return append(lines, "No assets found")
	}
	for _, h := range holdings {
		lines = append(lines, fmt.Sprintf("Asset ID: %s  Portion: %d%%", h.AssetID, h.Portion))
	}
	return lines
}

// ChainLines renders the block list, one line per block.
func ChainLines(blocks []model.BlockRecord) []string {
	if len(blocks) == 0 {
		return []string{"No blocks"}
	}
	lines := make([]string, 0, len(blocks))
	for _, b := range blocks {
		lines = append(lines, fmt.Sprintf("#%-5d %s  prev %s  txs %d  nonce %d",
			b.Height, preview(b.Hash, hashPreview), preview(b.PrevHash, hashPreview), b.TxCount, b.Nonce))
	}
	return lines
}

// DetailLines renders a block detail panel.
func DetailLines(b model.BlockRecord) []string {
	lines := []string{
		fmt.Sprintf("Block #%d", b.Height),
		"Block Hash: " + b.Hash,
		"Previous Hash: " + b.PrevHash,
		"Merkle Root: " + b.MerkleRoot,
		fmt.Sprintf("Nonce: %d", b.Nonce),
		"Timestamp: " + time.Unix(b.Timestamp, 0).UTC().Format(time.RFC3339),
	}
	if b.Difficulty != nil {
		lines = append(lines, fmt.Sprintf("Difficulty: %d", *b.Difficulty))
	}
	lines = append(lines, fmt.Sprintf("Transactions: %d", b.TxCount))
	for i, tx := range b.Transactions {
		lines = append(lines, txLines(i, tx)...)
	}
	return append(lines, "", "Esc to close")
}

func txLines(i int, tx model.TxView) []string {
	lines := []string{fmt.Sprintf("  Transaction %d: %s  inputs %d", i+1, preview(tx.TxID, txidPreview), tx.Inputs)}
	for _, out := range tx.Outputs {
		lines = append(lines, fmt.Sprintf("    -> %s  %d%%", out.AssetID, out.Portion))
	}
	return lines
}

// PendingLines renders the mempool.
func PendingLines(txs []model.TxView) []string {
	if len(txs) == 0 {
		return []string{"No pending transactions"}
	}
	lines := []string{fmt.Sprintf("Pending Transactions: %d", len(txs))}
	for i, tx := range txs {
		lines = append(lines, txLines(i, tx)...)
	}
	return lines
}

// MiningLines renders the mining panel.
func MiningLines(log []string, active bool) []string {
	state := "idle"
	if active {
		state = "running"
	}
	lines := []string{"Mining: " + state}
	if len(log) == 0 {
		if active {
			return append(lines, "Waiting for the miner...")
		}
		return append(lines, "Press m to mine a block")
	}
	return append(lines, log...)
}

// TraceLines renders the history of one asset. Only outputs carrying the asset are listed.
func TraceLines(assetID string, entries []model.TraceEntry) []string {
	lines := []string{"Asset Trace for: " + assetID}
	if len(entries) == 0 {
		return append(lines, "No transactions found for this asset")
	}
	for _, e := range entries {
		lines = append(lines,
			fmt.Sprintf("Block Height: %d  Block Hash: %s", e.Height, preview(e.BlockHash, hashPreview)),
			fmt.Sprintf("  TXID: %s  Inputs: %d", e.TxID, len(e.Inputs)),
		)
		for i, out := range e.Outputs {
			if out.AssetID != assetID {
				continue
			}
			lines = append(lines, fmt.Sprintf("  [%d] To: %s  Portion: %d%%", i, preview(out.PubKeyHash, hashPreview), out.Portion))
		}
	}
	return lines
}
