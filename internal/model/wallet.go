package model

import (
	"cmp"
	"errors"
	"slices"
)

// WalletSummary is a row of the wallet list.
type WalletSummary struct {
	Name       string `json:"name"`
	PubKeyHash string `json:"pubkey_hash"`
	Selected   bool   `json:"selected"`
}

// UnmarshalJSON implements lenient decoding.
func (w *WalletSummary) UnmarshalJSON(data []byte) error {
	f := object(data)
	*w = WalletSummary{
		Name:       f.text("name"),
		PubKeyHash: f.text("pubkey_hash"),
		Selected:   f.boolean("selected"),
	}
	return nil
}

// Balance is the per-asset holding of a wallet.
type Balance struct {
	WalletName string         `json:"wallet_name"`
	PubKeyHash string         `json:"pubkey_hash"`
	Balances   map[string]int `json:"balances"`
}

// AssetBalance is one asset holding.
type AssetBalance struct {
	AssetID string
	Portion int
}

// Sorted returns the holdings ordered by asset id.
func (b Balance) Sorted() []AssetBalance {
	out := make([]AssetBalance, 0, len(b.Balances))
	for id, p := range b.Balances {
		out = append(out, AssetBalance{AssetID: id, Portion: p})
	}
	slices.SortFunc(out, func(x, y AssetBalance) int { return cmp.Compare(x.AssetID, y.AssetID) })
	return out
}

// UnmarshalJSON implements lenient decoding.
func (b *Balance) UnmarshalJSON(data []byte) error {
	f := object(data)
	*b = Balance{
		WalletName: f.text("wallet_name"),
		PubKeyHash: f.text("pubkey_hash"),
		Balances:   map[string]int{},
	}
	holdings := object(f["balances"])
	for asset := range holdings {
		b.Balances[asset] = holdings.count(asset)
	}
	return nil
}

// MutationResult is the success body of a mutating call. Which members are set
// depends on the call.
type MutationResult struct {
	Message    string `json:"message,omitempty"`
	PubKeyHash string `json:"pubkey_hash,omitempty"`
	TxID       string `json:"txid,omitempty"`
}

// UnmarshalJSON implements lenient decoding.
func (m *MutationResult) UnmarshalJSON(data []byte) error {
	f := object(data)
	*m = MutationResult{
		Message:    f.text("message"),
		PubKeyHash: f.text("pubkey_hash"),
		TxID:       f.text("txid"),
	}
	return nil
}

// MiningStatus is the backend's view of the current mining session.
type MiningStatus struct {
	IsMining bool     `json:"is_mining"`
	Log      []string `json:"log"`
}

// ErrNoMiningFlag is returned for a status body without a boolean is_mining member.
var ErrNoMiningFlag = errors.New("mining status has no is_mining flag")

// UnmarshalJSON implements lenient decoding of the log. Log lines that are not strings
// are skipped. The mining flag has no default.
func (s *MiningStatus) UnmarshalJSON(data []byte) error {
	f := object(data)
	mining, ok := f.booleanOK("is_mining")
	if !ok {
		*s = MiningStatus{}
		return ErrNoMiningFlag
	}
	*s = MiningStatus{IsMining: mining}
	for _, raw := range f.list("log") {
		line, ok := (fields{"line": raw}).textOK("line")
		if !ok {
			continue
		}
		s.Log = append(s.Log, line)
	}
	return nil
}
