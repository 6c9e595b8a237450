package model

import (
	"errors"
	"strings"
)

// OutputView is one transaction output.
type OutputView struct {
	AssetID    string `json:"asset_id"`
	Portion    int    `json:"portion"`
	PubKeyHash string `json:"pubkey_hash,omitempty"`
}

// UnmarshalJSON implements lenient decoding. Portions are clamped to [0, 100].
func (o *OutputView) UnmarshalJSON(data []byte) error {
	f := object(data)
	*o = OutputView{
		AssetID:    f.text("asset_id"),
		Portion:    clampPortion(f.integer("portion")),
		PubKeyHash: f.text("pubkey_hash"),
	}
	return nil
}

// TxView is a transaction summary: its id, input count and outputs.
type TxView struct {
	TxID    string       `json:"txid"`
	Inputs  int          `json:"inputs"`
	Outputs []OutputView `json:"outputs"`
}

// UnmarshalJSON implements lenient decoding.
func (t *TxView) UnmarshalJSON(data []byte) error {
	f := object(data)
	*t = TxView{
		TxID:    f.text("txid"),
		Inputs:  f.count("inputs"),
		Outputs: DecodeList[OutputView](f["outputs"]),
	}
	return nil
}

// TraceInput references the output an input spends.
type TraceInput struct {
	TxIDRef string `json:"txid_ref"`
	Index   int    `json:"index"`
}

// UnmarshalJSON implements lenient decoding.
func (i *TraceInput) UnmarshalJSON(data []byte) error {
	f := object(data)
	*i = TraceInput{TxIDRef: f.text("txid_ref"), Index: f.count("index")}
	return nil
}

// TraceEntry is one transaction touching a traced asset.
type TraceEntry struct {
	Height    uint64       `json:"height"`
	BlockHash string       `json:"block_hash"`
	TxID      string       `json:"txid"`
	Inputs    []TraceInput `json:"inputs"`
	Outputs   []OutputView `json:"outputs"`
}

// UnmarshalJSON implements lenient decoding.
func (e *TraceEntry) UnmarshalJSON(data []byte) error {
	f := object(data)
	*e = TraceEntry{
		Height:    f.unsigned("height"),
		BlockHash: f.text("block_hash"),
		TxID:      f.text("txid"),
		Inputs:    DecodeList[TraceInput](f["inputs"]),
		Outputs:   DecodeList[OutputView](f["outputs"]),
	}
	return nil
}

// TransferRequest is the create-transaction form.
type TransferRequest struct {
	ToPubKeyHash string `json:"to_pubkey_hash"`
	AssetID      string `json:"asset_id"`
	Portion      int    `json:"portion"`
}

var (
	// ErrFieldsRequired is returned when a transfer form field is empty.
	ErrFieldsRequired = errors.New("all fields are required")
	// ErrPortionRange is returned when a transfer portion is outside 1..100.
	ErrPortionRange = errors.New("portion must be between 1 and 100")
)

// Normalize trims the text fields.
func (r TransferRequest) Normalize() TransferRequest {
	r.ToPubKeyHash = strings.TrimSpace(r.ToPubKeyHash)
	r.AssetID = strings.TrimSpace(r.AssetID)
	return r
}

// Validate applies the rules the backend enforces so obviously bad forms never leave
// the client.
func (r TransferRequest) Validate() error {
	r = r.Normalize()
	if r.ToPubKeyHash == "" || r.AssetID == "" || r.Portion == 0 {
		return ErrFieldsRequired
	}
	if r.Portion < 1 || r.Portion > 100 {
		return ErrPortionRange
	}
	return nil
}
