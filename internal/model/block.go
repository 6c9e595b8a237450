// Package model defines the records the backend hands to the viewer.
// Every record decodes leniently: missing or malformed members take their zero value.
package model

// BlockRecord is one chain block as delivered by the backend. Transactions is only
// populated by the block detail endpoint.
type BlockRecord struct {
	Height       uint64   `json:"height"`
	Hash         string   `json:"hash"`
	PrevHash     string   `json:"prev_hash"`
	MerkleRoot   string   `json:"merkle_root"`
	Nonce        int64    `json:"nonce"`
	Timestamp    int64    `json:"timestamp"`
	TxCount      int      `json:"tx_count"`
	Difficulty   *int64   `json:"difficulty,omitempty"`
	Transactions []TxView `json:"transactions,omitempty"`
}

// IsGenesis reports whether the block is the chain's first.
func (b BlockRecord) IsGenesis() bool { return b.Height == 0 }

// ShortHash returns the first n characters of the hash.
func (b BlockRecord) ShortHash(n int) string {
	if len(b.Hash) <= n {
		return b.Hash
	}
	return b.Hash[:n]
}

// UnmarshalJSON implements lenient decoding.
func (b *BlockRecord) UnmarshalJSON(data []byte) error {
	f := object(data)
	*b = BlockRecord{
		Height:     f.unsigned("height"),
		Hash:       f.text("hash"),
		PrevHash:   f.text("prev_hash"),
		MerkleRoot: f.text("merkle_root"),
		Nonce:      f.integer("nonce"),
		Timestamp:  f.integer("timestamp"),
		TxCount:    f.count("tx_count"),
	}
	if f.has("difficulty") {
		d := f.integer("difficulty")
		b.Difficulty = &d
	}
	if f.has("transactions") {
		b.Transactions = DecodeList[TxView](f["transactions"])
		if !f.has("tx_count") {
			b.TxCount = len(b.Transactions)
		}
	}
	return nil
}
