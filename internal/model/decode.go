package model

import (
	"bytes"
	"encoding/json"

	"github.com/goodnatureofminers/blockinsight7000-chainviz/pkg/safe"
)

// fields is a decoded JSON object whose members are read one at a time, so a member
// with the wrong shape falls back to its zero value instead of failing the whole record.
type fields map[string]json.RawMessage

func object(data []byte) fields {
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return nil
	}
	return f
}

func (f fields) has(key string) bool {
	raw, ok := f[key]
	return ok && !isNull(raw)
}

func (f fields) text(key string) string {
	s, _ := f.textOK(key)
	return s
}

func (f fields) textOK(key string) (string, bool) {
	var s string
	if err := json.Unmarshal(f[key], &s); err != nil {
		return "", false
	}
	return s, true
}

func (f fields) integer(key string) int64 {
	raw, ok := f[key]
	if !ok {
		return 0
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0
	}
	if v, err := n.Int64(); err == nil {
		return v
	}
	fl, err := n.Float64()
	if err != nil {
		return 0
	}
	v, err := safe.Int64FromFloat(fl)
	if err != nil {
		return 0
	}
	return v
}

func (f fields) count(key string) int {
	v, err := safe.Int(f.integer(key))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func (f fields) unsigned(key string) uint64 {
	v, err := safe.Uint64(f.integer(key))
	if err != nil {
		return 0
	}
	return v
}

func (f fields) boolean(key string) bool {
	b, _ := f.booleanOK(key)
	return b
}

func (f fields) booleanOK(key string) (bool, bool) {
	if !f.has(key) {
		return false, false
	}
	var b bool
	if err := json.Unmarshal(f[key], &b); err != nil {
		return false, false
	}
	return b, true
}

func (f fields) list(key string) []json.RawMessage {
	return list(f[key])
}

func list(data []byte) []json.RawMessage {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	return items
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || string(trimmed) == "null"
}

func clampPortion(v int64) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return int(v)
	}
}

// DecodeList decodes a JSON array leniently: a payload that is not an array yields an
// empty list, and each element goes through T's own lenient decoding.
func DecodeList[T any, PT interface {
	*T
	json.Unmarshaler
}](data []byte) []T {
	items := list(data)
	out := make([]T, 0, len(items))
	for _, raw := range items {
		var v T
		_ = PT(&v).UnmarshalJSON(raw)
		out = append(out, v)
	}
	return out
}
