package integrity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Fields are the four values a trusted client signs.
type Fields struct {
	Initials  string
	Score     int64
	PlayerID  string
	Timestamp string
}

// payload fixes the key order and names clients serialize with.
type payload struct {
	Initials  string `json:"initials"`
	Score     int64  `json:"score"`
	UniqueID  string `json:"uniqueid"`
	Timestamp string `json:"timestamp"`
}

// Canonical returns the compact JSON object the digest is computed over:
// keys in the order initials, score, uniqueid, timestamp, no whitespace and
// no HTML escaping.
func Canonical(f Fields) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload{
		Initials:  f.Initials,
		Score:     f.Score,
		UniqueID:  f.PlayerID,
		Timestamp: f.Timestamp,
	}); err != nil {
		return nil, fmt.Errorf("failed to encode canonical payload: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
