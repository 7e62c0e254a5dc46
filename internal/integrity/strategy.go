package integrity

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// Strategy computes and compares digests. Swapping the strategy changes the
// algorithm without touching callers.
type Strategy interface {
	Name() string
	Digest(canonical []byte, secret []byte) string
	Equal(claimed, computed string) bool
}

// LegacySHA1 hashes canonical||secret with SHA-1 and compares the hex text
// with ==. Existing game builds sign this way.
type LegacySHA1 struct{}

func (LegacySHA1) Name() string { return "sha1" }

func (LegacySHA1) Digest(canonical []byte, secret []byte) string {
	h := sha1.New()
	h.Write(canonical)
	h.Write(secret)
	return hex.EncodeToString(h.Sum(nil))
}

func (LegacySHA1) Equal(claimed, computed string) bool {
	return claimed == computed
}

// HMACSHA256 keys SHA-256 with the secret and compares in constant time.
type HMACSHA256 struct{}

func (HMACSHA256) Name() string { return "hmac-sha256" }

func (HMACSHA256) Digest(canonical []byte, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(canonical)
	return hex.EncodeToString(mac.Sum(nil))
}

func (HMACSHA256) Equal(claimed, computed string) bool {
	return subtle.ConstantTimeCompare([]byte(claimed), []byte(computed)) == 1
}

// StrategyFor resolves a configured algorithm name.
func StrategyFor(name string) (Strategy, error) {
	switch name {
	case "sha1", "":
		return LegacySHA1{}, nil
	case "hmac-sha256":
		return HMACSHA256{}, nil
	default:
		return nil, fmt.Errorf("unknown integrity algorithm %q", name)
	}
}
