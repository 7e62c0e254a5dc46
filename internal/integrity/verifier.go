package integrity

import (
	"fmt"

	"highscore-server/internal/config"
	"highscore-server/internal/domain"

	"github.com/rs/zerolog"
)

// Verifier checks that submitted fields were signed with the shared secret.
// It holds no mutable state and is safe for concurrent use.
type Verifier struct {
	secret   []byte
	strategy Strategy
	logger   zerolog.Logger
}

func NewVerifier(secret string, strategy Strategy, logger zerolog.Logger) *Verifier {
	return &Verifier{secret: []byte(secret), strategy: strategy, logger: logger}
}

// NewVerifierFromConfig is the fx constructor.
func NewVerifierFromConfig(cfg *config.Config, logger zerolog.Logger) (*Verifier, error) {
	strategy, err := StrategyFor(cfg.IntegrityAlgorithm)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("algorithm", strategy.Name()).Msg("integrity verifier ready")
	return NewVerifier(cfg.SecretKey, strategy, logger), nil
}

// Sign returns the digest a trusted client would attach to f.
func (v *Verifier) Sign(f Fields) (string, error) {
	return Sign(v.strategy, v.secret, f)
}

// Verify recomputes the digest for f and compares it with claimed.
func (v *Verifier) Verify(f Fields, claimed string) error {
	computed, err := v.Sign(f)
	if err != nil {
		return domain.Validation(err.Error())
	}

	v.logger.Debug().
		Str("received", abbreviate(claimed)).
		Str("recomputed", abbreviate(computed)).
		Msg("comparing digests")

	if !v.strategy.Equal(claimed, computed) {
		return domain.Integrity("Invalid hash")
	}
	return nil
}

// Sign is shared by the server and the client SDK so both canonicalize the
// same way.
func Sign(strategy Strategy, secret []byte, f Fields) (string, error) {
	canonical, err := Canonical(f)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize fields: %w", err)
	}
	return strategy.Digest(canonical, secret), nil
}

func abbreviate(digest string) string {
	if len(digest) <= 8 {
		return digest
	}
	return digest[:8] + "…"
}
