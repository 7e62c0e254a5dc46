package integrity

import (
	"errors"
	"testing"

	"highscore-server/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

var sample = Fields{
	Initials:  "ABC",
	Score:     500,
	PlayerID:  "u42",
	Timestamp: "15/06/2024 10:30:00",
}

func TestCanonical_KeyOrderAndCompactForm(t *testing.T) {
	got, err := Canonical(sample)
	require.NoError(t, err)
	assert.Equal(t, `{"initials":"ABC","score":500,"uniqueid":"u42","timestamp":"15/06/2024 10:30:00"}`, string(got))
}

func TestCanonical_NoHTMLEscaping(t *testing.T) {
	got, err := Canonical(Fields{Initials: "<&>", Score: 0, PlayerID: "é", Timestamp: "1/1/2024 0:0:0"})
	require.NoError(t, err)
	assert.Equal(t, `{"initials":"<&>","score":0,"uniqueid":"é","timestamp":"1/1/2024 0:0:0"}`, string(got))
}

func TestLegacySHA1_KnownVector(t *testing.T) {
	digest, err := Sign(LegacySHA1{}, []byte(testSecret), sample)
	require.NoError(t, err)
	assert.Equal(t, "994fa628052d45b2d9b3f73499fc8278f1782e9f", digest)

	digest, err = Sign(LegacySHA1{}, []byte(testSecret), Fields{Initials: "<&>", Score: 0, PlayerID: "é", Timestamp: "1/1/2024 0:0:0"})
	require.NoError(t, err)
	assert.Equal(t, "0e0e3b567862616384e2a2e2148cbd2c6cd08ed6", digest)
}

func TestHMACSHA256_KnownVector(t *testing.T) {
	digest, err := Sign(HMACSHA256{}, []byte(testSecret), sample)
	require.NoError(t, err)
	assert.Equal(t, "93fc85b81d6f03c16a275541f6d097f55aea993cc51e94164da27bfde65b5b57", digest)
}

func TestVerify_AcceptsOwnSignature(t *testing.T) {
	for _, strategy := range []Strategy{LegacySHA1{}, HMACSHA256{}} {
		t.Run(strategy.Name(), func(t *testing.T) {
			v := NewVerifier(testSecret, strategy, zerolog.Nop())
			digest, err := v.Sign(sample)
			require.NoError(t, err)
			assert.NoError(t, v.Verify(sample, digest))
		})
	}
}

func TestVerify_AnyFieldChangeInvalidates(t *testing.T) {
	v := NewVerifier(testSecret, LegacySHA1{}, zerolog.Nop())
	digest, err := v.Sign(sample)
	require.NoError(t, err)

	tampered := map[string]Fields{
		"initials":  {Initials: "ABD", Score: 500, PlayerID: "u42", Timestamp: "15/06/2024 10:30:00"},
		"score":     {Initials: "ABC", Score: 501, PlayerID: "u42", Timestamp: "15/06/2024 10:30:00"},
		"player":    {Initials: "ABC", Score: 500, PlayerID: "u43", Timestamp: "15/06/2024 10:30:00"},
		"timestamp": {Initials: "ABC", Score: 500, PlayerID: "u42", Timestamp: "15/06/2024 10:30:01"},
		"spacing":   {Initials: "ABC ", Score: 500, PlayerID: "u42", Timestamp: "15/06/2024 10:30:00"},
	}
	for name, f := range tampered {
		t.Run(name, func(t *testing.T) {
			err := v.Verify(f, digest)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrIntegrity))
		})
	}
}

func TestVerify_WrongSecretRejected(t *testing.T) {
	signer := NewVerifier("other-secret", LegacySHA1{}, zerolog.Nop())
	digest, err := signer.Sign(sample)
	require.NoError(t, err)

	v := NewVerifier(testSecret, LegacySHA1{}, zerolog.Nop())
	assert.ErrorIs(t, v.Verify(sample, digest), domain.ErrIntegrity)
}

func TestVerify_LegacyComparisonIsLiteral(t *testing.T) {
	v := NewVerifier(testSecret, LegacySHA1{}, zerolog.Nop())
	// Uppercase hex is a different string and is rejected.
	assert.ErrorIs(t, v.Verify(sample, "994FA628052D45B2D9B3F73499FC8278F1782E9F"), domain.ErrIntegrity)
}

func TestStrategyFor(t *testing.T) {
	s, err := StrategyFor("sha1")
	require.NoError(t, err)
	assert.Equal(t, "sha1", s.Name())

	s, err = StrategyFor("hmac-sha256")
	require.NoError(t, err)
	assert.Equal(t, "hmac-sha256", s.Name())

	_, err = StrategyFor("md5")
	assert.Error(t, err)
}
