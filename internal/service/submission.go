package service

import (
	"context"
	"strings"

	"highscore-server/internal/constants"
	"highscore-server/internal/domain"
	"highscore-server/internal/integrity"
	"highscore-server/internal/repository"
	"highscore-server/internal/timestamp"

	"github.com/rs/zerolog"
)

// SubmissionService runs validate, verify, normalize, insert. A submission
// either persists fully or fails with a domain error.
type SubmissionService struct {
	verifier   *integrity.Verifier
	normalizer *timestamp.Normalizer
	repo       *repository.ScoreRepository
	logger     zerolog.Logger
}

func NewSubmissionService(verifier *integrity.Verifier, normalizer *timestamp.Normalizer, repo *repository.ScoreRepository, logger zerolog.Logger) *SubmissionService {
	return &SubmissionService{verifier: verifier, normalizer: normalizer, repo: repo, logger: logger}
}

func (s *SubmissionService) Submit(ctx context.Context, sub domain.Submission) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if err := validate(sub); err != nil {
		s.logger.Debug().Err(err).Msg("submission rejected")
		return 0, err
	}

	fields := integrity.Fields{
		Initials:  sub.Initials,
		Score:     sub.Score,
		PlayerID:  sub.PlayerID,
		Timestamp: sub.TimestampText,
	}
	if err := s.verifier.Verify(fields, sub.Digest); err != nil {
		s.logger.Warn().Str("uniqueid", sub.PlayerID).Msg("digest mismatch")
		return 0, err
	}

	submittedAt, err := s.normalizer.Parse(sub.TimestampText)
	if err != nil {
		s.logger.Debug().Str("timestamp", sub.TimestampText).Msg("timestamp rejected")
		return 0, err
	}

	id, err := s.repo.Insert(ctx, domain.ScoreRecord{
		Initials:    sub.Initials,
		Score:       sub.Score,
		PlayerID:    sub.PlayerID,
		SubmittedAt: submittedAt,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("uniqueid", sub.PlayerID).Msg("failed to insert score")
		return 0, err
	}

	s.logger.Info().
		Int64("id", id).
		Str("uniqueid", sub.PlayerID).
		Str("initials", sub.Initials).
		Int64("score", sub.Score).
		Msg("high score submitted")
	return id, nil
}

func validate(sub domain.Submission) error {
	switch {
	case strings.TrimSpace(sub.Initials) == "":
		return domain.Validation("Invalid or missing 'initials'")
	case sub.Score < 0:
		return domain.Validation("Invalid or missing 'score'")
	case strings.TrimSpace(sub.PlayerID) == "":
		return domain.Validation("Invalid or missing 'uniqueid'")
	case strings.TrimSpace(sub.TimestampText) == "":
		return domain.Validation("Invalid or missing 'timestamp'")
	case strings.TrimSpace(sub.Digest) == "":
		return domain.Validation("Invalid or missing 'hash'")
	}
	return nil
}
