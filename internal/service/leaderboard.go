package service

import (
	"context"
	"strings"

	"highscore-server/internal/constants"
	"highscore-server/internal/domain"
	"highscore-server/internal/repository"
	"highscore-server/internal/timestamp"

	"github.com/rs/zerolog"
)

type LeaderboardService struct {
	repo      *repository.ScoreRepository
	formatter *timestamp.Formatter
	logger    zerolog.Logger
}

func NewLeaderboardService(repo *repository.ScoreRepository, formatter *timestamp.Formatter, logger zerolog.Logger) *LeaderboardService {
	return &LeaderboardService{repo: repo, formatter: formatter, logger: logger}
}

// ScoresForPlayer has no size cap unless page sets one; long-lived players
// can accumulate large histories.
func (s *LeaderboardService) ScoresForPlayer(ctx context.Context, playerID string, page domain.Page) ([]domain.LeaderboardEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if strings.TrimSpace(playerID) == "" {
		return nil, domain.Validation("Missing unique ID")
	}
	if page.Limit < 0 || page.Offset < 0 {
		return nil, domain.Validation("Invalid page bounds")
	}

	records, err := s.repo.ListByPlayer(ctx, playerID, page)
	if err != nil {
		s.logger.Error().Err(err).Str("uniqueid", playerID).Msg("failed to read player scores")
		return nil, err
	}

	s.logger.Debug().Str("uniqueid", playerID).Int("count", len(records)).Msg("player scores read")
	return s.format(records), nil
}

func (s *LeaderboardService) Top10(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	records, err := s.top(ctx, constants.Top10Limit)
	if err != nil {
		return nil, err
	}
	return s.format(records), nil
}

// Top100Raw exposes epoch seconds instead of display strings for machine
// consumers such as the leaderboard page.
func (s *LeaderboardService) Top100Raw(ctx context.Context) ([]domain.RawLeaderboardEntry, error) {
	records, err := s.top(ctx, constants.Top100Limit)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.RawLeaderboardEntry, len(records))
	for i, r := range records {
		entries[i] = domain.RawLeaderboardEntry{
			Initials:    r.Initials,
			Score:       r.Score,
			SubmittedAt: r.SubmittedAt.Unix(),
		}
	}
	return entries, nil
}

func (s *LeaderboardService) Healthy(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()
	return s.repo.Ping(ctx)
}

func (s *LeaderboardService) top(ctx context.Context, n int) ([]domain.ScoreRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	records, err := s.repo.TopN(ctx, n)
	if err != nil {
		s.logger.Error().Err(err).Int("n", n).Msg("failed to read top scores")
		return nil, err
	}
	if len(records) > n {
		records = records[:n]
	}
	return records, nil
}

func (s *LeaderboardService) format(records []domain.ScoreRecord) []domain.LeaderboardEntry {
	entries := make([]domain.LeaderboardEntry, len(records))
	for i, r := range records {
		entries[i] = domain.LeaderboardEntry{
			Initials:         r.Initials,
			Score:            r.Score,
			DisplayTimestamp: s.formatter.Format(r.SubmittedAt.Unix()),
		}
	}
	return entries
}
