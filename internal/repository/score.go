package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"highscore-server/internal/config"
	"highscore-server/internal/db"
	"highscore-server/internal/domain"

	"github.com/rs/zerolog"
)

// ScoreRepository is the append-only score table. Writers are serialized
// in-process and by SQLite's write lock; each insert is one transaction.
// Results are ordered by score descending, ties by insertion order.
type ScoreRepository struct {
	queries  *db.Queries
	db       *sql.DB
	collapse bool
	writeMu  sync.Mutex
	logger   zerolog.Logger
}

func NewScoreRepository(sqlDB *sql.DB, queries *db.Queries, cfg *config.Config, logger zerolog.Logger) *ScoreRepository {
	return &ScoreRepository{
		queries:  queries,
		db:       sqlDB,
		collapse: cfg.DuplicatePolicy == config.DuplicateCollapse,
		logger:   logger,
	}
}

// Insert appends rec and returns its id. Under the collapse policy an
// identical earlier row's id is returned instead and nothing is written.
func (r *ScoreRepository) Insert(ctx context.Context, rec domain.ScoreRecord) (int64, error) {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, domain.Storage("failed to store score", fmt.Errorf("failed to begin transaction: %w", err))
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	epoch := rec.SubmittedAt.Unix()

	if r.collapse {
		id, err := qtx.FindDuplicateScore(ctx, db.FindDuplicateScoreParams{
			Initials:  rec.Initials,
			Score:     rec.Score,
			Uniqueid:  rec.PlayerID,
			Timestamp: epoch,
		})
		switch {
		case err == nil:
			r.logger.Debug().Int64("id", id).Str("uniqueid", rec.PlayerID).Msg("duplicate submission collapsed")
			return id, nil
		case !errors.Is(err, sql.ErrNoRows):
			return 0, domain.Storage("failed to store score", fmt.Errorf("failed to check duplicate: %w", err))
		}
	}

	id, err := qtx.InsertScore(ctx, db.InsertScoreParams{
		Initials:  rec.Initials,
		Score:     rec.Score,
		Uniqueid:  rec.PlayerID,
		Timestamp: epoch,
	})
	if err != nil {
		return 0, domain.Storage("failed to store score", fmt.Errorf("failed to insert score: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return 0, domain.Storage("failed to store score", fmt.Errorf("failed to commit score: %w", err))
	}

	r.logger.Debug().Int64("id", id).Str("uniqueid", rec.PlayerID).Int64("score", rec.Score).Msg("score stored")
	return id, nil
}

// ListByPlayer returns every score for playerID, compared exactly. A zero
// page limit returns the full history.
func (r *ScoreRepository) ListByPlayer(ctx context.Context, playerID string, page domain.Page) ([]domain.ScoreRecord, error) {
	var (
		rows []db.Score
		err  error
	)
	if page.Limit > 0 {
		rows, err = r.queries.ListScoresByUniqueIDPage(ctx, db.ListScoresByUniqueIDPageParams{
			Uniqueid: playerID,
			Limit:    int64(page.Limit),
			Offset:   int64(page.Offset),
		})
	} else {
		rows, err = r.queries.ListScoresByUniqueID(ctx, playerID)
	}
	if err != nil {
		return nil, domain.Storage("failed to read scores", fmt.Errorf("failed to list scores for player: %w", err))
	}
	return toRecords(rows), nil
}

// TopN returns at most n scores across all players.
func (r *ScoreRepository) TopN(ctx context.Context, n int) ([]domain.ScoreRecord, error) {
	if n <= 0 {
		return nil, domain.Validation(fmt.Sprintf("top-n bound must be positive, got %d", n))
	}
	rows, err := r.queries.ListTopScores(ctx, int64(n))
	if err != nil {
		return nil, domain.Storage("failed to read scores", fmt.Errorf("failed to list top scores: %w", err))
	}
	return toRecords(rows), nil
}

func (r *ScoreRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.queries.CountScores(ctx)
	if err != nil {
		return 0, domain.Storage("failed to read scores", fmt.Errorf("failed to count scores: %w", err))
	}
	return count, nil
}

func (r *ScoreRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return domain.Storage("database unavailable", err)
	}
	return nil
}

func toRecords(rows []db.Score) []domain.ScoreRecord {
	result := make([]domain.ScoreRecord, len(rows))
	for i, row := range rows {
		result[i] = domain.ScoreRecord{
			ID:          row.ID,
			Initials:    row.Initials,
			Score:       row.Score,
			PlayerID:    row.Uniqueid,
			SubmittedAt: time.Unix(row.Timestamp, 0),
		}
	}
	return result
}
