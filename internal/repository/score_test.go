package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"highscore-server/internal/config"
	"highscore-server/internal/database"
	"highscore-server/internal/db"
	"highscore-server/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newTestRepo(t *testing.T, policy string) *ScoreRepository {
	t.Helper()

	sqlDB, err := database.Open(filepath.Join(t.TempDir(), "scores.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	cfg := &config.Config{DuplicatePolicy: policy}
	return NewScoreRepository(sqlDB, db.New(sqlDB), cfg, zerolog.Nop())
}

func record(initials string, score int64, player string) domain.ScoreRecord {
	return domain.ScoreRecord{
		Initials:    initials,
		Score:       score,
		PlayerID:    player,
		SubmittedAt: time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC),
	}
}

func TestInsert_AssignsIncreasingIDs(t *testing.T) {
	repo := newTestRepo(t, config.DuplicateAllow)
	ctx := context.Background()

	var last int64
	for i := 0; i < 5; i++ {
		id, err := repo.Insert(ctx, record("AAA", int64(i), "p1"))
		require.NoError(t, err)
		assert.Greater(t, id, last)
		last = id
	}
}

func TestInsert_DuplicatesCreateDistinctRows(t *testing.T) {
	repo := newTestRepo(t, config.DuplicateAllow)
	ctx := context.Background()

	first, err := repo.Insert(ctx, record("ABC", 500, "u42"))
	require.NoError(t, err)
	second, err := repo.Insert(ctx, record("ABC", 500, "u42"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	rows, err := repo.ListByPlayer(ctx, "u42", domain.Page{})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestInsert_CollapsePolicyReturnsExistingID(t *testing.T) {
	repo := newTestRepo(t, config.DuplicateCollapse)
	ctx := context.Background()

	first, err := repo.Insert(ctx, record("ABC", 500, "u42"))
	require.NoError(t, err)
	second, err := repo.Insert(ctx, record("ABC", 500, "u42"))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	third, err := repo.Insert(ctx, record("ABC", 501, "u42"))
	require.NoError(t, err)
	assert.NotEqual(t, first, third)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestInsert_FailureLeavesStoreUnchanged(t *testing.T) {
	repo := newTestRepo(t, config.DuplicateAllow)
	ctx := context.Background()

	_, err := repo.Insert(ctx, record("AAA", 10, "p1"))
	require.NoError(t, err)

	// The table's CHECK constraint rejects negative scores.
	_, err = repo.Insert(ctx, record("BBB", -1, "p1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorage)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestInsert_ConcurrentWritersAreSerialized(t *testing.T) {
	repo := newTestRepo(t, config.DuplicateAllow)
	ctx := context.Background()

	const writers = 40
	ids := make([]int64, writers)

	g, gCtx := errgroup.WithContext(ctx)
	for i := 0; i < writers; i++ {
		i := i
		g.Go(func() error {
			id, err := repo.Insert(gCtx, record("CON", int64(i), fmt.Sprintf("p%d", i%4)))
			ids[i] = id
			return err
		})
	}
	require.NoError(t, g.Wait())

	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	for i := 1; i < len(ids); i++ {
		assert.NotEqual(t, ids[i-1], ids[i], "ids must be unique")
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, writers, count)
}

func TestListByPlayer_ExactMatchOrderedByScore(t *testing.T) {
	repo := newTestRepo(t, config.DuplicateAllow)
	ctx := context.Background()

	for _, rec := range []domain.ScoreRecord{
		record("AAA", 100, "u42"),
		record("BBB", 300, "u42"),
		record("CCC", 999, "U42"),
		record("DDD", 999, " u42"),
		record("EEE", 200, "u42"),
	} {
		_, err := repo.Insert(ctx, rec)
		require.NoError(t, err)
	}

	rows, err := repo.ListByPlayer(ctx, "u42", domain.Page{})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []int64{300, 200, 100}, []int64{rows[0].Score, rows[1].Score, rows[2].Score})
	for _, r := range rows {
		assert.Equal(t, "u42", r.PlayerID)
	}
}

func TestListByPlayer_Pagination(t *testing.T) {
	repo := newTestRepo(t, config.DuplicateAllow)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		_, err := repo.Insert(ctx, record("PPP", int64(i*10), "pager"))
		require.NoError(t, err)
	}

	rows, err := repo.ListByPlayer(ctx, "pager", domain.Page{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.EqualValues(t, 40, rows[0].Score)
	assert.EqualValues(t, 30, rows[1].Score)
}

func TestTopN_OrderingLengthAndTieBreak(t *testing.T) {
	repo := newTestRepo(t, config.DuplicateAllow)
	ctx := context.Background()

	scores := []int64{50, 70, 70, 10, 90, 70}
	var ids []int64
	for i, s := range scores {
		id, err := repo.Insert(ctx, record(fmt.Sprintf("T%02d", i), s, "p"))
		require.NoError(t, err)
		ids = append(ids, id)
	}

	top, err := repo.TopN(ctx, 4)
	require.NoError(t, err)
	require.Len(t, top, 4)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Score, top[i].Score)
	}
	// Equal scores keep insertion order.
	assert.Equal(t, []int64{ids[4], ids[1], ids[2], ids[5]}, []int64{top[0].ID, top[1].ID, top[2].ID, top[3].ID})

	all, err := repo.TopN(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, all, len(scores))
}

func TestTopN_RejectsNonPositiveBound(t *testing.T) {
	repo := newTestRepo(t, config.DuplicateAllow)

	_, err := repo.TopN(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTopN_EmptyStore(t *testing.T) {
	repo := newTestRepo(t, config.DuplicateAllow)

	top, err := repo.TopN(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestListByPlayer_PreservesEpochSeconds(t *testing.T) {
	repo := newTestRepo(t, config.DuplicateAllow)
	ctx := context.Background()

	rec := record("ABC", 500, "u42")
	_, err := repo.Insert(ctx, rec)
	require.NoError(t, err)

	rows, err := repo.ListByPlayer(ctx, "u42", domain.Page{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, rec.SubmittedAt.Unix(), rows[0].SubmittedAt.Unix())
}
