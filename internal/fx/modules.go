package fx

import (
	"database/sql"

	"highscore-server/internal/config"
	"highscore-server/internal/database"
	"highscore-server/internal/db"
	"highscore-server/internal/integrity"
	"highscore-server/internal/logger"
	"highscore-server/internal/repository"
	"highscore-server/internal/server"
	"highscore-server/internal/service"
	"highscore-server/internal/timestamp"

	"go.uber.org/fx"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

func ProvideNormalizer(cfg *config.Config) *timestamp.Normalizer {
	return timestamp.NewNormalizer(cfg.Location())
}

// The formatter shares the normalizer's zone so stored instants display as
// the wall-clock time that was submitted.
func ProvideFormatter(cfg *config.Config) *timestamp.Formatter {
	return timestamp.NewFormatter(cfg.Location(), cfg.Locale())
}

var Module = fx.Options(
	config.Module,
	logger.Module,
	fx.Provide(database.New),
	fx.Invoke(database.Register),
	fx.Provide(ProvideQueries),
	// repos
	fx.Provide(repository.NewScoreRepository),
	// integrity + time
	fx.Provide(integrity.NewVerifierFromConfig),
	fx.Provide(ProvideNormalizer),
	fx.Provide(ProvideFormatter),
	// svc
	fx.Provide(service.NewSubmissionService),
	fx.Provide(service.NewLeaderboardService),
	// server
	fx.Provide(server.NewHighscoreServer),
)
