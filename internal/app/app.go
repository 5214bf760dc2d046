package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/fplpulse/fplpulse/internal/config"
	"github.com/fplpulse/fplpulse/internal/infrastructure/repository/cache"
	"github.com/fplpulse/fplpulse/internal/infrastructure/repository/postgres"
	"github.com/fplpulse/fplpulse/internal/interfaces/httpapi"
	"github.com/fplpulse/fplpulse/internal/platform/localstore"
	"github.com/fplpulse/fplpulse/internal/platform/logging"
	"github.com/fplpulse/fplpulse/internal/platform/query"
	"github.com/fplpulse/fplpulse/internal/usecase"
	"github.com/fplpulse/fplpulse/internal/viewstate"

	_ "github.com/lib/pq"
)

// NewHTTPServer wires the whole read model: Postgres repositories
// behind the caching decorators, the services, the persisted view
// state, and the HTTP surface. The returned cleanup stops the cache
// poller and closes the database and the local store.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, nil, err
	}

	if cfg.AppEnv == config.EnvDev {
		if err := postgres.BootstrapSeed(context.Background(), db); err != nil {
			logger.Warn("bootstrap seed skipped", "error", err)
		}
	}

	engine, err := query.NewEngine(query.Config{
		Size:         cfg.CacheSize,
		ScanInterval: cfg.CacheScanInterval,
		Workers:      cfg.CacheWorkers,
		ActiveFor:    cfg.CacheActiveFor,
	}, nil, logger)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("build query engine: %w", err)
	}

	cad := cache.Cadences{
		Standard:     cfg.CadenceStandard,
		FixturesLive: cfg.CadenceFixturesLive,
		FixturesIdle: cfg.CadenceFixturesIdle,
		StatsLive:    cfg.CadenceStatsLive,
		StatsIdle:    cfg.CadenceStatsIdle,
		BoardsLive:   cfg.CadenceBoardsLive,
		BoardsIdle:   cfg.CadenceBoardsIdle,
		Feed:         cfg.CadenceFeed,
		Directory:    cfg.CadenceDirectory,
		Refresh:      cfg.CadenceRefresh,
		Meetings:     cfg.CadenceMeetings,
	}

	gameweeks := cache.NewGameweekRepository(postgres.NewGameweekRepository(db), engine, cad)
	teams := cache.NewTeamRepository(postgres.NewTeamRepository(db), engine, cad)
	players := cache.NewPlayerRepository(postgres.NewPlayerRepository(db), engine, cad)
	fixtures := cache.NewFixtureRepository(postgres.NewFixtureRepository(db), engine, cad)
	stats := cache.NewPlayerStatsRepository(postgres.NewPlayerStatsRepository(db), engine, cad)
	picks := cache.NewPickRepository(postgres.NewPickRepository(db), engine, cad)
	chips := cache.NewChipRepository(postgres.NewChipRepository(db), engine, cad)
	managers := cache.NewManagerRepository(postgres.NewManagerRepository(db), engine, cad)
	leagues := cache.NewLeagueRepository(postgres.NewLeagueRepository(db), engine, cad)
	feed := cache.NewFeedRepository(postgres.NewFeedRepository(db), engine, cad)

	store, err := localstore.Open(cfg.LocalStorePath, cfg.LocalStoreDebounce, logger)
	if err != nil {
		engine.Close()
		_ = db.Close()
		return nil, nil, fmt.Errorf("open local store: %w", err)
	}

	cards := viewstate.NewCardGrid(store)
	prefs := viewstate.NewPrefs(store)

	handler := httpapi.NewHandler(
		usecase.NewHomeService(gameweeks, managers, chips, picks, players, leagues, cards),
		usecase.NewGameweekService(gameweeks, fixtures, stats, teams, players, picks),
		usecase.NewDefconService(gameweeks, stats, players, teams, picks),
		usecase.NewFeedService(gameweeks, feed, fixtures, players, teams, picks, chips),
		usecase.NewPerformanceService(gameweeks, managers, players, teams),
		usecase.NewSearchService(players, teams),
		usecase.NewRefreshService(gameweeks, engine.Mode()),
		cards,
		prefs,
		db,
		httpapi.ViewerDefaults{ManagerID: cfg.ViewerManagerID, LeagueID: cfg.ViewerLeagueID},
		logger,
	)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	cleanup := func() {
		engine.Close()
		if err := store.Close(); err != nil {
			logger.Warn("close local store", "error", err)
		}
		if err := db.Close(); err != nil {
			logger.Warn("close database", "error", err)
		}
	}

	return server, cleanup, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	db.SetMaxOpenConns(16)
	db.SetMaxIdleConns(8)
	return db, nil
}
