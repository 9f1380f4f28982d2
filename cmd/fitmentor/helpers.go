package fitmentor

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/saadjs/fitmentor/internal/app"
	"github.com/saadjs/fitmentor/internal/config"
	"github.com/saadjs/fitmentor/internal/db"
	"github.com/saadjs/fitmentor/internal/kv"
	"github.com/saadjs/fitmentor/internal/logging"
	"github.com/saadjs/fitmentor/internal/mentor"
	"github.com/saadjs/fitmentor/internal/service"
)

// newMentor is swapped in tests for a seeded source.
var newMentor = func() *mentor.Mentor { return mentor.New(nil) }

// now is swapped in tests.
var now = time.Now

func withTracker(run func(*service.Tracker) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := logrus.StandardLogger()
	logging.Setup(logger, logging.LoggerSetupParams{LogFileName: cfg.LogFile, LogLevel: cfg.LogLevel})

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	tracker := service.NewTracker(store, service.WithClock(now), service.WithLogger(logger.WithField("backend", cfg.Backend)))
	defer tracker.Close()

	if err := tracker.Initialize(); err != nil {
		return err
	}
	return run(tracker)
}

func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = app.DefaultConfigPath()
		if err != nil {
			return config.Config{}, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	return cfg, nil
}

func openStore(cfg config.Config) (kv.Store, error) {
	switch cfg.Backend {
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return kv.NewRedis(client, kv.DefaultRedisTimeout), nil
	case config.BackendMemory:
		logrus.Warn("memory backend: nothing is kept after this command exits")
		return kv.NewMemory(cfg.QuotaBytes), nil
	default:
		path, err := resolveDBPath(cfg)
		if err != nil {
			return nil, err
		}
		if err := app.EnsureDBDir(path); err != nil {
			return nil, err
		}
		sqldb, err := db.Open(path)
		if err != nil {
			return nil, err
		}
		if err := db.ApplyMigrations(sqldb); err != nil {
			_ = sqldb.Close()
			return nil, err
		}
		return kv.NewSQLite(sqldb, cfg.QuotaBytes), nil
	}
}

func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, nil
	}
	return app.DefaultDBPath()
}

func optionalFloat(changed bool, v float64) *float64 {
	if !changed {
		return nil
	}
	return &v
}

func optionalInt(changed bool, v int) *int {
	if !changed {
		return nil
	}
	return &v
}

func formatAmount(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.1f", v), "0"), ".")
}

func parseDaysArg(value int) (int, error) {
	if value <= 0 {
		return 0, fmt.Errorf("--days must be > 0")
	}
	return value, nil
}
