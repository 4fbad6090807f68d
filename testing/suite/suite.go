package suite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-ledger/internal/repository/storage"
)

const (
	redisImage   = "redis"
	redisVersion = "7-alpine"
	redisPort    = "6379/tcp"

	// containerTTL is how long docker keeps a container a crashed test leaked.
	containerTTL = uint(120)
	startTimeout = 2 * time.Minute
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Storage *redis.Client
}

// New - starts a throwaway Redis container for the test and returns a client connected to it.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), startTimeout)
	t.Cleanup(cancel)

	client, err := startRedis(ctx, t)
	if err != nil {
		t.Fatalf("could not start redis: %v", err)
	}

	return ctx, &Suite{
		T:       t,
		Logger:  slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})),
		Storage: client,
	}
}

func startRedis(ctx context.Context, t *testing.T) (*redis.Client, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("docker is unavailable: %w", err)
	}

	pool.MaxWait = startTimeout

	container, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisVersion,
	}, func(host *docker.HostConfig) {
		host.AutoRemove = true
		host.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("container did not start: %w", err)
	}

	t.Cleanup(func() {
		if err := pool.Purge(container); err != nil {
			t.Errorf("could not remove redis container: %v", err)
		}
	})

	_ = container.Expire(containerTTL)

	client := redis.NewClient(&redis.Options{Addr: container.GetHostPort(redisPort)})

	if err = pool.Retry(func() error {
		return client.Ping(ctx).Err()
	}); err != nil {
		return nil, fmt.Errorf("redis never answered: %w", err)
	}

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client, nil
}

// NewLedger - opens an initialized transaction ledger in the test's temp dir.
func NewLedger(t *testing.T) *sql.DB {
	t.Helper()

	ledger, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("could not open ledger: %v", err)
	}

	t.Cleanup(func() {
		_ = ledger.Close()
	})

	if err = ledger.Init(context.Background()); err != nil {
		t.Fatalf("could not init ledger: %v", err)
	}

	return ledger.Connection
}
