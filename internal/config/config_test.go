package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Missing keys fall back to defaults", func(t *testing.T) {
		conf := MustLoad(writeConfig(t, "log-level: debug\n"))

		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, "./ledger.db", conf.SQLiteStoragePath)
		assert.Equal(t, "tictactoe:transactions", conf.Queue.Transactions)
		assert.Equal(t, "tictactoe:receipts", conf.Queue.Receipts)
		assert.Equal(t, 5*time.Second, conf.Queue.PollTimeout)
		assert.Equal(t, 24*time.Hour, conf.Queue.ReceiptTTL)
	})

	t.Run("File values are read", func(t *testing.T) {
		conf := MustLoad(writeConfig(t, `
redis:
  host: redis.internal
  port: "6380"
queue:
  poll-timeout: 2s
`))

		assert.Equal(t, "redis.internal:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, 2*time.Second, conf.Queue.PollTimeout)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		t.Setenv("REDIS_HOST", "from-env")

		conf := MustLoad(writeConfig(t, "redis:\n  host: from-file\n"))

		assert.Equal(t, "from-env", conf.Redis.Host)
	})

	t.Run("Missing file panics", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "absent.yml"))
		})
	})
}
