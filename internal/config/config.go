package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel          string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Redis             Redis  `yaml:"redis"`
	SQLiteStoragePath string `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"./ledger.db"`
	Queue             Queue  `yaml:"queue"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Queue struct {
	Transactions string        `yaml:"transactions" env:"QUEUE_TRANSACTIONS" env-default:"tictactoe:transactions"`
	Receipts     string        `yaml:"receipts" env:"QUEUE_RECEIPTS" env-default:"tictactoe:receipts"`
	PollTimeout  time.Duration `yaml:"poll-timeout" env:"QUEUE_POLL_TIMEOUT" env-default:"5s"`
	ReceiptTTL   time.Duration `yaml:"receipt-ttl" env:"QUEUE_RECEIPT_TTL" env-default:"24h"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
