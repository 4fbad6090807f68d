package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-ledger/internal/config"
	"github.com/rocketscienceinc/tictactoe-ledger/internal/repository"
	"github.com/rocketscienceinc/tictactoe-ledger/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-ledger/internal/service"
	"github.com/rocketscienceinc/tictactoe-ledger/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-ledger/transport/queue"
)

var (
	ErrAddrNotFound = errors.New("redis address string is empty")
	ErrNoLedgerPath = errors.New("sqlite storage path is empty")
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	if conf.SQLiteStoragePath == "" {
		return ErrNoLedgerPath
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	ledgerStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open ledger: %w", err)
	}

	defer func() {
		if err = ledgerStorage.Close(); err != nil {
			log.Error("could not close ledger", "error", err)
		}
	}()

	if err = ledgerStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init ledger: %w", err)
	}

	gameRepo := repository.NewGameRepository(redisStorage.Connection)
	ledgerRepo := repository.NewLedgerRepository(ledgerStorage.Connection)
	gameManager := usecase.NewGameManager(logger, gameRepo, ledgerRepo)

	consumer := queue.NewConsumer(
		logger,
		redisStorage.Connection,
		queue.Keys{Transactions: conf.Queue.Transactions, Receipts: conf.Queue.Receipts},
		service.NewAuthService(),
		gameManager,
		conf.Queue.PollTimeout,
		conf.Queue.ReceiptTTL,
	)

	log.Info("Starting transaction consumer", "redis", redisAddrString, "ledger", conf.SQLiteStoragePath)

	if err = consumer.Run(ctx); err != nil {
		return fmt.Errorf("transaction consumer error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
