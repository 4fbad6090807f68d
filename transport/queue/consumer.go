package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-ledger/internal/entity"
)

type txVerifier interface {
	Verify(token string) (*entity.Transaction, error)
}

type txProcessor interface {
	Process(ctx context.Context, tx *entity.Transaction) (*entity.Receipt, error)
}

// Keys names the Redis list the transactions are pushed to and the prefix (and pub/sub channel)
// receipts are delivered on.
type Keys struct {
	Transactions string
	Receipts     string
}

func (that Keys) receiptKey(txID string) string {
	return that.Receipts + ":" + txID
}

type Consumer struct {
	logger *slog.Logger
	client *redis.Client
	keys   Keys

	verifier  txVerifier
	processor txProcessor

	pollTimeout time.Duration
	receiptTTL  time.Duration
}

func NewConsumer(
	logger *slog.Logger,
	client *redis.Client,
	keys Keys,
	verifier txVerifier,
	processor txProcessor,
	pollTimeout, receiptTTL time.Duration,
) *Consumer {
	return &Consumer{
		logger: logger.With("component", "queue_consumer"),
		client: client,
		keys:   keys,

		verifier:  verifier,
		processor: processor,

		pollTimeout: pollTimeout,
		receiptTTL:  receiptTTL,
	}
}

// Run - processes transactions one at a time until ctx is done.
func (that *Consumer) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	log.Info("consuming transactions", "queue", that.keys.Transactions)

	for ctx.Err() == nil {
		values, err := that.client.BLPop(ctx, that.pollTimeout, that.keys.Transactions).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}

		if err != nil {
			if ctx.Err() != nil {
				break
			}

			return fmt.Errorf("failed to pop transaction: %w", err)
		}

		// values[0] is the list name
		that.handle(ctx, values[1])
	}

	log.Info("consumer stopped")

	return nil
}

func (that *Consumer) handle(ctx context.Context, token string) {
	log := that.logger.With("method", "handle")

	tx, err := that.verifier.Verify(token)
	if err != nil {
		log.Warn("dropping transaction", "error", err)
		return
	}

	receipt, err := that.processor.Process(ctx, tx)
	if receipt == nil {
		log.Error("transaction was not processed", "tx", tx.ID, "error", err)
		return
	}

	if err = that.deliver(ctx, receipt); err != nil {
		log.Error("failed to deliver receipt", "tx", tx.ID, "error", err)
	}
}

// deliver - leaves the receipt for the submitter to pick up and announces it to subscribers.
func (that *Consumer) deliver(ctx context.Context, receipt *entity.Receipt) error {
	data, err := json.Marshal(receipt)
	if err != nil {
		return fmt.Errorf("failed to marshal receipt: %w", err)
	}

	key := that.keys.receiptKey(receipt.TransactionID)

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, data)
		pipe.Expire(ctx, key, that.receiptTTL)
		pipe.Publish(ctx, that.keys.Receipts, data)

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to push receipt: %w", err)
	}

	return nil
}
