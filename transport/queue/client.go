package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-ledger/internal/entity"
)

var ErrReceiptTimeout = errors.New("no receipt before timeout")

// Client submits signed transactions and collects their receipts.
type Client struct {
	client *redis.Client
	keys   Keys
}

func NewClient(client *redis.Client, keys Keys) *Client {
	return &Client{
		client: client,
		keys:   keys,
	}
}

// Submit - queues a signed transaction token.
func (that *Client) Submit(ctx context.Context, token string) error {
	if err := that.client.RPush(ctx, that.keys.Transactions, token).Err(); err != nil {
		return fmt.Errorf("failed to submit transaction: %w", err)
	}

	return nil
}

// AwaitReceipt - blocks until the receipt of txID arrives, timeout passes, or ctx is done.
func (that *Client) AwaitReceipt(ctx context.Context, txID string, timeout time.Duration) (*entity.Receipt, error) {
	values, err := that.client.BLPop(ctx, timeout, that.keys.receiptKey(txID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrReceiptTimeout, txID)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to wait for receipt: %w", err)
	}

	return decodeReceipt(values[1])
}

// Watch - streams every delivered receipt until ctx is done.
func (that *Client) Watch(ctx context.Context) (<-chan *entity.Receipt, error) {
	sub := that.client.Subscribe(ctx, that.keys.Receipts)

	// wait for the subscription to be confirmed so no receipt published afterwards is missed
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("failed to subscribe to receipts: %w", err)
	}

	receipts := make(chan *entity.Receipt)

	go func() {
		defer close(receipts)
		defer sub.Close()

		messages := sub.Channel()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}

				receipt, err := decodeReceipt(msg.Payload)
				if err != nil {
					continue
				}

				select {
				case receipts <- receipt:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return receipts, nil
}

func decodeReceipt(data string) (*entity.Receipt, error) {
	var receipt entity.Receipt
	if err := json.Unmarshal([]byte(data), &receipt); err != nil {
		return nil, fmt.Errorf("failed to unmarshal receipt: %w", err)
	}

	return &receipt, nil
}
