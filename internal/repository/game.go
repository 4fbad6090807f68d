package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-ledger/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ledger/internal/entity"
)

// maxUpdateRetries bounds optimistic-lock retries when another writer touched the record.
const maxUpdateRetries = 8

var ErrUpdateConflict = errors.New("game was modified concurrently")

type GameRepository interface {
	Create(ctx context.Context, id, txID string, game *entity.Game) error
	Update(ctx context.Context, id, txID string, fn func(game *entity.Game) error) (*entity.Game, error)
	Applied(ctx context.Context, txID string) (string, *entity.Game, error)
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbGame struct {
	client *redis.Client
}

func NewGameRepository(client *redis.Client) GameRepository {
	return &dbGame{
		client: client,
	}
}

func gameKey(id string) string {
	return "game:" + id
}

// appliedKey holds the game id a transaction touched and the game right after it.
func appliedKey(txID string) string {
	return "tx:" + txID
}

// Create - stores a new record on behalf of txID; an id that is already in use is rejected.
func (that *dbGame) Create(ctx context.Context, id, txID string, game *entity.Game) error {
	key := gameKey(id)

	data, err := game.MarshalBinary()
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	return that.watch(ctx, id, key, func(tx *redis.Tx) error {
		taken, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return fmt.Errorf("failed to check game: %w", err)
		}

		if taken > 0 {
			return fmt.Errorf("%w: id %s", apperror.ErrGameAlreadyExists, id)
		}

		return commit(ctx, tx, id, txID, data)
	})
}

// Update - runs fn on the stored record and writes the result back atomically, together with
// the applied marker of txID. Nothing is written when fn fails; its error is returned as is.
func (that *dbGame) Update(ctx context.Context, id, txID string, fn func(game *entity.Game) error) (*entity.Game, error) {
	key := gameKey(id)

	var updated *entity.Game

	err := that.watch(ctx, id, key, func(tx *redis.Tx) error {
		game, err := loadGame(ctx, tx, key)
		if err != nil {
			return err
		}

		if err = fn(game); err != nil {
			return err
		}

		data, err := game.MarshalBinary()
		if err != nil {
			return fmt.Errorf("could not marshal game: %w", err)
		}

		if err = commit(ctx, tx, id, txID, data); err != nil {
			return err
		}

		updated = game

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Applied - the game id and post-transaction game of an applied txID.
func (that *dbGame) Applied(ctx context.Context, txID string) (string, *entity.Game, error) {
	fields, err := that.client.HGetAll(ctx, appliedKey(txID)).Result()
	if err != nil {
		return "", nil, fmt.Errorf("failed to get applied transaction: %w", err)
	}

	if len(fields) == 0 {
		return "", nil, apperror.ErrTransactionNotFound
	}

	game := &entity.Game{}
	if err = game.UnmarshalBinary([]byte(fields["game"])); err != nil {
		return "", nil, fmt.Errorf("failed to unmarshal applied game: %w", err)
	}

	return fields["game_id"], game, nil
}

// watch - runs txf under WATCH key, retrying while another writer gets in between.
func (that *dbGame) watch(ctx context.Context, id, key string, txf func(tx *redis.Tx) error) error {
	for range maxUpdateRetries {
		err := that.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}

		return err
	}

	return fmt.Errorf("%w: id %s", ErrUpdateConflict, id)
}

// commit - writes the game and the applied marker of txID in one MULTI.
func commit(ctx context.Context, tx *redis.Tx, id, txID string, data []byte) error {
	_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, gameKey(id), data, 0)
		pipe.HSet(ctx, appliedKey(txID), "game_id", id, "game", data)

		return nil
	})

	return err //nolint: wrapcheck // TxFailedErr must reach the retry loop unwrapped
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	return loadGame(ctx, that.client, gameKey(id))
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, gameKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game by ID: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrGameNotFound
	}

	return nil
}

// getter is satisfied by both *redis.Client and the *redis.Tx of a WATCH.
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func loadGame(ctx context.Context, client getter, key string) (*entity.Game, error) {
	data, err := client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	game := &entity.Game{}
	if err = game.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return game, nil
}
