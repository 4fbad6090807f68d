package repository

import (
	"crypto/rand"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ledger/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ledger/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ledger/testing/suite"
)

func randomIdentity(t *testing.T) entity.Identity {
	t.Helper()

	var id entity.Identity
	_, err := rand.Read(id[:])
	require.NoError(t, err)

	return id
}

func createdGame(t *testing.T, playerOne entity.Identity) *entity.Game {
	t.Helper()

	game := &entity.Game{}
	require.NoError(t, game.Create(playerOne))

	return game
}

func TestGameRepository_Create(t *testing.T) {
	t.Run("Create_Success", func(t *testing.T) {
		ctx, st := suite.New(t)
		gameRepo := NewGameRepository(st.Storage)

		// Given: a freshly created game
		playerOne := randomIdentity(t)
		game := createdGame(t, playerOne)

		// When: it is stored
		err := gameRepo.Create(ctx, "123", "tx-create", game)

		// Then: it can be read back
		require.NoError(t, err)

		stored, err := gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, game, stored)
	})

	t.Run("Create_AlreadyExists", func(t *testing.T) {
		ctx, st := suite.New(t)
		gameRepo := NewGameRepository(st.Storage)

		// Given: a stored game
		original := createdGame(t, randomIdentity(t))
		require.NoError(t, gameRepo.Create(ctx, "123", "tx-create", original))

		// When: another game is created under the same id
		err := gameRepo.Create(ctx, "123", "tx-create-2", createdGame(t, randomIdentity(t)))

		// Then: it is rejected and the original survives
		require.ErrorIs(t, err, apperror.ErrGameAlreadyExists)

		stored, err := gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, original, stored)
	})
}

func TestGameRepository_Update(t *testing.T) {
	t.Run("Update_AppliesAndPersists", func(t *testing.T) {
		ctx, st := suite.New(t)
		gameRepo := NewGameRepository(st.Storage)

		playerOne, playerTwo := randomIdentity(t), randomIdentity(t)
		require.NoError(t, gameRepo.Create(ctx, "123", "tx-create", createdGame(t, playerOne)))

		// When: player two joins through Update
		updated, err := gameRepo.Update(ctx, "123", "tx-update", func(game *entity.Game) error {
			return game.Join(playerOne, playerTwo)
		})

		// Then: the returned and the stored game are both active
		require.NoError(t, err)
		assert.Equal(t, entity.Active{}, updated.State())

		stored, err := gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, updated, stored)
	})

	t.Run("Update_RuleErrorWritesNothing", func(t *testing.T) {
		ctx, st := suite.New(t)
		gameRepo := NewGameRepository(st.Storage)

		playerOne := randomIdentity(t)
		original := createdGame(t, playerOne)
		require.NoError(t, gameRepo.Create(ctx, "123", "tx-create", original))

		// When: the mutation fails after touching the game
		_, err := gameRepo.Update(ctx, "123", "tx-update", func(game *entity.Game) error {
			_ = game.Join(playerOne, randomIdentity(t))
			return game.Play(entity.Tile{Row: 9, Column: 9})
		})

		// Then: the rule error comes back and the stored game is untouched
		require.ErrorIs(t, err, apperror.ErrTileOutOfBounds)

		stored, err := gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, original, stored)
	})

	t.Run("Update_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)
		gameRepo := NewGameRepository(st.Storage)

		_, err := gameRepo.Update(ctx, "9999999", "tx-update", func(*entity.Game) error {
			return errors.New("must not be called")
		})

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("Update_ConcurrentMovesNeverInterleave", func(t *testing.T) {
		ctx, st := suite.New(t)
		gameRepo := NewGameRepository(st.Storage)

		// Given: an active game
		playerOne, playerTwo := randomIdentity(t), randomIdentity(t)
		require.NoError(t, gameRepo.Create(ctx, "123", "tx-create", createdGame(t, playerOne)))
		_, err := gameRepo.Update(ctx, "123", "tx-update", func(game *entity.Game) error {
			return game.Join(playerOne, playerTwo)
		})
		require.NoError(t, err)

		// When: two writers race for the same cell
		var (
			wg      sync.WaitGroup
			results = make(chan error, 2)
		)

		for range 2 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := gameRepo.Update(ctx, "123", "tx-race", func(game *entity.Game) error {
					return game.Play(entity.Tile{Row: 1, Column: 1})
				})
				results <- err
			}()
		}

		wg.Wait()
		close(results)

		// Then: exactly one wins and the other sees the occupied cell
		var succeeded, occupied int
		for err := range results {
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, apperror.ErrTileAlreadySet):
				occupied++
			}
		}

		assert.Equal(t, 1, succeeded)
		assert.Equal(t, 1, occupied)

		stored, err := gameRepo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, uint8(2), stored.Turn())
	})
}

func TestGameRepository_Applied(t *testing.T) {
	t.Run("Applied_RecordsTheGameAfterEachTransaction", func(t *testing.T) {
		ctx, st := suite.New(t)
		gameRepo := NewGameRepository(st.Storage)

		// Given: a game created and joined by two transactions
		playerOne, playerTwo := randomIdentity(t), randomIdentity(t)
		created := createdGame(t, playerOne)
		require.NoError(t, gameRepo.Create(ctx, "123", "tx-create", created))

		joined, err := gameRepo.Update(ctx, "123", "tx-join", func(game *entity.Game) error {
			return game.Join(playerOne, playerTwo)
		})
		require.NoError(t, err)

		// When: a later move changes the stored record
		_, err = gameRepo.Update(ctx, "123", "tx-play", func(game *entity.Game) error {
			return game.Play(entity.Tile{Row: 0, Column: 0})
		})
		require.NoError(t, err)

		// Then: each transaction still reads back the game it left behind
		gameID, game, err := gameRepo.Applied(ctx, "tx-create")
		require.NoError(t, err)
		assert.Equal(t, "123", gameID)
		assert.Equal(t, created, game)

		_, game, err = gameRepo.Applied(ctx, "tx-join")
		require.NoError(t, err)
		assert.Equal(t, joined, game)
		assert.Equal(t, entity.Empty, game.Board()[0][0])
	})

	t.Run("Applied_RejectedTransactionLeavesNoMarker", func(t *testing.T) {
		ctx, st := suite.New(t)
		gameRepo := NewGameRepository(st.Storage)

		require.NoError(t, gameRepo.Create(ctx, "123", "tx-create", createdGame(t, randomIdentity(t))))

		_, err := gameRepo.Update(ctx, "123", "tx-bad", func(game *entity.Game) error {
			return game.Play(entity.Tile{Row: 0, Column: 0})
		})
		require.ErrorIs(t, err, apperror.ErrGameAlreadyOver)

		err = gameRepo.Create(ctx, "123", "tx-taken", createdGame(t, randomIdentity(t)))
		require.ErrorIs(t, err, apperror.ErrGameAlreadyExists)

		for _, txID := range []string{"tx-bad", "tx-taken", "tx-unknown"} {
			_, _, err = gameRepo.Applied(ctx, txID)
			require.ErrorIs(t, err, apperror.ErrTransactionNotFound, txID)
		}
	})
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)
		gameRepo := NewGameRepository(st.Storage)

		// When: GetByID is called with a non-existent ID
		game, err := gameRepo.GetByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, game)
	})

	t.Run("GetByID_CorruptRecord", func(t *testing.T) {
		ctx, st := suite.New(t)
		gameRepo := NewGameRepository(st.Storage)

		require.NoError(t, st.Storage.Set(ctx, "game:123", []byte{1, 2, 3}, 0).Err())

		_, err := gameRepo.GetByID(ctx, "123")

		require.ErrorIs(t, err, entity.ErrInvalidEncoding)
	})
}

func TestGameRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)
		gameRepo := NewGameRepository(st.Storage)

		require.NoError(t, gameRepo.Create(ctx, "123", "tx-create", createdGame(t, randomIdentity(t))))

		// When: DeleteByID is called with an existing ID
		err := gameRepo.DeleteByID(ctx, "123")

		// Then: the game is gone
		require.NoError(t, err)

		_, err = gameRepo.GetByID(ctx, "123")
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)
		gameRepo := NewGameRepository(st.Storage)

		err := gameRepo.DeleteByID(ctx, "9999999")

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}
