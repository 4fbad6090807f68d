package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ledger/internal/entity"
)

func TestAuthService_SignAndVerify(t *testing.T) {
	t.Run("Verified transaction carries the signer identity", func(t *testing.T) {
		// Given: a player key and a play transaction
		auth := NewAuthService()
		playerID, key, err := GenerateKey()
		require.NoError(t, err)

		tx := &entity.Transaction{
			Instruction: entity.InstructionPlay,
			GameID:      "game-1",
			Tile:        &entity.Tile{Row: 2, Column: 1},
		}

		// When: the transaction is signed and verified
		token, err := auth.Sign(tx, key)
		require.NoError(t, err)

		verified, err := auth.Verify(token)

		// Then: it comes back intact, attributed to the key's identity
		require.NoError(t, err)
		assert.NotEmpty(t, tx.ID)
		assert.Equal(t, playerID, tx.Signer)
		assert.Equal(t, tx, verified)
	})

	t.Run("Join transaction keeps the claimed player one", func(t *testing.T) {
		auth := NewAuthService()
		playerOne, _, err := GenerateKey()
		require.NoError(t, err)
		_, key, err := GenerateKey()
		require.NoError(t, err)

		tx := &entity.Transaction{
			ID:          "join-1",
			Instruction: entity.InstructionJoinGame,
			GameID:      "game-1",
			PlayerOne:   &playerOne,
		}

		token, err := auth.Sign(tx, key)
		require.NoError(t, err)

		verified, err := auth.Verify(token)
		require.NoError(t, err)
		require.NotNil(t, verified.PlayerOne)
		assert.Equal(t, playerOne, *verified.PlayerOne)
		assert.Equal(t, "join-1", verified.ID)
	})

	t.Run("Sign rejects an incomplete transaction", func(t *testing.T) {
		_, key, err := GenerateKey()
		require.NoError(t, err)

		_, err = NewAuthService().Sign(&entity.Transaction{Instruction: entity.InstructionPlay, GameID: "g"}, key)

		require.ErrorIs(t, err, entity.ErrInvalidTransaction)
	})
}

func TestAuthService_Verify(t *testing.T) {
	victim, _, err := GenerateKey()
	require.NoError(t, err)
	_, attackerKey, err := GenerateKey()
	require.NoError(t, err)

	claims := transactionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       "tx-1",
			Subject:  victim.String(),
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		Instruction: entity.InstructionCreateGame,
	}

	t.Run("Rejects a token signed by a key other than the named signer", func(t *testing.T) {
		// Given: a token naming the victim but signed by the attacker
		token, err := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(attackerKey)
		require.NoError(t, err)

		// When: it is verified
		tx, err := NewAuthService().Verify(token)

		// Then: it is rejected
		require.ErrorIs(t, err, entity.ErrInvalidTransaction)
		assert.Nil(t, tx)
	})

	t.Run("Rejects symmetric signing methods", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = NewAuthService().Verify(token)

		require.ErrorIs(t, err, entity.ErrInvalidTransaction)
	})

	t.Run("Rejects garbage", func(t *testing.T) {
		_, err := NewAuthService().Verify("not-a-token")

		require.ErrorIs(t, err, entity.ErrInvalidTransaction)
	})
}
