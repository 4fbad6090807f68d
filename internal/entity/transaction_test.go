package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	tile := &Tile{Row: 1, Column: 2}

	t.Run("Accepts well-formed transactions", func(t *testing.T) {
		valid := []Transaction{
			{ID: "tx-1", Instruction: InstructionCreateGame, Signer: playerA},
			{ID: "tx-2", Instruction: InstructionJoinGame, Signer: playerB, GameID: "g", PlayerOne: &playerA},
			{ID: "tx-3", Instruction: InstructionPlay, Signer: playerA, GameID: "g", Tile: tile},
		}

		for _, tx := range valid {
			assert.NoError(t, tx.Validate(), "instruction %s", tx.Instruction)
		}
	})

	t.Run("Rejects incomplete transactions", func(t *testing.T) {
		invalid := map[string]Transaction{
			"missing id":        {Instruction: InstructionCreateGame, Signer: playerA},
			"missing signer":    {ID: "tx", Instruction: InstructionCreateGame},
			"unknown":           {ID: "tx", Instruction: "resign", Signer: playerA, GameID: "g"},
			"join without one":  {ID: "tx", Instruction: InstructionJoinGame, Signer: playerB, GameID: "g"},
			"play without tile": {ID: "tx", Instruction: InstructionPlay, Signer: playerA, GameID: "g"},
			"play without game": {ID: "tx", Instruction: InstructionPlay, Signer: playerA, Tile: tile},
			"join without game": {ID: "tx", Instruction: InstructionJoinGame, Signer: playerB, PlayerOne: &playerA},
		}

		for name, tx := range invalid {
			err := tx.Validate()
			require.ErrorIs(t, err, ErrInvalidTransaction, name)
		}
	})
}

func TestParseIdentity(t *testing.T) {
	t.Run("Round-trips the hex form", func(t *testing.T) {
		id, err := ParseIdentity(playerA.String())
		require.NoError(t, err)
		assert.Equal(t, playerA, id)
		assert.False(t, id.IsEmpty())
		assert.True(t, EmptyIdentity.IsEmpty())
	})

	t.Run("Rejects bad input", func(t *testing.T) {
		_, err := ParseIdentity("zz")
		require.ErrorIs(t, err, ErrInvalidIdentity)

		_, err = ParseIdentity("abcd")
		require.ErrorIs(t, err, ErrInvalidIdentity)
	})
}
