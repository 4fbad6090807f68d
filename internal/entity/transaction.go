package entity

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTransaction = errors.New("invalid transaction")

type Instruction string

const (
	InstructionCreateGame Instruction = "create_game"
	InstructionJoinGame   Instruction = "join_game"
	InstructionPlay       Instruction = "play"
)

// Transaction is one authenticated request against a game record.
type Transaction struct {
	ID          string      `json:"id"`
	Instruction Instruction `json:"instruction"`
	GameID      string      `json:"game_id,omitempty"`
	Signer      Identity    `json:"signer"`

	// PlayerOne is the creator the joiner claims to join, set for join_game.
	PlayerOne *Identity `json:"player_one,omitempty"`
	// Tile is set for play.
	Tile *Tile `json:"tile,omitempty"`
}

// Validate - checks the transaction carries what its instruction needs.
func (that *Transaction) Validate() error {
	if that.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidTransaction)
	}

	if that.Signer.IsEmpty() {
		return fmt.Errorf("%w: missing signer", ErrInvalidTransaction)
	}

	switch that.Instruction {
	case InstructionCreateGame:
		return nil
	case InstructionJoinGame:
		if that.PlayerOne == nil {
			return fmt.Errorf("%w: join_game requires player one", ErrInvalidTransaction)
		}
	case InstructionPlay:
		if that.Tile == nil {
			return fmt.Errorf("%w: play requires a tile", ErrInvalidTransaction)
		}
	default:
		return fmt.Errorf("%w: unknown instruction %q", ErrInvalidTransaction, that.Instruction)
	}

	if that.GameID == "" {
		return fmt.Errorf("%w: %s requires a game id", ErrInvalidTransaction, that.Instruction)
	}

	return nil
}

// Receipt is the ledger entry for a processed transaction. Code 0 means it was applied.
type Receipt struct {
	TransactionID string      `json:"transaction_id"`
	Instruction   Instruction `json:"instruction"`
	GameID        string      `json:"game_id"`
	Signer        Identity    `json:"signer"`
	Code          uint32      `json:"code"`
	Error         string      `json:"error,omitempty"`
	Game          *Game       `json:"game,omitempty"`
	ProcessedAt   time.Time   `json:"processed_at"`
}

func (that *Receipt) IsSuccess() bool {
	return that.Code == 0
}
