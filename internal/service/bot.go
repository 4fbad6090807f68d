package service

import (
	"errors"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-ledger/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// BotService picks moves for automated players.
type BotService interface {
	ChooseTile(game *entity.Game) (entity.Tile, error)
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// ChooseTile - a random empty tile of an active game.
func (that *botService) ChooseTile(game *entity.Game) (entity.Tile, error) {
	if !game.IsActive() {
		return entity.Tile{}, ErrNoAvailableMoves
	}

	board := game.Board()
	available := make([]entity.Tile, 0, entity.BoardSize*entity.BoardSize)

	for row := range uint8(entity.BoardSize) {
		for column := range uint8(entity.BoardSize) {
			if board[row][column] == entity.Empty {
				available = append(available, entity.Tile{Row: row, Column: column})
			}
		}
	}

	if len(available) == 0 {
		return entity.Tile{}, ErrNoAvailableMoves
	}

	return available[rand.IntN(len(available))], nil //nolint: gosec // it's ok
}
