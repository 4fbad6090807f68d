package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-ledger/internal/apperror"
)

const BoardSize = 3

// Mark is the content of a board cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

func (that Mark) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// MarkForIndex - maps a player index to the mark that player writes: 0 plays X, 1 plays O.
func MarkForIndex(index int) (Mark, error) {
	switch index {
	case 0:
		return X, nil
	case 1:
		return O, nil
	default:
		return Empty, fmt.Errorf("%w: %d", apperror.ErrInvalidPlayerIndex, index)
	}
}

// Board is indexed [row][column].
type Board [BoardSize][BoardSize]Mark

type Tile struct {
	Row    uint8 `json:"row"`
	Column uint8 `json:"column"`
}

func (that Tile) inBounds() bool {
	return that.Row < BoardSize && that.Column < BoardSize
}

// Result is the outcome of evaluating a board.
type Result uint8

const (
	ResultOngoing Result = iota
	ResultWon
	ResultTie
)

// WinLines are checked in this order: rows top to bottom, columns left to right,
// then the main diagonal and the anti-diagonal.
var WinLines = [8][3]Tile{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// DetermineResult - evaluates the board: a completed line wins, otherwise a full board is a tie.
func DetermineResult(board Board) Result {
	for _, line := range WinLines {
		a := board[line[0].Row][line[0].Column]
		b := board[line[1].Row][line[1].Column]
		c := board[line[2].Row][line[2].Column]

		if a != Empty && a == b && b == c {
			return ResultWon
		}
	}

	// the game goes on while any cell is free
	for _, row := range board {
		for _, cell := range row {
			if cell == Empty {
				return ResultOngoing
			}
		}
	}

	return ResultTie
}

// CurrentPlayerIndex - index of the player to move on the given turn.
// Odd turns belong to player one (index 0), even turns to player two (index 1).
func CurrentPlayerIndex(turn uint8) int {
	return int((turn%2 + 1) % 2)
}

// Game is the full state of one match. The zero value is a freshly allocated, pending record.
type Game struct {
	players [2]Identity
	turn    uint8
	board   Board
	state   GameState
}

// Create - initializes the record for playerOne.
func (that *Game) Create(playerOne Identity) error {
	if that.turn != 0 {
		return fmt.Errorf("%w: turn %d", apperror.ErrGameAlreadyStarted, that.turn)
	}

	that.players = [2]Identity{playerOne, EmptyIdentity}
	that.state = Pending{}

	return nil
}

// Join - seats playerTwo and starts the game. claimedPlayerOne must match the creator.
// A started game is also an invalid state for joining, so that error matches both kinds.
func (that *Game) Join(claimedPlayerOne, playerTwo Identity) error {
	if that.turn != 0 {
		return fmt.Errorf("%w (%w): turn %d", apperror.ErrGameAlreadyStarted, apperror.ErrInvalidState, that.turn)
	}

	if _, ok := that.State().(Pending); !ok {
		return fmt.Errorf("%w: game is not pending", apperror.ErrInvalidState)
	}

	if claimedPlayerOne != that.players[0] {
		return fmt.Errorf("%w: player one mismatch", apperror.ErrInvalidState)
	}

	that.players = [2]Identity{claimedPlayerOne, playerTwo}
	that.state = Active{}
	that.turn = 1

	return nil
}

// Play - writes the current player's mark into tile and advances the game.
func (that *Game) Play(tile Tile) error {
	if !that.IsActive() {
		return fmt.Errorf("%w: state %s", apperror.ErrGameAlreadyOver, that.State())
	}

	if !tile.inBounds() {
		return fmt.Errorf("%w: row %d, column %d", apperror.ErrTileOutOfBounds, tile.Row, tile.Column)
	}

	if that.board[tile.Row][tile.Column] != Empty {
		return fmt.Errorf("%w: row %d, column %d", apperror.ErrTileAlreadySet, tile.Row, tile.Column)
	}

	mark, err := MarkForIndex(CurrentPlayerIndex(that.turn))
	if err != nil {
		return err
	}

	that.board[tile.Row][tile.Column] = mark
	that.updateState()

	// the turn counter freezes on the final move
	if that.IsActive() {
		that.turn++
	}

	return nil
}

func (that *Game) updateState() {
	switch DetermineResult(that.board) {
	case ResultWon:
		that.state = Won{Winner: that.CurrentPlayer()}
	case ResultTie:
		that.state = Tie{}
	case ResultOngoing:
	}
}

func (that *Game) CurrentPlayer() Identity {
	return that.players[CurrentPlayerIndex(that.turn)]
}

// PlayerByIndex - returns the player seated at index i.
func (that *Game) PlayerByIndex(i int) (Identity, error) {
	if i != 0 && i != 1 {
		return EmptyIdentity, fmt.Errorf("%w: %d", apperror.ErrInvalidPlayerIndex, i)
	}

	return that.players[i], nil
}

func (that *Game) Players() [2]Identity {
	return that.players
}

func (that *Game) Turn() uint8 {
	return that.turn
}

func (that *Game) Board() Board {
	return that.board
}

// State - current phase; a record that was never written reads as Pending.
func (that *Game) State() GameState {
	if that.state == nil {
		return Pending{}
	}

	return that.state
}

func (that *Game) IsActive() bool {
	_, ok := that.State().(Active)
	return ok
}

func (that *Game) IsFinished() bool {
	return IsTerminal(that.State())
}

// Winner - the winning identity, if the game was won.
func (that *Game) Winner() (Identity, bool) {
	won, ok := that.State().(Won)
	return won.Winner, ok
}
