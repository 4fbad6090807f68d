package entity

import (
	"encoding/json"
	"errors"
	"fmt"
)

// MaximumSize is the largest binary encoding of a Game:
// two identities, the turn byte, nine optional marks and the state tag with its winner.
const MaximumSize = (IdentitySize * 2) + 1 + (BoardSize * BoardSize * (1 + 1)) + (IdentitySize + 1)

const (
	optionNone byte = 0
	optionSome byte = 1

	signX byte = 0
	signO byte = 1
)

var ErrInvalidEncoding = errors.New("invalid game encoding")

func (that *Game) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, MaximumSize)

	buf = append(buf, that.players[0][:]...)
	buf = append(buf, that.players[1][:]...)
	buf = append(buf, that.turn)

	for _, row := range that.board {
		for _, cell := range row {
			switch cell {
			case Empty:
				buf = append(buf, optionNone)
			case X:
				buf = append(buf, optionSome, signX)
			case O:
				buf = append(buf, optionSome, signO)
			default:
				return nil, fmt.Errorf("%w: mark %d", ErrInvalidEncoding, cell)
			}
		}
	}

	state := that.State()
	buf = append(buf, byte(state.tag()))

	if won, ok := state.(Won); ok {
		buf = append(buf, won.Winner[:]...)
	}

	return buf, nil
}

func (that *Game) UnmarshalBinary(data []byte) error {
	dec := &decoder{data: data}

	var decoded Game

	copy(decoded.players[0][:], dec.next(IdentitySize))
	copy(decoded.players[1][:], dec.next(IdentitySize))
	decoded.turn = dec.readByte()

	for row := range decoded.board {
		for column := range decoded.board[row] {
			decoded.board[row][column] = dec.mark()
		}
	}

	decoded.state = dec.state()

	if dec.err != nil {
		return dec.err
	}

	if dec.off != len(data) {
		return fmt.Errorf("%w: %d trailing bytes", ErrInvalidEncoding, len(data)-dec.off)
	}

	if err := decoded.checkConsistency(); err != nil {
		return err
	}

	*that = decoded

	return nil
}

// decoder keeps the first error; reads after it return zero values.
type decoder struct {
	data []byte
	off  int
	err  error
}

func (that *decoder) next(n int) []byte {
	if that.err != nil {
		return nil
	}

	if len(that.data)-that.off < n {
		that.err = fmt.Errorf("%w: truncated at offset %d", ErrInvalidEncoding, that.off)
		return nil
	}

	chunk := that.data[that.off : that.off+n]
	that.off += n

	return chunk
}

func (that *decoder) readByte() byte {
	chunk := that.next(1)
	if chunk == nil {
		return 0
	}

	return chunk[0]
}

func (that *decoder) mark() Mark {
	switch option := that.readByte(); option {
	case optionNone:
		return Empty
	case optionSome:
		switch sign := that.readByte(); sign {
		case signX:
			return X
		case signO:
			return O
		default:
			that.fail("sign", sign)
		}
	default:
		that.fail("option tag", option)
	}

	return Empty
}

func (that *decoder) state() GameState {
	switch tag := stateTag(that.readByte()); tag {
	case tagPending:
		return Pending{}
	case tagActive:
		return Active{}
	case tagTie:
		return Tie{}
	case tagWon:
		var winner Identity
		copy(winner[:], that.next(IdentitySize))
		return Won{Winner: winner}
	case tagCancelled:
		return Cancelled{}
	default:
		that.fail("state tag", byte(tag))
		return nil
	}
}

func (that *decoder) fail(what string, value byte) {
	if that.err == nil {
		that.err = fmt.Errorf("%w: unknown %s %d at offset %d", ErrInvalidEncoding, what, value, that.off-1)
	}
}

// checkConsistency - rejects a decoded record that no sequence of Create, Join and Play produces.
func (that *Game) checkConsistency() error {
	var xMarks, oMarks int

	for _, row := range that.board {
		for _, cell := range row {
			switch cell {
			case X:
				xMarks++
			case O:
				oMarks++
			case Empty:
			}
		}
	}

	// X moves first, so it is never behind O and never more than one ahead
	if xMarks != oMarks && xMarks != oMarks+1 {
		return fmt.Errorf("%w: %d X marks against %d O marks", ErrInvalidEncoding, xMarks, oMarks)
	}

	marks := xMarks + oMarks
	result := DetermineResult(that.board)

	switch state := that.State().(type) {
	case Pending:
		if that.turn != 0 || marks != 0 || !that.players[1].IsEmpty() {
			return fmt.Errorf("%w: pending game with turn %d and %d marks", ErrInvalidEncoding, that.turn, marks)
		}
	case Active:
		if int(that.turn) != marks+1 || result != ResultOngoing {
			return fmt.Errorf("%w: active game with turn %d and %d marks", ErrInvalidEncoding, that.turn, marks)
		}
	case Tie:
		if int(that.turn) != marks || result != ResultTie {
			return fmt.Errorf("%w: tie with turn %d and %d marks", ErrInvalidEncoding, that.turn, marks)
		}
	case Won:
		if int(that.turn) != marks || result != ResultWon {
			return fmt.Errorf("%w: win with turn %d and %d marks", ErrInvalidEncoding, that.turn, marks)
		}

		if state.Winner.IsEmpty() || state.Winner != that.CurrentPlayer() {
			return fmt.Errorf("%w: winner %s did not make the last move", ErrInvalidEncoding, state.Winner)
		}
	case Cancelled:
	}

	return nil
}

type gameJSON struct {
	Players [2]Identity                 `json:"players"`
	Turn    uint8                       `json:"turn"`
	Board   [BoardSize][BoardSize]*Mark `json:"board"`
	State   map[string]json.RawMessage  `json:"state"`
}

type wonJSON struct {
	Winner Identity `json:"winner"`
}

var stateNames = map[stateTag]string{
	tagPending:   "pending",
	tagActive:    "active",
	tagTie:       "tie",
	tagWon:       "won",
	tagCancelled: "cancelled",
}

func (that Mark) MarshalText() ([]byte, error) {
	if that != X && that != O {
		return nil, fmt.Errorf("%w: mark %d", ErrInvalidEncoding, that)
	}

	return []byte(that.String()), nil
}

func (that *Mark) UnmarshalText(text []byte) error {
	switch string(text) {
	case "X":
		*that = X
	case "O":
		*that = O
	default:
		return fmt.Errorf("%w: mark %q", ErrInvalidEncoding, text)
	}

	return nil
}

func (that *Game) MarshalJSON() ([]byte, error) {
	view := gameJSON{
		Players: that.players,
		Turn:    that.turn,
		State:   map[string]json.RawMessage{},
	}

	for row := range that.board {
		for column, cell := range that.board[row] {
			if cell != Empty {
				view.Board[row][column] = &cell
			}
		}
	}

	state := that.State()
	payload := json.RawMessage(`{}`)

	if won, ok := state.(Won); ok {
		encoded, err := json.Marshal(wonJSON{Winner: won.Winner})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal winner: %w", err)
		}

		payload = encoded
	}

	view.State[stateNames[state.tag()]] = payload

	return json.Marshal(view)
}

func (that *Game) UnmarshalJSON(data []byte) error {
	var view gameJSON
	if err := json.Unmarshal(data, &view); err != nil {
		return fmt.Errorf("failed to unmarshal game: %w", err)
	}

	if len(view.State) != 1 {
		return fmt.Errorf("%w: state must have exactly one variant", ErrInvalidEncoding)
	}

	decoded := Game{
		players: view.Players,
		turn:    view.Turn,
	}

	for row := range view.Board {
		for column, cell := range view.Board[row] {
			if cell != nil {
				decoded.board[row][column] = *cell
			}
		}
	}

	for name, payload := range view.State {
		state, err := stateFromJSON(name, payload)
		if err != nil {
			return err
		}

		decoded.state = state
	}

	if err := decoded.checkConsistency(); err != nil {
		return err
	}

	*that = decoded

	return nil
}

func stateFromJSON(name string, payload json.RawMessage) (GameState, error) {
	switch name {
	case stateNames[tagPending]:
		return Pending{}, nil
	case stateNames[tagActive]:
		return Active{}, nil
	case stateNames[tagTie]:
		return Tie{}, nil
	case stateNames[tagCancelled]:
		return Cancelled{}, nil
	case stateNames[tagWon]:
		var won wonJSON
		if err := json.Unmarshal(payload, &won); err != nil {
			return nil, fmt.Errorf("failed to unmarshal winner: %w", err)
		}

		return Won(won), nil
	default:
		return nil, fmt.Errorf("%w: unknown state %q", ErrInvalidEncoding, name)
	}
}
