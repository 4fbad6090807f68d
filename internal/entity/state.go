package entity

import "fmt"

// GameState is the phase of a match. Only Won carries data.
type GameState interface {
	fmt.Stringer

	tag() stateTag
}

type stateTag uint8

const (
	tagPending stateTag = iota
	tagActive
	tagTie
	tagWon
	tagCancelled
)

type (
	// Pending - created, waiting for the second player.
	Pending struct{}
	// Active - in progress.
	Active struct{}
	// Tie - board filled without a line.
	Tie struct{}
	// Won - a player completed a line.
	Won struct {
		Winner Identity
	}
	// Cancelled is reserved; no transition produces it yet.
	Cancelled struct{}
)

func (Pending) tag() stateTag   { return tagPending }
func (Active) tag() stateTag    { return tagActive }
func (Tie) tag() stateTag       { return tagTie }
func (Won) tag() stateTag       { return tagWon }
func (Cancelled) tag() stateTag { return tagCancelled }

func (Pending) String() string   { return "Pending" }
func (Active) String() string    { return "Active" }
func (Tie) String() string       { return "Tie" }
func (that Won) String() string  { return "Won by " + that.Winner.String() }
func (Cancelled) String() string { return "Cancelled" }

// IsTerminal - reports whether no operation may mutate a game in this state.
func IsTerminal(state GameState) bool {
	switch state.(type) {
	case Tie, Won, Cancelled:
		return true
	default:
		return false
	}
}
