package apperror

import "errors"

// CodeUnknown - receipt code for failures that carry no rule code (storage, decoding, etc.).
const CodeUnknown uint32 = 1

// Error - a rule violation with a stable numeric code.
type Error struct {
	Code    uint32
	Name    string
	Message string
}

func (that *Error) Error() string {
	return that.Message
}

var (
	ErrTileOutOfBounds    = &Error{Code: 6000, Name: "TileOutOfBounds", Message: "specified tile is out of bounds"}
	ErrTileAlreadySet     = &Error{Code: 6001, Name: "TileAlreadySet", Message: "specified tile is already set"}
	ErrGameAlreadyOver    = &Error{Code: 6002, Name: "GameAlreadyOver", Message: "game is already over"}
	ErrNotPlayersTurn     = &Error{Code: 6003, Name: "NotPlayersTurn", Message: "it's not your turn"}
	ErrGameAlreadyStarted = &Error{Code: 6004, Name: "GameAlreadyStarted", Message: "game has already started"}
	ErrInvalidState       = &Error{Code: 6005, Name: "InvalidState", Message: "invalid game state"}
	ErrInvalidPlayerIndex = &Error{Code: 6006, Name: "InvalidPlayerIndex", Message: "player index must be 0 or 1"}
)

// Storage and routing failures. They carry no rule code.
var (
	ErrGameNotFound         = errors.New("game not found")
	ErrGameAlreadyExists    = errors.New("game already exists")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrDuplicateTransaction = errors.New("transaction already processed")
)

// CodeOf - returns the code of the rule error wrapped in err, 0 for nil and CodeUnknown otherwise.
func CodeOf(err error) uint32 {
	if err == nil {
		return 0
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	return CodeUnknown
}
