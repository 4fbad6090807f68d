package entity

import (
	"encoding/hex"
	"errors"
	"fmt"
)

const IdentitySize = 32

var ErrInvalidIdentity = errors.New("invalid identity")

// Identity is a participant's Ed25519 public key.
type Identity [IdentitySize]byte

// EmptyIdentity marks a player slot nobody has taken yet.
var EmptyIdentity Identity

func ParseIdentity(s string) (Identity, error) {
	var id Identity

	raw, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("%w: %w", ErrInvalidIdentity, err)
	}

	if len(raw) != IdentitySize {
		return id, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidIdentity, IdentitySize, len(raw))
	}

	copy(id[:], raw)

	return id, nil
}

func (that Identity) IsEmpty() bool {
	return that == EmptyIdentity
}

func (that Identity) String() string {
	return hex.EncodeToString(that[:])
}

func (that Identity) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Identity) UnmarshalText(text []byte) error {
	id, err := ParseIdentity(string(text))
	if err != nil {
		return err
	}

	*that = id

	return nil
}
