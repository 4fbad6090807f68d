package service

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-ledger/internal/entity"
)

var errClaimsType = errors.New("unexpected claims type")

type AuthService interface {
	Sign(tx *entity.Transaction, key ed25519.PrivateKey) (string, error)
	Verify(token string) (*entity.Transaction, error)
}

// transactionClaims - the signer's identity travels in "sub", the transaction id in "jti".
type transactionClaims struct {
	jwt.RegisteredClaims

	Instruction entity.Instruction `json:"ix"`
	GameID      string             `json:"game,omitempty"`
	PlayerOne   *entity.Identity   `json:"player_one,omitempty"`
	Tile        *entity.Tile       `json:"tile,omitempty"`
}

type authService struct {
	now func() time.Time
}

func NewAuthService() AuthService {
	return &authService{
		now: time.Now,
	}
}

// GenerateKey - creates a new signing key and the identity it proves.
func GenerateKey() (entity.Identity, ed25519.PrivateKey, error) {
	public, private, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return entity.EmptyIdentity, nil, fmt.Errorf("failed to generate key: %w", err)
	}

	var id entity.Identity
	copy(id[:], public)

	return id, private, nil
}

// Sign - stamps tx with the key's identity (and a fresh id when missing) and signs it.
func (that *authService) Sign(tx *entity.Transaction, key ed25519.PrivateKey) (string, error) {
	public, ok := key.Public().(ed25519.PublicKey)
	if !ok || len(public) != entity.IdentitySize {
		return "", fmt.Errorf("%w: bad signing key", entity.ErrInvalidTransaction)
	}

	copy(tx.Signer[:], public)

	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}

	if err := tx.Validate(); err != nil {
		return "", err
	}

	claims := transactionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       tx.ID,
			Subject:  tx.Signer.String(),
			IssuedAt: jwt.NewNumericDate(that.now()),
		},
		Instruction: tx.Instruction,
		GameID:      tx.GameID,
		PlayerOne:   tx.PlayerOne,
		Tile:        tx.Tile,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)

	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	return tokenString, nil
}

// Verify - checks the token was signed by the identity it names and returns the transaction.
func (that *authService) Verify(token string) (*entity.Transaction, error) {
	claims := &transactionClaims{}

	_, err := jwt.ParseWithClaims(token, claims, signerKey,
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrInvalidTransaction, err)
	}

	signer, err := entity.ParseIdentity(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrInvalidTransaction, err)
	}

	tx := &entity.Transaction{
		ID:          claims.ID,
		Instruction: claims.Instruction,
		GameID:      claims.GameID,
		Signer:      signer,
		PlayerOne:   claims.PlayerOne,
		Tile:        claims.Tile,
	}

	if err = tx.Validate(); err != nil {
		return nil, err
	}

	return tx, nil
}

func signerKey(token *jwt.Token) (any, error) {
	claims, ok := token.Claims.(*transactionClaims)
	if !ok {
		return nil, errClaimsType
	}

	signer, err := entity.ParseIdentity(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("bad subject: %w", err)
	}

	return ed25519.PublicKey(signer[:]), nil
}
