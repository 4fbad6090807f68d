package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-ledger/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ledger/internal/entity"
)

type gameRepoDep interface {
	Create(ctx context.Context, id, txID string, game *entity.Game) error
	Update(ctx context.Context, id, txID string, fn func(game *entity.Game) error) (*entity.Game, error)
	Applied(ctx context.Context, txID string) (string, *entity.Game, error)
	GetByID(ctx context.Context, id string) (*entity.Game, error)
}

type ledgerRepoDep interface {
	Exists(ctx context.Context, id string) (bool, error)
	Record(ctx context.Context, receipt *entity.Receipt) error
	ListByGame(ctx context.Context, gameID string) ([]*entity.Receipt, error)
}

// GameManager applies authenticated transactions to game records and keeps their receipts.
type GameManager struct {
	logger *slog.Logger

	gameRepo   gameRepoDep
	ledgerRepo ledgerRepoDep

	newGameID func() string
	now       func() time.Time
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepoDep, ledgerRepo ledgerRepoDep) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo:   gameRepo,
		ledgerRepo: ledgerRepo,

		newGameID: uuid.NewString,
		now:       time.Now,
	}
}

// Process - routes tx to its instruction and records the outcome.
//
// Applied transactions and rejected ones (rule violations, unknown or taken game ids) get a
// receipt and the rejection error is returned next to it. Storage failures get no receipt, so
// the same transaction can be submitted again: a transaction whose move was stored but whose
// receipt was lost is not applied twice, its receipt is rebuilt from the stored game instead.
func (that *GameManager) Process(ctx context.Context, tx *entity.Transaction) (*entity.Receipt, error) {
	log := that.logger.With("method", "Process", "tx", tx.ID, "instruction", tx.Instruction)

	if err := tx.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate transaction: %w", err)
	}

	seen, err := that.ledgerRepo.Exists(ctx, tx.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check ledger: %w", err)
	}

	if seen {
		return nil, fmt.Errorf("%w: %s", apperror.ErrDuplicateTransaction, tx.ID)
	}

	gameID, game, err := that.gameRepo.Applied(ctx, tx.ID)

	var applyErr error

	switch {
	case err == nil:
		log.Warn("transaction was applied without a receipt, recording it", "game", gameID)
	case errors.Is(err, apperror.ErrTransactionNotFound):
		gameID, game, applyErr = that.apply(ctx, tx)
	default:
		return nil, fmt.Errorf("failed to check applied transactions: %w", err)
	}

	if applyErr != nil && !isRejection(applyErr) {
		log.Error("failed to apply transaction", "game", gameID, "error", applyErr)
		return nil, applyErr
	}

	receipt := &entity.Receipt{
		TransactionID: tx.ID,
		Instruction:   tx.Instruction,
		GameID:        gameID,
		Signer:        tx.Signer,
		Code:          apperror.CodeOf(applyErr),
		Game:          game,
		ProcessedAt:   that.now().UTC(),
	}

	if applyErr != nil {
		receipt.Error = applyErr.Error()
	}

	if err = that.ledgerRepo.Record(ctx, receipt); err != nil {
		return nil, fmt.Errorf("failed to record receipt: %w", err)
	}

	if applyErr != nil {
		log.Info("transaction rejected", "game", gameID, "code", receipt.Code, "error", applyErr)
		return receipt, applyErr
	}

	log.Info("transaction applied", "game", gameID, "state", game.State().String(), "turn", game.Turn())

	return receipt, nil
}

func (that *GameManager) apply(ctx context.Context, tx *entity.Transaction) (string, *entity.Game, error) {
	switch tx.Instruction {
	case entity.InstructionCreateGame:
		return that.CreateGame(ctx, tx)
	case entity.InstructionJoinGame:
		game, err := that.JoinGame(ctx, tx)
		return tx.GameID, game, err
	default:
		game, err := that.Play(ctx, tx)
		return tx.GameID, game, err
	}
}

// isRejection - reports whether err is a final answer to the transaction rather than an outage.
func isRejection(err error) bool {
	var appErr *apperror.Error

	return errors.As(err, &appErr) ||
		errors.Is(err, apperror.ErrGameNotFound) ||
		errors.Is(err, apperror.ErrGameAlreadyExists)
}

// CreateGame - allocates a record (tx.GameID, or a fresh id) owned by the signer.
func (that *GameManager) CreateGame(ctx context.Context, tx *entity.Transaction) (string, *entity.Game, error) {
	gameID := tx.GameID
	if gameID == "" {
		gameID = that.newGameID()
	}

	game := &entity.Game{}
	if err := game.Create(tx.Signer); err != nil {
		return gameID, nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err := that.gameRepo.Create(ctx, gameID, tx.ID, game); err != nil {
		return gameID, nil, fmt.Errorf("failed to store game: %w", err)
	}

	return gameID, game, nil
}

// JoinGame - seats the signer as player two of the game created by tx.PlayerOne.
func (that *GameManager) JoinGame(ctx context.Context, tx *entity.Transaction) (*entity.Game, error) {
	game, err := that.gameRepo.Update(ctx, tx.GameID, tx.ID, func(game *entity.Game) error {
		return game.Join(*tx.PlayerOne, tx.Signer)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to join game: %w", err)
	}

	return game, nil
}

// Play - applies the signer's move. Only the current player may move.
func (that *GameManager) Play(ctx context.Context, tx *entity.Transaction) (*entity.Game, error) {
	game, err := that.gameRepo.Update(ctx, tx.GameID, tx.ID, func(game *entity.Game) error {
		if game.IsActive() && game.CurrentPlayer() != tx.Signer {
			return fmt.Errorf("%w: expected %s, got %s", apperror.ErrNotPlayersTurn, game.CurrentPlayer(), tx.Signer)
		}

		return game.Play(*tx.Tile)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed get game by id: %w", err)
	}

	return game, nil
}

// History - the receipts recorded for a game, oldest first.
func (that *GameManager) History(ctx context.Context, id string) ([]*entity.Receipt, error) {
	receipts, err := that.ledgerRepo.ListByGame(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}

	return receipts, nil
}
