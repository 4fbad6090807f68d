package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-ledger/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ledger/internal/entity"
)

type LedgerRepository interface {
	Exists(ctx context.Context, id string) (bool, error)
	Record(ctx context.Context, receipt *entity.Receipt) error
	GetByID(ctx context.Context, id string) (*entity.Receipt, error)
	ListByGame(ctx context.Context, gameID string) ([]*entity.Receipt, error)
}

type ledgerRepository struct {
	conn *sql.DB
}

func NewLedgerRepository(conn *sql.DB) LedgerRepository {
	return &ledgerRepository{
		conn: conn,
	}
}

const receiptColumns = `id, instruction, game_id, signer, code, error, game, processed_at`

func (that *ledgerRepository) Exists(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM transactions WHERE id = ?)`

	var exists bool
	if err := that.conn.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("can't check transaction: %w", err)
	}

	return exists, nil
}

// Record - appends a receipt; a transaction id can be recorded only once.
func (that *ledgerRepository) Record(ctx context.Context, receipt *entity.Receipt) error {
	var snapshot []byte

	if receipt.Game != nil {
		data, err := receipt.Game.MarshalBinary()
		if err != nil {
			return fmt.Errorf("can't marshal game snapshot: %w", err)
		}

		snapshot = data
	}

	query := `INSERT INTO transactions (` + receiptColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING`

	result, err := that.conn.ExecContext(ctx, query,
		receipt.TransactionID,
		string(receipt.Instruction),
		receipt.GameID,
		receipt.Signer.String(),
		receipt.Code,
		receipt.Error,
		snapshot,
		receipt.ProcessedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("can't save receipt: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't save receipt: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("%w: %s", apperror.ErrDuplicateTransaction, receipt.TransactionID)
	}

	return nil
}

func (that *ledgerRepository) GetByID(ctx context.Context, id string) (*entity.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM transactions WHERE id = ?`

	receipt, err := scanReceipt(that.conn.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrTransactionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("can't find transaction: %w", err)
	}

	return receipt, nil
}

// ListByGame - receipts of a game in the order they were processed.
func (that *ledgerRepository) ListByGame(ctx context.Context, gameID string) ([]*entity.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM transactions WHERE game_id = ? ORDER BY seq`

	rows, err := that.conn.QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("can't list transactions: %w", err)
	}
	defer rows.Close()

	var receipts []*entity.Receipt

	for rows.Next() {
		receipt, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("can't read transaction: %w", err)
		}

		receipts = append(receipts, receipt)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't list transactions: %w", err)
	}

	return receipts, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReceipt(row scanner) (*entity.Receipt, error) {
	var (
		receipt     entity.Receipt
		instruction string
		signer      string
		snapshot    []byte
		processedAt int64
	)

	err := row.Scan(
		&receipt.TransactionID,
		&instruction,
		&receipt.GameID,
		&signer,
		&receipt.Code,
		&receipt.Error,
		&snapshot,
		&processedAt,
	)
	if err != nil {
		return nil, err //nolint: wrapcheck // callers match sql.ErrNoRows
	}

	receipt.Instruction = entity.Instruction(instruction)
	receipt.ProcessedAt = time.Unix(0, processedAt).UTC()

	if receipt.Signer, err = entity.ParseIdentity(signer); err != nil {
		return nil, fmt.Errorf("bad signer: %w", err)
	}

	if len(snapshot) > 0 {
		receipt.Game = &entity.Game{}
		if err = receipt.Game.UnmarshalBinary(snapshot); err != nil {
			return nil, fmt.Errorf("bad game snapshot: %w", err)
		}
	}

	return &receipt, nil
}
