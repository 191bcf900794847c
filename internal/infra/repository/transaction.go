package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bk376/fuelflow-pos/internal/domain/transaction"
	"github.com/bk376/fuelflow-pos/internal/infra"
)

type TransactionRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewTransactionRepository(pool *pgxpool.Pool, logger *slog.Logger) *TransactionRepository {
	return &TransactionRepository{pool: pool, logger: logger}
}

const insertTransaction = `
INSERT INTO transactions (id, subtotal, tax_amount, total_amount, created_at)
VALUES ($1, $2, $3, $4, $5)`

const insertTransactionItem = `
INSERT INTO transaction_items
	(id, transaction_id, product_id, sale_id, name, unit_price, quantity, is_fuel, line_total)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

// Create persists the finalized transaction and its lines atomically.
func (r *TransactionRepository) Create(ctx context.Context, txn *transaction.Transaction) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to begin transaction", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && rollbackErr != pgx.ErrTxClosed {
			r.logger.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	_, err = tx.Exec(ctx, insertTransaction,
		txn.ID(), txn.Subtotal(), txn.TaxAmount(), txn.TotalAmount(), txn.CreatedAt())
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to insert transaction", err)
	}

	for _, line := range txn.Lines() {
		_, err = tx.Exec(ctx, insertTransactionItem,
			uuid.New(), txn.ID(), line.ProductID, line.SaleID,
			line.Name, line.UnitPrice, line.Quantity, line.IsFuel, line.LineTotal)
		if err != nil {
			return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to insert transaction item", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to commit transaction", err)
	}
	return nil
}
