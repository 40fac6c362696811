package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hearthvale/forgecore/internal/domain"
	"github.com/hearthvale/forgecore/internal/repository"
)

// TxManager begins crafting transactions against the pool
type TxManager struct {
	db *pgxpool.Pool
}

// NewTxManager creates a new TxManager
func NewTxManager(db *pgxpool.Pool) *TxManager {
	return &TxManager{db: db}
}

// CraftingTx implements repository.Tx over a pgx transaction
type CraftingTx struct {
	tx pgx.Tx
}

// BeginTx starts a new crafting transaction
func (m *TxManager) BeginTx(ctx context.Context) (repository.Tx, error) {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &CraftingTx{tx: tx}, nil
}

// GetKnownRecipeForUpdate retrieves a ledger entry with a row lock held for
// the duration of the transaction
func (t *CraftingTx) GetKnownRecipeForUpdate(ctx context.Context, playerID string, recipeID int) (*domain.PlayerKnownRecipe, error) {
	return getKnownRecipe(ctx, t.tx, playerID, recipeID, true)
}

// UpsertKnownRecipe writes a ledger entry inside the transaction
func (t *CraftingTx) UpsertKnownRecipe(ctx context.Context, known *domain.PlayerKnownRecipe) error {
	return upsertKnownRecipe(ctx, t.tx, known)
}

// AppendCraftingLog appends a log entry inside the transaction
func (t *CraftingTx) AppendCraftingLog(ctx context.Context, entry *domain.CraftingLog) error {
	return appendCraftingLog(ctx, t.tx, entry)
}

// Commit commits the transaction
func (t *CraftingTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *CraftingTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
