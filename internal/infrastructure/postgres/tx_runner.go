package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkonate/boutik-api/internal/application/stock"
	"github.com/mkonate/boutik-api/internal/application/usecase"
	"github.com/mkonate/boutik-api/internal/domain/repository"
)

// Vérifications à la compilation des ports transactionnels.
var _ stock.TxRunner = (*TxRunner)(nil)
var _ usecase.ReservationTxRunner = (*TxRunner)(nil)
var _ usecase.CaisseTxRunner = (*TxRunner)(nil)

// TxRunner exécute des callbacks à l'intérieur d'une transaction PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construit le runner sur le pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run ouvre une transaction, exécute fn avec des repos liés à la tx, puis
// Commit ou Rollback. Utilisé par le registre des mouvements de stock.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MouvementStockRepository,
	mbRepo repository.ModeleBoutiqueRepository,
	modeleRepo repository.ModeleRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewMouvementStockRepository(tx)
	mbRepo := NewModeleBoutiqueRepository(tx)
	modeleRepo := NewModeleRepository(tx)

	if err := fn(movRepo, mbRepo, modeleRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunReservation ouvre une transaction couvrant stock, réservation et caisse
// (confirmation de réservation).
func (r *TxRunner) RunReservation(ctx context.Context, fn func(
	movRepo repository.MouvementStockRepository,
	mbRepo repository.ModeleBoutiqueRepository,
	modeleRepo repository.ModeleRepository,
	reservationRepo repository.ReservationRepository,
	caisseRepo repository.CaisseRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewMouvementStockRepository(tx)
	mbRepo := NewModeleBoutiqueRepository(tx)
	modeleRepo := NewModeleRepository(tx)
	reservationRepo := NewReservationRepository(tx)
	caisseRepo := NewCaisseRepository(tx)

	if err := fn(movRepo, mbRepo, modeleRepo, reservationRepo, caisseRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCaisse ouvre une transaction limitée à la caisse (mouvement manuel).
func (r *TxRunner) RunCaisse(ctx context.Context, fn func(caisseRepo repository.CaisseRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCaisseRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
