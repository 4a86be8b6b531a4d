package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mkonate/boutik-api/internal/domain/entity"
	"github.com/mkonate/boutik-api/internal/domain/repository"
)

var _ repository.AbonnementRepository = (*AbonnementRepo)(nil)

// AbonnementRepo implémentation d'AbonnementRepository sur PostgreSQL.
type AbonnementRepo struct {
	q Querier
}

func NewAbonnementRepository(q Querier) *AbonnementRepo {
	return &AbonnementRepo{q: q}
}

// Create persiste un abonnement.
func (r *AbonnementRepo) Create(a *entity.Abonnement) error {
	query := `
		INSERT INTO abonnements (entreprise_id, plan, actif, date_debut, date_fin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		a.EntrepriseID, a.Plan, a.Actif, a.DateDebut, a.DateFin, a.CreatedAt, a.UpdatedAt,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("create abonnement: %w", err)
	}
	return nil
}

// GetActif retourne l'abonnement actif et non échu d'une entreprise, nil si
// aucun.
func (r *AbonnementRepo) GetActif(entrepriseID int64) (*entity.Abonnement, error) {
	query := `
		SELECT id, entreprise_id, plan, actif, date_debut, date_fin, created_at, updated_at
		FROM abonnements
		WHERE entreprise_id = $1 AND actif AND (date_fin IS NULL OR date_fin > now())
		ORDER BY id DESC LIMIT 1`
	var a entity.Abonnement
	err := r.q.QueryRow(context.Background(), query, entrepriseID).Scan(
		&a.ID, &a.EntrepriseID, &a.Plan, &a.Actif, &a.DateDebut, &a.DateFin, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get abonnement actif: %w", err)
	}
	return &a, nil
}

// HasActif indique si l'entreprise a un abonnement actif et non échu.
// Consulté par le middleware de garde sur chaque écriture.
func (r *AbonnementRepo) HasActif(ctx context.Context, entrepriseID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM abonnements
			WHERE entreprise_id = $1 AND actif AND (date_fin IS NULL OR date_fin > now())
		)`
	var exists bool
	if err := r.q.QueryRow(ctx, query, entrepriseID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check abonnement actif: %w", err)
	}
	return exists, nil
}

// ListByEntreprise liste l'historique des abonnements, du plus récent au plus
// ancien.
func (r *AbonnementRepo) ListByEntreprise(entrepriseID int64, limit, offset int) ([]*entity.Abonnement, error) {
	query := `
		SELECT id, entreprise_id, plan, actif, date_debut, date_fin, created_at, updated_at
		FROM abonnements WHERE entreprise_id = $1
		ORDER BY id DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, entrepriseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list abonnements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Abonnement
	for rows.Next() {
		var a entity.Abonnement
		if err := rows.Scan(&a.ID, &a.EntrepriseID, &a.Plan, &a.Actif, &a.DateDebut, &a.DateFin, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan abonnement: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update met à jour un abonnement (désactivation lors d'une nouvelle
// souscription).
func (r *AbonnementRepo) Update(a *entity.Abonnement) error {
	query := `
		UPDATE abonnements
		SET plan = $2, actif = $3, date_debut = $4, date_fin = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Plan, a.Actif, a.DateDebut, a.DateFin, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update abonnement: %w", err)
	}
	return nil
}
