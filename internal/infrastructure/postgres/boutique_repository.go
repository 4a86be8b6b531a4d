package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mkonate/boutik-api/internal/domain/entity"
	"github.com/mkonate/boutik-api/internal/domain/repository"
)

var _ repository.BoutiqueRepository = (*BoutiqueRepo)(nil)

// BoutiqueRepo implémentation de BoutiqueRepository sur PostgreSQL.
type BoutiqueRepo struct {
	q Querier
}

func NewBoutiqueRepository(q Querier) *BoutiqueRepo {
	return &BoutiqueRepo{q: q}
}

func (r *BoutiqueRepo) Create(b *entity.Boutique) error {
	query := `
		INSERT INTO boutiques (entreprise_id, succursale_id, nom, adresse, telephone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		b.EntrepriseID, b.SuccursaleID, b.Nom, b.Adresse, b.Telephone, b.CreatedAt, b.UpdatedAt,
	).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("create boutique: %w", err)
	}
	return nil
}

func (r *BoutiqueRepo) GetByID(id int64) (*entity.Boutique, error) {
	query := `
		SELECT id, entreprise_id, succursale_id, nom, adresse, telephone, created_at, updated_at
		FROM boutiques WHERE id = $1`
	var b entity.Boutique
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.EntrepriseID, &b.SuccursaleID, &b.Nom, &b.Adresse, &b.Telephone, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get boutique: %w", err)
	}
	return &b, nil
}

func (r *BoutiqueRepo) Update(b *entity.Boutique) error {
	query := `
		UPDATE boutiques
		SET succursale_id = $2, nom = $3, adresse = $4, telephone = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.SuccursaleID, b.Nom, b.Adresse, b.Telephone, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update boutique: %w", err)
	}
	return nil
}

func (r *BoutiqueRepo) ListByEntreprise(entrepriseID int64, limit, offset int) ([]*entity.Boutique, error) {
	query := `
		SELECT id, entreprise_id, succursale_id, nom, adresse, telephone, created_at, updated_at
		FROM boutiques WHERE entreprise_id = $1 ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, entrepriseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list boutiques: %w", err)
	}
	defer rows.Close()
	var list []*entity.Boutique
	for rows.Next() {
		var b entity.Boutique
		if err := rows.Scan(&b.ID, &b.EntrepriseID, &b.SuccursaleID, &b.Nom, &b.Adresse, &b.Telephone, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan boutique: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

func (r *BoutiqueRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM boutiques WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete boutique: %w", err)
	}
	return nil
}
