package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mkonate/boutik-api/internal/domain/entity"
	"github.com/mkonate/boutik-api/internal/domain/repository"
)

var _ repository.SuccursaleRepository = (*SuccursaleRepo)(nil)

// SuccursaleRepo implémentation de SuccursaleRepository sur PostgreSQL.
type SuccursaleRepo struct {
	q Querier
}

func NewSuccursaleRepository(q Querier) *SuccursaleRepo {
	return &SuccursaleRepo{q: q}
}

func (r *SuccursaleRepo) Create(s *entity.Succursale) error {
	query := `
		INSERT INTO succursales (entreprise_id, nom, adresse, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		s.EntrepriseID, s.Nom, s.Adresse, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("create succursale: %w", err)
	}
	return nil
}

func (r *SuccursaleRepo) GetByID(id int64) (*entity.Succursale, error) {
	query := `
		SELECT id, entreprise_id, nom, adresse, created_at, updated_at
		FROM succursales WHERE id = $1`
	var s entity.Succursale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.EntrepriseID, &s.Nom, &s.Adresse, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get succursale: %w", err)
	}
	return &s, nil
}

func (r *SuccursaleRepo) Update(s *entity.Succursale) error {
	query := `
		UPDATE succursales SET nom = $2, adresse = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, s.ID, s.Nom, s.Adresse, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update succursale: %w", err)
	}
	return nil
}

func (r *SuccursaleRepo) ListByEntreprise(entrepriseID int64, limit, offset int) ([]*entity.Succursale, error) {
	query := `
		SELECT id, entreprise_id, nom, adresse, created_at, updated_at
		FROM succursales WHERE entreprise_id = $1 ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, entrepriseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list succursales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Succursale
	for rows.Next() {
		var s entity.Succursale
		if err := rows.Scan(&s.ID, &s.EntrepriseID, &s.Nom, &s.Adresse, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan succursale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *SuccursaleRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM succursales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete succursale: %w", err)
	}
	return nil
}
