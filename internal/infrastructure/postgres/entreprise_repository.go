package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mkonate/boutik-api/internal/domain"
	"github.com/mkonate/boutik-api/internal/domain/entity"
	"github.com/mkonate/boutik-api/internal/domain/repository"
)

var _ repository.EntrepriseRepository = (*EntrepriseRepo)(nil)

// EntrepriseRepo implémentation d'EntrepriseRepository sur PostgreSQL.
type EntrepriseRepo struct {
	q Querier
}

func NewEntrepriseRepository(q Querier) *EntrepriseRepo {
	return &EntrepriseRepo{q: q}
}

// Create persiste une entreprise et renseigne son ID.
func (r *EntrepriseRepo) Create(e *entity.Entreprise) error {
	query := `
		INSERT INTO entreprises (nom, email, telephone, adresse, statut, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		e.Nom, e.Email, e.Telephone, e.Adresse, e.Statut, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create entreprise: %w", err)
	}
	return nil
}

// GetByID retourne une entreprise par ID, nil si inexistante.
func (r *EntrepriseRepo) GetByID(id int64) (*entity.Entreprise, error) {
	query := `
		SELECT id, nom, email, telephone, adresse, statut, created_at, updated_at
		FROM entreprises WHERE id = $1`
	var e entity.Entreprise
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Nom, &e.Email, &e.Telephone, &e.Adresse, &e.Statut, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entreprise: %w", err)
	}
	return &e, nil
}

// Update met à jour les champs modifiables d'une entreprise.
func (r *EntrepriseRepo) Update(e *entity.Entreprise) error {
	query := `
		UPDATE entreprises
		SET nom = $2, email = $3, telephone = $4, adresse = $5, statut = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.Nom, e.Email, e.Telephone, e.Adresse, e.Statut, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update entreprise: %w", err)
	}
	return nil
}

// List liste les entreprises par ordre de création.
func (r *EntrepriseRepo) List(limit, offset int) ([]*entity.Entreprise, error) {
	query := `
		SELECT id, nom, email, telephone, adresse, statut, created_at, updated_at
		FROM entreprises ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list entreprises: %w", err)
	}
	defer rows.Close()
	var list []*entity.Entreprise
	for rows.Next() {
		var e entity.Entreprise
		if err := rows.Scan(&e.ID, &e.Nom, &e.Email, &e.Telephone, &e.Adresse, &e.Statut, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan entreprise: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete supprime une entreprise.
func (r *EntrepriseRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM entreprises WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete entreprise: %w", err)
	}
	return nil
}
