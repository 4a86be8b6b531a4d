package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mkonate/boutik-api/internal/domain/entity"
	"github.com/mkonate/boutik-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implémentation de ClientRepository sur PostgreSQL.
type ClientRepo struct {
	q Querier
}

func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

func (r *ClientRepo) Create(c *entity.Client) error {
	query := `
		INSERT INTO clients (entreprise_id, nom, telephone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		c.EntrepriseID, c.Nom, c.Telephone, c.Email, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

func (r *ClientRepo) GetByID(id int64) (*entity.Client, error) {
	query := `
		SELECT id, entreprise_id, nom, telephone, email, created_at, updated_at
		FROM clients WHERE id = $1`
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.EntrepriseID, &c.Nom, &c.Telephone, &c.Email, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

func (r *ClientRepo) Update(c *entity.Client) error {
	query := `
		UPDATE clients SET nom = $2, telephone = $3, email = $4, updated_at = $5 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.Nom, c.Telephone, c.Email, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

func (r *ClientRepo) ListByEntreprise(entrepriseID int64, limit, offset int) ([]*entity.Client, error) {
	query := `
		SELECT id, entreprise_id, nom, telephone, email, created_at, updated_at
		FROM clients WHERE entreprise_id = $1 ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, entrepriseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.EntrepriseID, &c.Nom, &c.Telephone, &c.Email, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *ClientRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
