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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implémentation de UserRepository sur PostgreSQL.
type UserRepo struct {
	q Querier
}

func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un utilisateur. Email unique par entreprise.
func (r *UserRepo) Create(u *entity.User) error {
	query := `
		INSERT INTO users (entreprise_id, email, password_hash, nom, role, statut, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		u.EntrepriseID, u.Email, u.PasswordHash, u.Nom, u.Role, u.Statut, u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// GetByID retourne un utilisateur par ID, nil si inexistant.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	query := `
		SELECT id, entreprise_id, email, password_hash, nom, role, statut, created_at, updated_at
		FROM users WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// FindByEmail retourne un utilisateur par email, nil si inexistant.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	query := `
		SELECT id, entreprise_id, email, password_hash, nom, role, statut, created_at, updated_at
		FROM users WHERE email = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email))
}

// GetByEmailAndEntreprise retourne un utilisateur par email au sein d'une
// entreprise, nil si inexistant.
func (r *UserRepo) GetByEmailAndEntreprise(email string, entrepriseID int64) (*entity.User, error) {
	query := `
		SELECT id, entreprise_id, email, password_hash, nom, role, statut, created_at, updated_at
		FROM users WHERE email = $1 AND entreprise_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email, entrepriseID))
}

// ListByEntreprise liste les utilisateurs d'une entreprise.
func (r *UserRepo) ListByEntreprise(entrepriseID int64, limit, offset int) ([]*entity.User, error) {
	query := `
		SELECT id, entreprise_id, email, password_hash, nom, role, statut, created_at, updated_at
		FROM users WHERE entreprise_id = $1 ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, entrepriseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.EntrepriseID, &u.Email, &u.PasswordHash, &u.Nom, &u.Role, &u.Statut, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update met à jour un utilisateur.
func (r *UserRepo) Update(u *entity.User) error {
	query := `
		UPDATE users
		SET email = $2, password_hash = $3, nom = $4, role = $5, statut = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Email, u.PasswordHash, u.Nom, u.Role, u.Statut, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *UserRepo) scanOne(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.EntrepriseID, &u.Email, &u.PasswordHash, &u.Nom, &u.Role, &u.Statut, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
