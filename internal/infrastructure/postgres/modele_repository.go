package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mkonate/boutik-api/internal/domain/entity"
	"github.com/mkonate/boutik-api/internal/domain/repository"
)

var _ repository.ModeleRepository = (*ModeleRepo)(nil)

// ModeleRepo implémentation de ModeleRepository sur PostgreSQL (utilisable
// avec pool ou tx).
type ModeleRepo struct {
	q Querier
}

// NewModeleRepository construit l'adaptateur. Passer le pool ou une tx
// (Querier).
func NewModeleRepository(q Querier) *ModeleRepo {
	return &ModeleRepo{q: q}
}

func (r *ModeleRepo) Create(m *entity.Modele) error {
	query := `
		INSERT INTO modeles (entreprise_id, libelle, photo, quantite_globale, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		m.EntrepriseID, m.Libelle, m.Photo, m.QuantiteGlobale, m.CreatedAt, m.UpdatedAt,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("create modele: %w", err)
	}
	return nil
}

func (r *ModeleRepo) GetByID(id int64) (*entity.Modele, error) {
	query := `
		SELECT id, entreprise_id, libelle, photo, quantite_globale, created_at, updated_at
		FROM modeles WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate retourne le modèle et verrouille sa ligne (SELECT FOR UPDATE)
// pour la mise à jour de quantite_globale par le registre des mouvements.
func (r *ModeleRepo) GetForUpdate(id int64) (*entity.Modele, error) {
	query := `
		SELECT id, entreprise_id, libelle, photo, quantite_globale, created_at, updated_at
		FROM modeles WHERE id = $1
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

func (r *ModeleRepo) Update(m *entity.Modele) error {
	query := `
		UPDATE modeles SET libelle = $2, photo = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, m.ID, m.Libelle, m.Photo, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update modele: %w", err)
	}
	return nil
}

// UpdateQuantiteGlobale écrit l'agrégat global. Appelé uniquement sous la
// transaction du registre, ligne déjà verrouillée.
func (r *ModeleRepo) UpdateQuantiteGlobale(id int64, quantite int64) error {
	query := `UPDATE modeles SET quantite_globale = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, quantite)
	if err != nil {
		return fmt.Errorf("update quantite globale: %w", err)
	}
	return nil
}

// UpdatePhoto enregistre le chemin de la photo envoyée.
func (r *ModeleRepo) UpdatePhoto(id int64, photo string) error {
	query := `UPDATE modeles SET photo = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, photo)
	if err != nil {
		return fmt.Errorf("update photo: %w", err)
	}
	return nil
}

func (r *ModeleRepo) ListByEntreprise(entrepriseID int64, limit, offset int) ([]*entity.Modele, error) {
	query := `
		SELECT id, entreprise_id, libelle, photo, quantite_globale, created_at, updated_at
		FROM modeles WHERE entreprise_id = $1 ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, entrepriseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list modeles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Modele
	for rows.Next() {
		var m entity.Modele
		if err := rows.Scan(&m.ID, &m.EntrepriseID, &m.Libelle, &m.Photo, &m.QuantiteGlobale, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan modele: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func (r *ModeleRepo) CountByEntreprise(entrepriseID int64) (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM modeles WHERE entreprise_id = $1`, entrepriseID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count modeles: %w", err)
	}
	return total, nil
}

func (r *ModeleRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM modeles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete modele: %w", err)
	}
	return nil
}

func (r *ModeleRepo) scanOne(row pgx.Row) (*entity.Modele, error) {
	var m entity.Modele
	err := row.Scan(&m.ID, &m.EntrepriseID, &m.Libelle, &m.Photo, &m.QuantiteGlobale, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get modele: %w", err)
	}
	return &m, nil
}
