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

var _ repository.ModeleBoutiqueRepository = (*ModeleBoutiqueRepo)(nil)

// ModeleBoutiqueRepo implémentation de ModeleBoutiqueRepository sur
// PostgreSQL (utilisable avec pool ou tx).
type ModeleBoutiqueRepo struct {
	q Querier
}

// NewModeleBoutiqueRepository construit l'adaptateur. Passer le pool ou une
// tx (Querier).
func NewModeleBoutiqueRepository(q Querier) *ModeleBoutiqueRepo {
	return &ModeleBoutiqueRepo{q: q}
}

// Create persiste une déclinaison boutique. Un même modèle ne peut avoir
// qu'une déclinaison par boutique et par taille.
func (r *ModeleBoutiqueRepo) Create(mb *entity.ModeleBoutique) error {
	query := `
		INSERT INTO modele_boutiques (modele_id, boutique_id, prix, taille, quantite, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		mb.ModeleID, mb.BoutiqueID, mb.Prix, mb.Taille, mb.Quantite, mb.CreatedAt, mb.UpdatedAt,
	).Scan(&mb.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create modele boutique: %w", err)
	}
	return nil
}

func (r *ModeleBoutiqueRepo) GetByID(id int64) (*entity.ModeleBoutique, error) {
	query := `
		SELECT id, modele_id, boutique_id, prix, taille, quantite, created_at, updated_at
		FROM modele_boutiques WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate retourne la déclinaison et verrouille sa ligne (SELECT FOR
// UPDATE). Le registre des mouvements verrouille toujours la déclinaison
// avant le modèle.
func (r *ModeleBoutiqueRepo) GetForUpdate(id int64) (*entity.ModeleBoutique, error) {
	query := `
		SELECT id, modele_id, boutique_id, prix, taille, quantite, created_at, updated_at
		FROM modele_boutiques WHERE id = $1
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

func (r *ModeleBoutiqueRepo) Update(mb *entity.ModeleBoutique) error {
	query := `
		UPDATE modele_boutiques SET prix = $2, taille = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, mb.ID, mb.Prix, mb.Taille, mb.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update modele boutique: %w", err)
	}
	return nil
}

// UpdateQuantite écrit la quantité en rayon. Appelé uniquement sous la
// transaction du registre, ligne déjà verrouillée.
func (r *ModeleBoutiqueRepo) UpdateQuantite(id int64, quantite int64) error {
	query := `UPDATE modele_boutiques SET quantite = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, quantite)
	if err != nil {
		return fmt.Errorf("update quantite: %w", err)
	}
	return nil
}

func (r *ModeleBoutiqueRepo) ListByBoutique(boutiqueID int64, limit, offset int) ([]*entity.ModeleBoutique, error) {
	query := `
		SELECT id, modele_id, boutique_id, prix, taille, quantite, created_at, updated_at
		FROM modele_boutiques WHERE boutique_id = $1 ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, boutiqueID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list modele boutiques: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *ModeleBoutiqueRepo) ListByModele(modeleID int64) ([]*entity.ModeleBoutique, error) {
	query := `
		SELECT id, modele_id, boutique_id, prix, taille, quantite, created_at, updated_at
		FROM modele_boutiques WHERE modele_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, modeleID)
	if err != nil {
		return nil, fmt.Errorf("list by modele: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *ModeleBoutiqueRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM modele_boutiques WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete modele boutique: %w", err)
	}
	return nil
}

func (r *ModeleBoutiqueRepo) scanOne(row pgx.Row) (*entity.ModeleBoutique, error) {
	var mb entity.ModeleBoutique
	err := row.Scan(&mb.ID, &mb.ModeleID, &mb.BoutiqueID, &mb.Prix, &mb.Taille, &mb.Quantite, &mb.CreatedAt, &mb.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get modele boutique: %w", err)
	}
	return &mb, nil
}

func (r *ModeleBoutiqueRepo) scanAll(rows pgx.Rows) ([]*entity.ModeleBoutique, error) {
	var list []*entity.ModeleBoutique
	for rows.Next() {
		var mb entity.ModeleBoutique
		if err := rows.Scan(&mb.ID, &mb.ModeleID, &mb.BoutiqueID, &mb.Prix, &mb.Taille, &mb.Quantite, &mb.CreatedAt, &mb.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan modele boutique: %w", err)
		}
		list = append(list, &mb)
	}
	return list, rows.Err()
}
