package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mkonate/boutik-api/internal/domain/entity"
	"github.com/mkonate/boutik-api/internal/domain/repository"
)

var _ repository.MouvementStockRepository = (*MouvementStockRepo)(nil)

// MouvementStockRepo implémentation de MouvementStockRepository sur
// PostgreSQL (utilisable avec pool ou tx). Les écritures passent toujours par
// la transaction du TxRunner.
type MouvementStockRepo struct {
	q Querier
}

// NewMouvementStockRepository construit l'adaptateur. Passer le pool ou une
// tx (Querier).
func NewMouvementStockRepository(q Querier) *MouvementStockRepo {
	return &MouvementStockRepo{q: q}
}

// Create persiste l'en-tête d'un mouvement et renseigne son ID.
func (r *MouvementStockRepo) Create(m *entity.MouvementStock) error {
	query := `
		INSERT INTO mouvements_stock (reference, entreprise_id, boutique_id, type, quantite, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		m.Reference, m.EntrepriseID, m.BoutiqueID, m.Type, m.Quantite, m.CreatedBy, m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("create mouvement: %w", err)
	}
	return nil
}

// GetByID retourne un en-tête de mouvement, nil si inexistant.
func (r *MouvementStockRepo) GetByID(id int64) (*entity.MouvementStock, error) {
	query := `
		SELECT id, reference, entreprise_id, boutique_id, type, quantite, created_by, created_at
		FROM mouvements_stock WHERE id = $1`
	var m entity.MouvementStock
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Reference, &m.EntrepriseID, &m.BoutiqueID, &m.Type, &m.Quantite, &m.CreatedBy, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mouvement: %w", err)
	}
	return &m, nil
}

// Update réécrit l'en-tête (boutique et quantité totale après remplacement
// des lignes).
func (r *MouvementStockRepo) Update(m *entity.MouvementStock) error {
	query := `
		UPDATE mouvements_stock SET boutique_id = $2, quantite = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, m.ID, m.BoutiqueID, m.Quantite)
	if err != nil {
		return fmt.Errorf("update mouvement: %w", err)
	}
	return nil
}

// Delete supprime un en-tête. Les lignes sont supprimées au préalable par
// DeleteLignes, dans la même transaction.
func (r *MouvementStockRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM mouvements_stock WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete mouvement: %w", err)
	}
	return nil
}

// ListByBoutique liste l'historique d'une boutique, du plus récent au plus
// ancien.
func (r *MouvementStockRepo) ListByBoutique(boutiqueID int64, limit, offset int) ([]*entity.MouvementStock, error) {
	query := `
		SELECT id, reference, entreprise_id, boutique_id, type, quantite, created_by, created_at
		FROM mouvements_stock WHERE boutique_id = $1
		ORDER BY id DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, boutiqueID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list mouvements: %w", err)
	}
	defer rows.Close()
	var list []*entity.MouvementStock
	for rows.Next() {
		var m entity.MouvementStock
		if err := rows.Scan(&m.ID, &m.Reference, &m.EntrepriseID, &m.BoutiqueID, &m.Type, &m.Quantite, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan mouvement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func (r *MouvementStockRepo) CountByBoutique(boutiqueID int64) (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM mouvements_stock WHERE boutique_id = $1`, boutiqueID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count mouvements: %w", err)
	}
	return total, nil
}

// CreateLigne persiste une ligne de mouvement et renseigne son ID.
func (r *MouvementStockRepo) CreateLigne(l *entity.LigneMouvement) error {
	query := `
		INSERT INTO lignes_mouvement (mouvement_id, modele_boutique_id, quantite, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		l.MouvementID, l.ModeleBoutiqueID, l.Quantite, l.CreatedAt,
	).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("create ligne: %w", err)
	}
	return nil
}

// ListLignes liste les lignes d'un mouvement dans leur ordre d'insertion.
func (r *MouvementStockRepo) ListLignes(mouvementID int64) ([]*entity.LigneMouvement, error) {
	query := `
		SELECT id, mouvement_id, modele_boutique_id, quantite, created_at
		FROM lignes_mouvement WHERE mouvement_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, mouvementID)
	if err != nil {
		return nil, fmt.Errorf("list lignes: %w", err)
	}
	defer rows.Close()
	return r.scanLignes(rows)
}

// DeleteLignes supprime toutes les lignes d'un mouvement (remplacement ou
// suppression de l'en-tête).
func (r *MouvementStockRepo) DeleteLignes(mouvementID int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM lignes_mouvement WHERE mouvement_id = $1`, mouvementID)
	if err != nil {
		return fmt.Errorf("delete lignes: %w", err)
	}
	return nil
}

// ListLignesByModeleBoutique liste les lignes touchant une déclinaison, de la
// plus récente à la plus ancienne.
func (r *MouvementStockRepo) ListLignesByModeleBoutique(modeleBoutiqueID int64, limit, offset int) ([]*entity.LigneMouvement, error) {
	query := `
		SELECT id, mouvement_id, modele_boutique_id, quantite, created_at
		FROM lignes_mouvement WHERE modele_boutique_id = $1
		ORDER BY id DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, modeleBoutiqueID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list lignes par modele boutique: %w", err)
	}
	defer rows.Close()
	return r.scanLignes(rows)
}

func (r *MouvementStockRepo) CountLignesByModeleBoutique(modeleBoutiqueID int64) (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM lignes_mouvement WHERE modele_boutique_id = $1`, modeleBoutiqueID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count lignes: %w", err)
	}
	return total, nil
}

func (r *MouvementStockRepo) scanLignes(rows pgx.Rows) ([]*entity.LigneMouvement, error) {
	var list []*entity.LigneMouvement
	for rows.Next() {
		var l entity.LigneMouvement
		if err := rows.Scan(&l.ID, &l.MouvementID, &l.ModeleBoutiqueID, &l.Quantite, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ligne: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
