package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/mkonate/boutik-api/internal/domain/entity"
	"github.com/mkonate/boutik-api/internal/domain/repository"
)

var _ repository.CaisseRepository = (*CaisseRepo)(nil)

// CaisseRepo implémentation de CaisseRepository sur PostgreSQL (utilisable
// avec pool ou tx).
type CaisseRepo struct {
	q Querier
}

// NewCaisseRepository construit l'adaptateur. Passer le pool ou une tx
// (Querier).
func NewCaisseRepository(q Querier) *CaisseRepo {
	return &CaisseRepo{q: q}
}

func (r *CaisseRepo) Create(c *entity.Caisse) error {
	query := `
		INSERT INTO caisses (entreprise_id, boutique_id, nom, solde, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		c.EntrepriseID, c.BoutiqueID, c.Nom, c.Solde, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("create caisse: %w", err)
	}
	return nil
}

func (r *CaisseRepo) GetByID(id int64) (*entity.Caisse, error) {
	query := `
		SELECT id, entreprise_id, boutique_id, nom, solde, created_at, updated_at
		FROM caisses WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate retourne la caisse et verrouille sa ligne. Le solde n'est
// jamais modifié hors de ce verrou.
func (r *CaisseRepo) GetForUpdate(id int64) (*entity.Caisse, error) {
	query := `
		SELECT id, entreprise_id, boutique_id, nom, solde, created_at, updated_at
		FROM caisses WHERE id = $1
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// UpdateSolde écrit le nouveau solde. Appelé uniquement sous transaction,
// ligne déjà verrouillée.
func (r *CaisseRepo) UpdateSolde(id int64, solde decimal.Decimal) error {
	query := `UPDATE caisses SET solde = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, solde)
	if err != nil {
		return fmt.Errorf("update solde: %w", err)
	}
	return nil
}

func (r *CaisseRepo) Update(c *entity.Caisse) error {
	query := `UPDATE caisses SET nom = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.Nom, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update caisse: %w", err)
	}
	return nil
}

func (r *CaisseRepo) ListByEntreprise(entrepriseID int64, limit, offset int) ([]*entity.Caisse, error) {
	query := `
		SELECT id, entreprise_id, boutique_id, nom, solde, created_at, updated_at
		FROM caisses WHERE entreprise_id = $1 ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, entrepriseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list caisses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Caisse
	for rows.Next() {
		var c entity.Caisse
		if err := rows.Scan(&c.ID, &c.EntrepriseID, &c.BoutiqueID, &c.Nom, &c.Solde, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan caisse: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CaisseRepo) CountByEntreprise(entrepriseID int64) (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM caisses WHERE entreprise_id = $1`, entrepriseID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count caisses: %w", err)
	}
	return total, nil
}

func (r *CaisseRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM caisses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete caisse: %w", err)
	}
	return nil
}

// CreateMouvement journalise un mouvement de caisse et renseigne son ID.
func (r *CaisseRepo) CreateMouvement(m *entity.MouvementCaisse) error {
	query := `
		INSERT INTO mouvements_caisse (caisse_id, type, montant, motif, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		m.CaisseID, m.Type, m.Montant, m.Motif, m.CreatedBy, m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("create mouvement caisse: %w", err)
	}
	return nil
}

// ListMouvements liste le journal d'une caisse, du plus récent au plus ancien.
func (r *CaisseRepo) ListMouvements(caisseID int64, limit, offset int) ([]*entity.MouvementCaisse, error) {
	query := `
		SELECT id, caisse_id, type, montant, motif, created_by, created_at
		FROM mouvements_caisse WHERE caisse_id = $1
		ORDER BY id DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, caisseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list mouvements caisse: %w", err)
	}
	defer rows.Close()
	var list []*entity.MouvementCaisse
	for rows.Next() {
		var m entity.MouvementCaisse
		if err := rows.Scan(&m.ID, &m.CaisseID, &m.Type, &m.Montant, &m.Motif, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan mouvement caisse: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func (r *CaisseRepo) CountMouvements(caisseID int64) (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM mouvements_caisse WHERE caisse_id = $1`, caisseID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count mouvements caisse: %w", err)
	}
	return total, nil
}

func (r *CaisseRepo) scanOne(row pgx.Row) (*entity.Caisse, error) {
	var c entity.Caisse
	err := row.Scan(&c.ID, &c.EntrepriseID, &c.BoutiqueID, &c.Nom, &c.Solde, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get caisse: %w", err)
	}
	return &c, nil
}
