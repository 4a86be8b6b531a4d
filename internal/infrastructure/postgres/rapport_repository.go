package postgres

import (
	"context"
	"fmt"

	"github.com/mkonate/boutik-api/internal/domain/repository"
)

var _ repository.RapportRepository = (*RapportRepo)(nil)

// RapportRepo projections de reporting calculées en SQL, en lecture seule.
type RapportRepo struct {
	q Querier
}

func NewRapportRepository(q Querier) *RapportRepo {
	return &RapportRepo{q: q}
}

// TotauxStock agrège le registre des mouvements et l'état du stock en rayon,
// pour une boutique donnée ou pour toute l'entreprise.
func (r *RapportRepo) TotauxStock(ctx context.Context, entrepriseID int64, boutiqueID *int64) (*repository.TotauxStock, error) {
	mouvementsQuery := `
		SELECT
			COALESCE(sum(quantite) FILTER (WHERE type = 'Entree'), 0),
			COALESCE(sum(quantite) FILTER (WHERE type = 'Sortie'), 0)
		FROM mouvements_stock
		WHERE entreprise_id = $1`
	stockQuery := `
		SELECT
			COALESCE(sum(mb.quantite), 0),
			COALESCE(sum(mb.quantite * mb.prix), 0)
		FROM modele_boutiques mb
		JOIN boutiques b ON b.id = mb.boutique_id
		WHERE b.entreprise_id = $1`
	args := []any{entrepriseID}
	if boutiqueID != nil {
		mouvementsQuery += ` AND boutique_id = $2`
		stockQuery += ` AND mb.boutique_id = $2`
		args = append(args, *boutiqueID)
	}

	var t repository.TotauxStock
	if err := r.q.QueryRow(ctx, mouvementsQuery, args...).Scan(&t.TotalEntrees, &t.TotalSorties); err != nil {
		return nil, fmt.Errorf("totaux mouvements: %w", err)
	}
	if err := r.q.QueryRow(ctx, stockQuery, args...).Scan(&t.QuantiteStock, &t.ValeurStock); err != nil {
		return nil, fmt.Errorf("totaux stock: %w", err)
	}
	return &t, nil
}

// SoldesCaisses retourne le solde courant de chaque caisse de l'entreprise.
func (r *RapportRepo) SoldesCaisses(ctx context.Context, entrepriseID int64) ([]*repository.SoldeCaisse, error) {
	query := `
		SELECT id, boutique_id, nom, solde
		FROM caisses WHERE entreprise_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, entrepriseID)
	if err != nil {
		return nil, fmt.Errorf("soldes caisses: %w", err)
	}
	defer rows.Close()
	var list []*repository.SoldeCaisse
	for rows.Next() {
		var s repository.SoldeCaisse
		if err := rows.Scan(&s.CaisseID, &s.BoutiqueID, &s.Nom, &s.Solde); err != nil {
			return nil, fmt.Errorf("scan solde caisse: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
