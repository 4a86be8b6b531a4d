package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mkonate/boutik-api/internal/domain/entity"
	"github.com/mkonate/boutik-api/internal/domain/repository"
)

var _ repository.ReservationRepository = (*ReservationRepo)(nil)

// ReservationRepo implémentation de ReservationRepository sur PostgreSQL
// (utilisable avec pool ou tx).
type ReservationRepo struct {
	q Querier
}

// NewReservationRepository construit l'adaptateur. Passer le pool ou une tx
// (Querier).
func NewReservationRepository(q Querier) *ReservationRepo {
	return &ReservationRepo{q: q}
}

func (r *ReservationRepo) Create(res *entity.Reservation) error {
	query := `
		INSERT INTO reservations (entreprise_id, boutique_id, client_id, modele_boutique_id, quantite, montant, statut, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		res.EntrepriseID, res.BoutiqueID, res.ClientID, res.ModeleBoutiqueID,
		res.Quantite, res.Montant, res.Statut, res.CreatedBy, res.CreatedAt, res.UpdatedAt,
	).Scan(&res.ID)
	if err != nil {
		return fmt.Errorf("create reservation: %w", err)
	}
	return nil
}

func (r *ReservationRepo) GetByID(id int64) (*entity.Reservation, error) {
	query := `
		SELECT id, entreprise_id, boutique_id, client_id, modele_boutique_id, quantite, montant, statut, created_by, created_at, updated_at
		FROM reservations WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate retourne la réservation et verrouille sa ligne pour la
// transition de statut.
func (r *ReservationRepo) GetForUpdate(id int64) (*entity.Reservation, error) {
	query := `
		SELECT id, entreprise_id, boutique_id, client_id, modele_boutique_id, quantite, montant, statut, created_by, created_at, updated_at
		FROM reservations WHERE id = $1
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

func (r *ReservationRepo) Update(res *entity.Reservation) error {
	query := `
		UPDATE reservations SET statut = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, res.ID, res.Statut, res.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}
	return nil
}

func (r *ReservationRepo) ListByEntreprise(entrepriseID int64, limit, offset int) ([]*entity.Reservation, error) {
	query := `
		SELECT id, entreprise_id, boutique_id, client_id, modele_boutique_id, quantite, montant, statut, created_by, created_at, updated_at
		FROM reservations WHERE entreprise_id = $1
		ORDER BY id DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, entrepriseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Reservation
	for rows.Next() {
		var res entity.Reservation
		if err := rows.Scan(&res.ID, &res.EntrepriseID, &res.BoutiqueID, &res.ClientID, &res.ModeleBoutiqueID,
			&res.Quantite, &res.Montant, &res.Statut, &res.CreatedBy, &res.CreatedAt, &res.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		list = append(list, &res)
	}
	return list, rows.Err()
}

func (r *ReservationRepo) CountByEntreprise(entrepriseID int64) (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM reservations WHERE entreprise_id = $1`, entrepriseID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count reservations: %w", err)
	}
	return total, nil
}

func (r *ReservationRepo) scanOne(row pgx.Row) (*entity.Reservation, error) {
	var res entity.Reservation
	err := row.Scan(&res.ID, &res.EntrepriseID, &res.BoutiqueID, &res.ClientID, &res.ModeleBoutiqueID,
		&res.Quantite, &res.Montant, &res.Statut, &res.CreatedBy, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	return &res, nil
}
