package usecase

import (
	"context"

	"github.com/mkonate/boutik-api/internal/domain/repository"
)

// CaisseTxRunner exécute une fonction dans une transaction limitée à la
// caisse : mise à jour du solde et journalisation du mouvement, atomiques.
type CaisseTxRunner interface {
	RunCaisse(ctx context.Context, fn func(caisseRepo repository.CaisseRepository) error) error
}

// ReservationTxRunner exécute la confirmation d'une réservation dans une
// transaction unique : sortie de stock, encaissement et transition de statut
// tiennent ou tombent ensemble.
type ReservationTxRunner interface {
	RunReservation(ctx context.Context, fn func(
		movRepo repository.MouvementStockRepository,
		mbRepo repository.ModeleBoutiqueRepository,
		modeleRepo repository.ModeleRepository,
		reservationRepo repository.ReservationRepository,
		caisseRepo repository.CaisseRepository,
	) error) error
}
