package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Caisse représente une caisse enregistreuse rattachée à une boutique.
// Solde est maintenu par les mouvements de caisse, sous transaction.
type Caisse struct {
	ID           int64
	EntrepriseID int64
	BoutiqueID   int64
	Nom          string
	Solde        decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Sens d'un mouvement de caisse.
const (
	CaisseEncaissement = "Encaissement"
	CaisseDecaissement = "Decaissement"
)

// MouvementCaisse journalise une entrée ou une sortie d'argent d'une caisse.
type MouvementCaisse struct {
	ID        int64
	CaisseID  int64
	Type      string // Encaissement | Decaissement
	Montant   decimal.Decimal
	Motif     string
	CreatedBy int64
	CreatedAt time.Time
}
