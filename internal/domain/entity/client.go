package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client représente un client final d'une entreprise.
type Client struct {
	ID           int64
	EntrepriseID int64
	Nom          string
	Telephone    string
	Email        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Statuts d'une réservation.
const (
	ReservationEnAttente = "EnAttente"
	ReservationConfirmee = "Confirmee"
	ReservationAnnulee   = "Annulee"
)

// Reservation représente la mise de côté d'un article pour un client.
// La confirmation déclenche la sortie de stock et l'encaissement en caisse,
// le tout dans une même transaction.
type Reservation struct {
	ID               int64
	EntrepriseID     int64
	BoutiqueID       int64
	ClientID         int64
	ModeleBoutiqueID int64
	Quantite         int64
	Montant          decimal.Decimal
	Statut           string // EnAttente, Confirmee, Annulee
	CreatedBy        int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
