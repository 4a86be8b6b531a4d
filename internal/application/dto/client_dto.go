package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateClientRequest body pour POST /api/clients.
type CreateClientRequest struct {
	Nom       string `json:"nom"`
	Telephone string `json:"telephone,omitempty"`
	Email     string `json:"email,omitempty"`
}

// UpdateClientRequest body pour PUT /api/clients/:id.
type UpdateClientRequest struct {
	Nom       *string `json:"nom,omitempty"`
	Telephone *string `json:"telephone,omitempty"`
	Email     *string `json:"email,omitempty"`
}

// ClientResponse représentation API d'un client.
type ClientResponse struct {
	ID           int64     `json:"id"`
	EntrepriseID int64     `json:"entrepriseId"`
	Nom          string    `json:"nom"`
	Telephone    string    `json:"telephone,omitempty"`
	Email        string    `json:"email,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ClientListResponse page de clients.
type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// CreateReservationRequest body pour POST /api/reservations. La caisse qui
// encaissera le montant n'est désignée qu'à la confirmation.
type CreateReservationRequest struct {
	BoutiqueID       int64           `json:"boutiqueId"`
	ClientID         int64           `json:"clientId"`
	ModeleBoutiqueID int64           `json:"modeleBoutiqueId"`
	Quantite         int64           `json:"quantite"`
	Montant          decimal.Decimal `json:"montant"`
}

// ReservationResponse représentation API d'une réservation.
type ReservationResponse struct {
	ID               int64           `json:"id"`
	BoutiqueID       int64           `json:"boutiqueId"`
	ClientID         int64           `json:"clientId"`
	ModeleBoutiqueID int64           `json:"modeleBoutiqueId"`
	Quantite         int64           `json:"quantite"`
	Montant          decimal.Decimal `json:"montant"`
	Statut           string          `json:"statut"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// ReservationListResponse page de réservations.
type ReservationListResponse struct {
	Items []ReservationResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// ConfirmerReservationRequest body pour POST /api/reservations/:id/confirmer.
type ConfirmerReservationRequest struct {
	CaisseID int64 `json:"caisseId"`
}
