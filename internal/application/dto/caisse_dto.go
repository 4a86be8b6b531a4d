package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCaisseRequest body pour POST /api/caisses.
type CreateCaisseRequest struct {
	BoutiqueID int64  `json:"boutiqueId"`
	Nom        string `json:"nom"`
}

// CaisseResponse représentation API d'une caisse.
type CaisseResponse struct {
	ID         int64           `json:"id"`
	BoutiqueID int64           `json:"boutiqueId"`
	Nom        string          `json:"nom"`
	Solde      decimal.Decimal `json:"solde"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// CaisseListResponse page de caisses.
type CaisseListResponse struct {
	Items []CaisseResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// MouvementCaisseRequest body pour POST /api/caisses/:id/mouvements
// (encaissement ou décaissement manuel).
type MouvementCaisseRequest struct {
	Type    string          `json:"type"` // Encaissement | Decaissement
	Montant decimal.Decimal `json:"montant"`
	Motif   string          `json:"motif,omitempty"`
}

// MouvementCaisseListResponse page de mouvements de caisse.
type MouvementCaisseListResponse struct {
	Items []MouvementCaisseResponse `json:"items"`
	Page  PageResponse              `json:"page"`
}

// MouvementCaisseResponse représentation API d'un mouvement de caisse.
type MouvementCaisseResponse struct {
	ID        int64           `json:"id"`
	CaisseID  int64           `json:"caisseId"`
	Type      string          `json:"type"`
	Montant   decimal.Decimal `json:"montant"`
	Motif     string          `json:"motif,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}
