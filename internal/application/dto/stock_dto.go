package dto

import "time"

// LigneMouvementRequest une ligne d'un mouvement de stock à enregistrer.
type LigneMouvementRequest struct {
	ModeleBoutiqueID int64 `json:"modeleBoutiqueId"`
	Quantite         int64 `json:"quantite"`
}

// MouvementStockRequest body pour POST /api/stock/entree et /api/stock/sortie.
type MouvementStockRequest struct {
	BoutiqueID int64                   `json:"boutiqueId"`
	Lignes     []LigneMouvementRequest `json:"lignes"`
}

// UpdateMouvementStockRequest body pour PUT /api/stock/entree/:id et
// /api/stock/sortie/:id : remplace les lignes en bloc, boutique optionnelle.
type UpdateMouvementStockRequest struct {
	BoutiqueID *int64                  `json:"boutiqueId,omitempty"`
	Lignes     []LigneMouvementRequest `json:"lignes"`
}

// LigneMouvementResponse représentation API d'une ligne de mouvement.
type LigneMouvementResponse struct {
	ID               int64 `json:"id"`
	MouvementID      int64 `json:"mouvementId"`
	ModeleBoutiqueID int64 `json:"modeleBoutiqueId"`
	Quantite         int64 `json:"quantite"`
}

// MouvementStockResponse représentation API d'un mouvement avec ses lignes.
type MouvementStockResponse struct {
	ID         int64                    `json:"id"`
	Reference  string                   `json:"reference"`
	BoutiqueID int64                    `json:"boutiqueId"`
	Type       string                   `json:"type"`
	Quantite   int64                    `json:"quantite"`
	Lignes     []LigneMouvementResponse `json:"lignes"`
	CreatedBy  int64                    `json:"createdBy"`
	CreatedAt  time.Time                `json:"createdAt"`
}

// MouvementStockListResponse page d'historique des mouvements d'une boutique,
// du plus récent au plus ancien.
type MouvementStockListResponse struct {
	Items []MouvementStockResponse `json:"items"`
	Page  PageResponse             `json:"page"`
}

// LigneMouvementListResponse page d'historique des lignes d'un modèle
// boutique, de la plus récente à la plus ancienne.
type LigneMouvementListResponse struct {
	Items []LigneMouvementResponse `json:"items"`
	Page  PageResponse             `json:"page"`
}
