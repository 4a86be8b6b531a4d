package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateModeleRequest body pour POST /api/modeles.
type CreateModeleRequest struct {
	Libelle string `json:"libelle"`
}

// UpdateModeleRequest body pour PUT /api/modeles/:id.
type UpdateModeleRequest struct {
	Libelle *string `json:"libelle,omitempty"`
}

// ModeleResponse représentation API d'un modèle du catalogue.
type ModeleResponse struct {
	ID              int64     `json:"id"`
	EntrepriseID    int64     `json:"entrepriseId"`
	Libelle         string    `json:"libelle"`
	Photo           string    `json:"photo,omitempty"`
	QuantiteGlobale int64     `json:"quantiteGlobale"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ModeleListResponse page de modèles.
type ModeleListResponse struct {
	Items []ModeleResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// CreateModeleBoutiqueRequest body pour POST /api/modeleBoutiques : met un
// modèle en rayon dans une boutique.
type CreateModeleBoutiqueRequest struct {
	ModeleID   int64           `json:"modeleId"`
	BoutiqueID int64           `json:"boutiqueId"`
	Prix       decimal.Decimal `json:"prix"`
	Taille     string          `json:"taille,omitempty"`
}

// UpdateModeleBoutiqueRequest body pour PUT /api/modeleBoutiques/:id.
// La quantité n'est pas modifiable ici : elle n'évolue que par le registre
// des mouvements.
type UpdateModeleBoutiqueRequest struct {
	Prix   *decimal.Decimal `json:"prix,omitempty"`
	Taille *string          `json:"taille,omitempty"`
}

// ModeleBoutiqueResponse représentation API d'un modèle en boutique.
type ModeleBoutiqueResponse struct {
	ID         int64           `json:"id"`
	ModeleID   int64           `json:"modeleId"`
	BoutiqueID int64           `json:"boutiqueId"`
	Prix       decimal.Decimal `json:"prix"`
	Taille     string          `json:"taille,omitempty"`
	Quantite   int64           `json:"quantite"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// ModeleBoutiqueListResponse page de modèles en boutique.
type ModeleBoutiqueListResponse struct {
	Items []ModeleBoutiqueResponse `json:"items"`
	Page  PageResponse             `json:"page"`
}
