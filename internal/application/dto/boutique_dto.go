package dto

import "time"

// CreateSuccursaleRequest body pour POST /api/succursales.
type CreateSuccursaleRequest struct {
	Nom     string `json:"nom"`
	Adresse string `json:"adresse,omitempty"`
}

// UpdateSuccursaleRequest body pour PUT /api/succursales/:id.
type UpdateSuccursaleRequest struct {
	Nom     *string `json:"nom,omitempty"`
	Adresse *string `json:"adresse,omitempty"`
}

// SuccursaleResponse représentation API d'une succursale.
type SuccursaleResponse struct {
	ID           int64     `json:"id"`
	EntrepriseID int64     `json:"entrepriseId"`
	Nom          string    `json:"nom"`
	Adresse      string    `json:"adresse,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SuccursaleListResponse page de succursales.
type SuccursaleListResponse struct {
	Items []SuccursaleResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// CreateBoutiqueRequest body pour POST /api/boutiques.
type CreateBoutiqueRequest struct {
	SuccursaleID *int64 `json:"succursaleId,omitempty"`
	Nom          string `json:"nom"`
	Adresse      string `json:"adresse,omitempty"`
	Telephone    string `json:"telephone,omitempty"`
}

// UpdateBoutiqueRequest body pour PUT /api/boutiques/:id.
type UpdateBoutiqueRequest struct {
	SuccursaleID *int64  `json:"succursaleId,omitempty"`
	Nom          *string `json:"nom,omitempty"`
	Adresse      *string `json:"adresse,omitempty"`
	Telephone    *string `json:"telephone,omitempty"`
}

// BoutiqueResponse représentation API d'une boutique.
type BoutiqueResponse struct {
	ID           int64     `json:"id"`
	EntrepriseID int64     `json:"entrepriseId"`
	SuccursaleID *int64    `json:"succursaleId,omitempty"`
	Nom          string    `json:"nom"`
	Adresse      string    `json:"adresse,omitempty"`
	Telephone    string    `json:"telephone,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BoutiqueListResponse page de boutiques.
type BoutiqueListResponse struct {
	Items []BoutiqueResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
