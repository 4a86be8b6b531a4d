package dto

import "time"

// CreateEntrepriseRequest body pour POST /api/entreprises.
type CreateEntrepriseRequest struct {
	Nom       string `json:"nom"`
	Email     string `json:"email"`
	Telephone string `json:"telephone,omitempty"`
	Adresse   string `json:"adresse,omitempty"`
}

// UpdateEntrepriseRequest body pour PUT /api/entreprises/:id (champs optionnels).
type UpdateEntrepriseRequest struct {
	Nom       *string `json:"nom,omitempty"`
	Email     *string `json:"email,omitempty"`
	Telephone *string `json:"telephone,omitempty"`
	Adresse   *string `json:"adresse,omitempty"`
	Statut    *string `json:"statut,omitempty"`
}

// EntrepriseResponse représentation API d'une entreprise.
type EntrepriseResponse struct {
	ID        int64     `json:"id"`
	Nom       string    `json:"nom"`
	Email     string    `json:"email"`
	Telephone string    `json:"telephone,omitempty"`
	Adresse   string    `json:"adresse,omitempty"`
	Statut    string    `json:"statut"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateAbonnementRequest body pour POST /api/abonnements.
type CreateAbonnementRequest struct {
	Plan    string     `json:"plan"`
	DateFin *time.Time `json:"dateFin,omitempty"`
}

// AbonnementResponse représentation API d'un abonnement.
type AbonnementResponse struct {
	ID           int64      `json:"id"`
	EntrepriseID int64      `json:"entrepriseId"`
	Plan         string     `json:"plan"`
	Actif        bool       `json:"actif"`
	DateDebut    time.Time  `json:"dateDebut"`
	DateFin      *time.Time `json:"dateFin,omitempty"`
}
