package entity

import "time"

// Succursale représente une agence intermédiaire entre l'entreprise et ses
// boutiques.
type Succursale struct {
	ID           int64
	EntrepriseID int64
	Nom          string
	Adresse      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Boutique représente un point de vente d'une entreprise. Le rattachement à
// une succursale est optionnel.
type Boutique struct {
	ID           int64
	EntrepriseID int64
	SuccursaleID *int64
	Nom          string
	Adresse      string
	Telephone    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
