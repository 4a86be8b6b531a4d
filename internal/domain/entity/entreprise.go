package entity

import "time"

// Entreprise représente une société/tenant du système (multi-tenant).
type Entreprise struct {
	ID        int64
	Nom       string
	Email     string
	Telephone string
	Adresse   string
	Statut    string // active, suspendue
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Plans d'abonnement disponibles.
const (
	PlanEssentiel = "essentiel"
	PlanPremium   = "premium"
)

// Abonnement représente la souscription d'une entreprise. L'accès en écriture
// à l'API est conditionné à un abonnement actif et non échu.
type Abonnement struct {
	ID           int64
	EntrepriseID int64
	Plan         string // voir constantes Plan*
	Actif        bool
	DateDebut    time.Time
	DateFin      *time.Time // nil = sans échéance
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
