package entity

import "time"

// Rôles valides pour User.
const (
	RoleAdmin   = "admin"
	RoleGerant  = "gerant"
	RoleVendeur = "vendeur"
)

// User représente un utilisateur du système (appartient à une Entreprise).
type User struct {
	ID           int64
	EntrepriseID int64
	Email        string
	PasswordHash string // hash bcrypt, jamais en clair après persistance
	Nom          string
	Role         string // admin, gerant, vendeur
	Statut       string // active, inactive, suspendue
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
