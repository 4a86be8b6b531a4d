package dto

import "time"

// RegisterRequest body pour POST /api/auth/register.
type RegisterRequest struct {
	EntrepriseID int64  `json:"entrepriseId"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Nom          string `json:"nom"`
	Role         string `json:"role,omitempty"`
}

// LoginRequest body pour POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse représentation API d'un utilisateur (sans le hash).
type UserResponse struct {
	ID           int64     `json:"id"`
	EntrepriseID int64     `json:"entrepriseId"`
	Email        string    `json:"email"`
	Nom          string    `json:"nom"`
	Role         string    `json:"role"`
	Statut       string    `json:"statut"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// LoginResponse token JWT + utilisateur connecté.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
