package entity

import "time"

// Notification est un message applicatif destiné aux utilisateurs d'une
// entreprise (création ou confirmation de réservation, etc.).
type Notification struct {
	ID           int64
	EntrepriseID int64
	Titre        string
	Message      string
	Lu           bool
	CreatedAt    time.Time
}
