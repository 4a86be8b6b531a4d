package repository

import "github.com/mkonate/boutik-api/internal/domain/entity"

// ClientRepository définit le port de persistance pour Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id int64) (*entity.Client, error)
	Update(client *entity.Client) error
	ListByEntreprise(entrepriseID int64, limit, offset int) ([]*entity.Client, error)
	Delete(id int64) error
}

// ReservationRepository définit le port de persistance pour Reservation.
// GetForUpdate verrouille la ligne pour la transition de statut
// (confirmation/annulation).
type ReservationRepository interface {
	Create(reservation *entity.Reservation) error
	GetByID(id int64) (*entity.Reservation, error)
	GetForUpdate(id int64) (*entity.Reservation, error)
	Update(reservation *entity.Reservation) error
	ListByEntreprise(entrepriseID int64, limit, offset int) ([]*entity.Reservation, error)
	CountByEntreprise(entrepriseID int64) (int64, error)
}
