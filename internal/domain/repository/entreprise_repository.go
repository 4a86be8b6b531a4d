package repository

import "github.com/mkonate/boutik-api/internal/domain/entity"

// EntrepriseRepository définit le port de persistance pour Entreprise.
type EntrepriseRepository interface {
	Create(entreprise *entity.Entreprise) error
	GetByID(id int64) (*entity.Entreprise, error)
	Update(entreprise *entity.Entreprise) error
	List(limit, offset int) ([]*entity.Entreprise, error)
	Delete(id int64) error
}
