package repository

import "github.com/mkonate/boutik-api/internal/domain/entity"

// SuccursaleRepository définit le port de persistance pour Succursale.
type SuccursaleRepository interface {
	Create(succursale *entity.Succursale) error
	GetByID(id int64) (*entity.Succursale, error)
	Update(succursale *entity.Succursale) error
	ListByEntreprise(entrepriseID int64, limit, offset int) ([]*entity.Succursale, error)
	Delete(id int64) error
}
