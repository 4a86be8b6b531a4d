package repository

import "github.com/mkonate/boutik-api/internal/domain/entity"

// BoutiqueRepository définit le port de persistance pour Boutique.
type BoutiqueRepository interface {
	Create(boutique *entity.Boutique) error
	GetByID(id int64) (*entity.Boutique, error)
	Update(boutique *entity.Boutique) error
	ListByEntreprise(entrepriseID int64, limit, offset int) ([]*entity.Boutique, error)
	Delete(id int64) error
}
