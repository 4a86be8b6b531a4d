package repository

import "github.com/mkonate/boutik-api/internal/domain/entity"

// ModeleRepository définit le port de persistance pour Modele.
// GetForUpdate verrouille la ligne (SELECT FOR UPDATE) pour la mise à jour de
// QuantiteGlobale par le registre des mouvements.
type ModeleRepository interface {
	Create(modele *entity.Modele) error
	GetByID(id int64) (*entity.Modele, error)
	GetForUpdate(id int64) (*entity.Modele, error)
	Update(modele *entity.Modele) error
	UpdateQuantiteGlobale(id int64, quantite int64) error
	UpdatePhoto(id int64, photo string) error
	ListByEntreprise(entrepriseID int64, limit, offset int) ([]*entity.Modele, error)
	CountByEntreprise(entrepriseID int64) (int64, error)
	Delete(id int64) error
}

// ModeleBoutiqueRepository définit le port de persistance pour ModeleBoutique.
type ModeleBoutiqueRepository interface {
	Create(mb *entity.ModeleBoutique) error
	GetByID(id int64) (*entity.ModeleBoutique, error)
	GetForUpdate(id int64) (*entity.ModeleBoutique, error)
	Update(mb *entity.ModeleBoutique) error
	UpdateQuantite(id int64, quantite int64) error
	ListByBoutique(boutiqueID int64, limit, offset int) ([]*entity.ModeleBoutique, error)
	ListByModele(modeleID int64) ([]*entity.ModeleBoutique, error)
	Delete(id int64) error
}
