package repository

import "github.com/mkonate/boutik-api/internal/domain/entity"

// MouvementStockRepository définit le port de persistance pour le registre des
// mouvements de stock (en-têtes et lignes). Utilisé exclusivement à travers
// la transaction du TxRunner pour les écritures.
type MouvementStockRepository interface {
	Create(mouvement *entity.MouvementStock) error
	GetByID(id int64) (*entity.MouvementStock, error)
	Update(mouvement *entity.MouvementStock) error
	Delete(id int64) error
	ListByBoutique(boutiqueID int64, limit, offset int) ([]*entity.MouvementStock, error)
	CountByBoutique(boutiqueID int64) (int64, error)

	CreateLigne(ligne *entity.LigneMouvement) error
	ListLignes(mouvementID int64) ([]*entity.LigneMouvement, error)
	DeleteLignes(mouvementID int64) error
	ListLignesByModeleBoutique(modeleBoutiqueID int64, limit, offset int) ([]*entity.LigneMouvement, error)
	CountLignesByModeleBoutique(modeleBoutiqueID int64) (int64, error)
}
