package repository

import (
	"github.com/shopspring/decimal"

	"github.com/mkonate/boutik-api/internal/domain/entity"
)

// CaisseRepository définit le port de persistance pour Caisse et son journal
// de mouvements. Le solde est mis à jour sous verrou de ligne, dans la même
// transaction que le mouvement qui le justifie.
type CaisseRepository interface {
	Create(caisse *entity.Caisse) error
	GetByID(id int64) (*entity.Caisse, error)
	GetForUpdate(id int64) (*entity.Caisse, error)
	UpdateSolde(id int64, solde decimal.Decimal) error
	Update(caisse *entity.Caisse) error
	ListByEntreprise(entrepriseID int64, limit, offset int) ([]*entity.Caisse, error)
	CountByEntreprise(entrepriseID int64) (int64, error)
	Delete(id int64) error

	CreateMouvement(mouvement *entity.MouvementCaisse) error
	ListMouvements(caisseID int64, limit, offset int) ([]*entity.MouvementCaisse, error)
	CountMouvements(caisseID int64) (int64, error)
}
