package repository

import (
	"context"

	"github.com/mkonate/boutik-api/internal/domain/entity"
)

// AbonnementRepository définit le port de persistance pour Abonnement.
// HasActif est consulté par le middleware de garde avant toute logique
// métier en écriture.
type AbonnementRepository interface {
	Create(abonnement *entity.Abonnement) error
	GetActif(entrepriseID int64) (*entity.Abonnement, error)
	HasActif(ctx context.Context, entrepriseID int64) (bool, error)
	ListByEntreprise(entrepriseID int64, limit, offset int) ([]*entity.Abonnement, error)
	Update(abonnement *entity.Abonnement) error
}
