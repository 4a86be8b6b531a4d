package usecase

import (
	"time"

	"github.com/mkonate/boutik-api/internal/application/dto"
	"github.com/mkonate/boutik-api/internal/domain"
	"github.com/mkonate/boutik-api/internal/domain/entity"
	"github.com/mkonate/boutik-api/internal/domain/repository"
)

// AbonnementUseCase gère la souscription et le renouvellement des
// abonnements. C'est aussi lui (via le repository) que le middleware de
// garde interroge.
type AbonnementUseCase struct {
	repo repository.AbonnementRepository
}

// NewAbonnementUseCase construit le cas d'usage.
func NewAbonnementUseCase(repo repository.AbonnementRepository) *AbonnementUseCase {
	return &AbonnementUseCase{repo: repo}
}

// Souscrire crée un nouvel abonnement actif pour l'entreprise. Un abonnement
// actif existant est désactivé au profit du nouveau (renouvellement).
func (uc *AbonnementUseCase) Souscrire(entrepriseID int64, in dto.CreateAbonnementRequest) (*dto.AbonnementResponse, error) {
	if in.Plan != entity.PlanEssentiel && in.Plan != entity.PlanPremium {
		return nil, domain.ErrInvalidInput
	}
	if in.DateFin != nil && in.DateFin.Before(time.Now()) {
		return nil, domain.ErrInvalidInput
	}

	courant, err := uc.repo.GetActif(entrepriseID)
	if err != nil {
		return nil, err
	}
	if courant != nil {
		courant.Actif = false
		courant.UpdatedAt = time.Now()
		if err := uc.repo.Update(courant); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	abonnement := &entity.Abonnement{
		EntrepriseID: entrepriseID,
		Plan:         in.Plan,
		Actif:        true,
		DateDebut:    now,
		DateFin:      in.DateFin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(abonnement); err != nil {
		return nil, err
	}
	return toAbonnementResponse(abonnement), nil
}

// Actif renvoie l'abonnement actif de l'entreprise, ErrAbonnementExpire s'il
// n'y en a pas.
func (uc *AbonnementUseCase) Actif(entrepriseID int64) (*dto.AbonnementResponse, error) {
	abonnement, err := uc.repo.GetActif(entrepriseID)
	if err != nil {
		return nil, err
	}
	if abonnement == nil {
		return nil, domain.ErrAbonnementExpire
	}
	return toAbonnementResponse(abonnement), nil
}

func toAbonnementResponse(a *entity.Abonnement) *dto.AbonnementResponse {
	if a == nil {
		return nil
	}
	return &dto.AbonnementResponse{
		ID:           a.ID,
		EntrepriseID: a.EntrepriseID,
		Plan:         a.Plan,
		Actif:        a.Actif,
		DateDebut:    a.DateDebut,
		DateFin:      a.DateFin,
	}
}
