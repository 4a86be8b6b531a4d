package usecase

import (
	"time"

	"github.com/mkonate/boutik-api/internal/application/dto"
	"github.com/mkonate/boutik-api/internal/domain"
	"github.com/mkonate/boutik-api/internal/domain/entity"
	"github.com/mkonate/boutik-api/internal/domain/repository"
)

// EntrepriseUseCase cas d'usage CRUD pour les entreprises (tenants).
type EntrepriseUseCase struct {
	repo repository.EntrepriseRepository
}

// NewEntrepriseUseCase construit le cas d'usage.
func NewEntrepriseUseCase(repo repository.EntrepriseRepository) *EntrepriseUseCase {
	return &EntrepriseUseCase{repo: repo}
}

// Create enregistre une nouvelle entreprise (inscription tenant, public).
func (uc *EntrepriseUseCase) Create(in dto.CreateEntrepriseRequest) (*dto.EntrepriseResponse, error) {
	if in.Nom == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	entreprise := &entity.Entreprise{
		Nom:       in.Nom,
		Email:     in.Email,
		Telephone: in.Telephone,
		Adresse:   in.Adresse,
		Statut:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(entreprise); err != nil {
		return nil, err
	}
	return toEntrepriseResponse(entreprise), nil
}

// GetByID renvoie une entreprise par identifiant.
func (uc *EntrepriseUseCase) GetByID(id int64) (*dto.EntrepriseResponse, error) {
	entreprise, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entreprise == nil {
		return nil, domain.ErrNotFound
	}
	return toEntrepriseResponse(entreprise), nil
}

// Update applique les champs optionnels fournis.
func (uc *EntrepriseUseCase) Update(id int64, in dto.UpdateEntrepriseRequest) (*dto.EntrepriseResponse, error) {
	entreprise, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entreprise == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nom != nil {
		entreprise.Nom = *in.Nom
	}
	if in.Email != nil {
		entreprise.Email = *in.Email
	}
	if in.Telephone != nil {
		entreprise.Telephone = *in.Telephone
	}
	if in.Adresse != nil {
		entreprise.Adresse = *in.Adresse
	}
	if in.Statut != nil {
		entreprise.Statut = *in.Statut
	}
	entreprise.UpdatedAt = time.Now()
	if err := uc.repo.Update(entreprise); err != nil {
		return nil, err
	}
	return toEntrepriseResponse(entreprise), nil
}

func toEntrepriseResponse(e *entity.Entreprise) *dto.EntrepriseResponse {
	if e == nil {
		return nil
	}
	return &dto.EntrepriseResponse{
		ID:        e.ID,
		Nom:       e.Nom,
		Email:     e.Email,
		Telephone: e.Telephone,
		Adresse:   e.Adresse,
		Statut:    e.Statut,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
