package usecase

import (
	"time"

	"github.com/mkonate/boutik-api/internal/application/dto"
	"github.com/mkonate/boutik-api/internal/domain"
	"github.com/mkonate/boutik-api/internal/domain/entity"
	"github.com/mkonate/boutik-api/internal/domain/repository"
)

// SuccursaleUseCase cas d'usage CRUD pour les succursales.
type SuccursaleUseCase struct {
	repo repository.SuccursaleRepository
}

// NewSuccursaleUseCase construit le cas d'usage.
func NewSuccursaleUseCase(repo repository.SuccursaleRepository) *SuccursaleUseCase {
	return &SuccursaleUseCase{repo: repo}
}

// Create crée une succursale pour l'entreprise courante.
func (uc *SuccursaleUseCase) Create(entrepriseID int64, in dto.CreateSuccursaleRequest) (*dto.SuccursaleResponse, error) {
	if in.Nom == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	succursale := &entity.Succursale{
		EntrepriseID: entrepriseID,
		Nom:          in.Nom,
		Adresse:      in.Adresse,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(succursale); err != nil {
		return nil, err
	}
	return toSuccursaleResponse(succursale), nil
}

// GetByID renvoie une succursale, tenant vérifié.
func (uc *SuccursaleUseCase) GetByID(entrepriseID, id int64) (*dto.SuccursaleResponse, error) {
	succursale, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if succursale == nil {
		return nil, domain.ErrNotFound
	}
	if succursale.EntrepriseID != entrepriseID {
		return nil, domain.ErrForbidden
	}
	return toSuccursaleResponse(succursale), nil
}

// Update applique les champs optionnels fournis.
func (uc *SuccursaleUseCase) Update(entrepriseID, id int64, in dto.UpdateSuccursaleRequest) (*dto.SuccursaleResponse, error) {
	succursale, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if succursale == nil {
		return nil, domain.ErrNotFound
	}
	if succursale.EntrepriseID != entrepriseID {
		return nil, domain.ErrForbidden
	}
	if in.Nom != nil {
		succursale.Nom = *in.Nom
	}
	if in.Adresse != nil {
		succursale.Adresse = *in.Adresse
	}
	succursale.UpdatedAt = time.Now()
	if err := uc.repo.Update(succursale); err != nil {
		return nil, err
	}
	return toSuccursaleResponse(succursale), nil
}

// List liste les succursales de l'entreprise avec pagination.
func (uc *SuccursaleUseCase) List(entrepriseID int64, page dto.PageRequest) (*dto.SuccursaleListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByEntreprise(entrepriseID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.SuccursaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSuccursaleResponse(s))
	}
	return &dto.SuccursaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, PageSize: page.PageSize, Total: int64(len(items))},
	}, nil
}

// Delete supprime une succursale, tenant vérifié.
func (uc *SuccursaleUseCase) Delete(entrepriseID, id int64) error {
	succursale, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if succursale == nil {
		return domain.ErrNotFound
	}
	if succursale.EntrepriseID != entrepriseID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toSuccursaleResponse(s *entity.Succursale) *dto.SuccursaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SuccursaleResponse{
		ID:           s.ID,
		EntrepriseID: s.EntrepriseID,
		Nom:          s.Nom,
		Adresse:      s.Adresse,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
