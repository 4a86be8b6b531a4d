package usecase

import (
	"time"

	"github.com/mkonate/boutik-api/internal/application/dto"
	"github.com/mkonate/boutik-api/internal/domain"
	"github.com/mkonate/boutik-api/internal/domain/entity"
	"github.com/mkonate/boutik-api/internal/domain/repository"
)

// BoutiqueUseCase cas d'usage CRUD pour les boutiques (points de vente).
type BoutiqueUseCase struct {
	repo           repository.BoutiqueRepository
	succursaleRepo repository.SuccursaleRepository
}

// NewBoutiqueUseCase construit le cas d'usage.
func NewBoutiqueUseCase(repo repository.BoutiqueRepository, succursaleRepo repository.SuccursaleRepository) *BoutiqueUseCase {
	return &BoutiqueUseCase{repo: repo, succursaleRepo: succursaleRepo}
}

// Create crée une boutique ; le rattachement à une succursale, s'il est
// fourni, doit pointer vers une succursale de la même entreprise.
func (uc *BoutiqueUseCase) Create(entrepriseID int64, in dto.CreateBoutiqueRequest) (*dto.BoutiqueResponse, error) {
	if in.Nom == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.SuccursaleID != nil {
		if err := uc.verifierSuccursale(entrepriseID, *in.SuccursaleID); err != nil {
			return nil, err
		}
	}
	now := time.Now()
	boutique := &entity.Boutique{
		EntrepriseID: entrepriseID,
		SuccursaleID: in.SuccursaleID,
		Nom:          in.Nom,
		Adresse:      in.Adresse,
		Telephone:    in.Telephone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(boutique); err != nil {
		return nil, err
	}
	return toBoutiqueResponse(boutique), nil
}

// GetByID renvoie une boutique, tenant vérifié.
func (uc *BoutiqueUseCase) GetByID(entrepriseID, id int64) (*dto.BoutiqueResponse, error) {
	boutique, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if boutique == nil {
		return nil, domain.ErrNotFound
	}
	if boutique.EntrepriseID != entrepriseID {
		return nil, domain.ErrForbidden
	}
	return toBoutiqueResponse(boutique), nil
}

// Update applique les champs optionnels fournis.
func (uc *BoutiqueUseCase) Update(entrepriseID, id int64, in dto.UpdateBoutiqueRequest) (*dto.BoutiqueResponse, error) {
	boutique, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if boutique == nil {
		return nil, domain.ErrNotFound
	}
	if boutique.EntrepriseID != entrepriseID {
		return nil, domain.ErrForbidden
	}
	if in.SuccursaleID != nil {
		if err := uc.verifierSuccursale(entrepriseID, *in.SuccursaleID); err != nil {
			return nil, err
		}
		boutique.SuccursaleID = in.SuccursaleID
	}
	if in.Nom != nil {
		boutique.Nom = *in.Nom
	}
	if in.Adresse != nil {
		boutique.Adresse = *in.Adresse
	}
	if in.Telephone != nil {
		boutique.Telephone = *in.Telephone
	}
	boutique.UpdatedAt = time.Now()
	if err := uc.repo.Update(boutique); err != nil {
		return nil, err
	}
	return toBoutiqueResponse(boutique), nil
}

// List liste les boutiques de l'entreprise avec pagination.
func (uc *BoutiqueUseCase) List(entrepriseID int64, page dto.PageRequest) (*dto.BoutiqueListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByEntreprise(entrepriseID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.BoutiqueResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBoutiqueResponse(b))
	}
	return &dto.BoutiqueListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, PageSize: page.PageSize, Total: int64(len(items))},
	}, nil
}

// Delete supprime une boutique, tenant vérifié.
func (uc *BoutiqueUseCase) Delete(entrepriseID, id int64) error {
	boutique, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if boutique == nil {
		return domain.ErrNotFound
	}
	if boutique.EntrepriseID != entrepriseID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func (uc *BoutiqueUseCase) verifierSuccursale(entrepriseID, succursaleID int64) error {
	succursale, err := uc.succursaleRepo.GetByID(succursaleID)
	if err != nil {
		return err
	}
	if succursale == nil || succursale.EntrepriseID != entrepriseID {
		return domain.ErrNotFound
	}
	return nil
}

func toBoutiqueResponse(b *entity.Boutique) *dto.BoutiqueResponse {
	if b == nil {
		return nil
	}
	return &dto.BoutiqueResponse{
		ID:           b.ID,
		EntrepriseID: b.EntrepriseID,
		SuccursaleID: b.SuccursaleID,
		Nom:          b.Nom,
		Adresse:      b.Adresse,
		Telephone:    b.Telephone,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
