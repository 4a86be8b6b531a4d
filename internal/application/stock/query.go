package stock

import (
	"context"

	"github.com/mkonate/boutik-api/internal/application/dto"
	"github.com/mkonate/boutik-api/internal/domain"
	"github.com/mkonate/boutik-api/internal/domain/entity"
	"github.com/mkonate/boutik-api/internal/domain/repository"
)

// QueryUseCase projections en lecture seule sur le registre des mouvements :
// historique d'une boutique, historique d'un modèle boutique. Tri par
// identifiant décroissant (du plus récent au plus ancien), pagination avec
// total.
type QueryUseCase struct {
	movRepo      repository.MouvementStockRepository
	boutiqueRepo repository.BoutiqueRepository
	mbRepo       repository.ModeleBoutiqueRepository
}

// NewQueryUseCase construit le cas d'usage de lecture.
func NewQueryUseCase(
	movRepo repository.MouvementStockRepository,
	boutiqueRepo repository.BoutiqueRepository,
	mbRepo repository.ModeleBoutiqueRepository,
) *QueryUseCase {
	return &QueryUseCase{movRepo: movRepo, boutiqueRepo: boutiqueRepo, mbRepo: mbRepo}
}

// HistoriqueBoutique renvoie les mouvements d'une boutique, lignes incluses,
// du plus récent au plus ancien.
func (uc *QueryUseCase) HistoriqueBoutique(ctx context.Context, entrepriseID, boutiqueID int64, page dto.PageRequest) (*dto.MouvementStockListResponse, error) {
	boutique, err := uc.boutiqueRepo.GetByID(boutiqueID)
	if err != nil {
		return nil, err
	}
	if boutique == nil {
		return nil, domain.ErrNotFound
	}
	if boutique.EntrepriseID != entrepriseID {
		return nil, domain.ErrForbidden
	}

	page.DefaultPage()
	mouvements, err := uc.movRepo.ListByBoutique(boutiqueID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.movRepo.CountByBoutique(boutiqueID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.MouvementStockResponse, 0, len(mouvements))
	for _, m := range mouvements {
		lignes, err := uc.movRepo.ListLignes(m.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, ToMouvementResponse(m, lignes))
	}
	return &dto.MouvementStockListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, PageSize: page.PageSize, Total: total},
	}, nil
}

// HistoriqueModeleBoutique renvoie les lignes du registre touchant un modèle
// boutique donné, de la plus récente à la plus ancienne.
func (uc *QueryUseCase) HistoriqueModeleBoutique(ctx context.Context, entrepriseID, modeleBoutiqueID int64, page dto.PageRequest) (*dto.LigneMouvementListResponse, error) {
	mb, err := uc.mbRepo.GetByID(modeleBoutiqueID)
	if err != nil {
		return nil, err
	}
	if mb == nil {
		return nil, domain.ErrNotFound
	}
	boutique, err := uc.boutiqueRepo.GetByID(mb.BoutiqueID)
	if err != nil {
		return nil, err
	}
	if boutique == nil || boutique.EntrepriseID != entrepriseID {
		return nil, domain.ErrForbidden
	}

	page.DefaultPage()
	lignes, err := uc.movRepo.ListLignesByModeleBoutique(modeleBoutiqueID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.movRepo.CountLignesByModeleBoutique(modeleBoutiqueID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.LigneMouvementResponse, 0, len(lignes))
	for _, l := range lignes {
		items = append(items, toLigneResponse(l))
	}
	return &dto.LigneMouvementListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, PageSize: page.PageSize, Total: total},
	}, nil
}

// GetMouvement renvoie un mouvement et ses lignes (consultation unitaire,
// génération du bon de mouvement).
func (uc *QueryUseCase) GetMouvement(ctx context.Context, entrepriseID, mouvementID int64) (*entity.MouvementStock, []*entity.LigneMouvement, error) {
	mouvement, err := uc.movRepo.GetByID(mouvementID)
	if err != nil {
		return nil, nil, err
	}
	if mouvement == nil {
		return nil, nil, domain.ErrNotFound
	}
	if mouvement.EntrepriseID != entrepriseID {
		return nil, nil, domain.ErrForbidden
	}
	lignes, err := uc.movRepo.ListLignes(mouvementID)
	if err != nil {
		return nil, nil, err
	}
	return mouvement, lignes, nil
}

// ToMouvementResponse convertit un en-tête et ses lignes en DTO de réponse.
func ToMouvementResponse(m *entity.MouvementStock, lignes []*entity.LigneMouvement) dto.MouvementStockResponse {
	out := dto.MouvementStockResponse{
		ID:         m.ID,
		Reference:  m.Reference,
		BoutiqueID: m.BoutiqueID,
		Type:       m.Type,
		Quantite:   m.Quantite,
		Lignes:     make([]dto.LigneMouvementResponse, 0, len(lignes)),
		CreatedBy:  m.CreatedBy,
		CreatedAt:  m.CreatedAt,
	}
	for _, l := range lignes {
		out.Lignes = append(out.Lignes, toLigneResponse(l))
	}
	return out
}

func toLigneResponse(l *entity.LigneMouvement) dto.LigneMouvementResponse {
	return dto.LigneMouvementResponse{
		ID:               l.ID,
		MouvementID:      l.MouvementID,
		ModeleBoutiqueID: l.ModeleBoutiqueID,
		Quantite:         l.Quantite,
	}
}
