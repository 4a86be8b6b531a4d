package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mkonate/boutik-api/internal/application/dto"
	"github.com/mkonate/boutik-api/internal/domain"
	"github.com/mkonate/boutik-api/internal/domain/repository"
)

// RapportUseCase expose les projections de reporting : agrégats du registre
// des mouvements de stock et soldes de trésorerie.
type RapportUseCase struct {
	repo         repository.RapportRepository
	boutiqueRepo repository.BoutiqueRepository
}

func NewRapportUseCase(repo repository.RapportRepository, boutiqueRepo repository.BoutiqueRepository) *RapportUseCase {
	return &RapportUseCase{repo: repo, boutiqueRepo: boutiqueRepo}
}

// Stock retourne les totaux d'entrées/sorties et la valeur du stock en rayon,
// pour une boutique donnée ou pour toute l'entreprise.
func (uc *RapportUseCase) Stock(ctx context.Context, entrepriseID int64, boutiqueID *int64) (*dto.RapportStockResponse, error) {
	if boutiqueID != nil {
		boutique, err := uc.boutiqueRepo.GetByID(*boutiqueID)
		if err != nil {
			return nil, err
		}
		if boutique == nil || boutique.EntrepriseID != entrepriseID {
			return nil, domain.ErrNotFound
		}
	}
	totaux, err := uc.repo.TotauxStock(ctx, entrepriseID, boutiqueID)
	if err != nil {
		return nil, err
	}
	return &dto.RapportStockResponse{
		BoutiqueID:    boutiqueID,
		TotalEntrees:  totaux.TotalEntrees,
		TotalSorties:  totaux.TotalSorties,
		QuantiteStock: totaux.QuantiteStock,
		ValeurStock:   totaux.ValeurStock,
	}, nil
}

// Caisses retourne le solde courant de chaque caisse de l'entreprise et leur
// total.
func (uc *RapportUseCase) Caisses(ctx context.Context, entrepriseID int64) (*dto.RapportCaissesResponse, error) {
	soldes, err := uc.repo.SoldesCaisses(ctx, entrepriseID)
	if err != nil {
		return nil, err
	}
	out := &dto.RapportCaissesResponse{
		Caisses: make([]dto.SoldeCaisseResponse, 0, len(soldes)),
		Total:   decimal.Zero,
	}
	for _, s := range soldes {
		out.Caisses = append(out.Caisses, dto.SoldeCaisseResponse{
			CaisseID:   s.CaisseID,
			BoutiqueID: s.BoutiqueID,
			Nom:        s.Nom,
			Solde:      s.Solde,
		})
		out.Total = out.Total.Add(s.Solde)
	}
	return out, nil
}
