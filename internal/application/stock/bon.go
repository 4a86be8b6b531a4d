package stock

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mkonate/boutik-api/internal/domain"
	"github.com/mkonate/boutik-api/internal/domain/entity"
	"github.com/mkonate/boutik-api/internal/domain/repository"
)

// BonLigne est une ligne de bon prête à imprimer : la déclinaison résolue en
// libellé, taille et prix.
type BonLigne struct {
	Libelle  string
	Taille   string
	Quantite int64
	Prix     decimal.Decimal
}

// BonGenerator produit le document du bon de mouvement (PDF).
type BonGenerator interface {
	GenererBon(ctx context.Context, mouvement *entity.MouvementStock, boutique *entity.Boutique, lignes []BonLigne) ([]byte, error)
}

// BonUseCase assemble les données d'un bon de mouvement et délègue le rendu
// au générateur.
type BonUseCase struct {
	movRepo      repository.MouvementStockRepository
	boutiqueRepo repository.BoutiqueRepository
	mbRepo       repository.ModeleBoutiqueRepository
	modeleRepo   repository.ModeleRepository
	generator    BonGenerator
}

// NewBonUseCase construit le cas d'usage.
func NewBonUseCase(
	movRepo repository.MouvementStockRepository,
	boutiqueRepo repository.BoutiqueRepository,
	mbRepo repository.ModeleBoutiqueRepository,
	modeleRepo repository.ModeleRepository,
	generator BonGenerator,
) *BonUseCase {
	return &BonUseCase{
		movRepo:      movRepo,
		boutiqueRepo: boutiqueRepo,
		mbRepo:       mbRepo,
		modeleRepo:   modeleRepo,
		generator:    generator,
	}
}

// GenererBon renvoie le PDF du bon d'un mouvement de l'entreprise.
func (uc *BonUseCase) GenererBon(ctx context.Context, entrepriseID, mouvementID int64) ([]byte, error) {
	mouvement, err := uc.movRepo.GetByID(mouvementID)
	if err != nil {
		return nil, err
	}
	if mouvement == nil {
		return nil, domain.ErrNotFound
	}
	if mouvement.EntrepriseID != entrepriseID {
		return nil, domain.ErrForbidden
	}
	boutique, err := uc.boutiqueRepo.GetByID(mouvement.BoutiqueID)
	if err != nil {
		return nil, err
	}
	lignes, err := uc.movRepo.ListLignes(mouvementID)
	if err != nil {
		return nil, err
	}

	bonLignes := make([]BonLigne, 0, len(lignes))
	for _, l := range lignes {
		bl := BonLigne{Quantite: l.Quantite}
		mb, err := uc.mbRepo.GetByID(l.ModeleBoutiqueID)
		if err != nil {
			return nil, err
		}
		if mb != nil {
			bl.Taille = mb.Taille
			bl.Prix = mb.Prix
			modele, err := uc.modeleRepo.GetByID(mb.ModeleID)
			if err != nil {
				return nil, err
			}
			if modele != nil {
				bl.Libelle = modele.Libelle
			}
		}
		bonLignes = append(bonLignes, bl)
	}

	return uc.generator.GenererBon(ctx, mouvement, boutique, bonLignes)
}
