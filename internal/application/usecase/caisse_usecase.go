package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mkonate/boutik-api/internal/application/dto"
	"github.com/mkonate/boutik-api/internal/domain"
	"github.com/mkonate/boutik-api/internal/domain/entity"
	"github.com/mkonate/boutik-api/internal/domain/repository"
)

// CaisseUseCase gère les caisses et leur journal de mouvements. Le solde
// n'est jamais écrit directement : il est dérivé des mouvements, appliqués
// sous verrou de ligne dans une transaction.
type CaisseUseCase struct {
	repo         repository.CaisseRepository
	boutiqueRepo repository.BoutiqueRepository
	txRunner     CaisseTxRunner
}

func NewCaisseUseCase(repo repository.CaisseRepository, boutiqueRepo repository.BoutiqueRepository, txRunner CaisseTxRunner) *CaisseUseCase {
	return &CaisseUseCase{repo: repo, boutiqueRepo: boutiqueRepo, txRunner: txRunner}
}

// Create ouvre une caisse à solde nul dans une boutique de l'entreprise.
func (uc *CaisseUseCase) Create(entrepriseID int64, in dto.CreateCaisseRequest) (*dto.CaisseResponse, error) {
	if in.Nom == "" {
		return nil, domain.ErrInvalidInput
	}
	boutique, err := uc.boutiqueRepo.GetByID(in.BoutiqueID)
	if err != nil {
		return nil, err
	}
	if boutique == nil || boutique.EntrepriseID != entrepriseID {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	caisse := &entity.Caisse{
		EntrepriseID: entrepriseID,
		BoutiqueID:   in.BoutiqueID,
		Nom:          in.Nom,
		Solde:        decimal.Zero,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(caisse); err != nil {
		return nil, err
	}
	return toCaisseResponse(caisse), nil
}

// GetByID retourne une caisse de l'entreprise.
func (uc *CaisseUseCase) GetByID(entrepriseID, id int64) (*dto.CaisseResponse, error) {
	caisse, err := uc.getCaisse(entrepriseID, id)
	if err != nil {
		return nil, err
	}
	return toCaisseResponse(caisse), nil
}

// List liste les caisses de l'entreprise avec pagination et total.
func (uc *CaisseUseCase) List(entrepriseID int64, page dto.PageRequest) (*dto.CaisseListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByEntreprise(entrepriseID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.CountByEntreprise(entrepriseID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CaisseResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCaisseResponse(c))
	}
	return &dto.CaisseListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, PageSize: page.PageSize, Total: total},
	}, nil
}

// EnregistrerMouvement applique un encaissement ou un décaissement manuel.
// Verrou de ligne sur la caisse, solde et journal mis à jour dans la même
// transaction. Un décaissement supérieur au solde est refusé.
func (uc *CaisseUseCase) EnregistrerMouvement(ctx context.Context, entrepriseID, userID, caisseID int64, in dto.MouvementCaisseRequest) (*dto.MouvementCaisseResponse, error) {
	if in.Type != entity.CaisseEncaissement && in.Type != entity.CaisseDecaissement {
		return nil, domain.ErrInvalidInput
	}
	if !in.Montant.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	mouvement := &entity.MouvementCaisse{
		CaisseID:  caisseID,
		Type:      in.Type,
		Montant:   in.Montant,
		Motif:     in.Motif,
		CreatedBy: userID,
		CreatedAt: time.Now(),
	}

	err := uc.txRunner.RunCaisse(ctx, func(caisseRepo repository.CaisseRepository) error {
		caisse, err := caisseRepo.GetForUpdate(caisseID)
		if err != nil {
			return err
		}
		if caisse == nil || caisse.EntrepriseID != entrepriseID {
			return domain.ErrNotFound
		}

		var nouveauSolde decimal.Decimal
		switch in.Type {
		case entity.CaisseEncaissement:
			nouveauSolde = caisse.Solde.Add(in.Montant)
		case entity.CaisseDecaissement:
			if caisse.Solde.LessThan(in.Montant) {
				return domain.ErrConflict
			}
			nouveauSolde = caisse.Solde.Sub(in.Montant)
		}

		if err := caisseRepo.UpdateSolde(caisse.ID, nouveauSolde); err != nil {
			return err
		}
		return caisseRepo.CreateMouvement(mouvement)
	})
	if err != nil {
		return nil, err
	}

	return toMouvementCaisseResponse(mouvement), nil
}

// ListMouvements liste le journal d'une caisse, du plus récent au plus ancien.
func (uc *CaisseUseCase) ListMouvements(entrepriseID, caisseID int64, page dto.PageRequest) (*dto.MouvementCaisseListResponse, error) {
	if _, err := uc.getCaisse(entrepriseID, caisseID); err != nil {
		return nil, err
	}
	page.DefaultPage()
	list, err := uc.repo.ListMouvements(caisseID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.CountMouvements(caisseID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MouvementCaisseResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMouvementCaisseResponse(m))
	}
	return &dto.MouvementCaisseListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, PageSize: page.PageSize, Total: total},
	}, nil
}

// Delete supprime une caisse. Refusé tant que le solde n'est pas nul.
func (uc *CaisseUseCase) Delete(entrepriseID, id int64) error {
	caisse, err := uc.getCaisse(entrepriseID, id)
	if err != nil {
		return err
	}
	if !caisse.Solde.IsZero() {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

func (uc *CaisseUseCase) getCaisse(entrepriseID, id int64) (*entity.Caisse, error) {
	caisse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if caisse == nil || caisse.EntrepriseID != entrepriseID {
		return nil, domain.ErrNotFound
	}
	return caisse, nil
}

func toCaisseResponse(c *entity.Caisse) *dto.CaisseResponse {
	return &dto.CaisseResponse{
		ID:         c.ID,
		BoutiqueID: c.BoutiqueID,
		Nom:        c.Nom,
		Solde:      c.Solde,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func toMouvementCaisseResponse(m *entity.MouvementCaisse) *dto.MouvementCaisseResponse {
	return &dto.MouvementCaisseResponse{
		ID:        m.ID,
		CaisseID:  m.CaisseID,
		Type:      m.Type,
		Montant:   m.Montant,
		Motif:     m.Motif,
		CreatedAt: m.CreatedAt,
	}
}
