package usecase

import (
	"time"

	"github.com/mkonate/boutik-api/internal/application/dto"
	"github.com/mkonate/boutik-api/internal/domain"
	"github.com/mkonate/boutik-api/internal/domain/entity"
	"github.com/mkonate/boutik-api/internal/domain/repository"
)

// ModeleUseCase cas d'usage pour le catalogue : modèles et leurs déclinaisons
// en boutique. Les quantités ne sont jamais modifiées ici, seulement par le
// registre des mouvements.
type ModeleUseCase struct {
	repo         repository.ModeleRepository
	mbRepo       repository.ModeleBoutiqueRepository
	boutiqueRepo repository.BoutiqueRepository
}

// NewModeleUseCase construit le cas d'usage.
func NewModeleUseCase(
	repo repository.ModeleRepository,
	mbRepo repository.ModeleBoutiqueRepository,
	boutiqueRepo repository.BoutiqueRepository,
) *ModeleUseCase {
	return &ModeleUseCase{repo: repo, mbRepo: mbRepo, boutiqueRepo: boutiqueRepo}
}

// Create crée un modèle de catalogue, quantité globale à zéro.
func (uc *ModeleUseCase) Create(entrepriseID int64, in dto.CreateModeleRequest) (*dto.ModeleResponse, error) {
	if in.Libelle == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	modele := &entity.Modele{
		EntrepriseID: entrepriseID,
		Libelle:      in.Libelle,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(modele); err != nil {
		return nil, err
	}
	return toModeleResponse(modele), nil
}

// GetByID renvoie un modèle, tenant vérifié.
func (uc *ModeleUseCase) GetByID(entrepriseID, id int64) (*dto.ModeleResponse, error) {
	modele, err := uc.getModele(entrepriseID, id)
	if err != nil {
		return nil, err
	}
	return toModeleResponse(modele), nil
}

// Update applique les champs optionnels fournis.
func (uc *ModeleUseCase) Update(entrepriseID, id int64, in dto.UpdateModeleRequest) (*dto.ModeleResponse, error) {
	modele, err := uc.getModele(entrepriseID, id)
	if err != nil {
		return nil, err
	}
	if in.Libelle != nil {
		modele.Libelle = *in.Libelle
	}
	modele.UpdatedAt = time.Now()
	if err := uc.repo.Update(modele); err != nil {
		return nil, err
	}
	return toModeleResponse(modele), nil
}

// AttacherPhoto enregistre le chemin du fichier photo déjà sauvegardé sur
// disque par le handler.
func (uc *ModeleUseCase) AttacherPhoto(entrepriseID, id int64, chemin string) (*dto.ModeleResponse, error) {
	modele, err := uc.getModele(entrepriseID, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.UpdatePhoto(id, chemin); err != nil {
		return nil, err
	}
	modele.Photo = chemin
	return toModeleResponse(modele), nil
}

// List liste les modèles de l'entreprise avec pagination et total.
func (uc *ModeleUseCase) List(entrepriseID int64, page dto.PageRequest) (*dto.ModeleListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByEntreprise(entrepriseID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.CountByEntreprise(entrepriseID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ModeleResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toModeleResponse(m))
	}
	return &dto.ModeleListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, PageSize: page.PageSize, Total: total},
	}, nil
}

// Delete supprime un modèle, tenant vérifié.
func (uc *ModeleUseCase) Delete(entrepriseID, id int64) error {
	if _, err := uc.getModele(entrepriseID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

// CreateModeleBoutique met un modèle en rayon dans une boutique.
func (uc *ModeleUseCase) CreateModeleBoutique(entrepriseID int64, in dto.CreateModeleBoutiqueRequest) (*dto.ModeleBoutiqueResponse, error) {
	if in.ModeleID == 0 || in.BoutiqueID == 0 {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.getModele(entrepriseID, in.ModeleID); err != nil {
		return nil, err
	}
	boutique, err := uc.boutiqueRepo.GetByID(in.BoutiqueID)
	if err != nil {
		return nil, err
	}
	if boutique == nil || boutique.EntrepriseID != entrepriseID {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	mb := &entity.ModeleBoutique{
		ModeleID:   in.ModeleID,
		BoutiqueID: in.BoutiqueID,
		Prix:       in.Prix,
		Taille:     in.Taille,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.mbRepo.Create(mb); err != nil {
		return nil, err
	}
	return toModeleBoutiqueResponse(mb), nil
}

// UpdateModeleBoutique met à jour prix et taille d'une déclinaison boutique.
func (uc *ModeleUseCase) UpdateModeleBoutique(entrepriseID, id int64, in dto.UpdateModeleBoutiqueRequest) (*dto.ModeleBoutiqueResponse, error) {
	mb, err := uc.getModeleBoutique(entrepriseID, id)
	if err != nil {
		return nil, err
	}
	if in.Prix != nil {
		mb.Prix = *in.Prix
	}
	if in.Taille != nil {
		mb.Taille = *in.Taille
	}
	mb.UpdatedAt = time.Now()
	if err := uc.mbRepo.Update(mb); err != nil {
		return nil, err
	}
	return toModeleBoutiqueResponse(mb), nil
}

// ListModeleBoutiques liste les modèles en rayon d'une boutique.
func (uc *ModeleUseCase) ListModeleBoutiques(entrepriseID, boutiqueID int64, page dto.PageRequest) (*dto.ModeleBoutiqueListResponse, error) {
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
	list, err := uc.mbRepo.ListByBoutique(boutiqueID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.ModeleBoutiqueResponse, 0, len(list))
	for _, mb := range list {
		items = append(items, *toModeleBoutiqueResponse(mb))
	}
	return &dto.ModeleBoutiqueListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, PageSize: page.PageSize, Total: int64(len(items))},
	}, nil
}

// DeleteModeleBoutique retire une déclinaison du rayon, tenant vérifié.
func (uc *ModeleUseCase) DeleteModeleBoutique(entrepriseID, id int64) error {
	if _, err := uc.getModeleBoutique(entrepriseID, id); err != nil {
		return err
	}
	return uc.mbRepo.Delete(id)
}

func (uc *ModeleUseCase) getModele(entrepriseID, id int64) (*entity.Modele, error) {
	modele, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if modele == nil {
		return nil, domain.ErrNotFound
	}
	if modele.EntrepriseID != entrepriseID {
		return nil, domain.ErrForbidden
	}
	return modele, nil
}

func (uc *ModeleUseCase) getModeleBoutique(entrepriseID, id int64) (*entity.ModeleBoutique, error) {
	mb, err := uc.mbRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mb == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := uc.getModele(entrepriseID, mb.ModeleID); err != nil {
		return nil, err
	}
	return mb, nil
}

func toModeleResponse(m *entity.Modele) *dto.ModeleResponse {
	if m == nil {
		return nil
	}
	return &dto.ModeleResponse{
		ID:              m.ID,
		EntrepriseID:    m.EntrepriseID,
		Libelle:         m.Libelle,
		Photo:           m.Photo,
		QuantiteGlobale: m.QuantiteGlobale,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toModeleBoutiqueResponse(mb *entity.ModeleBoutique) *dto.ModeleBoutiqueResponse {
	if mb == nil {
		return nil
	}
	return &dto.ModeleBoutiqueResponse{
		ID:         mb.ID,
		ModeleID:   mb.ModeleID,
		BoutiqueID: mb.BoutiqueID,
		Prix:       mb.Prix,
		Taille:     mb.Taille,
		Quantite:   mb.Quantite,
		CreatedAt:  mb.CreatedAt,
		UpdatedAt:  mb.UpdatedAt,
	}
}
