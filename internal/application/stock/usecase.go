package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mkonate/boutik-api/internal/domain"
	"github.com/mkonate/boutik-api/internal/domain/entity"
	"github.com/mkonate/boutik-api/internal/domain/repository"
)

// UseCase enregistre les mouvements de stock (Entree, Sortie) de façon
// transactionnelle, avec verrouillage de ligne (SELECT FOR UPDATE) sur le
// modèle boutique puis sur le modèle parent, et Commit/Rollback.
//
// Invariants maintenus :
//   - MouvementStock.Quantite == somme des quantités des lignes ;
//   - Modele.QuantiteGlobale == somme des ModeleBoutique.Quantite associés ;
//   - ModeleBoutique.Quantite ne devient jamais négative ;
//   - un lot qui échoue ne laisse aucun état partiel.
type UseCase struct {
	txRunner     TxRunner
	boutiqueRepo repository.BoutiqueRepository
}

// NewUseCase construit le cas d'usage.
func NewUseCase(txRunner TxRunner, boutiqueRepo repository.BoutiqueRepository) *UseCase {
	return &UseCase{txRunner: txRunner, boutiqueRepo: boutiqueRepo}
}

// LigneInput une ligne (modèle boutique, quantité) d'un mouvement à appliquer.
type LigneInput struct {
	ModeleBoutiqueID int64
	Quantite         int64
}

// MouvementInput entrée pour EnregistrerMouvement.
type MouvementInput struct {
	EntrepriseID int64
	UserID       int64
	BoutiqueID   int64
	Type         string // entity.MouvementEntree | entity.MouvementSortie
	Lignes       []LigneInput
}

// RemplacementInput entrée pour RemplacerLignes : les nouvelles lignes
// remplacent les anciennes en bloc ; la boutique peut changer.
type RemplacementInput struct {
	EntrepriseID int64
	BoutiqueID   *int64
	Lignes       []LigneInput
}

// EnregistrerMouvement valide l'entrée, puis dans une seule transaction :
// verrouille chaque modèle boutique visé, applique les quantités selon le
// sens du mouvement, persiste les lignes et l'en-tête avec le total cumulé.
// Toute ligne fautive (modèle introuvable, stock insuffisant) annule le lot
// entier.
func (uc *UseCase) EnregistrerMouvement(ctx context.Context, input MouvementInput) (*entity.MouvementStock, []*entity.LigneMouvement, error) {
	if input.Type != entity.MouvementEntree && input.Type != entity.MouvementSortie {
		return nil, nil, domain.ErrInvalidInput
	}
	if len(input.Lignes) == 0 {
		return nil, nil, domain.ErrInvalidInput
	}
	for _, l := range input.Lignes {
		if l.Quantite <= 0 || l.ModeleBoutiqueID == 0 {
			return nil, nil, domain.ErrInvalidInput
		}
	}

	boutique, err := uc.boutiqueRepo.GetByID(input.BoutiqueID)
	if err != nil {
		return nil, nil, err
	}
	if boutique == nil {
		return nil, nil, domain.ErrNotFound
	}
	if boutique.EntrepriseID != input.EntrepriseID {
		return nil, nil, domain.ErrForbidden
	}

	now := time.Now()
	mouvement := &entity.MouvementStock{
		Reference:    uuid.New().String(),
		EntrepriseID: input.EntrepriseID,
		BoutiqueID:   input.BoutiqueID,
		Type:         input.Type,
		CreatedBy:    input.UserID,
		CreatedAt:    now,
	}
	var lignes []*entity.LigneMouvement

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MouvementStockRepository,
		mbRepo repository.ModeleBoutiqueRepository,
		modeleRepo repository.ModeleRepository,
	) error {
		if err := movRepo.Create(mouvement); err != nil {
			return err
		}
		var total int64
		for _, l := range input.Lignes {
			ligne, err := appliquerLigne(movRepo, mbRepo, modeleRepo, input.EntrepriseID, input.BoutiqueID, mouvement.ID, input.Type, l, now)
			if err != nil {
				return err
			}
			lignes = append(lignes, ligne)
			total += l.Quantite
		}
		mouvement.Quantite = total
		return movRepo.Update(mouvement)
	})
	if err != nil {
		return nil, nil, err
	}
	return mouvement, lignes, nil
}

// RemplacerLignes remplace en bloc les lignes d'un mouvement existant, dans
// une seule transaction : l'effet des anciennes lignes est d'abord ANNULÉ
// (une entrée se défait en retirant, une sortie en restituant), puis les
// nouvelles lignes sont appliquées avec le sens figé du mouvement. Le total
// de l'en-tête est recalculé. typeAttendu garde la cohérence de l'endpoint
// (un PUT sur /stock/entree ne touche pas un mouvement Sortie).
func (uc *UseCase) RemplacerLignes(ctx context.Context, mouvementID int64, typeAttendu string, input RemplacementInput) (*entity.MouvementStock, []*entity.LigneMouvement, error) {
	if len(input.Lignes) == 0 {
		return nil, nil, domain.ErrInvalidInput
	}
	for _, l := range input.Lignes {
		if l.Quantite <= 0 || l.ModeleBoutiqueID == 0 {
			return nil, nil, domain.ErrInvalidInput
		}
	}
	if input.BoutiqueID != nil {
		boutique, err := uc.boutiqueRepo.GetByID(*input.BoutiqueID)
		if err != nil {
			return nil, nil, err
		}
		if boutique == nil {
			return nil, nil, domain.ErrNotFound
		}
		if boutique.EntrepriseID != input.EntrepriseID {
			return nil, nil, domain.ErrForbidden
		}
	}

	now := time.Now()
	var mouvement *entity.MouvementStock
	var lignes []*entity.LigneMouvement

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MouvementStockRepository,
		mbRepo repository.ModeleBoutiqueRepository,
		modeleRepo repository.ModeleRepository,
	) error {
		var err error
		mouvement, err = movRepo.GetByID(mouvementID)
		if err != nil {
			return err
		}
		if mouvement == nil || mouvement.Type != typeAttendu {
			return domain.ErrNotFound
		}
		if mouvement.EntrepriseID != input.EntrepriseID {
			return domain.ErrForbidden
		}

		anciennes, err := movRepo.ListLignes(mouvementID)
		if err != nil {
			return err
		}
		for _, l := range anciennes {
			if err := annulerLigne(mbRepo, modeleRepo, input.EntrepriseID, mouvement.Type, l); err != nil {
				return err
			}
		}
		if err := movRepo.DeleteLignes(mouvementID); err != nil {
			return err
		}

		if input.BoutiqueID != nil {
			mouvement.BoutiqueID = *input.BoutiqueID
		}
		var total int64
		for _, l := range input.Lignes {
			ligne, err := appliquerLigne(movRepo, mbRepo, modeleRepo, input.EntrepriseID, mouvement.BoutiqueID, mouvement.ID, mouvement.Type, l, now)
			if err != nil {
				return err
			}
			lignes = append(lignes, ligne)
			total += l.Quantite
		}
		mouvement.Quantite = total
		return movRepo.Update(mouvement)
	})
	if err != nil {
		return nil, nil, err
	}
	return mouvement, lignes, nil
}

// SupprimerMouvement annule l'effet de toutes les lignes d'un mouvement puis
// supprime lignes et en-tête, dans une seule transaction.
func (uc *UseCase) SupprimerMouvement(ctx context.Context, entrepriseID, mouvementID int64) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MouvementStockRepository,
		mbRepo repository.ModeleBoutiqueRepository,
		modeleRepo repository.ModeleRepository,
	) error {
		mouvement, err := movRepo.GetByID(mouvementID)
		if err != nil {
			return err
		}
		if mouvement == nil {
			return domain.ErrNotFound
		}
		if mouvement.EntrepriseID != entrepriseID {
			return domain.ErrForbidden
		}
		anciennes, err := movRepo.ListLignes(mouvementID)
		if err != nil {
			return err
		}
		for _, l := range anciennes {
			if err := annulerLigne(mbRepo, modeleRepo, entrepriseID, mouvement.Type, l); err != nil {
				return err
			}
		}
		if err := movRepo.DeleteLignes(mouvementID); err != nil {
			return err
		}
		return movRepo.Delete(mouvementID)
	})
}

// SortieInTx applique une sortie mono-ligne avec les repositories fournis par
// l'appelant (même transaction). Utilisé par la confirmation de réservation
// pour que sortie de stock, encaissement et changement de statut soient
// atomiques.
func (uc *UseCase) SortieInTx(
	movRepo repository.MouvementStockRepository,
	mbRepo repository.ModeleBoutiqueRepository,
	modeleRepo repository.ModeleRepository,
	entrepriseID, boutiqueID, userID int64,
	ligne LigneInput,
	now time.Time,
) (*entity.MouvementStock, error) {
	if ligne.Quantite <= 0 || ligne.ModeleBoutiqueID == 0 {
		return nil, domain.ErrInvalidInput
	}
	mouvement := &entity.MouvementStock{
		Reference:    uuid.New().String(),
		EntrepriseID: entrepriseID,
		BoutiqueID:   boutiqueID,
		Type:         entity.MouvementSortie,
		CreatedBy:    userID,
		CreatedAt:    now,
	}
	if err := movRepo.Create(mouvement); err != nil {
		return nil, err
	}
	if _, err := appliquerLigne(movRepo, mbRepo, modeleRepo, entrepriseID, boutiqueID, mouvement.ID, entity.MouvementSortie, ligne, now); err != nil {
		return nil, err
	}
	mouvement.Quantite = ligne.Quantite
	if err := movRepo.Update(mouvement); err != nil {
		return nil, err
	}
	return mouvement, nil
}

// appliquerLigne verrouille le modèle boutique puis le modèle parent (ordre
// de verrouillage fixe), ajuste les deux quantités selon le sens, et persiste
// la ligne. Chaque cible est autorisée au niveau de la ligne : le modèle
// parent doit appartenir à l'entreprise appelante, et le modèle boutique à la
// boutique du mouvement. En Sortie, une quantité demandée supérieure au
// disponible rejette le lot avec le détail (disponible vs demandé).
// L'invariant QuantiteGlobale == somme des quantités boutique garantit que le
// décrément global ne passe jamais sous zéro quand le contrôle boutique passe.
func appliquerLigne(
	movRepo repository.MouvementStockRepository,
	mbRepo repository.ModeleBoutiqueRepository,
	modeleRepo repository.ModeleRepository,
	entrepriseID, boutiqueID, mouvementID int64,
	sens string,
	l LigneInput,
	now time.Time,
) (*entity.LigneMouvement, error) {
	mb, err := mbRepo.GetForUpdate(l.ModeleBoutiqueID)
	if err != nil {
		return nil, err
	}
	if mb == nil {
		return nil, &domain.ModeleBoutiqueIntrouvableError{ModeleBoutiqueID: l.ModeleBoutiqueID}
	}
	modele, err := modeleRepo.GetForUpdate(mb.ModeleID)
	if err != nil {
		return nil, err
	}
	if modele == nil {
		return nil, domain.ErrNotFound
	}
	if modele.EntrepriseID != entrepriseID {
		return nil, domain.ErrForbidden
	}
	if mb.BoutiqueID != boutiqueID {
		// Le modèle boutique existe mais pas dans la boutique du mouvement.
		return nil, &domain.ModeleBoutiqueIntrouvableError{ModeleBoutiqueID: l.ModeleBoutiqueID}
	}

	switch sens {
	case entity.MouvementEntree:
		mb.Quantite += l.Quantite
		modele.QuantiteGlobale += l.Quantite
	case entity.MouvementSortie:
		if mb.Quantite < l.Quantite {
			return nil, &domain.StockInsuffisantError{
				ModeleBoutiqueID: mb.ID,
				Disponible:       mb.Quantite,
				Demande:          l.Quantite,
			}
		}
		mb.Quantite -= l.Quantite
		modele.QuantiteGlobale -= l.Quantite
	default:
		return nil, domain.ErrInvalidInput
	}

	if err := mbRepo.UpdateQuantite(mb.ID, mb.Quantite); err != nil {
		return nil, err
	}
	if err := modeleRepo.UpdateQuantiteGlobale(modele.ID, modele.QuantiteGlobale); err != nil {
		return nil, err
	}
	ligne := &entity.LigneMouvement{
		MouvementID:      mouvementID,
		ModeleBoutiqueID: l.ModeleBoutiqueID,
		Quantite:         l.Quantite,
		CreatedAt:        now,
	}
	if err := movRepo.CreateLigne(ligne); err != nil {
		return nil, err
	}
	return ligne, nil
}

// annulerLigne défait l'effet d'une ligne existante : une Entree se défait en
// retirant les quantités, une Sortie en les restituant. La cible n'est
// restituée que si son modèle parent appartient à l'entreprise appelante.
// Défaire une entrée déjà consommée depuis (quantité boutique insuffisante)
// est rejeté, même politique que pour une sortie.
func annulerLigne(
	mbRepo repository.ModeleBoutiqueRepository,
	modeleRepo repository.ModeleRepository,
	entrepriseID int64,
	sens string,
	l *entity.LigneMouvement,
) error {
	mb, err := mbRepo.GetForUpdate(l.ModeleBoutiqueID)
	if err != nil {
		return err
	}
	if mb == nil {
		// Le modèle boutique a disparu depuis : rien à restituer.
		return nil
	}
	modele, err := modeleRepo.GetForUpdate(mb.ModeleID)
	if err != nil {
		return err
	}
	if modele == nil {
		return domain.ErrNotFound
	}
	if modele.EntrepriseID != entrepriseID {
		return domain.ErrForbidden
	}

	switch sens {
	case entity.MouvementEntree:
		if mb.Quantite < l.Quantite {
			return &domain.StockInsuffisantError{
				ModeleBoutiqueID: mb.ID,
				Disponible:       mb.Quantite,
				Demande:          l.Quantite,
			}
		}
		mb.Quantite -= l.Quantite
		modele.QuantiteGlobale -= l.Quantite
	case entity.MouvementSortie:
		mb.Quantite += l.Quantite
		modele.QuantiteGlobale += l.Quantite
	default:
		return domain.ErrInvalidInput
	}

	if err := mbRepo.UpdateQuantite(mb.ID, mb.Quantite); err != nil {
		return err
	}
	return modeleRepo.UpdateQuantiteGlobale(modele.ID, modele.QuantiteGlobale)
}
