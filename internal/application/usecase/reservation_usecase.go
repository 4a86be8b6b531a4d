package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/mkonate/boutik-api/internal/application/dto"
	"github.com/mkonate/boutik-api/internal/application/stock"
	"github.com/mkonate/boutik-api/internal/domain"
	"github.com/mkonate/boutik-api/internal/domain/entity"
	"github.com/mkonate/boutik-api/internal/domain/repository"
)

// ReservationUseCase gère le cycle de vie d'une réservation :
// EnAttente -> Confirmee (sortie de stock + encaissement, une transaction)
// ou EnAttente -> Annulee. Chaque événement dépose une notification.
type ReservationUseCase struct {
	repo             repository.ReservationRepository
	clientRepo       repository.ClientRepository
	mbRepo           repository.ModeleBoutiqueRepository
	boutiqueRepo     repository.BoutiqueRepository
	notificationRepo repository.NotificationRepository
	stockUC          *stock.UseCase
	txRunner         ReservationTxRunner
}

// NewReservationUseCase construit le cas d'usage.
func NewReservationUseCase(
	repo repository.ReservationRepository,
	clientRepo repository.ClientRepository,
	mbRepo repository.ModeleBoutiqueRepository,
	boutiqueRepo repository.BoutiqueRepository,
	notificationRepo repository.NotificationRepository,
	stockUC *stock.UseCase,
	txRunner ReservationTxRunner,
) *ReservationUseCase {
	return &ReservationUseCase{
		repo:             repo,
		clientRepo:       clientRepo,
		mbRepo:           mbRepo,
		boutiqueRepo:     boutiqueRepo,
		notificationRepo: notificationRepo,
		stockUC:          stockUC,
		txRunner:         txRunner,
	}
}

// Create enregistre une réservation EnAttente. Le stock n'est pas touché :
// il ne bouge qu'à la confirmation.
func (uc *ReservationUseCase) Create(entrepriseID, userID int64, in dto.CreateReservationRequest) (*dto.ReservationResponse, error) {
	if in.Quantite <= 0 || in.Montant.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	boutique, err := uc.boutiqueRepo.GetByID(in.BoutiqueID)
	if err != nil {
		return nil, err
	}
	if boutique == nil || boutique.EntrepriseID != entrepriseID {
		return nil, domain.ErrNotFound
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil || client.EntrepriseID != entrepriseID {
		return nil, domain.ErrNotFound
	}
	mb, err := uc.mbRepo.GetByID(in.ModeleBoutiqueID)
	if err != nil {
		return nil, err
	}
	if mb == nil {
		return nil, &domain.ModeleBoutiqueIntrouvableError{ModeleBoutiqueID: in.ModeleBoutiqueID}
	}

	now := time.Now()
	reservation := &entity.Reservation{
		EntrepriseID:     entrepriseID,
		BoutiqueID:       in.BoutiqueID,
		ClientID:         in.ClientID,
		ModeleBoutiqueID: in.ModeleBoutiqueID,
		Quantite:         in.Quantite,
		Montant:          in.Montant,
		Statut:           entity.ReservationEnAttente,
		CreatedBy:        userID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(reservation); err != nil {
		return nil, err
	}

	uc.notifier(entrepriseID, "Nouvelle réservation",
		fmt.Sprintf("Réservation #%d : %s, %d article(s)", reservation.ID, client.Nom, reservation.Quantite))

	return toReservationResponse(reservation), nil
}

// Confirmer passe la réservation à Confirmee. Dans la même transaction :
// sortie de stock mono-ligne via le registre des mouvements, encaissement du
// montant dans la caisse indiquée, mise à jour du statut. Un stock
// insuffisant annule tout.
func (uc *ReservationUseCase) Confirmer(ctx context.Context, entrepriseID, userID, reservationID, caisseID int64) (*dto.ReservationResponse, error) {
	var reservation *entity.Reservation
	now := time.Now()

	err := uc.txRunner.RunReservation(ctx, func(
		movRepo repository.MouvementStockRepository,
		mbRepo repository.ModeleBoutiqueRepository,
		modeleRepo repository.ModeleRepository,
		reservationRepo repository.ReservationRepository,
		caisseRepo repository.CaisseRepository,
	) error {
		var err error
		reservation, err = reservationRepo.GetForUpdate(reservationID)
		if err != nil {
			return err
		}
		if reservation == nil {
			return domain.ErrNotFound
		}
		if reservation.EntrepriseID != entrepriseID {
			return domain.ErrForbidden
		}
		if reservation.Statut != entity.ReservationEnAttente {
			return domain.ErrConflict
		}

		caisse, err := caisseRepo.GetForUpdate(caisseID)
		if err != nil {
			return err
		}
		if caisse == nil || caisse.EntrepriseID != entrepriseID {
			return domain.ErrNotFound
		}

		if _, err := uc.stockUC.SortieInTx(
			movRepo, mbRepo, modeleRepo,
			entrepriseID, reservation.BoutiqueID, userID,
			stock.LigneInput{ModeleBoutiqueID: reservation.ModeleBoutiqueID, Quantite: reservation.Quantite},
			now,
		); err != nil {
			return err
		}

		nouveauSolde := caisse.Solde.Add(reservation.Montant)
		if err := caisseRepo.UpdateSolde(caisse.ID, nouveauSolde); err != nil {
			return err
		}
		if err := caisseRepo.CreateMouvement(&entity.MouvementCaisse{
			CaisseID:  caisse.ID,
			Type:      entity.CaisseEncaissement,
			Montant:   reservation.Montant,
			Motif:     fmt.Sprintf("Réservation #%d", reservation.ID),
			CreatedBy: userID,
			CreatedAt: now,
		}); err != nil {
			return err
		}

		reservation.Statut = entity.ReservationConfirmee
		reservation.UpdatedAt = now
		return reservationRepo.Update(reservation)
	})
	if err != nil {
		return nil, err
	}

	uc.notifier(entrepriseID, "Réservation confirmée",
		fmt.Sprintf("Réservation #%d confirmée, %d article(s) sortis du stock", reservation.ID, reservation.Quantite))

	return toReservationResponse(reservation), nil
}

// Annuler passe la réservation à Annulee (aucun effet sur le stock, rien n'a
// été sorti).
func (uc *ReservationUseCase) Annuler(entrepriseID, reservationID int64) (*dto.ReservationResponse, error) {
	reservation, err := uc.repo.GetByID(reservationID)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, domain.ErrNotFound
	}
	if reservation.EntrepriseID != entrepriseID {
		return nil, domain.ErrForbidden
	}
	if reservation.Statut != entity.ReservationEnAttente {
		return nil, domain.ErrConflict
	}
	reservation.Statut = entity.ReservationAnnulee
	reservation.UpdatedAt = time.Now()
	if err := uc.repo.Update(reservation); err != nil {
		return nil, err
	}
	return toReservationResponse(reservation), nil
}

// List liste les réservations de l'entreprise avec pagination et total.
func (uc *ReservationUseCase) List(entrepriseID int64, page dto.PageRequest) (*dto.ReservationListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByEntreprise(entrepriseID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.CountByEntreprise(entrepriseID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReservationResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReservationResponse(r))
	}
	return &dto.ReservationListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, PageSize: page.PageSize, Total: total},
	}, nil
}

// notifier dépose une notification ; un échec n'interrompt pas l'opération
// métier qui vient de réussir.
func (uc *ReservationUseCase) notifier(entrepriseID int64, titre, message string) {
	_ = uc.notificationRepo.Create(&entity.Notification{
		EntrepriseID: entrepriseID,
		Titre:        titre,
		Message:      message,
		CreatedAt:    time.Now(),
	})
}

func toReservationResponse(r *entity.Reservation) *dto.ReservationResponse {
	if r == nil {
		return nil
	}
	return &dto.ReservationResponse{
		ID:               r.ID,
		BoutiqueID:       r.BoutiqueID,
		ClientID:         r.ClientID,
		ModeleBoutiqueID: r.ModeleBoutiqueID,
		Quantite:         r.Quantite,
		Montant:          r.Montant,
		Statut:           r.Statut,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}
