package usecase

import (
	"github.com/mkonate/boutik-api/internal/application/dto"
	"github.com/mkonate/boutik-api/internal/domain"
	"github.com/mkonate/boutik-api/internal/domain/repository"
)

// NotificationUseCase expose le fil de notifications de l'entreprise.
type NotificationUseCase struct {
	repo repository.NotificationRepository
}

func NewNotificationUseCase(repo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// List liste les notifications de la plus récente à la plus ancienne.
func (uc *NotificationUseCase) List(entrepriseID int64, page dto.PageRequest) (*dto.NotificationListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByEntreprise(entrepriseID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.CountByEntreprise(entrepriseID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, dto.NotificationResponse{
			ID:        n.ID,
			Titre:     n.Titre,
			Message:   n.Message,
			Lu:        n.Lu,
			CreatedAt: n.CreatedAt,
		})
	}
	return &dto.NotificationListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, PageSize: page.PageSize, Total: total},
	}, nil
}

// MarquerLue marque une notification comme lue.
func (uc *NotificationUseCase) MarquerLue(entrepriseID, id int64) error {
	notification, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if notification == nil || notification.EntrepriseID != entrepriseID {
		return domain.ErrNotFound
	}
	return uc.repo.MarquerLue(id)
}
