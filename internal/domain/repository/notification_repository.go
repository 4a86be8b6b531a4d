package repository

import "github.com/mkonate/boutik-api/internal/domain/entity"

// NotificationRepository définit le port de persistance pour Notification.
type NotificationRepository interface {
	Create(notification *entity.Notification) error
	GetByID(id int64) (*entity.Notification, error)
	ListByEntreprise(entrepriseID int64, limit, offset int) ([]*entity.Notification, error)
	CountByEntreprise(entrepriseID int64) (int64, error)
	MarquerLue(id int64) error
}
