package dto

import "time"

// NotificationResponse représentation API d'une notification.
type NotificationResponse struct {
	ID        int64     `json:"id"`
	Titre     string    `json:"titre"`
	Message   string    `json:"message"`
	Lu        bool      `json:"lu"`
	CreatedAt time.Time `json:"createdAt"`
}

// NotificationListResponse page de notifications, de la plus récente à la
// plus ancienne.
type NotificationListResponse struct {
	Items []NotificationResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
