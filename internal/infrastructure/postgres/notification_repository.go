package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mkonate/boutik-api/internal/domain/entity"
	"github.com/mkonate/boutik-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implémentation de NotificationRepository sur PostgreSQL.
type NotificationRepo struct {
	q Querier
}

func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

func (r *NotificationRepo) Create(n *entity.Notification) error {
	query := `
		INSERT INTO notifications (entreprise_id, titre, message, lu, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		n.EntrepriseID, n.Titre, n.Message, n.Lu, n.CreatedAt,
	).Scan(&n.ID)
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

func (r *NotificationRepo) GetByID(id int64) (*entity.Notification, error) {
	query := `
		SELECT id, entreprise_id, titre, message, lu, created_at
		FROM notifications WHERE id = $1`
	var n entity.Notification
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&n.ID, &n.EntrepriseID, &n.Titre, &n.Message, &n.Lu, &n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return &n, nil
}

// ListByEntreprise liste les notifications, de la plus récente à la plus
// ancienne.
func (r *NotificationRepo) ListByEntreprise(entrepriseID int64, limit, offset int) ([]*entity.Notification, error) {
	query := `
		SELECT id, entreprise_id, titre, message, lu, created_at
		FROM notifications WHERE entreprise_id = $1
		ORDER BY id DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, entrepriseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.EntrepriseID, &n.Titre, &n.Message, &n.Lu, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

func (r *NotificationRepo) CountByEntreprise(entrepriseID int64) (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM notifications WHERE entreprise_id = $1`, entrepriseID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count notifications: %w", err)
	}
	return total, nil
}

func (r *NotificationRepo) MarquerLue(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE notifications SET lu = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("marquer lue: %w", err)
	}
	return nil
}
