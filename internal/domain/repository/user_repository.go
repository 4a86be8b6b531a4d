package repository

import "github.com/mkonate/boutik-api/internal/domain/entity"

// UserRepository définit le port de persistance pour User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	GetByEmailAndEntreprise(email string, entrepriseID int64) (*entity.User, error)
	ListByEntreprise(entrepriseID int64, limit, offset int) ([]*entity.User, error)
	Update(user *entity.User) error
}
