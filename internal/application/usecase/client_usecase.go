package usecase

import (
	"time"

	"github.com/mkonate/boutik-api/internal/application/dto"
	"github.com/mkonate/boutik-api/internal/domain"
	"github.com/mkonate/boutik-api/internal/domain/entity"
	"github.com/mkonate/boutik-api/internal/domain/repository"
)

// ClientUseCase cas d'usage CRUD pour les clients finaux.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construit le cas d'usage.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crée un client pour l'entreprise courante.
func (uc *ClientUseCase) Create(entrepriseID int64, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Nom == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		EntrepriseID: entrepriseID,
		Nom:          in.Nom,
		Telephone:    in.Telephone,
		Email:        in.Email,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID renvoie un client, tenant vérifié.
func (uc *ClientUseCase) GetByID(entrepriseID, id int64) (*dto.ClientResponse, error) {
	client, err := uc.getClient(entrepriseID, id)
	if err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Update applique les champs optionnels fournis.
func (uc *ClientUseCase) Update(entrepriseID, id int64, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.getClient(entrepriseID, id)
	if err != nil {
		return nil, err
	}
	if in.Nom != nil {
		client.Nom = *in.Nom
	}
	if in.Telephone != nil {
		client.Telephone = *in.Telephone
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List liste les clients de l'entreprise avec pagination.
func (uc *ClientUseCase) List(entrepriseID int64, page dto.PageRequest) (*dto.ClientListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByEntreprise(entrepriseID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClientResponse(c))
	}
	return &dto.ClientListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, PageSize: page.PageSize, Total: int64(len(items))},
	}, nil
}

// Delete supprime un client, tenant vérifié.
func (uc *ClientUseCase) Delete(entrepriseID, id int64) error {
	if _, err := uc.getClient(entrepriseID, id); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func (uc *ClientUseCase) getClient(entrepriseID, id int64) (*entity.Client, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if client.EntrepriseID != entrepriseID {
		return nil, domain.ErrForbidden
	}
	return client, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:           c.ID,
		EntrepriseID: c.EntrepriseID,
		Nom:          c.Nom,
		Telephone:    c.Telephone,
		Email:        c.Email,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
