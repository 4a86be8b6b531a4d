package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mkonate/boutik-api/internal/application/dto"
	"github.com/mkonate/boutik-api/internal/domain"
	"github.com/mkonate/boutik-api/internal/domain/entity"
	"github.com/mkonate/boutik-api/internal/domain/repository"
	"github.com/mkonate/boutik-api/pkg/jwt"
)

// JWTConfig configuration pour la génération des tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase cas d'usage d'authentification : inscription et connexion.
type UseCase struct {
	userRepo       repository.UserRepository
	entrepriseRepo repository.EntrepriseRepository
	jwtCfg         JWTConfig
}

// NewUseCase construit le cas d'usage d'auth.
func NewUseCase(userRepo repository.UserRepository, entrepriseRepo repository.EntrepriseRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, entrepriseRepo: entrepriseRepo, jwtCfg: jwtCfg}
}

// Register crée un utilisateur : hash bcrypt du mot de passe puis
// persistance. Renvoie ErrEmailAlreadyExists si l'email existe déjà dans
// cette entreprise.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" || in.EntrepriseID == 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.GetByEmailAndEntreprise(in.Email, in.EntrepriseID)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	entreprise, err := uc.entrepriseRepo.GetByID(in.EntrepriseID)
	if err != nil {
		return nil, err
	}
	if entreprise == nil {
		return nil, domain.ErrNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	nom := in.Nom
	if nom == "" {
		nom = in.Email
	}
	role := in.Role
	if role == "" {
		role = entity.RoleVendeur
	}
	user := &entity.User{
		EntrepriseID: in.EntrepriseID,
		Email:        in.Email,
		PasswordHash: string(hash),
		Nom:          nom,
		Role:         role,
		Statut:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login vérifie email/mot de passe, génère le JWT et renvoie token + profil.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Statut != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.EntrepriseID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:           u.ID,
		EntrepriseID: u.EntrepriseID,
		Email:        u.Email,
		Nom:          u.Nom,
		Role:         u.Role,
		Statut:       u.Statut,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
