package jwt

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims inclut les claims standard JWT plus les champs propres à l'application.
// Role est embarqué pour que le middleware RBAC décide sans requête DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID       int64  `json:"user_id"`
	EntrepriseID int64  `json:"entreprise_id"`
	Role         string `json:"role"` // "admin" | "gerant" | "vendeur"
}

// Generate génère un token JWT signé contenant userID, entrepriseID et role.
func Generate(secret string, userID, entrepriseID int64, role, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vide")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:       userID,
		EntrepriseID: entrepriseID,
		Role:         role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valide le token et renvoie userID, entrepriseID et role.
// Retourne une erreur si le token est invalide, expiré ou mal signé.
func Parse(secret, tokenString string) (userID, entrepriseID int64, role string, err error) {
	if secret == "" {
		return 0, 0, "", fmt.Errorf("jwt: secret vide")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("méthode de signature inattendue: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, 0, "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, 0, "", fmt.Errorf("claims invalides")
	}
	return claims.UserID, claims.EntrepriseID, claims.Role, nil
}
