package domain

import (
	"errors"
	"fmt"
)

// Erreurs de domaine (sans dépendances externes).
var (
	ErrNotFound           = errors.New("ressource introuvable")
	ErrUserNotFound       = errors.New("utilisateur introuvable")
	ErrEmailAlreadyExists = errors.New("cet email est déjà enregistré")
	ErrInvalidInput       = errors.New("entrée invalide")
	ErrDuplicate          = errors.New("ressource dupliquée")
	ErrUnauthorized       = errors.New("non autorisé")
	ErrForbidden          = errors.New("accès refusé")
	ErrConflict           = errors.New("conflit avec l'état actuel")
	ErrAbonnementExpire   = errors.New("abonnement expiré ou inexistant")
)

// StockInsuffisantError porte le détail d'un rejet de sortie : quel modèle
// boutique manque de stock, combien est disponible et combien était demandé.
type StockInsuffisantError struct {
	ModeleBoutiqueID int64
	Disponible       int64
	Demande          int64
}

func (e *StockInsuffisantError) Error() string {
	return fmt.Sprintf("Stock insuffisant pour le modèle ID %d (disponible: %d, demandé: %d)",
		e.ModeleBoutiqueID, e.Disponible, e.Demande)
}

// ModeleBoutiqueIntrouvableError identifie la ligne fautive d'un mouvement
// dont le modèle boutique n'existe pas.
type ModeleBoutiqueIntrouvableError struct {
	ModeleBoutiqueID int64
}

func (e *ModeleBoutiqueIntrouvableError) Error() string {
	return fmt.Sprintf("Modèle boutique ID %d introuvable", e.ModeleBoutiqueID)
}
