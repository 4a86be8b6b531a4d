package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Modele représente un modèle du catalogue d'une entreprise.
// QuantiteGlobale est l'agrégat des quantités de toutes les déclinaisons
// boutique ; il est maintenu par le registre des mouvements, sous la même
// transaction que les quantités par boutique.
type Modele struct {
	ID              int64
	EntrepriseID    int64
	Libelle         string
	Photo           string // chemin du fichier envoyé, vide si aucun
	QuantiteGlobale int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ModeleBoutique est la déclinaison d'un Modele dans une Boutique, avec son
// propre prix, sa taille et sa quantité en stock.
type ModeleBoutique struct {
	ID         int64
	ModeleID   int64
	BoutiqueID int64
	Prix       decimal.Decimal
	Taille     string
	Quantite   int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
