package entity

import "time"

// Sens d'un mouvement de stock. Le type est fixé à la création et ne change
// jamais ensuite.
const (
	MouvementEntree = "Entree"
	MouvementSortie = "Sortie"
)

// MouvementStock est l'en-tête d'un mouvement de stock (entrée ou sortie)
// d'une boutique. Quantite vaut toujours la somme des quantités des lignes.
type MouvementStock struct {
	ID           int64
	Reference    string // uuid, identifiant métier du mouvement
	EntrepriseID int64
	BoutiqueID   int64
	Type         string // Entree | Sortie
	Quantite     int64
	CreatedBy    int64
	CreatedAt    time.Time
}

// LigneMouvement est une ligne d'un MouvementStock, rattachée à un
// ModeleBoutique. Les lignes appartiennent exclusivement à leur en-tête :
// elles sont supprimées quand celui-ci est supprimé ou ses lignes remplacées.
type LigneMouvement struct {
	ID               int64
	MouvementID      int64
	ModeleBoutiqueID int64
	Quantite         int64
	CreatedAt        time.Time
}
