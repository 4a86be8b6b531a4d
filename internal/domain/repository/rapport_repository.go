package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// TotauxStock agrégats du registre des mouvements pour une boutique (ou
// toute l'entreprise si aucune boutique n'est précisée).
type TotauxStock struct {
	TotalEntrees  int64
	TotalSorties  int64
	QuantiteStock int64           // somme des quantités en rayon
	ValeurStock   decimal.Decimal // somme quantite * prix des modèles boutique
}

// SoldeCaisse solde courant d'une caisse pour le rapport de trésorerie.
type SoldeCaisse struct {
	CaisseID   int64
	BoutiqueID int64
	Nom        string
	Solde      decimal.Decimal
}

// RapportRepository définit le port de lecture des agrégats de reporting.
// Projections en lecture seule, calculées en SQL.
type RapportRepository interface {
	TotauxStock(ctx context.Context, entrepriseID int64, boutiqueID *int64) (*TotauxStock, error)
	SoldesCaisses(ctx context.Context, entrepriseID int64) ([]*SoldeCaisse, error)
}
