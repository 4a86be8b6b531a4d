package dto

import "github.com/shopspring/decimal"

// RapportStockResponse agrégats du registre des mouvements, calculés en SQL.
type RapportStockResponse struct {
	BoutiqueID    *int64          `json:"boutiqueId,omitempty"`
	TotalEntrees  int64           `json:"totalEntrees"`
	TotalSorties  int64           `json:"totalSorties"`
	QuantiteStock int64           `json:"quantiteStock"`
	ValeurStock   decimal.Decimal `json:"valeurStock"`
}

// SoldeCaisseResponse solde courant d'une caisse.
type SoldeCaisseResponse struct {
	CaisseID   int64           `json:"caisseId"`
	BoutiqueID int64           `json:"boutiqueId"`
	Nom        string          `json:"nom"`
	Solde      decimal.Decimal `json:"solde"`
}

// RapportCaissesResponse soldes de toutes les caisses de l'entreprise.
type RapportCaissesResponse struct {
	Caisses []SoldeCaisseResponse `json:"caisses"`
	Total   decimal.Decimal       `json:"total"`
}
