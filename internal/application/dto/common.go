package dto

// PageRequest pagination des listages : numéro de page (depuis 1) et taille.
type PageRequest struct {
	Page     int `query:"page"`
	PageSize int `query:"pageSize"`
}

// DefaultPage applique les valeurs par défaut et borne la taille de page.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

// Limit renvoie la limite SQL correspondante.
func (p PageRequest) Limit() int { return p.PageSize }

// Offset renvoie le décalage SQL correspondant.
func (p PageRequest) Offset() int { return (p.Page - 1) * p.PageSize }

// PageResponse métadonnées de page dans les réponses.
type PageResponse struct {
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
	Total    int64 `json:"total"`
}

// ErrorResponse corps d'erreur HTTP standard.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StatusResponse corps d'erreur hérité du contrat stock publié :
// {status:"ERROR", message:"..."}. Conservé pour les clients existants.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
