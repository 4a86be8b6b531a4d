package stock

import (
	"context"

	"github.com/mkonate/boutik-api/internal/domain/repository"
)

// TxRunner exécute une fonction dans une transaction de base de données, en
// lui passant des repositories attachés à cette transaction. C'est lui qui
// garantit l'atomicité du registre des mouvements : un lot multi-lignes est
// appliqué entièrement ou pas du tout.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MouvementStockRepository,
		mbRepo repository.ModeleBoutiqueRepository,
		modeleRepo repository.ModeleRepository,
	) error) error
}
