package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkonate/boutik-api/internal/application/dto"
	"github.com/mkonate/boutik-api/internal/application/stock"
	"github.com/mkonate/boutik-api/internal/domain"
	"github.com/mkonate/boutik-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Historique d'une boutique
// ──────────────────────────────────────────────────────────────────────────────

func newQueryFixture(t *testing.T) (*memStore, *stock.UseCase, *stock.QueryUseCase) {
	t.Helper()
	s, uc := newFixture(50)
	queryUC := stock.NewQueryUseCase(&fakeMovRepo{s}, &fakeBoutiqueRepo{s}, &fakeMBRepo{s})
	return s, uc, queryUC
}

func enregistrer(t *testing.T, uc *stock.UseCase, typ string, lignes ...stock.LigneInput) *entity.MouvementStock {
	t.Helper()
	mouvement, _, err := uc.EnregistrerMouvement(context.Background(), stock.MouvementInput{
		EntrepriseID: entrepriseID,
		UserID:       userID,
		BoutiqueID:   boutiqueID,
		Type:         typ,
		Lignes:       lignes,
	})
	require.NoError(t, err)
	return mouvement
}

func TestHistoriqueBoutique_DuPlusRecentAuPlusAncien(t *testing.T) {
	_, uc, queryUC := newQueryFixture(t)
	ctx := context.Background()

	m1 := enregistrer(t, uc, entity.MouvementEntree, stock.LigneInput{ModeleBoutiqueID: mbID, Quantite: 5})
	m2 := enregistrer(t, uc, entity.MouvementEntree, stock.LigneInput{ModeleBoutiqueID: mbID2, Quantite: 3})
	m3 := enregistrer(t, uc, entity.MouvementSortie, stock.LigneInput{ModeleBoutiqueID: mbID, Quantite: 2})

	// Première page de deux : les deux mouvements les plus récents, lignes
	// incluses, avec le total complet.
	page1, err := queryUC.HistoriqueBoutique(ctx, entrepriseID, boutiqueID, dto.PageRequest{Page: 1, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page1.Items, 2)
	assert.Equal(t, m3.ID, page1.Items[0].ID)
	assert.Equal(t, m2.ID, page1.Items[1].ID)
	assert.Len(t, page1.Items[0].Lignes, 1)
	assert.Equal(t, int64(3), page1.Page.Total)
	assert.Equal(t, 1, page1.Page.Page)
	assert.Equal(t, 2, page1.Page.PageSize)

	// Seconde page : le plus ancien, seul, même total.
	page2, err := queryUC.HistoriqueBoutique(ctx, entrepriseID, boutiqueID, dto.PageRequest{Page: 2, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page2.Items, 1)
	assert.Equal(t, m1.ID, page2.Items[0].ID)
	assert.Equal(t, int64(3), page2.Page.Total)
	assert.Equal(t, 2, page2.Page.Page)
}

func TestHistoriqueBoutique_AutreEntreprise_Refuse(t *testing.T) {
	_, uc, queryUC := newQueryFixture(t)
	ctx := context.Background()

	enregistrer(t, uc, entity.MouvementEntree, stock.LigneInput{ModeleBoutiqueID: mbID, Quantite: 5})

	_, err := queryUC.HistoriqueBoutique(ctx, autreEntID, boutiqueID, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = queryUC.HistoriqueBoutique(ctx, entrepriseID, 404, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Historique d'un modèle boutique
// ──────────────────────────────────────────────────────────────────────────────

func TestHistoriqueModeleBoutique_FiltreEtOrdonne(t *testing.T) {
	_, uc, queryUC := newQueryFixture(t)
	ctx := context.Background()

	enregistrer(t, uc, entity.MouvementEntree, stock.LigneInput{ModeleBoutiqueID: mbID, Quantite: 5})
	enregistrer(t, uc, entity.MouvementEntree, stock.LigneInput{ModeleBoutiqueID: mbID2, Quantite: 9})
	enregistrer(t, uc, entity.MouvementSortie, stock.LigneInput{ModeleBoutiqueID: mbID, Quantite: 2})

	out, err := queryUC.HistoriqueModeleBoutique(ctx, entrepriseID, mbID, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 2, "seules les lignes du modèle boutique demandé")
	assert.Equal(t, int64(2), out.Page.Total)

	// La sortie, plus récente, vient avant l'entrée.
	assert.Equal(t, int64(2), out.Items[0].Quantite)
	assert.Equal(t, int64(5), out.Items[1].Quantite)
	assert.Greater(t, out.Items[0].ID, out.Items[1].ID)
}

func TestHistoriqueModeleBoutique_AutreEntreprise_Refuse(t *testing.T) {
	_, _, queryUC := newQueryFixture(t)
	ctx := context.Background()

	// Le modèle boutique de l'entreprise 1 est invisible pour l'entreprise 2,
	// et réciproquement.
	_, err := queryUC.HistoriqueModeleBoutique(ctx, autreEntID, mbID, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = queryUC.HistoriqueModeleBoutique(ctx, entrepriseID, autreMbID, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = queryUC.HistoriqueModeleBoutique(ctx, entrepriseID, 404, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
