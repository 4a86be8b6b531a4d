package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkonate/boutik-api/internal/application/stock"
	"github.com/mkonate/boutik-api/internal/domain"
	"github.com/mkonate/boutik-api/internal/domain/entity"
	"github.com/mkonate/boutik-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Magasin en mémoire + repositories factices
// ──────────────────────────────────────────────────────────────────────────────

// memStore tient tout l'état partagé entre les repositories factices. Le
// TxRunner factice prend un instantané avant chaque lot et le restaure en cas
// d'erreur, ce qui reproduit le rollback de la vraie transaction.
type memStore struct {
	boutiques  map[int64]entity.Boutique
	modeles    map[int64]entity.Modele
	mbs        map[int64]entity.ModeleBoutique
	mouvements map[int64]entity.MouvementStock
	lignes     map[int64]entity.LigneMouvement

	nextMouvementID int64
	nextLigneID     int64
}

func newMemStore() *memStore {
	return &memStore{
		boutiques:  map[int64]entity.Boutique{},
		modeles:    map[int64]entity.Modele{},
		mbs:        map[int64]entity.ModeleBoutique{},
		mouvements: map[int64]entity.MouvementStock{},
		lignes:     map[int64]entity.LigneMouvement{},
	}
}

func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	for k, v := range s.boutiques {
		cp.boutiques[k] = v
	}
	for k, v := range s.modeles {
		cp.modeles[k] = v
	}
	for k, v := range s.mbs {
		cp.mbs[k] = v
	}
	for k, v := range s.mouvements {
		cp.mouvements[k] = v
	}
	for k, v := range s.lignes {
		cp.lignes[k] = v
	}
	cp.nextMouvementID = s.nextMouvementID
	cp.nextLigneID = s.nextLigneID
	return cp
}

func (s *memStore) restore(snap *memStore) {
	*s = *snap
}

type fakeBoutiqueRepo struct{ s *memStore }

func (r *fakeBoutiqueRepo) Create(b *entity.Boutique) error { r.s.boutiques[b.ID] = *b; return nil }
func (r *fakeBoutiqueRepo) GetByID(id int64) (*entity.Boutique, error) {
	b, ok := r.s.boutiques[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}
func (r *fakeBoutiqueRepo) Update(b *entity.Boutique) error { r.s.boutiques[b.ID] = *b; return nil }
func (r *fakeBoutiqueRepo) ListByEntreprise(int64, int, int) ([]*entity.Boutique, error) {
	return nil, nil
}
func (r *fakeBoutiqueRepo) Delete(id int64) error { delete(r.s.boutiques, id); return nil }

type fakeModeleRepo struct{ s *memStore }

func (r *fakeModeleRepo) Create(m *entity.Modele) error { r.s.modeles[m.ID] = *m; return nil }
func (r *fakeModeleRepo) GetByID(id int64) (*entity.Modele, error) {
	m, ok := r.s.modeles[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}
func (r *fakeModeleRepo) GetForUpdate(id int64) (*entity.Modele, error) { return r.GetByID(id) }
func (r *fakeModeleRepo) Update(m *entity.Modele) error                { r.s.modeles[m.ID] = *m; return nil }
func (r *fakeModeleRepo) UpdateQuantiteGlobale(id, quantite int64) error {
	m := r.s.modeles[id]
	m.QuantiteGlobale = quantite
	r.s.modeles[id] = m
	return nil
}
func (r *fakeModeleRepo) UpdatePhoto(id int64, photo string) error {
	m := r.s.modeles[id]
	m.Photo = photo
	r.s.modeles[id] = m
	return nil
}
func (r *fakeModeleRepo) ListByEntreprise(int64, int, int) ([]*entity.Modele, error) {
	return nil, nil
}
func (r *fakeModeleRepo) CountByEntreprise(int64) (int64, error) { return 0, nil }
func (r *fakeModeleRepo) Delete(id int64) error                  { delete(r.s.modeles, id); return nil }

type fakeMBRepo struct{ s *memStore }

func (r *fakeMBRepo) Create(mb *entity.ModeleBoutique) error { r.s.mbs[mb.ID] = *mb; return nil }
func (r *fakeMBRepo) GetByID(id int64) (*entity.ModeleBoutique, error) {
	mb, ok := r.s.mbs[id]
	if !ok {
		return nil, nil
	}
	return &mb, nil
}
func (r *fakeMBRepo) GetForUpdate(id int64) (*entity.ModeleBoutique, error) { return r.GetByID(id) }
func (r *fakeMBRepo) Update(mb *entity.ModeleBoutique) error {
	r.s.mbs[mb.ID] = *mb
	return nil
}
func (r *fakeMBRepo) UpdateQuantite(id, quantite int64) error {
	mb := r.s.mbs[id]
	mb.Quantite = quantite
	r.s.mbs[id] = mb
	return nil
}
func (r *fakeMBRepo) ListByBoutique(int64, int, int) ([]*entity.ModeleBoutique, error) {
	return nil, nil
}
func (r *fakeMBRepo) ListByModele(int64) ([]*entity.ModeleBoutique, error) { return nil, nil }
func (r *fakeMBRepo) Delete(id int64) error                                { delete(r.s.mbs, id); return nil }

type fakeMovRepo struct{ s *memStore }

func (r *fakeMovRepo) Create(m *entity.MouvementStock) error {
	r.s.nextMouvementID++
	m.ID = r.s.nextMouvementID
	r.s.mouvements[m.ID] = *m
	return nil
}
func (r *fakeMovRepo) GetByID(id int64) (*entity.MouvementStock, error) {
	m, ok := r.s.mouvements[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}
func (r *fakeMovRepo) Update(m *entity.MouvementStock) error {
	r.s.mouvements[m.ID] = *m
	return nil
}
func (r *fakeMovRepo) Delete(id int64) error { delete(r.s.mouvements, id); return nil }
func (r *fakeMovRepo) ListByBoutique(boutiqueID int64, limit, offset int) ([]*entity.MouvementStock, error) {
	// Identifiants décroissants, comme le ORDER BY id DESC du vrai repository.
	var out []*entity.MouvementStock
	for id := r.s.nextMouvementID; id >= 1; id-- {
		if m, ok := r.s.mouvements[id]; ok && m.BoutiqueID == boutiqueID {
			cp := m
			out = append(out, &cp)
		}
	}
	return paginer(out, limit, offset), nil
}
func (r *fakeMovRepo) CountByBoutique(boutiqueID int64) (int64, error) {
	var n int64
	for _, m := range r.s.mouvements {
		if m.BoutiqueID == boutiqueID {
			n++
		}
	}
	return n, nil
}
func (r *fakeMovRepo) CreateLigne(l *entity.LigneMouvement) error {
	r.s.nextLigneID++
	l.ID = r.s.nextLigneID
	r.s.lignes[l.ID] = *l
	return nil
}
func (r *fakeMovRepo) ListLignes(mouvementID int64) ([]*entity.LigneMouvement, error) {
	var out []*entity.LigneMouvement
	for id := int64(1); id <= r.s.nextLigneID; id++ {
		if l, ok := r.s.lignes[id]; ok && l.MouvementID == mouvementID {
			cp := l
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (r *fakeMovRepo) DeleteLignes(mouvementID int64) error {
	for id, l := range r.s.lignes {
		if l.MouvementID == mouvementID {
			delete(r.s.lignes, id)
		}
	}
	return nil
}
func (r *fakeMovRepo) ListLignesByModeleBoutique(mbID int64, limit, offset int) ([]*entity.LigneMouvement, error) {
	var out []*entity.LigneMouvement
	for id := r.s.nextLigneID; id >= 1; id-- {
		if l, ok := r.s.lignes[id]; ok && l.ModeleBoutiqueID == mbID {
			cp := l
			out = append(out, &cp)
		}
	}
	return paginer(out, limit, offset), nil
}
func (r *fakeMovRepo) CountLignesByModeleBoutique(mbID int64) (int64, error) {
	var n int64
	for _, l := range r.s.lignes {
		if l.ModeleBoutiqueID == mbID {
			n++
		}
	}
	return n, nil
}

func paginer[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items
}

// fakeTxRunner reproduit la sémantique commit/rollback : l'état est
// instantané avant le lot et restauré si le lot échoue.
type fakeTxRunner struct{ s *memStore }

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MouvementStockRepository,
	mbRepo repository.ModeleBoutiqueRepository,
	modeleRepo repository.ModeleRepository,
) error) error {
	snap := t.s.snapshot()
	if err := fn(&fakeMovRepo{t.s}, &fakeMBRepo{t.s}, &fakeModeleRepo{t.s}); err != nil {
		t.s.restore(snap)
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Décor commun : entreprise 1, boutique 10, modèle 100, modèle boutique 1000
// ──────────────────────────────────────────────────────────────────────────────

const (
	entrepriseID = int64(1)
	autreEntID   = int64(2)
	userID       = int64(7)
	boutiqueID   = int64(10)
	annexeID     = int64(11)
	autreBoutID  = int64(20)
	modeleID     = int64(100)
	autreModID   = int64(200)
	mbID         = int64(1000)
	mbID2        = int64(1001)
	autreMbID    = int64(2000)
)

func newFixture(stockInitial int64) (*memStore, *stock.UseCase) {
	s := newMemStore()
	now := time.Now()
	s.boutiques[boutiqueID] = entity.Boutique{ID: boutiqueID, EntrepriseID: entrepriseID, Nom: "Boutique Centre", CreatedAt: now, UpdatedAt: now}
	s.boutiques[annexeID] = entity.Boutique{ID: annexeID, EntrepriseID: entrepriseID, Nom: "Boutique Annexe", CreatedAt: now, UpdatedAt: now}
	s.modeles[modeleID] = entity.Modele{ID: modeleID, EntrepriseID: entrepriseID, Libelle: "Robe Wax", QuantiteGlobale: stockInitial * 2, CreatedAt: now, UpdatedAt: now}
	s.mbs[mbID] = entity.ModeleBoutique{ID: mbID, ModeleID: modeleID, BoutiqueID: boutiqueID, Taille: "M", Prix: decimal.NewFromInt(15000), Quantite: stockInitial, CreatedAt: now, UpdatedAt: now}
	s.mbs[mbID2] = entity.ModeleBoutique{ID: mbID2, ModeleID: modeleID, BoutiqueID: boutiqueID, Taille: "L", Prix: decimal.NewFromInt(17000), Quantite: stockInitial, CreatedAt: now, UpdatedAt: now}

	// Une seconde entreprise avec son propre catalogue, pour vérifier
	// l'étanchéité entre locataires jusqu'au niveau des lignes.
	s.boutiques[autreBoutID] = entity.Boutique{ID: autreBoutID, EntrepriseID: autreEntID, Nom: "Boutique Rivale", CreatedAt: now, UpdatedAt: now}
	s.modeles[autreModID] = entity.Modele{ID: autreModID, EntrepriseID: autreEntID, Libelle: "Boubou Brodé", QuantiteGlobale: stockInitial, CreatedAt: now, UpdatedAt: now}
	s.mbs[autreMbID] = entity.ModeleBoutique{ID: autreMbID, ModeleID: autreModID, BoutiqueID: autreBoutID, Taille: "M", Prix: decimal.NewFromInt(22000), Quantite: stockInitial, CreatedAt: now, UpdatedAt: now}

	uc := stock.NewUseCase(&fakeTxRunner{s}, &fakeBoutiqueRepo{s})
	return s, uc
}

// ──────────────────────────────────────────────────────────────────────────────
// EnregistrerMouvement
// ──────────────────────────────────────────────────────────────────────────────

func TestEnregistrerMouvement_EntreeMultiLignes(t *testing.T) {
	s, uc := newFixture(10)

	mouvement, lignes, err := uc.EnregistrerMouvement(context.Background(), stock.MouvementInput{
		EntrepriseID: entrepriseID,
		UserID:       userID,
		BoutiqueID:   boutiqueID,
		Type:         entity.MouvementEntree,
		Lignes: []stock.LigneInput{
			{ModeleBoutiqueID: mbID, Quantite: 5},
			{ModeleBoutiqueID: mbID2, Quantite: 3},
		},
	})
	require.NoError(t, err)
	require.Len(t, lignes, 2)

	// L'en-tête porte la somme des lignes et une référence générée.
	assert.Equal(t, int64(8), mouvement.Quantite, "le total de l'en-tête doit être la somme des lignes")
	assert.NotEmpty(t, mouvement.Reference)
	assert.Equal(t, entity.MouvementEntree, mouvement.Type)

	// Les quantités boutique et la quantité globale ont bougé ensemble.
	assert.Equal(t, int64(15), s.mbs[mbID].Quantite)
	assert.Equal(t, int64(13), s.mbs[mbID2].Quantite)
	assert.Equal(t, int64(28), s.modeles[modeleID].QuantiteGlobale)
}

func TestEnregistrerMouvement_SortieDecremente(t *testing.T) {
	s, uc := newFixture(10)

	mouvement, _, err := uc.EnregistrerMouvement(context.Background(), stock.MouvementInput{
		EntrepriseID: entrepriseID,
		UserID:       userID,
		BoutiqueID:   boutiqueID,
		Type:         entity.MouvementSortie,
		Lignes:       []stock.LigneInput{{ModeleBoutiqueID: mbID, Quantite: 4}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4), mouvement.Quantite)
	assert.Equal(t, int64(6), s.mbs[mbID].Quantite)
	assert.Equal(t, int64(16), s.modeles[modeleID].QuantiteGlobale)
}

func TestEnregistrerMouvement_SortieInsuffisante_RejetteLeLotEntier(t *testing.T) {
	s, uc := newFixture(10)

	// La première ligne passerait seule ; la seconde dépasse le disponible :
	// le lot entier doit être annulé.
	_, _, err := uc.EnregistrerMouvement(context.Background(), stock.MouvementInput{
		EntrepriseID: entrepriseID,
		UserID:       userID,
		BoutiqueID:   boutiqueID,
		Type:         entity.MouvementSortie,
		Lignes: []stock.LigneInput{
			{ModeleBoutiqueID: mbID, Quantite: 2},
			{ModeleBoutiqueID: mbID2, Quantite: 15},
		},
	})
	require.Error(t, err)

	var insuffisant *domain.StockInsuffisantError
	require.ErrorAs(t, err, &insuffisant)
	assert.Equal(t, mbID2, insuffisant.ModeleBoutiqueID)
	assert.Contains(t, err.Error(), "disponible: 10, demandé: 15")

	// Aucun état partiel : quantités intactes, aucun mouvement persisté.
	assert.Equal(t, int64(10), s.mbs[mbID].Quantite)
	assert.Equal(t, int64(10), s.mbs[mbID2].Quantite)
	assert.Equal(t, int64(20), s.modeles[modeleID].QuantiteGlobale)
	assert.Empty(t, s.mouvements)
	assert.Empty(t, s.lignes)
}

func TestEnregistrerMouvement_ModeleBoutiqueInconnu_RejetteLeLot(t *testing.T) {
	s, uc := newFixture(10)

	_, _, err := uc.EnregistrerMouvement(context.Background(), stock.MouvementInput{
		EntrepriseID: entrepriseID,
		UserID:       userID,
		BoutiqueID:   boutiqueID,
		Type:         entity.MouvementEntree,
		Lignes: []stock.LigneInput{
			{ModeleBoutiqueID: mbID, Quantite: 2},
			{ModeleBoutiqueID: 9999, Quantite: 1},
		},
	})
	require.Error(t, err)

	var introuvable *domain.ModeleBoutiqueIntrouvableError
	require.ErrorAs(t, err, &introuvable)
	assert.Equal(t, int64(9999), introuvable.ModeleBoutiqueID)

	assert.Equal(t, int64(10), s.mbs[mbID].Quantite, "la ligne valide ne doit pas survivre au rejet du lot")
	assert.Empty(t, s.mouvements)
}

func TestEnregistrerMouvement_EntreesInvalides(t *testing.T) {
	_, uc := newFixture(10)
	ctx := context.Background()

	// Type inconnu
	_, _, err := uc.EnregistrerMouvement(ctx, stock.MouvementInput{
		EntrepriseID: entrepriseID, BoutiqueID: boutiqueID, Type: "Transfert",
		Lignes: []stock.LigneInput{{ModeleBoutiqueID: mbID, Quantite: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Aucune ligne
	_, _, err = uc.EnregistrerMouvement(ctx, stock.MouvementInput{
		EntrepriseID: entrepriseID, BoutiqueID: boutiqueID, Type: entity.MouvementEntree,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Quantité nulle
	_, _, err = uc.EnregistrerMouvement(ctx, stock.MouvementInput{
		EntrepriseID: entrepriseID, BoutiqueID: boutiqueID, Type: entity.MouvementEntree,
		Lignes: []stock.LigneInput{{ModeleBoutiqueID: mbID, Quantite: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEnregistrerMouvement_BoutiqueAutreEntreprise_Refuse(t *testing.T) {
	_, uc := newFixture(10)

	_, _, err := uc.EnregistrerMouvement(context.Background(), stock.MouvementInput{
		EntrepriseID: autreEntID,
		BoutiqueID:   boutiqueID,
		Type:         entity.MouvementEntree,
		Lignes:       []stock.LigneInput{{ModeleBoutiqueID: mbID, Quantite: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEnregistrerMouvement_LigneAutreEntreprise_Refuse(t *testing.T) {
	s, uc := newFixture(10)

	// L'entreprise 2 poste une sortie sur SA boutique, mais une ligne vise un
	// modèle boutique de l'entreprise 1 : le lot entier doit être refusé sans
	// toucher le stock de la victime.
	_, _, err := uc.EnregistrerMouvement(context.Background(), stock.MouvementInput{
		EntrepriseID: autreEntID,
		UserID:       userID,
		BoutiqueID:   autreBoutID,
		Type:         entity.MouvementSortie,
		Lignes: []stock.LigneInput{
			{ModeleBoutiqueID: autreMbID, Quantite: 2},
			{ModeleBoutiqueID: mbID, Quantite: 10},
		},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	assert.Equal(t, int64(10), s.mbs[mbID].Quantite, "le stock de l'entreprise 1 doit rester intact")
	assert.Equal(t, int64(20), s.modeles[modeleID].QuantiteGlobale)
	assert.Equal(t, int64(10), s.mbs[autreMbID].Quantite, "la ligne valide ne doit pas survivre au rejet du lot")
	assert.Empty(t, s.mouvements)
	assert.Empty(t, s.lignes)
}

func TestEnregistrerMouvement_LigneAutreBoutique_Refuse(t *testing.T) {
	s, uc := newFixture(10)

	// Même entreprise, mais la ligne vise un modèle boutique rattaché à une
	// autre boutique que celle du mouvement.
	_, _, err := uc.EnregistrerMouvement(context.Background(), stock.MouvementInput{
		EntrepriseID: entrepriseID,
		UserID:       userID,
		BoutiqueID:   annexeID,
		Type:         entity.MouvementEntree,
		Lignes:       []stock.LigneInput{{ModeleBoutiqueID: mbID, Quantite: 5}},
	})
	var introuvable *domain.ModeleBoutiqueIntrouvableError
	require.ErrorAs(t, err, &introuvable)
	assert.Equal(t, mbID, introuvable.ModeleBoutiqueID)

	assert.Equal(t, int64(10), s.mbs[mbID].Quantite)
	assert.Empty(t, s.mouvements)
}

// ──────────────────────────────────────────────────────────────────────────────
// RemplacerLignes
// ──────────────────────────────────────────────────────────────────────────────

func TestRemplacerLignes_AnnulePuisReapplique(t *testing.T) {
	s, uc := newFixture(10)
	ctx := context.Background()

	mouvement, _, err := uc.EnregistrerMouvement(ctx, stock.MouvementInput{
		EntrepriseID: entrepriseID, UserID: userID, BoutiqueID: boutiqueID,
		Type:   entity.MouvementEntree,
		Lignes: []stock.LigneInput{{ModeleBoutiqueID: mbID, Quantite: 10}},
	})
	require.NoError(t, err)
	require.Equal(t, int64(20), s.mbs[mbID].Quantite)

	// Remplacement 10 → 4 : l'ancien effet est d'abord défait (20 → 10) puis
	// le nouveau appliqué (10 → 14).
	maj, lignes, err := uc.RemplacerLignes(ctx, mouvement.ID, entity.MouvementEntree, stock.RemplacementInput{
		EntrepriseID: entrepriseID,
		Lignes:       []stock.LigneInput{{ModeleBoutiqueID: mbID, Quantite: 4}},
	})
	require.NoError(t, err)
	require.Len(t, lignes, 1)

	assert.Equal(t, int64(4), maj.Quantite)
	assert.Equal(t, int64(14), s.mbs[mbID].Quantite)
	assert.Equal(t, int64(24), s.modeles[modeleID].QuantiteGlobale)

	// Les anciennes lignes ont été remplacées, pas cumulées.
	restantes, err := (&fakeMovRepo{s}).ListLignes(mouvement.ID)
	require.NoError(t, err)
	assert.Len(t, restantes, 1)
	assert.Equal(t, int64(4), restantes[0].Quantite)
}

func TestRemplacerLignes_TypeInattendu_Introuvable(t *testing.T) {
	_, uc := newFixture(10)
	ctx := context.Background()

	mouvement, _, err := uc.EnregistrerMouvement(ctx, stock.MouvementInput{
		EntrepriseID: entrepriseID, UserID: userID, BoutiqueID: boutiqueID,
		Type:   entity.MouvementSortie,
		Lignes: []stock.LigneInput{{ModeleBoutiqueID: mbID, Quantite: 1}},
	})
	require.NoError(t, err)

	// Un PUT sur /stock/entree ne doit pas toucher un mouvement Sortie.
	_, _, err = uc.RemplacerLignes(ctx, mouvement.ID, entity.MouvementEntree, stock.RemplacementInput{
		EntrepriseID: entrepriseID,
		Lignes:       []stock.LigneInput{{ModeleBoutiqueID: mbID, Quantite: 2}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemplacerLignes_EntreeDejaConsommee_Refuse(t *testing.T) {
	s, uc := newFixture(0)
	ctx := context.Background()

	// Entrée de 5, puis sortie de 4 : il ne reste que 1 en boutique.
	entree, _, err := uc.EnregistrerMouvement(ctx, stock.MouvementInput{
		EntrepriseID: entrepriseID, UserID: userID, BoutiqueID: boutiqueID,
		Type:   entity.MouvementEntree,
		Lignes: []stock.LigneInput{{ModeleBoutiqueID: mbID, Quantite: 5}},
	})
	require.NoError(t, err)
	_, _, err = uc.EnregistrerMouvement(ctx, stock.MouvementInput{
		EntrepriseID: entrepriseID, UserID: userID, BoutiqueID: boutiqueID,
		Type:   entity.MouvementSortie,
		Lignes: []stock.LigneInput{{ModeleBoutiqueID: mbID, Quantite: 4}},
	})
	require.NoError(t, err)

	// Défaire l'entrée de 5 exigerait de retirer 5 alors qu'il en reste 1.
	_, _, err = uc.RemplacerLignes(ctx, entree.ID, entity.MouvementEntree, stock.RemplacementInput{
		EntrepriseID: entrepriseID,
		Lignes:       []stock.LigneInput{{ModeleBoutiqueID: mbID, Quantite: 2}},
	})
	var insuffisant *domain.StockInsuffisantError
	require.ErrorAs(t, err, &insuffisant)

	// Rien n'a bougé.
	assert.Equal(t, int64(1), s.mbs[mbID].Quantite)
}

// ──────────────────────────────────────────────────────────────────────────────
// SupprimerMouvement
// ──────────────────────────────────────────────────────────────────────────────

func TestSupprimerMouvement_RestitueLesQuantites(t *testing.T) {
	s, uc := newFixture(10)
	ctx := context.Background()

	mouvement, _, err := uc.EnregistrerMouvement(ctx, stock.MouvementInput{
		EntrepriseID: entrepriseID, UserID: userID, BoutiqueID: boutiqueID,
		Type:   entity.MouvementSortie,
		Lignes: []stock.LigneInput{{ModeleBoutiqueID: mbID, Quantite: 6}},
	})
	require.NoError(t, err)
	require.Equal(t, int64(4), s.mbs[mbID].Quantite)

	require.NoError(t, uc.SupprimerMouvement(ctx, entrepriseID, mouvement.ID))

	// La sortie supprimée restitue les quantités ; en-tête et lignes disparaissent.
	assert.Equal(t, int64(10), s.mbs[mbID].Quantite)
	assert.Equal(t, int64(20), s.modeles[modeleID].QuantiteGlobale)
	assert.Empty(t, s.mouvements)
	assert.Empty(t, s.lignes)
}

func TestSupprimerMouvement_AutreEntreprise_Refuse(t *testing.T) {
	s, uc := newFixture(10)
	ctx := context.Background()

	mouvement, _, err := uc.EnregistrerMouvement(ctx, stock.MouvementInput{
		EntrepriseID: entrepriseID, UserID: userID, BoutiqueID: boutiqueID,
		Type:   entity.MouvementEntree,
		Lignes: []stock.LigneInput{{ModeleBoutiqueID: mbID, Quantite: 3}},
	})
	require.NoError(t, err)

	err = uc.SupprimerMouvement(ctx, autreEntID, mouvement.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Len(t, s.mouvements, 1, "le mouvement d'une autre entreprise ne doit pas être supprimé")
}

func TestSupprimerMouvement_Introuvable(t *testing.T) {
	_, uc := newFixture(10)
	err := uc.SupprimerMouvement(context.Background(), entrepriseID, 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
