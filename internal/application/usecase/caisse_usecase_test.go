package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkonate/boutik-api/internal/application/dto"
	"github.com/mkonate/boutik-api/internal/application/usecase"
	"github.com/mkonate/boutik-api/internal/domain"
	"github.com/mkonate/boutik-api/internal/domain/entity"
	"github.com/mkonate/boutik-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositories factices
// ──────────────────────────────────────────────────────────────────────────────

type fakeCaisseRepo struct {
	caisses    map[int64]entity.Caisse
	mouvements []entity.MouvementCaisse
	nextID     int64
	nextMovID  int64
}

func newFakeCaisseRepo() *fakeCaisseRepo {
	return &fakeCaisseRepo{caisses: map[int64]entity.Caisse{}}
}

func (r *fakeCaisseRepo) Create(c *entity.Caisse) error {
	r.nextID++
	c.ID = r.nextID
	r.caisses[c.ID] = *c
	return nil
}

func (r *fakeCaisseRepo) GetByID(id int64) (*entity.Caisse, error) {
	c, ok := r.caisses[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *fakeCaisseRepo) GetForUpdate(id int64) (*entity.Caisse, error) { return r.GetByID(id) }

func (r *fakeCaisseRepo) UpdateSolde(id int64, solde decimal.Decimal) error {
	c := r.caisses[id]
	c.Solde = solde
	r.caisses[id] = c
	return nil
}

func (r *fakeCaisseRepo) Update(c *entity.Caisse) error { r.caisses[c.ID] = *c; return nil }

func (r *fakeCaisseRepo) ListByEntreprise(entrepriseID int64, _, _ int) ([]*entity.Caisse, error) {
	var out []*entity.Caisse
	for id := int64(1); id <= r.nextID; id++ {
		if c, ok := r.caisses[id]; ok && c.EntrepriseID == entrepriseID {
			cp := c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCaisseRepo) CountByEntreprise(entrepriseID int64) (int64, error) {
	var n int64
	for _, c := range r.caisses {
		if c.EntrepriseID == entrepriseID {
			n++
		}
	}
	return n, nil
}

func (r *fakeCaisseRepo) Delete(id int64) error { delete(r.caisses, id); return nil }

func (r *fakeCaisseRepo) CreateMouvement(m *entity.MouvementCaisse) error {
	r.nextMovID++
	m.ID = r.nextMovID
	r.mouvements = append(r.mouvements, *m)
	return nil
}

func (r *fakeCaisseRepo) ListMouvements(caisseID int64, _, _ int) ([]*entity.MouvementCaisse, error) {
	var out []*entity.MouvementCaisse
	for i := len(r.mouvements) - 1; i >= 0; i-- {
		if r.mouvements[i].CaisseID == caisseID {
			cp := r.mouvements[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCaisseRepo) CountMouvements(caisseID int64) (int64, error) {
	var n int64
	for _, m := range r.mouvements {
		if m.CaisseID == caisseID {
			n++
		}
	}
	return n, nil
}

type fakeCaisseBoutiqueRepo struct {
	boutiques map[int64]entity.Boutique
}

func (r *fakeCaisseBoutiqueRepo) Create(b *entity.Boutique) error { r.boutiques[b.ID] = *b; return nil }
func (r *fakeCaisseBoutiqueRepo) GetByID(id int64) (*entity.Boutique, error) {
	b, ok := r.boutiques[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}
func (r *fakeCaisseBoutiqueRepo) Update(b *entity.Boutique) error { r.boutiques[b.ID] = *b; return nil }
func (r *fakeCaisseBoutiqueRepo) ListByEntreprise(int64, int, int) ([]*entity.Boutique, error) {
	return nil, nil
}
func (r *fakeCaisseBoutiqueRepo) Delete(id int64) error { delete(r.boutiques, id); return nil }

// fakeCaisseTxRunner passe directement le repository : les factices étant en
// mémoire, l'atomicité testée ici est celle de la logique (refus avant toute
// écriture), pas celle du moteur SQL.
type fakeCaisseTxRunner struct{ repo *fakeCaisseRepo }

func (t *fakeCaisseTxRunner) RunCaisse(_ context.Context, fn func(repository.CaisseRepository) error) error {
	return fn(t.repo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Décor
// ──────────────────────────────────────────────────────────────────────────────

func newCaisseFixture(t *testing.T) (*fakeCaisseRepo, *usecase.CaisseUseCase, int64) {
	t.Helper()
	repo := newFakeCaisseRepo()
	now := time.Now()
	boutiqueRepo := &fakeCaisseBoutiqueRepo{boutiques: map[int64]entity.Boutique{
		10: {ID: 10, EntrepriseID: 1, Nom: "Boutique Centre", CreatedAt: now, UpdatedAt: now},
	}}
	uc := usecase.NewCaisseUseCase(repo, boutiqueRepo, &fakeCaisseTxRunner{repo})

	created, err := uc.Create(1, dto.CreateCaisseRequest{BoutiqueID: 10, Nom: "Caisse principale"})
	require.NoError(t, err)
	require.True(t, created.Solde.IsZero(), "une caisse doit ouvrir à solde nul")
	return repo, uc, created.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCaisse_EncaissementPuisDecaissement(t *testing.T) {
	repo, uc, caisseID := newCaisseFixture(t)
	ctx := context.Background()

	_, err := uc.EnregistrerMouvement(ctx, 1, 7, caisseID, dto.MouvementCaisseRequest{
		Type: entity.CaisseEncaissement, Montant: decimal.NewFromInt(25000), Motif: "Vente comptoir",
	})
	require.NoError(t, err)

	mouvement, err := uc.EnregistrerMouvement(ctx, 1, 7, caisseID, dto.MouvementCaisseRequest{
		Type: entity.CaisseDecaissement, Montant: decimal.NewFromInt(5500), Motif: "Achat fournitures",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CaisseDecaissement, mouvement.Type)

	// Solde = 25000 - 5500, les deux mouvements journalisés.
	assert.True(t, repo.caisses[caisseID].Solde.Equal(decimal.NewFromInt(19500)),
		"solde attendu 19500, obtenu %s", repo.caisses[caisseID].Solde)
	assert.Len(t, repo.mouvements, 2)
}

func TestCaisse_DecaissementSuperieurAuSolde_Refuse(t *testing.T) {
	repo, uc, caisseID := newCaisseFixture(t)
	ctx := context.Background()

	_, err := uc.EnregistrerMouvement(ctx, 1, 7, caisseID, dto.MouvementCaisseRequest{
		Type: entity.CaisseEncaissement, Montant: decimal.NewFromInt(1000),
	})
	require.NoError(t, err)

	_, err = uc.EnregistrerMouvement(ctx, 1, 7, caisseID, dto.MouvementCaisseRequest{
		Type: entity.CaisseDecaissement, Montant: decimal.NewFromInt(1001),
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Le refus ne laisse ni solde modifié ni mouvement journalisé.
	assert.True(t, repo.caisses[caisseID].Solde.Equal(decimal.NewFromInt(1000)))
	assert.Len(t, repo.mouvements, 1)
}

func TestCaisse_MouvementInvalide(t *testing.T) {
	_, uc, caisseID := newCaisseFixture(t)
	ctx := context.Background()

	_, err := uc.EnregistrerMouvement(ctx, 1, 7, caisseID, dto.MouvementCaisseRequest{
		Type: "Virement", Montant: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.EnregistrerMouvement(ctx, 1, 7, caisseID, dto.MouvementCaisseRequest{
		Type: entity.CaisseEncaissement, Montant: decimal.NewFromInt(-5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCaisse_AutreEntreprise_Introuvable(t *testing.T) {
	_, uc, caisseID := newCaisseFixture(t)

	_, err := uc.EnregistrerMouvement(context.Background(), 2, 7, caisseID, dto.MouvementCaisseRequest{
		Type: entity.CaisseEncaissement, Montant: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetByID(2, caisseID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCaisse_SuppressionExigeSoldeNul(t *testing.T) {
	repo, uc, caisseID := newCaisseFixture(t)
	ctx := context.Background()

	_, err := uc.EnregistrerMouvement(ctx, 1, 7, caisseID, dto.MouvementCaisseRequest{
		Type: entity.CaisseEncaissement, Montant: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	err = uc.Delete(1, caisseID)
	assert.ErrorIs(t, err, domain.ErrConflict, "une caisse à solde non nul ne doit pas être supprimable")

	_, err = uc.EnregistrerMouvement(ctx, 1, 7, caisseID, dto.MouvementCaisseRequest{
		Type: entity.CaisseDecaissement, Montant: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(1, caisseID))
	_, ok := repo.caisses[caisseID]
	assert.False(t, ok)
}
