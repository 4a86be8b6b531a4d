// Package pdf génère le bon de mouvement de stock (entrée ou sortie) remis
// au gérant de boutique.
//
// Mise en page A4 :
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Bon d'entrée/sortie  │  Référence + Date           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BOUTIQUE: Nom / Adresse / Tel                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Qté | Modèle | Taille | Prix unitaire               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: quantité totale du mouvement                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/mkonate/boutik-api/internal/application/stock"
	"github.com/mkonate/boutik-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// BonMouvementGenerator implémente stock.BonGenerator avec Maroto v2.
type BonMouvementGenerator struct{}

// NewBonMouvementGenerator construit le générateur.
func NewBonMouvementGenerator() *BonMouvementGenerator { return &BonMouvementGenerator{} }

// GenererBon génère le PDF et renvoie ses octets.
func (g *BonMouvementGenerator) GenererBon(
	_ context.Context,
	mouvement *entity.MouvementStock,
	boutique *entity.Boutique,
	lignes []stock.BonLigne,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Bon de mouvement de stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(mouvement))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if boutique != nil {
		m.AddRows(boutiqueRow(boutique))
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	}

	m.AddRows(tableHeaderRow())
	for _, r := range tableLigneRows(lignes) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(mouvement))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: générer document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow : titre du bon (gauche), référence et date (droite).
func headerRow(mouvement *entity.MouvementStock) core.Row {
	titre := "BON D'ENTRÉE DE STOCK"
	if mouvement.Type == entity.MouvementSortie {
		titre = "BON DE SORTIE DE STOCK"
	}
	date := mouvement.CreatedAt.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(titre, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Réf: "+mouvement.Reference, props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
			text.New("Date: "+date, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// boutiqueRow : coordonnées de la boutique concernée.
func boutiqueRow(boutique *entity.Boutique) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("BOUTIQUE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(boutique.Nom, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Adresse: %s   |   Tel: %s",
				nonEmpty(boutique.Adresse, "—"),
				nonEmpty(boutique.Telephone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qté", 1, align.Center),
		h("Modèle", 6, align.Left),
		h("Taille", 2, align.Center),
		h("Prix unitaire", 3, align.Right),
	)
}

// tableLigneRows : une rangée par ligne du mouvement.
func tableLigneRows(lignes []stock.BonLigne) []core.Row {
	result := make([]core.Row, 0, len(lignes))
	for _, l := range lignes {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Quantite),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				nonEmpty(l.Libelle, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(l.Taille, "—"),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				l.Prix.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow : quantité totale du mouvement, alignée à droite.
func totalRow(mouvement *entity.MouvementStock) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("QUANTITÉ TOTALE:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(fmt.Sprintf("%d", mouvement.Quantite), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
