// Package pdf renderiza o relatório de vendas para download no painel.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Relatório de Vendas + data de emissão               │
//	│  Filtros aplicados (vendedor / status / período)             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Nº | Cliente | Vendedor | Valor | Status | Data     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: quantidade de vendas e soma do valor final          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/vendas-api/internal/domain/entity"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
)

var (
	corPrimaria = &props.Color{Red: 0, Green: 70, Blue: 127}
	corCinza    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ptBR formata valores monetários no padrão brasileiro (1.234,56).
var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// MarotoRelatorio gera o relatório de vendas com Maroto v2.
type MarotoRelatorio struct{}

// NewMarotoRelatorio constrói o gerador.
func NewMarotoRelatorio() *MarotoRelatorio { return &MarotoRelatorio{} }

// GerarRelatorioVendas renderiza o PDF e devolve seus bytes.
func (g *MarotoRelatorio) GerarRelatorioVendas(
	_ context.Context,
	vendas []*entity.Venda,
	filtro repository.FiltroVendas,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Vendas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(cabecalho())
	m.AddRows(linhaFiltros(filtro))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.5}))

	m.AddRows(cabecalhoTabela())
	for _, v := range vendas {
		m.AddRows(linhaVenda(v))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.3}))
	m.AddRows(linhaTotais(vendas))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func cabecalho() core.Row {
	emissao := time.Now().Format("02/01/2006 15:04")
	return row.New(12).Add(
		col.New(8).Add(
			text.New("Relatório de Vendas", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: corPrimaria, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Emitido em "+emissao, props.Text{
				Size: 8, Top: 3, Align: align.Right, Color: corCinza,
			}),
		),
	)
}

func linhaFiltros(f repository.FiltroVendas) core.Row {
	desc := "Filtros: "
	if f.VendedorID != "" {
		desc += "vendedor " + f.VendedorID + "  "
	}
	if f.Status != "" {
		desc += "status " + f.Status + "  "
	}
	if !f.DataInicio.IsZero() {
		desc += "de " + f.DataInicio.Format("02/01/2006") + "  "
	}
	if !f.DataFim.IsZero() {
		desc += "até " + f.DataFim.Format("02/01/2006")
	}
	if desc == "Filtros: " {
		desc = "Filtros: nenhum"
	}
	return row.New(6).Add(
		col.New(12).Add(text.New(desc, props.Text{Size: 8, Color: corCinza})),
	)
}

func cabecalhoTabela() core.Row {
	estilo := props.Text{Style: fontstyle.Bold, Size: 9, Color: corPrimaria, Top: 1}
	return row.New(8).Add(
		col.New(1).Add(text.New("Nº", estilo)),
		col.New(4).Add(text.New("Cliente", estilo)),
		col.New(2).Add(text.New("Vendedor", estilo)),
		col.New(2).Add(text.New("Valor", props.Text{Style: fontstyle.Bold, Size: 9, Color: corPrimaria, Top: 1, Align: align.Right})),
		col.New(2).Add(text.New("Status", estilo)),
		col.New(1).Add(text.New("Data", estilo)),
	)
}

func linhaVenda(v *entity.Venda) core.Row {
	return row.New(6).Add(
		col.New(1).Add(text.New(fmt.Sprintf("%d", v.Numero), props.Text{Size: 8})),
		col.New(4).Add(text.New(v.Cliente, props.Text{Size: 8})),
		col.New(2).Add(text.New(v.VendedorNome, props.Text{Size: 8})),
		col.New(2).Add(text.New(moeda(v.ValorFinal), props.Text{Size: 8, Align: align.Right})),
		col.New(2).Add(text.New(v.Status, props.Text{Size: 8})),
		col.New(1).Add(text.New(v.CriadoEm.Format("02/01/06"), props.Text{Size: 8})),
	)
}

func linhaTotais(vendas []*entity.Venda) core.Row {
	total := decimal.Zero
	for _, v := range vendas {
		total = total.Add(v.ValorFinal)
	}
	return row.New(10).Add(
		col.New(7).Add(
			text.New(fmt.Sprintf("%d venda(s)", len(vendas)), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 2,
			}),
		),
		col.New(5).Add(
			text.New("TOTAL: "+moeda(total), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 2, Align: align.Right, Color: corPrimaria,
			}),
		),
	)
}

func moeda(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return ptBR.Sprintf("R$ %.2f", f)
}
