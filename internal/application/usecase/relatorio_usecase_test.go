package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendas-api/internal/domain/entity"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
)

// relatorioVendaRepo aplica o filtro por vendedor, como o repositório real,
// e guarda o último filtro recebido.
type relatorioVendaRepo struct {
	fakeVendaRepo
	ultimoFiltro repository.FiltroVendas
	errListar    error
}

func (f *relatorioVendaRepo) Listar(_ context.Context, filtro repository.FiltroVendas) ([]*entity.Venda, error) {
	f.ultimoFiltro = filtro
	if f.errListar != nil {
		return nil, f.errListar
	}
	out := []*entity.Venda{}
	for _, v := range f.vendas {
		if filtro.VendedorID != "" && v.VendedorID != filtro.VendedorID {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

type fakeGeradorPDF struct {
	vendasRecebidas []*entity.Venda
	filtroRecebido  repository.FiltroVendas
	saida           []byte
	err             error
}

func (f *fakeGeradorPDF) GerarRelatorioVendas(_ context.Context, vendas []*entity.Venda, filtro repository.FiltroVendas) ([]byte, error) {
	f.vendasRecebidas = vendas
	f.filtroRecebido = filtro
	return f.saida, f.err
}

func TestGerarVendasPDF_RenderizaSomenteVendasDoFiltro(t *testing.T) {
	repo := &relatorioVendaRepo{}
	repo.vendas = []*entity.Venda{
		{Numero: 1, VendedorID: "v-1", Cliente: "Padaria Central"},
		{Numero: 2, VendedorID: "v-2", Cliente: "Mercado do Bairro"},
		{Numero: 3, VendedorID: "v-1", Cliente: "Auto Peças Silva"},
	}
	gerador := &fakeGeradorPDF{saida: []byte("%PDF-vendas")}
	uc := NewRelatorioUseCase(repo, gerador)

	filtro := repository.FiltroVendas{VendedorID: "v-1"}
	pdf, err := uc.GerarVendasPDF(context.Background(), filtro)

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-vendas"), pdf)
	assert.Equal(t, filtro, repo.ultimoFiltro)
	assert.Equal(t, filtro, gerador.filtroRecebido)

	require.Len(t, gerador.vendasRecebidas, 2)
	assert.Equal(t, int64(1), gerador.vendasRecebidas[0].Numero)
	assert.Equal(t, int64(3), gerador.vendasRecebidas[1].Numero)
}

func TestGerarVendasPDF_PropagaErros(t *testing.T) {
	t.Run("falha na listagem não chama o gerador", func(t *testing.T) {
		repo := &relatorioVendaRepo{errListar: errors.New("conexão caiu")}
		gerador := &fakeGeradorPDF{}
		uc := NewRelatorioUseCase(repo, gerador)

		_, err := uc.GerarVendasPDF(context.Background(), repository.FiltroVendas{})

		assert.EqualError(t, err, "conexão caiu")
		assert.Nil(t, gerador.vendasRecebidas)
	})

	t.Run("falha na renderização sobe para o chamador", func(t *testing.T) {
		repo := &relatorioVendaRepo{}
		repo.vendas = []*entity.Venda{{Numero: 1, VendedorID: "v-1", Cliente: "Padaria Central"}}
		gerador := &fakeGeradorPDF{err: errors.New("renderização falhou")}
		uc := NewRelatorioUseCase(repo, gerador)

		_, err := uc.GerarVendasPDF(context.Background(), repository.FiltroVendas{VendedorID: "v-1"})

		assert.EqualError(t, err, "renderização falhou")
	})
}
