package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/vendas-api/internal/domain/entity"
)

// FiltroVendas filtros opcionais da listagem de vendas. Campos de texto são
// comparados por substring sem distinção de caixa; enums por igualdade.
type FiltroVendas struct {
	VendedorID string
	Cliente    string
	Status     string
	PosVenda   string // username presente na lista de pós-vendas
	DataInicio time.Time
	DataFim    time.Time
}

// VendaRepository porta de persistência de vendas.
type VendaRepository interface {
	// Criar persiste a venda e atribui o número sequencial (único) em v.Numero.
	Criar(ctx context.Context, v *entity.Venda) error
	BuscarPorNumero(ctx context.Context, numero int64) (*entity.Venda, error)
	Atualizar(ctx context.Context, v *entity.Venda) error
	AtualizarStatus(ctx context.Context, numero int64, status string) error
	Listar(ctx context.Context, f FiltroVendas) ([]*entity.Venda, error)
	// SomarDoMesPorVendedor soma o valor final das vendas não canceladas do
	// vendedor no mês de referência.
	SomarDoMesPorVendedor(ctx context.Context, vendedorID string, ref time.Time) (decimal.Decimal, error)
}
