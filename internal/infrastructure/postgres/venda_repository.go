package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/vendas-api/internal/domain"
	"github.com/jhoicas/vendas-api/internal/domain/entity"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
)

var _ repository.VendaRepository = (*VendaRepo)(nil)

// VendaRepo implementação da porta VendaRepository sobre PostgreSQL.
// O número sequencial vem da sequence vendas_numero_seq, garantindo unicidade
// mesmo com registros concorrentes.
type VendaRepo struct {
	pool *pgxpool.Pool
}

// NewVendaRepository constrói o adaptador de persistência de vendas.
func NewVendaRepository(pool *pgxpool.Pool) *VendaRepo {
	return &VendaRepo{pool: pool}
}

const colunasVenda = `id, numero, vendedor_id, vendedor_nome, cliente, tipo_cliente, cnpj,
	endereco, cidade, uf, email, telefone, produto_codigo, produto_avulso,
	condicao_pagamento, valor_tabela, valor_final, valor_parcela,
	quantidade_acessos, status, pos_vendas, observacoes, criado_em`

// Criar persiste a venda e atribui o número sequencial em v.Numero.
func (r *VendaRepo) Criar(ctx context.Context, v *entity.Venda) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	query := `
		INSERT INTO vendas (` + colunasVenda + `)
		VALUES ($1, nextval('vendas_numero_seq'), $2, $3, $4, $5, $6, $7, $8, $9,
			$10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING numero`
	err := r.pool.QueryRow(ctx, query,
		v.ID, v.VendedorID, v.VendedorNome, v.Cliente, v.TipoCliente, v.CNPJ,
		v.Endereco, v.Cidade, v.UF, v.Email, v.Telefone,
		v.ProdutoCodigo, v.ProdutoAvulso, v.CondicaoPagamento,
		v.ValorTabela, v.ValorFinal, v.ValorParcela, v.QuantidadeAcessos, v.Status,
		v.PosVendas, v.Observacoes, v.CriadoEm,
	).Scan(&v.Numero)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert venda: %w", err)
	}
	return nil
}

// BuscarPorNumero devolve a venda; nil quando não existe.
func (r *VendaRepo) BuscarPorNumero(ctx context.Context, numero int64) (*entity.Venda, error) {
	query := `SELECT ` + colunasVenda + ` FROM vendas WHERE numero = $1`
	var v entity.Venda
	err := r.pool.QueryRow(ctx, query, numero).Scan(
		&v.ID, &v.Numero, &v.VendedorID, &v.VendedorNome, &v.Cliente, &v.TipoCliente, &v.CNPJ,
		&v.Endereco, &v.Cidade, &v.UF, &v.Email, &v.Telefone,
		&v.ProdutoCodigo, &v.ProdutoAvulso, &v.CondicaoPagamento,
		&v.ValorTabela, &v.ValorFinal, &v.ValorParcela, &v.QuantidadeAcessos, &v.Status,
		&v.PosVendas, &v.Observacoes, &v.CriadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venda: %w", err)
	}
	return &v, nil
}

// Atualizar substitui os campos editáveis da venda.
func (r *VendaRepo) Atualizar(ctx context.Context, v *entity.Venda) error {
	query := `
		UPDATE vendas SET status = $2, pos_vendas = $3, observacoes = $4, valor_final = $5
		WHERE numero = $1`
	_, err := r.pool.Exec(ctx, query, v.Numero, v.Status, v.PosVendas, v.Observacoes, v.ValorFinal)
	if err != nil {
		return fmt.Errorf("update venda: %w", err)
	}
	return nil
}

// AtualizarStatus troca somente o status.
func (r *VendaRepo) AtualizarStatus(ctx context.Context, numero int64, status string) error {
	_, err := r.pool.Exec(ctx, `UPDATE vendas SET status = $2 WHERE numero = $1`, numero, status)
	if err != nil {
		return fmt.Errorf("update status venda: %w", err)
	}
	return nil
}

// Listar devolve as vendas do filtro, mais recentes primeiro.
func (r *VendaRepo) Listar(ctx context.Context, f repository.FiltroVendas) ([]*entity.Venda, error) {
	filtro := &Filtro{}
	if f.VendedorID != "" {
		filtro.Igual("vendedor_id", f.VendedorID)
	}
	if f.Cliente != "" {
		filtro.Contem("cliente", f.Cliente)
	}
	if f.Status != "" {
		filtro.Igual("status", f.Status)
	}
	if f.PosVenda != "" {
		filtro.ContemItem("pos_vendas", f.PosVenda)
	}
	if !f.DataInicio.IsZero() {
		filtro.MaiorIgual("criado_em", f.DataInicio)
	}
	if !f.DataFim.IsZero() {
		filtro.MenorIgual("criado_em", f.DataFim)
	}
	where, args := filtro.Where()

	query := `SELECT ` + colunasVenda + ` FROM vendas` + where + ` ORDER BY numero DESC`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vendas: %w", err)
	}
	defer rows.Close()

	var lista []*entity.Venda
	for rows.Next() {
		var v entity.Venda
		if err := rows.Scan(
			&v.ID, &v.Numero, &v.VendedorID, &v.VendedorNome, &v.Cliente, &v.TipoCliente, &v.CNPJ,
			&v.Endereco, &v.Cidade, &v.UF, &v.Email, &v.Telefone,
			&v.ProdutoCodigo, &v.ProdutoAvulso, &v.CondicaoPagamento,
			&v.ValorTabela, &v.ValorFinal, &v.ValorParcela, &v.QuantidadeAcessos, &v.Status,
			&v.PosVendas, &v.Observacoes, &v.CriadoEm,
		); err != nil {
			return nil, fmt.Errorf("scan venda: %w", err)
		}
		lista = append(lista, &v)
	}
	return lista, rows.Err()
}

// SomarDoMesPorVendedor soma o valor final das vendas não canceladas do
// vendedor no mês de referência.
func (r *VendaRepo) SomarDoMesPorVendedor(ctx context.Context, vendedorID string, ref time.Time) (decimal.Decimal, error) {
	inicio := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	fim := inicio.AddDate(0, 1, 0)
	query := `
		SELECT COALESCE(SUM(valor_final), 0) FROM vendas
		WHERE vendedor_id = $1 AND status <> $2 AND criado_em >= $3 AND criado_em < $4`
	var soma decimal.Decimal
	err := r.pool.QueryRow(ctx, query, vendedorID, entity.VendaCancelada, inicio, fim).Scan(&soma)
	if err != nil {
		return decimal.Zero, fmt.Errorf("somar vendas do mês: %w", err)
	}
	return soma, nil
}
