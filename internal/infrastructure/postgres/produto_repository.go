package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/vendas-api/internal/domain"
	"github.com/jhoicas/vendas-api/internal/domain/entity"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação da porta ProdutoRepository sobre PostgreSQL.
// As condições de pagamento ficam em coluna JSONB.
type ProdutoRepo struct {
	pool *pgxpool.Pool
}

// NewProdutoRepository constrói o adaptador de persistência do catálogo.
func NewProdutoRepository(pool *pgxpool.Pool) *ProdutoRepo {
	return &ProdutoRepo{pool: pool}
}

// Criar cadastra um produto; código é chave única.
func (r *ProdutoRepo) Criar(ctx context.Context, p *entity.Produto) error {
	condicoes, err := json.Marshal(p.Condicoes)
	if err != nil {
		return fmt.Errorf("marshal condições: %w", err)
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO produtos (codigo, nome, condicoes) VALUES ($1, $2, $3)`,
		p.Codigo, p.Nome, condicoes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// BuscarPorCodigo devolve o produto; nil quando não existe.
func (r *ProdutoRepo) BuscarPorCodigo(ctx context.Context, codigo string) (*entity.Produto, error) {
	var p entity.Produto
	var condicoes []byte
	err := r.pool.QueryRow(ctx,
		`SELECT codigo, nome, condicoes FROM produtos WHERE codigo = $1`, codigo,
	).Scan(&p.Codigo, &p.Nome, &condicoes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	if err := json.Unmarshal(condicoes, &p.Condicoes); err != nil {
		return nil, fmt.Errorf("unmarshal condições: %w", err)
	}
	return &p, nil
}

// Atualizar substitui nome e condições do produto.
func (r *ProdutoRepo) Atualizar(ctx context.Context, p *entity.Produto) error {
	condicoes, err := json.Marshal(p.Condicoes)
	if err != nil {
		return fmt.Errorf("marshal condições: %w", err)
	}
	_, err = r.pool.Exec(ctx,
		`UPDATE produtos SET nome = $2, condicoes = $3 WHERE codigo = $1`,
		p.Codigo, p.Nome, condicoes,
	)
	if err != nil {
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// Listar devolve o catálogo em ordem de código.
func (r *ProdutoRepo) Listar(ctx context.Context) ([]*entity.Produto, error) {
	rows, err := r.pool.Query(ctx, `SELECT codigo, nome, condicoes FROM produtos ORDER BY codigo`)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()

	var lista []*entity.Produto
	for rows.Next() {
		var p entity.Produto
		var condicoes []byte
		if err := rows.Scan(&p.Codigo, &p.Nome, &condicoes); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		if err := json.Unmarshal(condicoes, &p.Condicoes); err != nil {
			return nil, fmt.Errorf("unmarshal condições: %w", err)
		}
		lista = append(lista, &p)
	}
	return lista, rows.Err()
}
