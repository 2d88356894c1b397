package repository

import (
	"context"

	"github.com/jhoicas/vendas-api/internal/domain/entity"
)

// ProdutoRepository porta de persistência do catálogo.
type ProdutoRepository interface {
	Criar(ctx context.Context, p *entity.Produto) error
	BuscarPorCodigo(ctx context.Context, codigo string) (*entity.Produto, error)
	Atualizar(ctx context.Context, p *entity.Produto) error
	Listar(ctx context.Context) ([]*entity.Produto, error)
}
