package repository

import (
	"context"

	"github.com/jhoicas/vendas-api/internal/domain/entity"
)

// ConfigRepository porta de persistência dos documentos de configuração,
// discriminados por tipo. BuscarVigente devolve o documento mais recente do
// tipo (nil quando não há); documentos por vendedor usam a variação com chave.
type ConfigRepository interface {
	Gravar(ctx context.Context, c *entity.Config) error
	// GravarPorChave substitui o documento do tipo cuja chave (campo do JSON)
	// tem o valor dado; cria se não existir.
	GravarPorChave(ctx context.Context, c *entity.Config, chave, valor string) error
	BuscarVigente(ctx context.Context, tipo string) (*entity.Config, error)
	BuscarPorChave(ctx context.Context, tipo, chave, valor string) (*entity.Config, error)
	ListarPorTipo(ctx context.Context, tipo string) ([]*entity.Config, error)
}
