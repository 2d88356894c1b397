package repository

import (
	"context"

	"github.com/jhoicas/vendas-api/internal/domain/entity"
)

// FiltroUsuarios filtros opcionais da listagem de usuários.
type FiltroUsuarios struct {
	Nome   string // substring, sem distinção de caixa
	Papel  string // exato
	Status string // exato
}

// UsuarioRepository porta de persistência de usuários.
type UsuarioRepository interface {
	Criar(ctx context.Context, u *entity.Usuario) error
	BuscarPorID(ctx context.Context, id string) (*entity.Usuario, error)
	BuscarPorUsername(ctx context.Context, username string) (*entity.Usuario, error)
	Atualizar(ctx context.Context, u *entity.Usuario) error
	Listar(ctx context.Context, f FiltroUsuarios) ([]*entity.Usuario, error)
}
