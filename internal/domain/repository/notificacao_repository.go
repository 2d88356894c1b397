package repository

import (
	"context"

	"github.com/jhoicas/vendas-api/internal/domain/entity"
)

// NotificacaoRepository porta de persistência de notificações.
type NotificacaoRepository interface {
	Criar(ctx context.Context, n *entity.Notificacao) error
	BuscarPorID(ctx context.Context, id string) (*entity.Notificacao, error)
	// ListarPorUsuario devolve as notificações em que o username está envolvido.
	ListarPorUsuario(ctx context.Context, username string) ([]*entity.Notificacao, error)
	// MarcarLida adiciona o username ao conjunto de leitura; repetir a chamada
	// não duplica a entrada.
	MarcarLida(ctx context.Context, id, username string) error
}

// LogRepository porta de persistência da trilha de auditoria.
type LogRepository interface {
	Registrar(ctx context.Context, l *entity.RegistroLog) error
	Listar(ctx context.Context, limite int) ([]*entity.RegistroLog, error)
}
