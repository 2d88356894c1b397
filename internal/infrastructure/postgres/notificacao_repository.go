package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/vendas-api/internal/domain/entity"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
)

var _ repository.NotificacaoRepository = (*NotificacaoRepo)(nil)

// NotificacaoRepo implementação da porta NotificacaoRepository sobre
// PostgreSQL. Envolvidos e lido_por são colunas text[]; a marcação de
// leitura é idempotente no próprio UPDATE.
type NotificacaoRepo struct {
	pool *pgxpool.Pool
}

// NewNotificacaoRepository constrói o adaptador de persistência.
func NewNotificacaoRepository(pool *pgxpool.Pool) *NotificacaoRepo {
	return &NotificacaoRepo{pool: pool}
}

// Criar persiste uma notificação.
func (r *NotificacaoRepo) Criar(ctx context.Context, n *entity.Notificacao) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO notificacoes (id, mensagem, envolvidos, lido_por, criado_em)
		 VALUES ($1, $2, $3, $4, $5)`,
		n.ID, n.Mensagem, n.Envolvidos, n.LidoPor, n.CriadoEm,
	)
	if err != nil {
		return fmt.Errorf("insert notificação: %w", err)
	}
	return nil
}

// BuscarPorID devolve a notificação; nil quando não existe.
func (r *NotificacaoRepo) BuscarPorID(ctx context.Context, id string) (*entity.Notificacao, error) {
	var n entity.Notificacao
	err := r.pool.QueryRow(ctx,
		`SELECT id, mensagem, envolvidos, lido_por, criado_em FROM notificacoes WHERE id = $1`, id,
	).Scan(&n.ID, &n.Mensagem, &n.Envolvidos, &n.LidoPor, &n.CriadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notificação: %w", err)
	}
	return &n, nil
}

// ListarPorUsuario devolve as notificações em que o username está envolvido.
func (r *NotificacaoRepo) ListarPorUsuario(ctx context.Context, username string) ([]*entity.Notificacao, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, mensagem, envolvidos, lido_por, criado_em FROM notificacoes
		 WHERE $1 = ANY(envolvidos) ORDER BY criado_em DESC`, username,
	)
	if err != nil {
		return nil, fmt.Errorf("list notificações: %w", err)
	}
	defer rows.Close()

	var lista []*entity.Notificacao
	for rows.Next() {
		var n entity.Notificacao
		if err := rows.Scan(&n.ID, &n.Mensagem, &n.Envolvidos, &n.LidoPor, &n.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan notificação: %w", err)
		}
		lista = append(lista, &n)
	}
	return lista, rows.Err()
}

// MarcarLida adiciona o username ao conjunto de leitura; a cláusula WHERE
// impede entrada duplicada em chamadas repetidas.
func (r *NotificacaoRepo) MarcarLida(ctx context.Context, id, username string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE notificacoes SET lido_por = array_append(lido_por, $2)
		 WHERE id = $1 AND NOT ($2 = ANY(lido_por))`,
		id, username,
	)
	if err != nil {
		return fmt.Errorf("marcar notificação lida: %w", err)
	}
	return nil
}

var _ repository.LogRepository = (*LogRepo)(nil)

// LogRepo implementação da porta LogRepository sobre PostgreSQL.
type LogRepo struct {
	pool *pgxpool.Pool
}

// NewLogRepository constrói o adaptador da trilha de auditoria.
func NewLogRepository(pool *pgxpool.Pool) *LogRepo {
	return &LogRepo{pool: pool}
}

// Registrar insere uma entrada na trilha.
func (r *LogRepo) Registrar(ctx context.Context, l *entity.RegistroLog) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO logs (id, descricao, autor, data, hora, criado_em)
		 VALUES (gen_random_uuid(), $1, $2, $3, $4, now())`,
		l.Descricao, l.Autor, l.Data, l.Hora,
	)
	if err != nil {
		return fmt.Errorf("insert log: %w", err)
	}
	return nil
}

// Listar devolve as entradas mais recentes.
func (r *LogRepo) Listar(ctx context.Context, limite int) ([]*entity.RegistroLog, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, descricao, autor, data, hora FROM logs
		 ORDER BY criado_em DESC LIMIT $1`, limite,
	)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	defer rows.Close()

	var lista []*entity.RegistroLog
	for rows.Next() {
		var l entity.RegistroLog
		if err := rows.Scan(&l.ID, &l.Descricao, &l.Autor, &l.Data, &l.Hora); err != nil {
			return nil, fmt.Errorf("scan log: %w", err)
		}
		lista = append(lista, &l)
	}
	return lista, rows.Err()
}
