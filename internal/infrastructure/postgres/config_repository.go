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

var _ repository.ConfigRepository = (*ConfigRepo)(nil)

// ConfigRepo implementação da porta ConfigRepository sobre PostgreSQL.
// Documentos heterogêneos ficam em coluna JSONB discriminada por tipo;
// o vigente de cada tipo é o de atualização mais recente.
type ConfigRepo struct {
	pool *pgxpool.Pool
}

// NewConfigRepository constrói o adaptador de persistência de configurações.
func NewConfigRepository(pool *pgxpool.Pool) *ConfigRepo {
	return &ConfigRepo{pool: pool}
}

// Gravar insere um novo documento do tipo (passando a ser o vigente).
func (r *ConfigRepo) Gravar(ctx context.Context, c *entity.Config) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO configs (id, tipo, dados, criado_em, atualizado_em)
		 VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Tipo, c.Dados, c.CriadoEm, c.AtualizadoEm,
	)
	if err != nil {
		return fmt.Errorf("insert config: %w", err)
	}
	return nil
}

// GravarPorChave substitui o documento do tipo cujo campo JSON `chave` vale
// `valor`; insere quando não existe.
func (r *ConfigRepo) GravarPorChave(ctx context.Context, c *entity.Config, chave, valor string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE configs SET dados = $3, atualizado_em = $4
		 WHERE tipo = $1 AND dados->>$5 = $2`,
		c.Tipo, valor, c.Dados, c.AtualizadoEm, chave,
	)
	if err != nil {
		return fmt.Errorf("update config por chave: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}
	return r.Gravar(ctx, c)
}

// BuscarVigente devolve o documento mais recente do tipo; nil quando não há.
func (r *ConfigRepo) BuscarVigente(ctx context.Context, tipo string) (*entity.Config, error) {
	var c entity.Config
	err := r.pool.QueryRow(ctx,
		`SELECT id, tipo, dados, criado_em, atualizado_em FROM configs
		 WHERE tipo = $1 ORDER BY atualizado_em DESC LIMIT 1`, tipo,
	).Scan(&c.ID, &c.Tipo, &c.Dados, &c.CriadoEm, &c.AtualizadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get config vigente: %w", err)
	}
	return &c, nil
}

// BuscarPorChave devolve o documento do tipo cujo campo JSON `chave` vale
// `valor`; nil quando não há.
func (r *ConfigRepo) BuscarPorChave(ctx context.Context, tipo, chave, valor string) (*entity.Config, error) {
	var c entity.Config
	err := r.pool.QueryRow(ctx,
		`SELECT id, tipo, dados, criado_em, atualizado_em FROM configs
		 WHERE tipo = $1 AND dados->>$3 = $2
		 ORDER BY atualizado_em DESC LIMIT 1`,
		tipo, valor, chave,
	).Scan(&c.ID, &c.Tipo, &c.Dados, &c.CriadoEm, &c.AtualizadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get config por chave: %w", err)
	}
	return &c, nil
}

// ListarPorTipo devolve todos os documentos do tipo, mais recentes primeiro.
func (r *ConfigRepo) ListarPorTipo(ctx context.Context, tipo string) ([]*entity.Config, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, tipo, dados, criado_em, atualizado_em FROM configs
		 WHERE tipo = $1 ORDER BY atualizado_em DESC`, tipo,
	)
	if err != nil {
		return nil, fmt.Errorf("list configs: %w", err)
	}
	defer rows.Close()

	var lista []*entity.Config
	for rows.Next() {
		var c entity.Config
		if err := rows.Scan(&c.ID, &c.Tipo, &c.Dados, &c.CriadoEm, &c.AtualizadoEm); err != nil {
			return nil, fmt.Errorf("scan config: %w", err)
		}
		lista = append(lista, &c)
	}
	return lista, rows.Err()
}
