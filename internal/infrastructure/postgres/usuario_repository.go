package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/vendas-api/internal/domain"
	"github.com/jhoicas/vendas-api/internal/domain/entity"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação da porta UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	pool *pgxpool.Pool
}

// NewUsuarioRepository constrói o adaptador de persistência de usuários.
func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepo {
	return &UsuarioRepo{pool: pool}
}

const colunasUsuario = `id, username, nome, senha_hash, papel, status, email, telefone, cota_mensal, foto, pos_vendas, criado_em, atualizado_em`

// Criar persiste um novo usuário.
func (r *UsuarioRepo) Criar(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (` + colunasUsuario + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.pool.Exec(ctx, query,
		u.ID, u.Username, u.Nome, u.SenhaHash, u.Papel, u.Status,
		u.Email, u.Telefone, u.CotaMensal, u.Foto, u.PosVendas,
		u.CriadoEm, u.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameJaExiste
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// BuscarPorID devolve um usuário por ID; nil quando não existe.
func (r *UsuarioRepo) BuscarPorID(ctx context.Context, id string) (*entity.Usuario, error) {
	return r.buscarUm(ctx, `SELECT `+colunasUsuario+` FROM usuarios WHERE id = $1`, id)
}

// BuscarPorUsername devolve um usuário por username; nil quando não existe.
func (r *UsuarioRepo) BuscarPorUsername(ctx context.Context, username string) (*entity.Usuario, error) {
	return r.buscarUm(ctx, `SELECT `+colunasUsuario+` FROM usuarios WHERE username = $1`, username)
}

func (r *UsuarioRepo) buscarUm(ctx context.Context, query string, arg any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.Nome, &u.SenhaHash, &u.Papel, &u.Status,
		&u.Email, &u.Telefone, &u.CotaMensal, &u.Foto, &u.PosVendas,
		&u.CriadoEm, &u.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// Atualizar atualiza um usuário.
func (r *UsuarioRepo) Atualizar(ctx context.Context, u *entity.Usuario) error {
	query := `
		UPDATE usuarios SET nome = $2, senha_hash = $3, papel = $4, status = $5,
			email = $6, telefone = $7, cota_mensal = $8, foto = $9, pos_vendas = $10,
			atualizado_em = $11
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		u.ID, u.Nome, u.SenhaHash, u.Papel, u.Status,
		u.Email, u.Telefone, u.CotaMensal, u.Foto, u.PosVendas, u.AtualizadoEm,
	)
	if err != nil {
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// Listar devolve usuários conforme o filtro, mais recentes primeiro.
func (r *UsuarioRepo) Listar(ctx context.Context, f repository.FiltroUsuarios) ([]*entity.Usuario, error) {
	filtro := &Filtro{}
	if f.Nome != "" {
		filtro.Contem("nome", f.Nome)
	}
	if f.Papel != "" {
		filtro.Igual("papel", f.Papel)
	}
	if f.Status != "" {
		filtro.Igual("status", f.Status)
	}
	where, args := filtro.Where()

	query := `SELECT ` + colunasUsuario + ` FROM usuarios` + where + ` ORDER BY criado_em DESC`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()

	var lista []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(
			&u.ID, &u.Username, &u.Nome, &u.SenhaHash, &u.Papel, &u.Status,
			&u.Email, &u.Telefone, &u.CotaMensal, &u.Foto, &u.PosVendas,
			&u.CriadoEm, &u.AtualizadoEm,
		); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		lista = append(lista, &u)
	}
	return lista, rows.Err()
}
