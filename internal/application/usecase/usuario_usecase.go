package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/vendas-api/internal/application/auth"
	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/domain"
	"github.com/jhoicas/vendas-api/internal/domain/entity"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
	"github.com/jhoicas/vendas-api/internal/domain/validar"
)

// UsuarioUseCase CRUD de contas de usuário.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
	logs repository.LogRepository
}

// NewUsuarioUseCase constrói o caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository, logs repository.LogRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo, logs: logs}
}

// Criar cria uma conta: valida campos, aplica bcrypt e persiste.
func (uc *UsuarioUseCase) Criar(ctx context.Context, quem auth.Contexto, in dto.CriarUsuarioRequest) (*dto.UsuarioResponse, error) {
	if strings.TrimSpace(in.Username) == "" || strings.TrimSpace(in.Senha) == "" {
		return nil, domain.Validacao("username e senha são obrigatórios")
	}
	if !entity.PapelValido(in.Papel) {
		return nil, domain.Validacao("papel inválido")
	}
	if in.Email != "" && !validar.Email(in.Email) {
		return nil, domain.Validacao("email inválido")
	}
	if in.Telefone != "" && !validar.Telefone(in.Telefone) {
		return nil, domain.Validacao("telefone inválido")
	}
	cota := validar.NormalizarNumero(in.CotaMensal)
	if !validar.Numero(cota) {
		return nil, domain.Validacao("cota_mensal não é numérica")
	}

	existente, err := uc.repo.BuscarPorUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrUsernameJaExiste
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	agora := time.Now()
	nome := strings.TrimSpace(in.Nome)
	if nome == "" {
		nome = in.Username
	}
	u := &entity.Usuario{
		ID:           uuid.New().String(),
		Username:     strings.TrimSpace(in.Username),
		Nome:         nome,
		SenhaHash:    string(hash),
		Papel:        in.Papel,
		Status:       entity.StatusAtivo,
		Email:        in.Email,
		Telefone:     in.Telefone,
		CotaMensal:   paraDecimal(cota),
		PosVendas:    in.PosVendas,
		CriadoEm:     agora,
		AtualizadoEm: agora,
	}
	if err := uc.repo.Criar(ctx, u); err != nil {
		return nil, err
	}

	_ = uc.logs.Registrar(ctx, &entity.RegistroLog{
		Descricao: fmt.Sprintf("usuário %s criado com papel %s", u.Username, u.Papel),
		Autor:     quem.Username,
		Data:      agora.Format("02/01/2006"),
		Hora:      agora.Format("15:04:05"),
	})
	return paraUsuarioResponse(u), nil
}

// Atualizar edição parcial: campos não enviados mantêm o valor anterior.
// Papel ou status fora do enum fechado é rejeitado, nunca aceito por fallback.
func (uc *UsuarioUseCase) Atualizar(ctx context.Context, quem auth.Contexto, id string, in dto.AtualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUsuarioNaoEncontrado
	}

	if in.Papel != nil {
		if !entity.PapelValido(*in.Papel) {
			return nil, domain.Validacao("papel inválido")
		}
		u.Papel = *in.Papel
	}
	if in.Status != nil {
		if !entity.StatusUsuarioValido(*in.Status) {
			return nil, domain.Validacao("status inválido")
		}
		u.Status = *in.Status
	}
	if in.Email != nil {
		if *in.Email != "" && !validar.Email(*in.Email) {
			return nil, domain.Validacao("email inválido")
		}
		u.Email = *in.Email
	}
	if in.Telefone != nil {
		if *in.Telefone != "" && !validar.Telefone(*in.Telefone) {
			return nil, domain.Validacao("telefone inválido")
		}
		u.Telefone = *in.Telefone
	}
	if in.CotaMensal != nil {
		cota := validar.NormalizarNumero(*in.CotaMensal)
		if !validar.Numero(cota) {
			return nil, domain.Validacao("cota_mensal não é numérica")
		}
		u.CotaMensal = paraDecimal(cota)
	}
	if in.Nome != nil && strings.TrimSpace(*in.Nome) != "" {
		u.Nome = strings.TrimSpace(*in.Nome)
	}
	if in.PosVendas != nil {
		u.PosVendas = *in.PosVendas
	}
	if in.Senha != nil && *in.Senha != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Senha), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.SenhaHash = string(hash)
	}
	u.AtualizadoEm = time.Now()

	if err := uc.repo.Atualizar(ctx, u); err != nil {
		return nil, err
	}

	_ = uc.logs.Registrar(ctx, &entity.RegistroLog{
		Descricao: fmt.Sprintf("usuário %s atualizado", u.Username),
		Autor:     quem.Username,
		Data:      u.AtualizadoEm.Format("02/01/2006"),
		Hora:      u.AtualizadoEm.Format("15:04:05"),
	})
	return paraUsuarioResponse(u), nil
}

// SalvarFoto grava a foto (base64) do usuário.
func (uc *UsuarioUseCase) SalvarFoto(ctx context.Context, id, foto string) error {
	u, err := uc.repo.BuscarPorID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUsuarioNaoEncontrado
	}
	u.Foto = foto
	u.AtualizadoEm = time.Now()
	return uc.repo.Atualizar(ctx, u)
}

// BuscarPorID devolve um usuário; nil quando não existe.
func (uc *UsuarioUseCase) BuscarPorID(ctx context.Context, id string) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return paraUsuarioResponse(u), nil
}

// Listar devolve os usuários que batem com o filtro.
func (uc *UsuarioUseCase) Listar(ctx context.Context, f repository.FiltroUsuarios) ([]dto.UsuarioResponse, error) {
	usuarios, err := uc.repo.Listar(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, *paraUsuarioResponse(u))
	}
	return out, nil
}

func paraUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:         u.ID,
		Username:   u.Username,
		Nome:       u.Nome,
		Papel:      u.Papel,
		Status:     u.Status,
		Email:      u.Email,
		Telefone:   u.Telefone,
		CotaMensal: u.CotaMensal.StringFixed(2),
		Foto:       u.Foto,
		PosVendas:  u.PosVendas,
		CriadoEm:   u.CriadoEm.Format(time.RFC3339),
	}
}
