package auth

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/domain"
	"github.com/jhoicas/vendas-api/internal/domain/entity"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
	"github.com/jhoicas/vendas-api/pkg/jwt"
)

// Contexto identidade autenticada da requisição corrente, carregada pelo
// middleware a partir da sessão ou do token. Substitui qualquer estado
// ambiente: é passada explicitamente a quem precisa.
type Contexto struct {
	UserID   string
	Username string
	Nome     string
	Papel    string
}

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticação: login e gate de controle de acesso.
type UseCase struct {
	usuarios repository.UsuarioRepository
	configs  repository.ConfigRepository
	logs     repository.LogRepository
	jwtCfg   JWTConfig
}

// NewUseCase constrói o caso de uso de auth.
func NewUseCase(usuarios repository.UsuarioRepository, configs repository.ConfigRepository, logs repository.LogRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{usuarios: usuarios, configs: configs, logs: logs, jwtCfg: jwtCfg}
}

// Login verifica username/senha, exige status ativo e devolve token + usuário.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.usuarios.BuscarPorUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	// Username inexistente responde igual a senha errada.
	if u == nil {
		return nil, domain.ErrNaoAutorizado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(in.Senha)); err != nil {
		return nil, domain.ErrNaoAutorizado
	}
	if u.Status != entity.StatusAtivo {
		return nil, domain.ErrAcessoNegado
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Username, u.Papel, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	agora := time.Now()
	_ = uc.logs.Registrar(ctx, &entity.RegistroLog{
		Descricao: "login efetuado",
		Autor:     u.Username,
		Data:      agora.Format("02/01/2006"),
		Hora:      agora.Format("15:04:05"),
	})

	return &dto.LoginResponse{
		Success: true,
		Token:   token,
		Usuario: dto.UsuarioResponse{
			ID:       u.ID,
			Username: u.Username,
			Nome:     u.Nome,
			Papel:    u.Papel,
			Status:   u.Status,
			Email:    u.Email,
			Telefone: u.Telefone,
		},
	}, nil
}

// AcessoLiberado consulta o documento controle_acesso: com a restrição ativa,
// só libera dentro da janela [hora_inicio, hora_fim). Documento ausente,
// desligado ou malformado libera (fail-open).
func (uc *UseCase) AcessoLiberado(ctx context.Context, agora time.Time) bool {
	doc, err := uc.configs.BuscarVigente(ctx, entity.ConfigControleAcesso)
	if err != nil || doc == nil {
		return true
	}
	var ca entity.ControleAcesso
	if err := json.Unmarshal(doc.Dados, &ca); err != nil {
		return true
	}
	if !ca.Ativo {
		return true
	}
	inicio, err1 := time.Parse("15:04", ca.HoraInicio)
	fim, err2 := time.Parse("15:04", ca.HoraFim)
	if err1 != nil || err2 != nil {
		return true
	}
	min := agora.Hour()*60 + agora.Minute()
	return min >= inicio.Hour()*60+inicio.Minute() && min < fim.Hour()*60+fim.Minute()
}
