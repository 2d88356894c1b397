package auth

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/domain"
	"github.com/jhoicas/vendas-api/internal/domain/entity"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
	"github.com/jhoicas/vendas-api/pkg/jwt"
)

type fakeUsuarios struct {
	porUsername map[string]*entity.Usuario
}

func (f *fakeUsuarios) Criar(_ context.Context, u *entity.Usuario) error {
	f.porUsername[u.Username] = u
	return nil
}

func (f *fakeUsuarios) BuscarPorID(_ context.Context, id string) (*entity.Usuario, error) {
	for _, u := range f.porUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarios) BuscarPorUsername(_ context.Context, username string) (*entity.Usuario, error) {
	return f.porUsername[username], nil
}

func (f *fakeUsuarios) Atualizar(_ context.Context, u *entity.Usuario) error {
	f.porUsername[u.Username] = u
	return nil
}

func (f *fakeUsuarios) Listar(_ context.Context, _ repository.FiltroUsuarios) ([]*entity.Usuario, error) {
	out := make([]*entity.Usuario, 0, len(f.porUsername))
	for _, u := range f.porUsername {
		out = append(out, u)
	}
	return out, nil
}

type fakeConfigs struct {
	vigentes map[string]*entity.Config
}

func (f *fakeConfigs) Gravar(_ context.Context, c *entity.Config) error {
	f.vigentes[c.Tipo] = c
	return nil
}

func (f *fakeConfigs) GravarPorChave(_ context.Context, c *entity.Config, _, _ string) error {
	f.vigentes[c.Tipo] = c
	return nil
}

func (f *fakeConfigs) BuscarVigente(_ context.Context, tipo string) (*entity.Config, error) {
	return f.vigentes[tipo], nil
}

func (f *fakeConfigs) BuscarPorChave(_ context.Context, tipo, _, _ string) (*entity.Config, error) {
	return f.vigentes[tipo], nil
}

func (f *fakeConfigs) ListarPorTipo(_ context.Context, tipo string) ([]*entity.Config, error) {
	if c := f.vigentes[tipo]; c != nil {
		return []*entity.Config{c}, nil
	}
	return nil, nil
}

type fakeLogs struct {
	registros []*entity.RegistroLog
}

func (f *fakeLogs) Registrar(_ context.Context, l *entity.RegistroLog) error {
	f.registros = append(f.registros, l)
	return nil
}

func (f *fakeLogs) Listar(_ context.Context, _ int) ([]*entity.RegistroLog, error) {
	return f.registros, nil
}

const senhaCerta = "s3nh4-forte"

func usuarioComStatus(status string) *entity.Usuario {
	hash, _ := bcrypt.GenerateFromPassword([]byte(senhaCerta), bcrypt.MinCost)
	return &entity.Usuario{
		ID:        "u-1",
		Username:  "maria.souza",
		Nome:      "Maria Souza",
		SenhaHash: string(hash),
		Papel:     entity.PapelVendedor,
		Status:    status,
		Email:     "maria@empresa.com.br",
	}
}

func novoAuthUC(usuarios ...*entity.Usuario) (*UseCase, *fakeConfigs, *fakeLogs) {
	repo := &fakeUsuarios{porUsername: map[string]*entity.Usuario{}}
	for _, u := range usuarios {
		repo.porUsername[u.Username] = u
	}
	configs := &fakeConfigs{vigentes: map[string]*entity.Config{}}
	logs := &fakeLogs{}
	cfg := JWTConfig{Secret: "segredo-de-teste", ExpMinutes: 60, Issuer: "vendas-api"}
	return NewUseCase(repo, configs, logs, cfg), configs, logs
}

func TestLogin_SucessoGeraTokenERegistraLog(t *testing.T) {
	uc, _, logs := novoAuthUC(usuarioComStatus(entity.StatusAtivo))

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "maria.souza", Senha: senhaCerta})

	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, "maria.souza", out.Usuario.Username)
	assert.Equal(t, entity.PapelVendedor, out.Usuario.Papel)

	userID, username, papel, err := jwt.Parse("segredo-de-teste", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
	assert.Equal(t, "maria.souza", username)
	assert.Equal(t, entity.PapelVendedor, papel)

	require.Len(t, logs.registros, 1)
	assert.Equal(t, "login efetuado", logs.registros[0].Descricao)
	assert.Equal(t, "maria.souza", logs.registros[0].Autor)
}

func TestLogin_SomenteStatusAtivoEntra(t *testing.T) {
	for _, status := range []string{entity.StatusInativo, entity.StatusBloqueado} {
		t.Run(status, func(t *testing.T) {
			uc, _, logs := novoAuthUC(usuarioComStatus(status))

			out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "maria.souza", Senha: senhaCerta})

			assert.ErrorIs(t, err, domain.ErrAcessoNegado)
			assert.Nil(t, out)
			assert.Empty(t, logs.registros)
		})
	}
}

// Username desconhecido e senha errada respondem com o mesmo erro, para não
// denunciar quais contas existem.
func TestLogin_CredenciaisInvalidasSaoIndistinguiveis(t *testing.T) {
	uc, _, _ := novoAuthUC(usuarioComStatus(entity.StatusAtivo))

	_, errUsuario := uc.Login(context.Background(), dto.LoginRequest{Username: "quem.nao.existe", Senha: senhaCerta})
	_, errSenha := uc.Login(context.Background(), dto.LoginRequest{Username: "maria.souza", Senha: "senha-errada"})

	assert.ErrorIs(t, errUsuario, domain.ErrNaoAutorizado)
	assert.ErrorIs(t, errSenha, domain.ErrNaoAutorizado)
}

func gravarControleAcesso(t *testing.T, configs *fakeConfigs, ca entity.ControleAcesso) {
	t.Helper()
	dados, err := json.Marshal(ca)
	require.NoError(t, err)
	configs.vigentes[entity.ConfigControleAcesso] = &entity.Config{Tipo: entity.ConfigControleAcesso, Dados: dados}
}

func as(hora, min int) time.Time {
	return time.Date(2024, time.June, 5, hora, min, 0, 0, time.Local)
}

func TestAcessoLiberado_JanelaDeHorario(t *testing.T) {
	janela := entity.ControleAcesso{Ativo: true, HoraInicio: "08:00", HoraFim: "18:00"}

	casos := []struct {
		nome     string
		agora    time.Time
		esperado bool
	}{
		{nome: "antes da janela bloqueado", agora: as(7, 59), esperado: false},
		{nome: "início da janela liberado", agora: as(8, 0), esperado: true},
		{nome: "dentro da janela liberado", agora: as(12, 30), esperado: true},
		{nome: "último minuto liberado", agora: as(17, 59), esperado: true},
		{nome: "fim da janela bloqueado", agora: as(18, 0), esperado: false},
		{nome: "depois da janela bloqueado", agora: as(21, 15), esperado: false},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			uc, configs, _ := novoAuthUC()
			gravarControleAcesso(t, configs, janela)
			assert.Equal(t, c.esperado, uc.AcessoLiberado(context.Background(), c.agora))
		})
	}
}

func TestAcessoLiberado_FailOpen(t *testing.T) {
	t.Run("sem documento libera", func(t *testing.T) {
		uc, _, _ := novoAuthUC()
		assert.True(t, uc.AcessoLiberado(context.Background(), as(3, 0)))
	})

	t.Run("restrição desligada libera fora da janela", func(t *testing.T) {
		uc, configs, _ := novoAuthUC()
		gravarControleAcesso(t, configs, entity.ControleAcesso{Ativo: false, HoraInicio: "08:00", HoraFim: "18:00"})
		assert.True(t, uc.AcessoLiberado(context.Background(), as(3, 0)))
	})

	t.Run("horário malformado libera", func(t *testing.T) {
		uc, configs, _ := novoAuthUC()
		gravarControleAcesso(t, configs, entity.ControleAcesso{Ativo: true, HoraInicio: "8h00", HoraFim: "18:00"})
		assert.True(t, uc.AcessoLiberado(context.Background(), as(3, 0)))
	})

	t.Run("JSON inválido libera", func(t *testing.T) {
		uc, configs, _ := novoAuthUC()
		configs.vigentes[entity.ConfigControleAcesso] = &entity.Config{Tipo: entity.ConfigControleAcesso, Dados: []byte("{nao-e-json")}
		assert.True(t, uc.AcessoLiberado(context.Background(), as(12, 0)))
	})
}
