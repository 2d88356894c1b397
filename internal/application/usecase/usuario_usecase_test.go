package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/vendas-api/internal/application/auth"
	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/domain"
	"github.com/jhoicas/vendas-api/internal/domain/entity"
)

func novoUsuarioUC() (*UsuarioUseCase, *fakeUsuarioRepo, *fakeLogRepo) {
	repo := &fakeUsuarioRepo{usuarios: map[string]*entity.Usuario{}}
	logs := &fakeLogRepo{}
	return NewUsuarioUseCase(repo, logs), repo, logs
}

func admin() auth.Contexto {
	return auth.Contexto{UserID: "admin-id", Username: "admin", Papel: entity.PapelAdmin}
}

func TestCriarUsuario_AplicaBcryptERegistraLog(t *testing.T) {
	uc, repo, logs := novoUsuarioUC()

	out, err := uc.Criar(context.Background(), admin(), dto.CriarUsuarioRequest{
		Username:   "maria.souza",
		Nome:       "Maria Souza",
		Senha:      "s3nh4-forte",
		Papel:      entity.PapelVendedor,
		Email:      "maria@empresa.com.br",
		CotaMensal: "12000",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusAtivo, out.Status, "conta nova nasce ativa")

	u := repo.usuarios[out.ID]
	require.NotNil(t, u)
	assert.NotEqual(t, "s3nh4-forte", u.SenhaHash, "a senha nunca é gravada em claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte("s3nh4-forte")))

	require.Len(t, logs.registros, 1)
	assert.Equal(t, "admin", logs.registros[0].Autor)
}

func TestCriarUsuario_UsernameDuplicado(t *testing.T) {
	uc, _, _ := novoUsuarioUC()
	_, err := uc.Criar(context.Background(), admin(), dto.CriarUsuarioRequest{
		Username: "maria.souza", Senha: "x", Papel: entity.PapelVendedor,
	})
	require.NoError(t, err)

	_, err = uc.Criar(context.Background(), admin(), dto.CriarUsuarioRequest{
		Username: "maria.souza", Senha: "y", Papel: entity.PapelPosVenda,
	})

	require.ErrorIs(t, err, domain.ErrUsernameJaExiste)
}

func TestCriarUsuario_PapelForaDoEnum(t *testing.T) {
	uc, _, _ := novoUsuarioUC()

	_, err := uc.Criar(context.Background(), admin(), dto.CriarUsuarioRequest{
		Username: "maria.souza", Senha: "x", Papel: "gerente",
	})

	var ev *domain.ErroValidacao
	require.ErrorAs(t, err, &ev)
	assert.Equal(t, "papel inválido", ev.Mensagem)
}

// Ida e volta da edição parcial: só os campos enviados mudam; os demais
// mantêm o valor anterior na releitura.
func TestAtualizarUsuario_ParcialMantemCamposNaoEnviados(t *testing.T) {
	uc, _, _ := novoUsuarioUC()
	criado, err := uc.Criar(context.Background(), admin(), dto.CriarUsuarioRequest{
		Username:   "maria.souza",
		Nome:       "Maria Souza",
		Senha:      "x",
		Papel:      entity.PapelVendedor,
		Email:      "maria@empresa.com.br",
		Telefone:   "11987654321",
		CotaMensal: "12000",
	})
	require.NoError(t, err)

	novoEmail := "maria.souza@empresa.com.br"
	_, err = uc.Atualizar(context.Background(), admin(), criado.ID, dto.AtualizarUsuarioRequest{
		Email: &novoEmail,
	})
	require.NoError(t, err)

	relido, err := uc.BuscarPorID(context.Background(), criado.ID)
	require.NoError(t, err)
	require.NotNil(t, relido)
	assert.Equal(t, novoEmail, relido.Email)
	assert.Equal(t, "Maria Souza", relido.Nome, "nome não enviado deve ser mantido")
	assert.Equal(t, entity.PapelVendedor, relido.Papel)
	assert.Equal(t, "11987654321", relido.Telefone)
	assert.Equal(t, "12000.00", relido.CotaMensal)
}

// Papel desconhecido na edição é rejeitado, nunca aceito por fallback.
func TestAtualizarUsuario_PapelDesconhecidoRejeitado(t *testing.T) {
	uc, repo, _ := novoUsuarioUC()
	criado, err := uc.Criar(context.Background(), admin(), dto.CriarUsuarioRequest{
		Username: "maria.souza", Senha: "x", Papel: entity.PapelVendedor,
	})
	require.NoError(t, err)

	invalido := "superusuario"
	_, err = uc.Atualizar(context.Background(), admin(), criado.ID, dto.AtualizarUsuarioRequest{
		Papel: &invalido,
	})

	var ev *domain.ErroValidacao
	require.ErrorAs(t, err, &ev)
	assert.Equal(t, "papel inválido", ev.Mensagem)
	assert.Equal(t, entity.PapelVendedor, repo.usuarios[criado.ID].Papel,
		"o papel anterior não pode ser trocado pelo valor inválido")
}

func TestAtualizarUsuario_StatusForaDoEnum(t *testing.T) {
	uc, _, _ := novoUsuarioUC()
	criado, err := uc.Criar(context.Background(), admin(), dto.CriarUsuarioRequest{
		Username: "maria.souza", Senha: "x", Papel: entity.PapelVendedor,
	})
	require.NoError(t, err)

	invalido := "suspenso"
	_, err = uc.Atualizar(context.Background(), admin(), criado.ID, dto.AtualizarUsuarioRequest{
		Status: &invalido,
	})

	var ev *domain.ErroValidacao
	require.ErrorAs(t, err, &ev)
	assert.Equal(t, "status inválido", ev.Mensagem)
}

func TestAtualizarUsuario_Inexistente(t *testing.T) {
	uc, _, _ := novoUsuarioUC()

	_, err := uc.Atualizar(context.Background(), admin(), "nao-existe", dto.AtualizarUsuarioRequest{})

	require.ErrorIs(t, err, domain.ErrUsuarioNaoEncontrado)
}
