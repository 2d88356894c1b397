package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vendas-api/internal/application/auth"
	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/domain"
	"github.com/jhoicas/vendas-api/internal/domain/entity"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeVendaRepo struct {
	vendas []*entity.Venda
	seq    int64
	soma   decimal.Decimal // devolvida por SomarDoMesPorVendedor
}

func (f *fakeVendaRepo) Criar(_ context.Context, v *entity.Venda) error {
	f.seq++
	v.Numero = f.seq
	f.vendas = append(f.vendas, v)
	return nil
}

func (f *fakeVendaRepo) BuscarPorNumero(_ context.Context, numero int64) (*entity.Venda, error) {
	for _, v := range f.vendas {
		if v.Numero == numero {
			return v, nil
		}
	}
	return nil, nil
}

func (f *fakeVendaRepo) Atualizar(_ context.Context, v *entity.Venda) error {
	for i, atual := range f.vendas {
		if atual.Numero == v.Numero {
			f.vendas[i] = v
			return nil
		}
	}
	return domain.ErrNaoEncontrado
}

func (f *fakeVendaRepo) AtualizarStatus(_ context.Context, numero int64, status string) error {
	for _, v := range f.vendas {
		if v.Numero == numero {
			v.Status = status
			return nil
		}
	}
	return domain.ErrNaoEncontrado
}

func (f *fakeVendaRepo) Listar(_ context.Context, _ repository.FiltroVendas) ([]*entity.Venda, error) {
	return f.vendas, nil
}

func (f *fakeVendaRepo) SomarDoMesPorVendedor(_ context.Context, _ string, _ time.Time) (decimal.Decimal, error) {
	return f.soma, nil
}

type fakeProdutoRepo struct {
	produtos map[string]*entity.Produto
}

func (f *fakeProdutoRepo) Criar(_ context.Context, p *entity.Produto) error {
	f.produtos[p.Codigo] = p
	return nil
}

func (f *fakeProdutoRepo) BuscarPorCodigo(_ context.Context, codigo string) (*entity.Produto, error) {
	return f.produtos[codigo], nil
}

func (f *fakeProdutoRepo) Atualizar(_ context.Context, p *entity.Produto) error {
	f.produtos[p.Codigo] = p
	return nil
}

func (f *fakeProdutoRepo) Listar(_ context.Context) ([]*entity.Produto, error) {
	out := make([]*entity.Produto, 0, len(f.produtos))
	for _, p := range f.produtos {
		out = append(out, p)
	}
	return out, nil
}

type fakeUsuarioRepo struct {
	usuarios map[string]*entity.Usuario
}

func (f *fakeUsuarioRepo) Criar(_ context.Context, u *entity.Usuario) error {
	f.usuarios[u.ID] = u
	return nil
}

func (f *fakeUsuarioRepo) BuscarPorID(_ context.Context, id string) (*entity.Usuario, error) {
	return f.usuarios[id], nil
}

func (f *fakeUsuarioRepo) BuscarPorUsername(_ context.Context, username string) (*entity.Usuario, error) {
	for _, u := range f.usuarios {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) Atualizar(_ context.Context, u *entity.Usuario) error {
	f.usuarios[u.ID] = u
	return nil
}

func (f *fakeUsuarioRepo) Listar(_ context.Context, _ repository.FiltroUsuarios) ([]*entity.Usuario, error) {
	out := make([]*entity.Usuario, 0, len(f.usuarios))
	for _, u := range f.usuarios {
		out = append(out, u)
	}
	return out, nil
}

// fakeConfigRepo indexa o vigente por tipo e os documentos por tipo+valor da chave.
type fakeConfigRepo struct {
	vigentes map[string]*entity.Config
	porChave map[string]*entity.Config // tipo + "/" + valor
}

func newFakeConfigRepo() *fakeConfigRepo {
	return &fakeConfigRepo{
		vigentes: map[string]*entity.Config{},
		porChave: map[string]*entity.Config{},
	}
}

func (f *fakeConfigRepo) Gravar(_ context.Context, c *entity.Config) error {
	f.vigentes[c.Tipo] = c
	return nil
}

func (f *fakeConfigRepo) GravarPorChave(_ context.Context, c *entity.Config, _, valor string) error {
	f.porChave[c.Tipo+"/"+valor] = c
	return nil
}

func (f *fakeConfigRepo) BuscarVigente(_ context.Context, tipo string) (*entity.Config, error) {
	return f.vigentes[tipo], nil
}

func (f *fakeConfigRepo) BuscarPorChave(_ context.Context, tipo, _, valor string) (*entity.Config, error) {
	return f.porChave[tipo+"/"+valor], nil
}

func (f *fakeConfigRepo) ListarPorTipo(_ context.Context, tipo string) ([]*entity.Config, error) {
	var out []*entity.Config
	for _, c := range f.porChave {
		if c.Tipo == tipo {
			out = append(out, c)
		}
	}
	if c, ok := f.vigentes[tipo]; ok {
		out = append(out, c)
	}
	return out, nil
}

type fakeLogRepo struct {
	registros []*entity.RegistroLog
}

func (f *fakeLogRepo) Registrar(_ context.Context, l *entity.RegistroLog) error {
	f.registros = append(f.registros, l)
	return nil
}

func (f *fakeLogRepo) Listar(_ context.Context, _ int) ([]*entity.RegistroLog, error) {
	return f.registros, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Cenário base
// ──────────────────────────────────────────────────────────────────────────────

const (
	vendedorID  = "00000000-0000-0000-0000-000000000010"
	vendedorTag = "joao.lima"
)

// quartaFeira 05/06/2024 10:00 — dia útil comum, sem corte configurado.
var quartaFeira = time.Date(2024, time.June, 5, 10, 0, 0, 0, time.Local)

type cenario struct {
	uc       *VendaUseCase
	vendas   *fakeVendaRepo
	produtos *fakeProdutoRepo
	configs  *fakeConfigRepo
	logs     *fakeLogRepo
}

func novoCenario(agora time.Time) *cenario {
	vendas := &fakeVendaRepo{}
	produtos := &fakeProdutoRepo{produtos: map[string]*entity.Produto{
		"P100": {
			Codigo: "P100",
			Nome:   "Plano Profissional",
			Condicoes: []entity.CondicaoPagamento{
				{Tipo: "avista", ValorTotal: decimal.NewFromInt(1200)},
				{Tipo: "parcelado", ValorTotal: decimal.NewFromInt(1350), Parcelas: 3},
			},
		},
	}}
	usuarios := &fakeUsuarioRepo{usuarios: map[string]*entity.Usuario{
		vendedorID: {
			ID:       vendedorID,
			Username: vendedorTag,
			Nome:     "João Lima",
			Papel:    entity.PapelVendedor,
			Status:   entity.StatusAtivo,
		},
	}}
	configs := newFakeConfigRepo()
	logs := &fakeLogRepo{}
	uc := NewVendaUseCase(vendas, produtos, usuarios, configs, logs, func() time.Time { return agora })
	return &cenario{uc: uc, vendas: vendas, produtos: produtos, configs: configs, logs: logs}
}

func quem() auth.Contexto {
	return auth.Contexto{UserID: vendedorID, Username: vendedorTag, Papel: entity.PapelVendedor}
}

// requestValida um pedido completo que deve passar por toda a cadeia.
func requestValida() dto.CriarVendaRequest {
	return dto.CriarVendaRequest{
		Cliente:           "Mercado Aurora LTDA",
		TipoCliente:       "Empresa",
		Email:             "compras@aurora.com.br",
		Telefone:          "11987654321",
		ProdutoCodigo:     "P100",
		CondicaoPagamento: "avista",
		ValorTabela:       "1200,00",
		ValorFinal:        "1100,00",
		ValorParcela:      "",
		QuantidadeAcessos: "5",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Criar — cadeia de validação
// ──────────────────────────────────────────────────────────────────────────────

func TestCriarVenda_ClienteObrigatorio(t *testing.T) {
	c := novoCenario(quartaFeira)
	in := requestValida()
	in.Cliente = "  "

	_, err := c.uc.Criar(context.Background(), quem(), in)

	var ev *domain.ErroValidacao
	require.ErrorAs(t, err, &ev)
	assert.Equal(t, "cliente é obrigatório", ev.Mensagem)
	assert.Empty(t, c.vendas.vendas, "nada deve ser persistido quando a validação falha")
}

func TestCriarVenda_QuantidadeAcessosObrigatoria(t *testing.T) {
	c := novoCenario(quartaFeira)
	in := requestValida()
	in.QuantidadeAcessos = ""

	_, err := c.uc.Criar(context.Background(), quem(), in)

	var ev *domain.ErroValidacao
	require.ErrorAs(t, err, &ev)
	assert.Equal(t, "quantidade_acessos é obrigatório", ev.Mensagem)
}

// "0" é um valor presente, não ausente: a venda passa.
func TestCriarVenda_QuantidadeAcessosZeroAceita(t *testing.T) {
	c := novoCenario(quartaFeira)
	in := requestValida()
	in.QuantidadeAcessos = "0"

	out, err := c.uc.Criar(context.Background(), quem(), in)

	require.NoError(t, err)
	assert.True(t, out.Success)
	require.Len(t, c.vendas.vendas, 1)
	assert.Equal(t, 0, c.vendas.vendas[0].QuantidadeAcessos)
}

func TestCriarVenda_EmailInvalido(t *testing.T) {
	c := novoCenario(quartaFeira)
	in := requestValida()
	in.Email = "compras@aurora.com.br, sem-arroba"

	_, err := c.uc.Criar(context.Background(), quem(), in)

	var ev *domain.ErroValidacao
	require.ErrorAs(t, err, &ev)
	assert.Equal(t, "email inválido", ev.Mensagem)
}

// A mensagem aponta a posição (1-based) do telefone que falhou.
func TestCriarVenda_TelefoneInvalidoComPosicao(t *testing.T) {
	c := novoCenario(quartaFeira)
	in := requestValida()
	in.Telefone = "11987654321; 12x"

	_, err := c.uc.Criar(context.Background(), quem(), in)

	var ev *domain.ErroValidacao
	require.ErrorAs(t, err, &ev)
	assert.Equal(t, "telefone inválido na posição 2", ev.Mensagem)
}

func TestCriarVenda_TipoClienteForaDoConjunto(t *testing.T) {
	c := novoCenario(quartaFeira)
	in := requestValida()
	in.TipoCliente = "Dourado"

	_, err := c.uc.Criar(context.Background(), quem(), in)

	var ev *domain.ErroValidacao
	require.ErrorAs(t, err, &ev)
	assert.Equal(t, "tipo de cliente inválido", ev.Mensagem)
}

func TestCriarVenda_ProdutoInexistenteNoCatalogo(t *testing.T) {
	c := novoCenario(quartaFeira)
	in := requestValida()
	in.ProdutoCodigo = "P999"

	_, err := c.uc.Criar(context.Background(), quem(), in)

	var ev *domain.ErroValidacao
	require.ErrorAs(t, err, &ev)
	assert.Equal(t, "produto não encontrado", ev.Mensagem)
}

func TestCriarVenda_CondicaoInvalidaParaOProduto(t *testing.T) {
	c := novoCenario(quartaFeira)
	in := requestValida()
	in.CondicaoPagamento = "boleto"

	_, err := c.uc.Criar(context.Background(), quem(), in)

	var ev *domain.ErroValidacao
	require.ErrorAs(t, err, &ev)
	assert.Equal(t, "condição de pagamento inválida para o produto", ev.Mensagem)
}

func TestCriarVenda_ProdutoAvulsoSemCatalogo(t *testing.T) {
	c := novoCenario(quartaFeira)
	in := requestValida()
	in.ProdutoCodigo = ""
	in.ProdutoAvulso = "Consultoria de implantação"
	in.CondicaoPagamento = "avista"

	out, err := c.uc.Criar(context.Background(), quem(), in)

	require.NoError(t, err)
	assert.True(t, out.Success)
	require.Len(t, c.vendas.vendas, 1)
	assert.Equal(t, "Consultoria de implantação", c.vendas.vendas[0].ProdutoAvulso)
}

func TestCriarVenda_ValorNaoNumerico(t *testing.T) {
	c := novoCenario(quartaFeira)
	in := requestValida()
	in.ValorFinal = "mil e cem"

	_, err := c.uc.Criar(context.Background(), quem(), in)

	var ev *domain.ErroValidacao
	require.ErrorAs(t, err, &ev)
	assert.Equal(t, "valor_final não é numérico", ev.Mensagem)
}

// ──────────────────────────────────────────────────────────────────────────────
// Criar — gate de expediente e teto mensal
// ──────────────────────────────────────────────────────────────────────────────

func gravarExpediente(t *testing.T, configs *fakeConfigRepo, fe entity.FimExpediente) {
	t.Helper()
	dados, err := json.Marshal(fe)
	require.NoError(t, err)
	configs.vigentes[entity.ConfigFimExpediente] = &entity.Config{
		Tipo:  entity.ConfigFimExpediente,
		Dados: dados,
	}
}

func TestCriarVenda_SabadoSemCoberturaBloqueia(t *testing.T) {
	sabado := time.Date(2024, time.June, 8, 9, 0, 0, 0, time.Local)
	c := novoCenario(sabado)
	gravarExpediente(t, c.configs, entity.FimExpediente{
		Data: "07/06/2024", Hora: "18:00:00", TrabalhaSabado: false,
	})

	_, err := c.uc.Criar(context.Background(), quem(), requestValida())

	require.ErrorIs(t, err, domain.ErrForaDoExpediente)
	assert.Empty(t, c.vendas.vendas)
}

func TestCriarVenda_SabadoComCoberturaPassa(t *testing.T) {
	sabado := time.Date(2024, time.June, 8, 9, 0, 0, 0, time.Local)
	c := novoCenario(sabado)
	gravarExpediente(t, c.configs, entity.FimExpediente{
		Data: "07/06/2024", Hora: "18:00:00", TrabalhaSabado: true,
	})

	out, err := c.uc.Criar(context.Background(), quem(), requestValida())

	require.NoError(t, err)
	assert.True(t, out.Success)
}

func TestCriarVenda_DomingoSempreBloqueia(t *testing.T) {
	domingo := time.Date(2024, time.June, 9, 11, 0, 0, 0, time.Local)
	c := novoCenario(domingo)

	_, err := c.uc.Criar(context.Background(), quem(), requestValida())

	require.ErrorIs(t, err, domain.ErrForaDoExpediente)
}

func TestCriarVenda_AposCorteNoDiaDeReferenciaBloqueia(t *testing.T) {
	c := novoCenario(time.Date(2024, time.June, 5, 18, 30, 0, 0, time.Local))
	gravarExpediente(t, c.configs, entity.FimExpediente{
		Data: "05/06/2024", Hora: "18:00:00",
	})

	_, err := c.uc.Criar(context.Background(), quem(), requestValida())

	require.ErrorIs(t, err, domain.ErrForaDoExpediente)
}

func gravarLimite(t *testing.T, configs *fakeConfigRepo, limite string) {
	t.Helper()
	dados, err := json.Marshal(entity.LimiteVendedor{
		VendedorID: vendedorID,
		Limite:     decimal.RequireFromString(limite),
	})
	require.NoError(t, err)
	configs.porChave[entity.ConfigLimiteVendedor+"/"+vendedorID] = &entity.Config{
		Tipo:  entity.ConfigLimiteVendedor,
		Dados: dados,
	}
}

// Soma do mês + venda corrente acima do teto → bloqueio.
func TestCriarVenda_TetoMensalEstourado(t *testing.T) {
	c := novoCenario(quartaFeira)
	c.vendas.soma = decimal.NewFromInt(9500)
	gravarLimite(t, c.configs, "10000")

	_, err := c.uc.Criar(context.Background(), quem(), requestValida()) // 9500 + 1100 > 10000

	require.ErrorIs(t, err, domain.ErrLimiteVendas)
	assert.Empty(t, c.vendas.vendas)
}

func TestCriarVenda_DentroDoTetoMensalPassa(t *testing.T) {
	c := novoCenario(quartaFeira)
	c.vendas.soma = decimal.NewFromInt(8000)
	gravarLimite(t, c.configs, "10000")

	out, err := c.uc.Criar(context.Background(), quem(), requestValida()) // 8000 + 1100 <= 10000

	require.NoError(t, err)
	assert.True(t, out.Success)
}

// ──────────────────────────────────────────────────────────────────────────────
// Criar — persistência e trilha
// ──────────────────────────────────────────────────────────────────────────────

func TestCriarVenda_SucessoAtribuiNumeroERegistraLog(t *testing.T) {
	c := novoCenario(quartaFeira)

	primeira, err := c.uc.Criar(context.Background(), quem(), requestValida())
	require.NoError(t, err)
	segunda, err := c.uc.Criar(context.Background(), quem(), requestValida())
	require.NoError(t, err)

	assert.Equal(t, int64(1), primeira.Numero)
	assert.Equal(t, int64(2), segunda.Numero)

	require.Len(t, c.vendas.vendas, 2)
	v := c.vendas.vendas[0]
	assert.Equal(t, entity.VendaAguardando, v.Status)
	assert.Equal(t, "João Lima", v.VendedorNome)
	assert.True(t, v.ValorFinal.Equal(decimal.RequireFromString("1100")),
		"valor com vírgula do formulário deve virar decimal")

	require.Len(t, c.logs.registros, 2)
	assert.Equal(t, vendedorTag, c.logs.registros[0].Autor)
	assert.Equal(t, "05/06/2024", c.logs.registros[0].Data)
}

// ──────────────────────────────────────────────────────────────────────────────
// AtualizarStatus e Atualizar
// ──────────────────────────────────────────────────────────────────────────────

func TestAtualizarStatus_EnumFechado(t *testing.T) {
	c := novoCenario(quartaFeira)
	_, err := c.uc.Criar(context.Background(), quem(), requestValida())
	require.NoError(t, err)

	err = c.uc.AtualizarStatus(context.Background(), quem(), 1, "Pendente")

	var ev *domain.ErroValidacao
	require.ErrorAs(t, err, &ev)
	assert.Equal(t, "status de venda inválido", ev.Mensagem)
	assert.Equal(t, entity.VendaAguardando, c.vendas.vendas[0].Status)
}

func TestAtualizarStatus_TrocaERegistraLog(t *testing.T) {
	c := novoCenario(quartaFeira)
	_, err := c.uc.Criar(context.Background(), quem(), requestValida())
	require.NoError(t, err)

	require.NoError(t, c.uc.AtualizarStatus(context.Background(), quem(), 1, entity.VendaAprovada))

	assert.Equal(t, entity.VendaAprovada, c.vendas.vendas[0].Status)
	require.Len(t, c.logs.registros, 2) // criação + troca de status
	assert.Contains(t, c.logs.registros[1].Descricao, "Aprovada")
}

func TestAtualizarStatus_VendaInexistente(t *testing.T) {
	c := novoCenario(quartaFeira)

	err := c.uc.AtualizarStatus(context.Background(), quem(), 42, entity.VendaAprovada)

	require.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestAtualizar_ParcialMantemCamposNaoEnviados(t *testing.T) {
	c := novoCenario(quartaFeira)
	_, err := c.uc.Criar(context.Background(), quem(), requestValida())
	require.NoError(t, err)

	obs := "cliente pediu nota detalhada"
	require.NoError(t, c.uc.Atualizar(context.Background(), quem(), 1, dto.AtualizarVendaRequest{
		Observacoes: &obs,
	}))

	v := c.vendas.vendas[0]
	assert.Equal(t, obs, v.Observacoes)
	assert.Equal(t, entity.VendaAguardando, v.Status, "status não enviado deve ser mantido")
	assert.True(t, v.ValorFinal.Equal(decimal.RequireFromString("1100")))
}
