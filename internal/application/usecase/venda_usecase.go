package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/vendas-api/internal/application/auth"
	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/domain"
	"github.com/jhoicas/vendas-api/internal/domain/entity"
	"github.com/jhoicas/vendas-api/internal/domain/expediente"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
	"github.com/jhoicas/vendas-api/internal/domain/validar"
)

// VendaUseCase registro, consulta e atualização de vendas. Concentra a
// cadeia de validadores, o gate de expediente e o teto mensal do vendedor.
type VendaUseCase struct {
	vendas   repository.VendaRepository
	produtos repository.ProdutoRepository
	usuarios repository.UsuarioRepository
	configs  repository.ConfigRepository
	logs     repository.LogRepository
	relogio  func() time.Time
}

// NewVendaUseCase constrói o caso de uso. relogio nulo usa time.Now
// (injetável para teste determinístico do gate de expediente).
func NewVendaUseCase(
	vendas repository.VendaRepository,
	produtos repository.ProdutoRepository,
	usuarios repository.UsuarioRepository,
	configs repository.ConfigRepository,
	logs repository.LogRepository,
	relogio func() time.Time,
) *VendaUseCase {
	if relogio == nil {
		relogio = time.Now
	}
	return &VendaUseCase{
		vendas:   vendas,
		produtos: produtos,
		usuarios: usuarios,
		configs:  configs,
		logs:     logs,
		relogio:  relogio,
	}
}

// Criar registra uma venda do usuário autenticado. Ordem fixa: campos
// obrigatórios → validadores de sintaxe → produto/condição → gate de
// expediente → teto mensal → persistência (que atribui o número sequencial).
// A primeira checagem que falha interrompe com a sua mensagem.
func (uc *VendaUseCase) Criar(ctx context.Context, quem auth.Contexto, in dto.CriarVendaRequest) (*dto.CriarVendaResponse, error) {
	if strings.TrimSpace(in.Cliente) == "" {
		return nil, domain.Validacao("cliente é obrigatório")
	}
	if strings.TrimSpace(in.QuantidadeAcessos) == "" {
		return nil, domain.Validacao("quantidade_acessos é obrigatório")
	}

	if in.Email != "" && !validar.Emails(splitLista(in.Email)) {
		return nil, domain.Validacao("email inválido")
	}
	if in.Telefone != "" {
		if ok, pos := validar.Telefones(splitLista(in.Telefone)); !ok {
			return nil, domain.Validacao(fmt.Sprintf("telefone inválido na posição %d", pos+1))
		}
	}
	if in.TipoCliente != "" && !validar.TipoCliente(in.TipoCliente, nil) {
		return nil, domain.Validacao("tipo de cliente inválido")
	}

	// Produto do catálogo ou avulso: um dos dois precisa resolver.
	var produto *entity.Produto
	if in.ProdutoCodigo != "" {
		p, err := uc.produtos.BuscarPorCodigo(ctx, in.ProdutoCodigo)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.Validacao("produto não encontrado")
		}
		produto = p
	} else if strings.TrimSpace(in.ProdutoAvulso) == "" {
		return nil, domain.Validacao("informe o produto ou a descrição avulsa")
	}

	if produto != nil {
		if !produto.CondicaoValida(in.CondicaoPagamento) {
			return nil, domain.Validacao("condição de pagamento inválida para o produto")
		}
	} else if strings.TrimSpace(in.CondicaoPagamento) == "" {
		return nil, domain.Validacao("condição de pagamento é obrigatória")
	}

	valorTabela := validar.NormalizarNumero(in.ValorTabela)
	valorFinal := validar.NormalizarNumero(in.ValorFinal)
	valorParcela := validar.NormalizarNumero(in.ValorParcela)
	for _, par := range []struct{ campo, valor string }{
		{"valor_tabela", valorTabela},
		{"valor_final", valorFinal},
		{"valor_parcela", valorParcela},
	} {
		if !validar.Numero(par.valor) {
			return nil, domain.Validacao(par.campo + " não é numérico")
		}
	}
	if !validar.Numero(in.QuantidadeAcessos) {
		return nil, domain.Validacao("quantidade_acessos não é numérico")
	}
	qtde, err := strconv.Atoi(strings.TrimSpace(in.QuantidadeAcessos))
	if err != nil || qtde < 0 {
		return nil, domain.Validacao("quantidade_acessos inválido")
	}

	vendedor, err := uc.usuarios.BuscarPorID(ctx, quem.UserID)
	if err != nil {
		return nil, err
	}
	if vendedor == nil {
		return nil, domain.ErrUsuarioNaoEncontrado
	}

	agora := uc.relogio()
	if !expediente.PodeRegistrarVenda(agora, uc.fimExpediente(ctx)) {
		return nil, domain.ErrForaDoExpediente
	}

	vFinal := paraDecimal(valorFinal)
	if err := uc.verificarLimite(ctx, vendedor.ID, vFinal, agora); err != nil {
		return nil, err
	}

	venda := &entity.Venda{
		VendedorID:        vendedor.ID,
		VendedorNome:      vendedor.Nome,
		Cliente:           strings.TrimSpace(in.Cliente),
		TipoCliente:       in.TipoCliente,
		CNPJ:              in.CNPJ,
		Endereco:          in.Endereco,
		Cidade:            in.Cidade,
		UF:                in.UF,
		Email:             in.Email,
		Telefone:          in.Telefone,
		ProdutoCodigo:     in.ProdutoCodigo,
		ProdutoAvulso:     strings.TrimSpace(in.ProdutoAvulso),
		CondicaoPagamento: in.CondicaoPagamento,
		ValorTabela:       paraDecimal(valorTabela),
		ValorFinal:        vFinal,
		ValorParcela:      paraDecimal(valorParcela),
		QuantidadeAcessos: qtde,
		Status:            entity.VendaAguardando,
		PosVendas:         in.PosVendas,
		Observacoes:       in.Observacoes,
		CriadoEm:          agora,
	}
	if err := uc.vendas.Criar(ctx, venda); err != nil {
		return nil, err
	}

	_ = uc.logs.Registrar(ctx, &entity.RegistroLog{
		Descricao: fmt.Sprintf("venda %d registrada para o cliente %s", venda.Numero, venda.Cliente),
		Autor:     quem.Username,
		Data:      agora.Format("02/01/2006"),
		Hora:      agora.Format("15:04:05"),
	})

	return &dto.CriarVendaResponse{Success: true, Numero: venda.Numero}, nil
}

// fimExpediente carrega o documento vigente; nil quando ausente ou ilegível
// (o gate trata ausência como liberado).
func (uc *VendaUseCase) fimExpediente(ctx context.Context) *entity.FimExpediente {
	doc, err := uc.configs.BuscarVigente(ctx, entity.ConfigFimExpediente)
	if err != nil || doc == nil {
		return nil
	}
	var fe entity.FimExpediente
	if err := json.Unmarshal(doc.Dados, &fe); err != nil {
		return nil
	}
	return &fe
}

// verificarLimite aplica o teto mensal do vendedor, quando configurado:
// a soma do mês mais a venda corrente não pode ultrapassar o limite.
func (uc *VendaUseCase) verificarLimite(ctx context.Context, vendedorID string, valor decimal.Decimal, ref time.Time) error {
	doc, err := uc.configs.BuscarPorChave(ctx, entity.ConfigLimiteVendedor, "vendedor_id", vendedorID)
	if err != nil || doc == nil {
		return nil
	}
	var lim entity.LimiteVendedor
	if err := json.Unmarshal(doc.Dados, &lim); err != nil {
		return nil
	}
	if lim.Limite.IsZero() {
		return nil
	}
	soma, err := uc.vendas.SomarDoMesPorVendedor(ctx, vendedorID, ref)
	if err != nil {
		return err
	}
	if soma.Add(valor).GreaterThan(lim.Limite) {
		return domain.ErrLimiteVendas
	}
	return nil
}

// Listar devolve as vendas que batem com o filtro.
func (uc *VendaUseCase) Listar(ctx context.Context, f repository.FiltroVendas) ([]dto.VendaResponse, error) {
	vendas, err := uc.vendas.Listar(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VendaResponse, 0, len(vendas))
	for _, v := range vendas {
		out = append(out, paraVendaResponse(v))
	}
	return out, nil
}

// BuscarPorNumero devolve uma venda; nil quando não existe.
func (uc *VendaUseCase) BuscarPorNumero(ctx context.Context, numero int64) (*dto.VendaResponse, error) {
	v, err := uc.vendas.BuscarPorNumero(ctx, numero)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	resp := paraVendaResponse(v)
	return &resp, nil
}

// AtualizarStatus troca o status; valor fora do enum fechado é rejeitado.
func (uc *VendaUseCase) AtualizarStatus(ctx context.Context, quem auth.Contexto, numero int64, status string) error {
	if !entity.StatusVendaValido(status) {
		return domain.Validacao("status de venda inválido")
	}
	v, err := uc.vendas.BuscarPorNumero(ctx, numero)
	if err != nil {
		return err
	}
	if v == nil {
		return domain.ErrNaoEncontrado
	}
	if err := uc.vendas.AtualizarStatus(ctx, numero, status); err != nil {
		return err
	}
	agora := uc.relogio()
	_ = uc.logs.Registrar(ctx, &entity.RegistroLog{
		Descricao: fmt.Sprintf("venda %d movida para %s", numero, status),
		Autor:     quem.Username,
		Data:      agora.Format("02/01/2006"),
		Hora:      agora.Format("15:04:05"),
	})
	return nil
}

// Atualizar edição parcial dos campos de acompanhamento da venda.
func (uc *VendaUseCase) Atualizar(ctx context.Context, quem auth.Contexto, numero int64, in dto.AtualizarVendaRequest) error {
	v, err := uc.vendas.BuscarPorNumero(ctx, numero)
	if err != nil {
		return err
	}
	if v == nil {
		return domain.ErrNaoEncontrado
	}
	if in.Status != nil {
		if !entity.StatusVendaValido(*in.Status) {
			return domain.Validacao("status de venda inválido")
		}
		v.Status = *in.Status
	}
	if in.PosVendas != nil {
		v.PosVendas = *in.PosVendas
	}
	if in.Observacoes != nil {
		v.Observacoes = *in.Observacoes
	}
	if in.ValorFinal != nil {
		norm := validar.NormalizarNumero(*in.ValorFinal)
		if !validar.Numero(norm) {
			return domain.Validacao("valor_final não é numérico")
		}
		v.ValorFinal = paraDecimal(norm)
	}
	return uc.vendas.Atualizar(ctx, v)
}

func paraVendaResponse(v *entity.Venda) dto.VendaResponse {
	return dto.VendaResponse{
		ID:                v.ID,
		Numero:            v.Numero,
		VendedorID:        v.VendedorID,
		VendedorNome:      v.VendedorNome,
		Cliente:           v.Cliente,
		TipoCliente:       v.TipoCliente,
		CNPJ:              v.CNPJ,
		Endereco:          v.Endereco,
		Cidade:            v.Cidade,
		UF:                v.UF,
		Email:             v.Email,
		Telefone:          v.Telefone,
		ProdutoCodigo:     v.ProdutoCodigo,
		ProdutoAvulso:     v.ProdutoAvulso,
		CondicaoPagamento: v.CondicaoPagamento,
		ValorTabela:       v.ValorTabela.StringFixed(2),
		ValorFinal:        v.ValorFinal.StringFixed(2),
		ValorParcela:      v.ValorParcela.StringFixed(2),
		QuantidadeAcessos: v.QuantidadeAcessos,
		Status:            v.Status,
		PosVendas:         v.PosVendas,
		Observacoes:       v.Observacoes,
		CriadoEm:          v.CriadoEm.Format(time.RFC3339),
	}
}

// paraDecimal converte string de formulário já validada (vírgula aceita).
func paraDecimal(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// splitLista quebra um campo de formulário com itens separados por vírgula
// ou ponto e vírgula.
func splitLista(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' })
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
