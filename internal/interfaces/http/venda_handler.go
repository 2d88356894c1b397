package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/application/usecase"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
)

// VendaHandler registro, consulta e atualização de vendas.
type VendaHandler struct {
	uc *usecase.VendaUseCase
}

// NewVendaHandler constrói o handler.
func NewVendaHandler(uc *usecase.VendaUseCase) *VendaHandler {
	return &VendaHandler{uc: uc}
}

// Criar godoc
// @Summary      Registrar venda
// @Description  Aplica a cadeia de validadores, o gate de expediente e o
// @Description  teto mensal. Bloqueio de expediente/limite responde 200 com
// @Description  success=false.
// @Tags         vendas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarVendaRequest  true  "Dados da venda"
// @Success      200   {object}  dto.CriarVendaResponse
// @Failure      400   {object}  dto.RespostaErro
// @Router       /api/vendas [post]
func (h *VendaHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarVendaRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.Criar(c.Context(), GetContexto(c), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Listar godoc
// @Summary      Listar vendas
// @Tags         vendas
// @Security     Bearer
// @Produce      json
// @Param        vendedor_id  query  string  false  "Vendedor exato"
// @Param        cliente      query  string  false  "Substring do cliente"
// @Param        status       query  string  false  "Status exato"
// @Param        pos_venda    query  string  false  "Username de pós-venda"
// @Param        data_inicio  query  string  false  "DD/MM/YYYY"
// @Param        data_fim     query  string  false  "DD/MM/YYYY"
// @Success      200  {array}  dto.VendaResponse
// @Router       /api/vendas [get]
func (h *VendaHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.Context(), filtroVendasDaQuery(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// BuscarPorNumero godoc
// @Summary      Detalhe de venda
// @Tags         vendas
// @Security     Bearer
// @Produce      json
// @Param        numero  path  int  true  "Número da venda"
// @Success      200  {object}  dto.VendaResponse
// @Failure      404  {object}  dto.RespostaErro
// @Router       /api/vendas/{numero} [get]
func (h *VendaHandler) BuscarPorNumero(c *fiber.Ctx) error {
	numero, err := strconv.ParseInt(c.Params("numero"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Erro("número inválido"))
	}
	out, err := h.uc.BuscarPorNumero(c.Context(), numero)
	if err != nil {
		return responderErro(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Erro("recurso não encontrado"))
	}
	return c.JSON(out)
}

// AtualizarStatus godoc
// @Summary      Trocar status da venda
// @Tags         vendas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        numero  path  int  true  "Número da venda"
// @Param        body    body  dto.AtualizarStatusRequest  true  "Novo status"
// @Success      200  {object}  dto.RespostaOK
// @Failure      400  {object}  dto.RespostaErro
// @Failure      404  {object}  dto.RespostaErro
// @Router       /api/vendas/{numero}/status [put]
func (h *VendaHandler) AtualizarStatus(c *fiber.Ctx) error {
	numero, err := strconv.ParseInt(c.Params("numero"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Erro("número inválido"))
	}
	var in dto.AtualizarStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if err := h.uc.AtualizarStatus(c.Context(), GetContexto(c), numero, in.Status); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.OK())
}

// Atualizar godoc
// @Summary      Editar campos de acompanhamento da venda
// @Tags         vendas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        numero  path  int  true  "Número da venda"
// @Param        body    body  dto.AtualizarVendaRequest  true  "Campos a alterar"
// @Success      200  {object}  dto.RespostaOK
// @Failure      404  {object}  dto.RespostaErro
// @Router       /api/vendas/{numero} [put]
func (h *VendaHandler) Atualizar(c *fiber.Ctx) error {
	numero, err := strconv.ParseInt(c.Params("numero"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Erro("número inválido"))
	}
	var in dto.AtualizarVendaRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if err := h.uc.Atualizar(c.Context(), GetContexto(c), numero, in); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.OK())
}

// filtroVendasDaQuery monta o filtro a partir dos query params opcionais.
// Datas malformadas são ignoradas (filtro não aplicado).
func filtroVendasDaQuery(c *fiber.Ctx) repository.FiltroVendas {
	f := repository.FiltroVendas{
		VendedorID: c.Query("vendedor_id"),
		Cliente:    c.Query("cliente"),
		Status:     c.Query("status"),
		PosVenda:   c.Query("pos_venda"),
	}
	if s := c.Query("data_inicio"); s != "" {
		if t, err := time.ParseInLocation("02/01/2006", s, time.Local); err == nil {
			f.DataInicio = t
		}
	}
	if s := c.Query("data_fim"); s != "" {
		if t, err := time.ParseInLocation("02/01/2006", s, time.Local); err == nil {
			// Fim inclusivo: avança para o último instante do dia.
			f.DataFim = t.AddDate(0, 0, 1).Add(-time.Second)
		}
	}
	return f
}
