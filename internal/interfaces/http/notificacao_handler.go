package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/application/usecase"
)

// NotificacaoHandler notificações internas e trilha de auditoria.
type NotificacaoHandler struct {
	uc    *usecase.NotificacaoUseCase
	logUC *usecase.LogUseCase
}

// NewNotificacaoHandler constrói o handler.
func NewNotificacaoHandler(uc *usecase.NotificacaoUseCase, logUC *usecase.LogUseCase) *NotificacaoHandler {
	return &NotificacaoHandler{uc: uc, logUC: logUC}
}

// Criar godoc
// @Summary      Criar notificação
// @Tags         notificacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarNotificacaoRequest  true  "Notificação"
// @Success      201  {object}  dto.NotificacaoResponse
// @Failure      400  {object}  dto.RespostaErro
// @Router       /api/notificacoes [post]
func (h *NotificacaoHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarNotificacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.Criar(c.Context(), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar notificações de um usuário
// @Tags         notificacoes
// @Security     Bearer
// @Produce      json
// @Param        usuario  query  string  false  "Username (padrão: usuário autenticado)"
// @Success      200  {array}  dto.NotificacaoResponse
// @Router       /api/notificacoes [get]
func (h *NotificacaoHandler) Listar(c *fiber.Ctx) error {
	username := c.Query("usuario")
	if username == "" {
		username = GetContexto(c).Username
	}
	out, err := h.uc.ListarPorUsuario(c.Context(), username)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// MarcarLida godoc
// @Summary      Marcar notificação como lida
// @Tags         notificacoes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da notificação"
// @Success      200  {object}  dto.RespostaOK
// @Failure      404  {object}  dto.RespostaErro
// @Router       /api/notificacoes/{id}/lida [post]
func (h *NotificacaoHandler) MarcarLida(c *fiber.Ctx) error {
	ctxAuth := GetContexto(c)
	if err := h.uc.MarcarLida(c.Context(), c.Params("id"), ctxAuth.Username); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.OK())
}

// ListarLogs godoc
// @Summary      Consultar trilha de auditoria
// @Tags         logs
// @Security     Bearer
// @Produce      json
// @Param        limite  query  int  false  "Máximo de registros (padrão 200)"
// @Success      200  {array}  dto.RegistroLogResponse
// @Router       /api/logs [get]
func (h *NotificacaoHandler) ListarLogs(c *fiber.Ctx) error {
	limite := 200
	if v := c.Query("limite"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limite = n
		}
	}
	out, err := h.logUC.Listar(c.Context(), limite)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}
