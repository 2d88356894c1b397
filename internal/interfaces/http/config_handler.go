package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/application/usecase"
)

// ConfigHandler expõe as configurações operacionais (limites, metas,
// expediente, SMTP e controle de acesso).
type ConfigHandler struct {
	uc *usecase.ConfigUseCase
}

// NewConfigHandler constrói o handler.
func NewConfigHandler(uc *usecase.ConfigUseCase) *ConfigHandler {
	return &ConfigHandler{uc: uc}
}

// GravarLimite godoc
// @Summary      Gravar limite mensal de vendedor
// @Tags         configs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LimiteRequest  true  "Limite"
// @Success      200  {object}  dto.RespostaOK
// @Failure      400  {object}  dto.RespostaErro
// @Router       /api/configs/limites [post]
func (h *ConfigHandler) GravarLimite(c *fiber.Ctx) error {
	var in dto.LimiteRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if err := h.uc.GravarLimite(c.Context(), in); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.OK())
}

// ListarLimites godoc
// @Summary      Listar limites de vendedores
// @Tags         configs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LimiteResponse
// @Router       /api/configs/limites [get]
func (h *ConfigHandler) ListarLimites(c *fiber.Ctx) error {
	out, err := h.uc.ListarLimites(c.Context())
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// GravarMeta godoc
// @Summary      Gravar metas de vendedor
// @Tags         configs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MetaRequest  true  "Metas"
// @Success      200  {object}  dto.RespostaOK
// @Failure      400  {object}  dto.RespostaErro
// @Router       /api/configs/metas [post]
func (h *ConfigHandler) GravarMeta(c *fiber.Ctx) error {
	var in dto.MetaRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if err := h.uc.GravarMeta(c.Context(), in); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.OK())
}

// ListarMetas godoc
// @Summary      Listar metas de vendedores
// @Tags         configs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MetaResponse
// @Router       /api/configs/metas [get]
func (h *ConfigHandler) ListarMetas(c *fiber.Ctx) error {
	out, err := h.uc.ListarMetas(c.Context())
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// GravarExpediente godoc
// @Summary      Gravar fim de expediente
// @Tags         configs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExpedienteRequest  true  "Fim de expediente"
// @Success      200  {object}  dto.RespostaOK
// @Failure      400  {object}  dto.RespostaErro
// @Router       /api/configs/expediente [post]
func (h *ConfigHandler) GravarExpediente(c *fiber.Ctx) error {
	var in dto.ExpedienteRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if err := h.uc.GravarExpediente(c.Context(), in); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.OK())
}

// BuscarExpediente godoc
// @Summary      Consultar fim de expediente vigente
// @Tags         configs
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ExpedienteResponse
// @Router       /api/configs/expediente [get]
func (h *ConfigHandler) BuscarExpediente(c *fiber.Ctx) error {
	out, err := h.uc.BuscarExpediente(c.Context())
	if err != nil {
		return responderErro(c, err)
	}
	if out == nil {
		return c.JSON(dto.ExpedienteResponse{})
	}
	return c.JSON(out)
}

// GravarSMTP godoc
// @Summary      Gravar servidor SMTP
// @Tags         configs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SMTPRequest  true  "Servidor SMTP"
// @Success      200  {object}  dto.RespostaOK
// @Failure      400  {object}  dto.RespostaErro
// @Router       /api/configs/smtp [post]
func (h *ConfigHandler) GravarSMTP(c *fiber.Ctx) error {
	var in dto.SMTPRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if err := h.uc.GravarSMTP(c.Context(), in); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.OK())
}

// BuscarSMTP godoc
// @Summary      Consultar servidor SMTP vigente
// @Tags         configs
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SMTPRequest
// @Router       /api/configs/smtp [get]
func (h *ConfigHandler) BuscarSMTP(c *fiber.Ctx) error {
	out, err := h.uc.BuscarSMTP(c.Context())
	if err != nil {
		return responderErro(c, err)
	}
	if out == nil {
		return c.JSON(dto.SMTPRequest{})
	}
	// A senha nunca volta na consulta.
	out.Senha = ""
	return c.JSON(out)
}

// TestarSMTP godoc
// @Summary      Disparar e-mail de teste
// @Tags         configs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SMTPTesteRequest  true  "Credenciais e destinatário"
// @Success      200  {object}  dto.RespostaOK
// @Failure      400  {object}  dto.RespostaErro
// @Router       /api/configs/smtp/teste [post]
func (h *ConfigHandler) TestarSMTP(c *fiber.Ctx) error {
	var in dto.SMTPTesteRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if err := h.uc.TestarSMTP(c.Context(), in); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.OK())
}

// GravarAcesso godoc
// @Summary      Gravar controle de acesso por horário
// @Tags         configs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AcessoRequest  true  "Janela de acesso"
// @Success      200  {object}  dto.RespostaOK
// @Failure      400  {object}  dto.RespostaErro
// @Router       /api/configs/acesso [post]
func (h *ConfigHandler) GravarAcesso(c *fiber.Ctx) error {
	var in dto.AcessoRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if err := h.uc.GravarAcesso(c.Context(), in); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.OK())
}

// BuscarAcesso godoc
// @Summary      Consultar controle de acesso vigente
// @Tags         configs
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AcessoRequest
// @Router       /api/configs/acesso [get]
func (h *ConfigHandler) BuscarAcesso(c *fiber.Ctx) error {
	out, err := h.uc.BuscarAcesso(c.Context())
	if err != nil {
		return responderErro(c, err)
	}
	if out == nil {
		return c.JSON(dto.AcessoRequest{})
	}
	return c.JSON(out)
}
