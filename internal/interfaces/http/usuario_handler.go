package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/application/usecase"
	"github.com/jhoicas/vendas-api/internal/domain/repository"
)

// UsuarioHandler CRUD de contas de usuário (restrito a admin nas escritas).
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUsuarioHandler constrói o handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// Criar godoc
// @Summary      Criar usuário
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarUsuarioRequest  true  "Dados do usuário"
// @Success      201   {object}  dto.UsuarioResponse
// @Failure      400   {object}  dto.RespostaErro
// @Failure      409   {object}  dto.RespostaErro
// @Router       /api/usuarios [post]
func (h *UsuarioHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.Criar(c.Context(), GetContexto(c), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Atualizar godoc
// @Summary      Atualizar usuário (parcial)
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do usuário"
// @Param        body  body  dto.AtualizarUsuarioRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.UsuarioResponse
// @Failure      400   {object}  dto.RespostaErro
// @Failure      404   {object}  dto.RespostaErro
// @Router       /api/usuarios/{id} [put]
func (h *UsuarioHandler) Atualizar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Erro("id é obrigatório"))
	}
	var in dto.AtualizarUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.Atualizar(c.Context(), GetContexto(c), id, in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// BuscarPorID godoc
// @Summary      Detalhe de usuário
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do usuário"
// @Success      200  {object}  dto.UsuarioResponse
// @Failure      404  {object}  dto.RespostaErro
// @Router       /api/usuarios/{id} [get]
func (h *UsuarioHandler) BuscarPorID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.BuscarPorID(c.Context(), id)
	if err != nil {
		return responderErro(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Erro("recurso não encontrado"))
	}
	return c.JSON(out)
}

// Listar godoc
// @Summary      Listar usuários
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        nome    query  string  false  "Substring do nome"
// @Param        papel   query  string  false  "Papel exato"
// @Param        status  query  string  false  "Status exato"
// @Success      200  {array}  dto.UsuarioResponse
// @Router       /api/usuarios [get]
func (h *UsuarioHandler) Listar(c *fiber.Ctx) error {
	f := repository.FiltroUsuarios{
		Nome:   c.Query("nome"),
		Papel:  c.Query("papel"),
		Status: c.Query("status"),
	}
	out, err := h.uc.Listar(c.Context(), f)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// SalvarFoto godoc
// @Summary      Gravar foto do usuário (base64)
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do usuário"
// @Param        body  body  dto.FotoRequest  true  "Foto em base64"
// @Success      200   {object}  dto.RespostaOK
// @Failure      404   {object}  dto.RespostaErro
// @Router       /api/usuarios/{id}/foto [post]
func (h *UsuarioHandler) SalvarFoto(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.FotoRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if err := h.uc.SalvarFoto(c.Context(), id, in.Foto); err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.OK())
}
