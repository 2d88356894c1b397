package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/application/usecase"
)

// ProdutoHandler CRUD do catálogo de produtos.
type ProdutoHandler struct {
	uc *usecase.ProdutoUseCase
}

// NewProdutoHandler constrói o handler.
func NewProdutoHandler(uc *usecase.ProdutoUseCase) *ProdutoHandler {
	return &ProdutoHandler{uc: uc}
}

// Criar godoc
// @Summary      Cadastrar produto
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarProdutoRequest  true  "Dados do produto"
// @Success      201   {object}  dto.ProdutoResponse
// @Failure      400   {object}  dto.RespostaErro
// @Failure      409   {object}  dto.RespostaErro
// @Router       /api/produtos [post]
func (h *ProdutoHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.Criar(c.Context(), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Atualizar godoc
// @Summary      Atualizar produto
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        codigo  path  string  true  "Código do produto"
// @Param        body    body  dto.CriarProdutoRequest  true  "Dados do produto"
// @Success      200  {object}  dto.ProdutoResponse
// @Failure      404  {object}  dto.RespostaErro
// @Router       /api/produtos/{codigo} [put]
func (h *ProdutoHandler) Atualizar(c *fiber.Ctx) error {
	var in dto.CriarProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.Atualizar(c.Context(), c.Params("codigo"), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// BuscarPorCodigo godoc
// @Summary      Detalhe de produto
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        codigo  path  string  true  "Código do produto"
// @Success      200  {object}  dto.ProdutoResponse
// @Failure      404  {object}  dto.RespostaErro
// @Router       /api/produtos/{codigo} [get]
func (h *ProdutoHandler) BuscarPorCodigo(c *fiber.Ctx) error {
	out, err := h.uc.BuscarPorCodigo(c.Context(), c.Params("codigo"))
	if err != nil {
		return responderErro(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Erro("recurso não encontrado"))
	}
	return c.JSON(out)
}

// Listar godoc
// @Summary      Listar catálogo
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProdutoResponse
// @Router       /api/produtos [get]
func (h *ProdutoHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.Context())
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}
