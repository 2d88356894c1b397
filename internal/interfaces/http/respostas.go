package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/internal/domain"
)

// responderErro mapeia erros tipados para status HTTP na borda. O texto de
// erros inesperados nunca vaza para o cliente: 500 tem mensagem fixa.
//
// Bloqueios "suaves" (expediente, limite) respondem 200 com success=false,
// pois o painel decide pelo campo success e não pelo status.
func responderErro(c *fiber.Ctx, err error) error {
	var ev *domain.ErroValidacao
	switch {
	case errors.As(err, &ev):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Erro(ev.Mensagem))
	case errors.Is(err, domain.ErrForaDoExpediente),
		errors.Is(err, domain.ErrLimiteVendas):
		return c.Status(fiber.StatusOK).JSON(dto.Erro(err.Error()))
	case errors.Is(err, domain.ErrNaoEncontrado),
		errors.Is(err, domain.ErrUsuarioNaoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.Erro("recurso não encontrado"))
	case errors.Is(err, domain.ErrUsernameJaExiste),
		errors.Is(err, domain.ErrDuplicado):
		return c.Status(fiber.StatusConflict).JSON(dto.Erro(err.Error()))
	case errors.Is(err, domain.ErrNaoAutorizado):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Erro("credenciais inválidas"))
	case errors.Is(err, domain.ErrAcessoNegado):
		return c.Status(fiber.StatusForbidden).JSON(dto.Erro("acesso negado"))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Erro("erro interno"))
	}
}

// corpoInvalido resposta padrão para body que não decodifica.
func corpoInvalido(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Erro("corpo da requisição inválido"))
}
