package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/vendas-api/internal/application/auth"
	"github.com/jhoicas/vendas-api/internal/application/dto"
)

// AuthHandler login, logout e consulta da identidade corrente.
type AuthHandler struct {
	uc    *auth.UseCase
	store *session.Store
}

// NewAuthHandler constrói o handler.
func NewAuthHandler(uc *auth.UseCase, store *session.Store) *AuthHandler {
	return &AuthHandler{uc: uc, store: store}
}

// Login godoc
// @Summary      Autenticar usuário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciais"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.RespostaErro
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return responderErro(c, err)
	}

	// Grava a sessão de cookie para o painel; clientes de API usam o token.
	sess, err := h.store.Get(c)
	if err == nil {
		sess.Set(sessaoUserID, out.Usuario.ID)
		sess.Set(sessaoUsername, out.Usuario.Username)
		sess.Set(sessaoPapel, out.Usuario.Papel)
		if err := sess.Save(); err != nil {
			return responderErro(c, err)
		}
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Encerrar sessão
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.RespostaOK
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err == nil {
		_ = sess.Destroy()
	}
	return c.JSON(dto.OK())
}

// Me godoc
// @Summary      Identidade autenticada da requisição
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	ctx := GetContexto(c)
	return c.JSON(fiber.Map{
		"user_id":  ctx.UserID,
		"username": ctx.Username,
		"papel":    ctx.Papel,
	})
}
