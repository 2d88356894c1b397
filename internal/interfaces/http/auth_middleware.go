package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/vendas-api/internal/application/auth"
	"github.com/jhoicas/vendas-api/internal/application/dto"
	"github.com/jhoicas/vendas-api/pkg/jwt"
)

// Chave de locals para o contexto autenticado.
const localAuth = "auth_contexto"

// Chaves gravadas na sessão pelo login.
const (
	sessaoUserID   = "user_id"
	sessaoUsername = "username"
	sessaoPapel    = "papel"
)

// AuthMiddleware autentica a requisição por Bearer JWT ou, na falta dele,
// pela sessão de cookie, e carrega um auth.Contexto explícito em locals.
func AuthMiddleware(jwtSecret string, store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if header := c.Get("Authorization"); header != "" {
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.Erro("formato: Bearer <token>"))
			}
			tokenString := strings.TrimSpace(parts[1])
			userID, username, papel, err := jwt.Parse(jwtSecret, tokenString)
			if err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.Erro("token inválido ou expirado"))
			}
			c.Locals(localAuth, auth.Contexto{UserID: userID, Username: username, Papel: papel})
			return c.Next()
		}

		sess, err := store.Get(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Erro("sessão inválida"))
		}
		userID, _ := sess.Get(sessaoUserID).(string)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Erro("não autenticado"))
		}
		username, _ := sess.Get(sessaoUsername).(string)
		papel, _ := sess.Get(sessaoPapel).(string)
		c.Locals(localAuth, auth.Contexto{UserID: userID, Username: username, Papel: papel})
		return c.Next()
	}
}

// RequireRole autoriza somente os papéis listados (depois do AuthMiddleware).
func RequireRole(papeis ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := GetContexto(c)
		if ctx.Papel == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Erro("papel ausente no token"))
		}
		for _, p := range papeis {
			if ctx.Papel == p {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.Erro("acesso negado"))
	}
}

// RequirePagina gate das rotas de página: sem sessão, redireciona ao login
// (302) em vez de responder JSON.
func RequirePagina(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return c.Redirect("/login", fiber.StatusFound)
		}
		userID, _ := sess.Get(sessaoUserID).(string)
		if userID == "" {
			return c.Redirect("/login", fiber.StatusFound)
		}
		username, _ := sess.Get(sessaoUsername).(string)
		papel, _ := sess.Get(sessaoPapel).(string)
		c.Locals(localAuth, auth.Contexto{UserID: userID, Username: username, Papel: papel})
		return c.Next()
	}
}

// ControleAcesso aplica a restrição de horário configurada. Fora da janela,
// rotas de API respondem 401; o painel redireciona ao login.
func ControleAcesso(authUC *auth.UseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if authUC.AcessoLiberado(c.Context(), time.Now()) {
			return c.Next()
		}
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Erro("fora do horário de acesso"))
		}
		return c.Redirect("/login", fiber.StatusFound)
	}
}

// GetContexto devolve o contexto autenticado (depois do middleware).
func GetContexto(c *fiber.Ctx) auth.Contexto {
	v := c.Locals(localAuth)
	if v == nil {
		return auth.Contexto{}
	}
	ctx, _ := v.(auth.Contexto)
	return ctx
}
