package http

import (
	"github.com/gofiber/fiber/v2"
)

const paginaLogin = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
  <meta charset="utf-8">
  <title>Vendas - Login</title>
</head>
<body>
  <h1>Acesso ao sistema</h1>
  <form id="login">
    <input name="username" placeholder="Usuário" autocomplete="username">
    <input name="senha" type="password" placeholder="Senha" autocomplete="current-password">
    <button type="submit">Entrar</button>
  </form>
  <script>
    document.getElementById("login").addEventListener("submit", async (e) => {
      e.preventDefault();
      const f = new FormData(e.target);
      const resp = await fetch("/api/auth/login", {
        method: "POST",
        headers: {"Content-Type": "application/json"},
        body: JSON.stringify({username: f.get("username"), senha: f.get("senha")}),
      });
      if (resp.ok) { window.location = "/painel"; }
    });
  </script>
</body>
</html>`

const paginaPainel = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
  <meta charset="utf-8">
  <title>Vendas - Painel</title>
</head>
<body>
  <h1>Painel de vendas</h1>
  <p>Sessão ativa. Use a API em /api para operar o sistema.</p>
</body>
</html>`

const robotsTxt = "User-agent: *\nDisallow: /\n"

// PaginaLogin serve a página pública de login.
func PaginaLogin(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(paginaLogin)
}

// PaginaPainel serve o painel; o router protege a rota com sessão.
func PaginaPainel(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(paginaPainel)
}

// RobotsTxt bloqueia indexação do sistema interno.
func RobotsTxt(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(robotsTxt)
}
