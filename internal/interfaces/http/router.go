package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/vendas-api/internal/application/auth"
	"github.com/jhoicas/vendas-api/internal/application/usecase"
	"github.com/jhoicas/vendas-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	UsuarioUC     *usecase.UsuarioUseCase
	VendaUC       *usecase.VendaUseCase
	ProdutoUC     *usecase.ProdutoUseCase
	ConfigUC      *usecase.ConfigUseCase
	NotificacaoUC *usecase.NotificacaoUseCase
	LogUC         *usecase.LogUseCase
	RelatorioUC   *usecase.RelatorioUseCase
	AuthUC        *auth.UseCase
	Sessions      *session.Store
	JWTSecret     string
}

// Router registra as rotas da API e das páginas.
func Router(app *fiber.App, deps RouterDeps) {
	// Páginas e estáticos
	app.Get("/robots.txt", RobotsTxt)
	app.Get("/login", PaginaLogin)
	app.Get("/painel", RequirePagina(deps.Sessions), ControleAcesso(deps.AuthUC), PaginaPainel)

	api := app.Group("/api")

	// Auth (login é público; logout/me exigem autenticação)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Sessions)
	api.Post("/auth/login", authHandler.Login)

	// Rotas protegidas (Bearer ou sessão) com controle de acesso por horário
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Sessions), ControleAcesso(deps.AuthUC))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	// Usuários (gestão restrita ao admin; consulta aberta aos autenticados)
	usuarios := protected.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", usuarioHandler.Listar)
	usuarios.Get("/:id", usuarioHandler.BuscarPorID)
	usuarios.Post("/", RequireRole(entity.PapelAdmin), usuarioHandler.Criar)
	usuarios.Put("/:id", RequireRole(entity.PapelAdmin), usuarioHandler.Atualizar)
	usuarios.Post("/:id/foto", usuarioHandler.SalvarFoto)

	// Produtos (catálogo mantido pelo admin)
	produtos := protected.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos.Get("/", produtoHandler.Listar)
	produtos.Get("/:codigo", produtoHandler.BuscarPorCodigo)
	produtos.Post("/", RequireRole(entity.PapelAdmin), produtoHandler.Criar)
	produtos.Put("/:codigo", RequireRole(entity.PapelAdmin), produtoHandler.Atualizar)

	// Vendas
	vendas := protected.Group("/vendas")
	vendaHandler := NewVendaHandler(deps.VendaUC)
	vendas.Post("/", vendaHandler.Criar)
	vendas.Get("/", vendaHandler.Listar)
	vendas.Get("/:numero", vendaHandler.BuscarPorNumero)
	vendas.Put("/:numero/status", vendaHandler.AtualizarStatus)
	vendas.Put("/:numero", vendaHandler.Atualizar)

	// Configurações (somente admin)
	configs := protected.Group("/configs", RequireRole(entity.PapelAdmin))
	configHandler := NewConfigHandler(deps.ConfigUC)
	configs.Get("/limites", configHandler.ListarLimites)
	configs.Post("/limites", configHandler.GravarLimite)
	configs.Get("/metas", configHandler.ListarMetas)
	configs.Post("/metas", configHandler.GravarMeta)
	configs.Get("/expediente", configHandler.BuscarExpediente)
	configs.Post("/expediente", configHandler.GravarExpediente)
	configs.Get("/smtp", configHandler.BuscarSMTP)
	configs.Post("/smtp", configHandler.GravarSMTP)
	configs.Post("/smtp/teste", configHandler.TestarSMTP)
	configs.Get("/acesso", configHandler.BuscarAcesso)
	configs.Post("/acesso", configHandler.GravarAcesso)

	// Notificações e auditoria
	notificacaoHandler := NewNotificacaoHandler(deps.NotificacaoUC, deps.LogUC)
	protected.Get("/notificacoes", notificacaoHandler.Listar)
	protected.Post("/notificacoes", notificacaoHandler.Criar)
	protected.Post("/notificacoes/:id/lida", notificacaoHandler.MarcarLida)
	protected.Get("/logs", RequireRole(entity.PapelAdmin), notificacaoHandler.ListarLogs)

	// Relatórios
	relatorioHandler := NewRelatorioHandler(deps.RelatorioUC)
	protected.Get("/relatorios/vendas.pdf", relatorioHandler.VendasPDF)
}
