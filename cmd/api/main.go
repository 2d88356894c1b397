package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/vendas-api/internal/application/auth"
	"github.com/jhoicas/vendas-api/internal/application/usecase"
	inframail "github.com/jhoicas/vendas-api/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/vendas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/vendas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/vendas-api/internal/interfaces/http"
	"github.com/jhoicas/vendas-api/pkg/config"
	"github.com/jhoicas/vendas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	vendaRepo := postgres.NewVendaRepository(pool)
	produtoRepo := postgres.NewProdutoRepository(pool)
	configRepo := postgres.NewConfigRepository(pool)
	notificacaoRepo := postgres.NewNotificacaoRepository(pool)
	logRepo := postgres.NewLogRepository(pool)

	mailer := inframail.NewGomailSender(cfg.SMTP.TimeoutSeconds)
	gerador := infrapdf.NewMarotoRelatorio()

	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo, logRepo)
	vendaUC := usecase.NewVendaUseCase(vendaRepo, produtoRepo, usuarioRepo, configRepo, logRepo, nil)
	produtoUC := usecase.NewProdutoUseCase(produtoRepo)
	configUC := usecase.NewConfigUseCase(configRepo, mailer)
	notificacaoUC := usecase.NewNotificacaoUseCase(notificacaoRepo)
	logUC := usecase.NewLogUseCase(logRepo)
	relatorioUC := usecase.NewRelatorioUseCase(vendaRepo, gerador)
	authUC := auth.NewUseCase(usuarioRepo, configRepo, logRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	sessions := session.New(session.Config{
		KeyLookup:      "cookie:" + cfg.Sessao.CookieName,
		Expiration:     time.Duration(cfg.Sessao.ExpMinutes) * time.Minute,
		CookieHTTPOnly: true,
		CookieSecure:   cfg.Sessao.Secure,
		CookieSameSite: "Lax",
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Vendas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		UsuarioUC:     usuarioUC,
		VendaUC:       vendaUC,
		ProdutoUC:     produtoUC,
		ConfigUC:      configUC,
		NotificacaoUC: notificacaoUC,
		LogUC:         logUC,
		RelatorioUC:   relatorioUC,
		AuthUC:        authUC,
		Sessions:      sessions,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
