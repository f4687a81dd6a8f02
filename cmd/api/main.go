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

	_ "github.com/haikalarif/BCR-API-chapter08/docs"
	"github.com/haikalarif/BCR-API-chapter08/internal/application/auth"
	"github.com/haikalarif/BCR-API-chapter08/internal/application/usecase"
	"github.com/haikalarif/BCR-API-chapter08/internal/infrastructure/pdf"
	"github.com/haikalarif/BCR-API-chapter08/internal/infrastructure/postgres"
	apphttp "github.com/haikalarif/BCR-API-chapter08/internal/interfaces/http"
	"github.com/haikalarif/BCR-API-chapter08/pkg/config"
	"github.com/haikalarif/BCR-API-chapter08/pkg/jwt"
	"github.com/haikalarif/BCR-API-chapter08/pkg/logger"
	"github.com/haikalarif/BCR-API-chapter08/pkg/password"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()
	if err := postgres.Migrate(cfg.DB); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	carRepo := postgres.NewCarRepository(pool)

	signer := jwt.NewSigner(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	hasher := password.NewHasher(cfg.Hash.BcryptCost)

	authUC := auth.NewAuthUseCase(userRepo, roleRepo, hasher, signer)
	carUC := usecase.NewCarUseCase(carRepo, pdf.NewFleetReportGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: apphttp.NewErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(apphttp.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "BCR API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:   authUC,
		CarUC:    carUC,
		Verifier: signer,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
