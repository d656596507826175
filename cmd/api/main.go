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

	"github.com/tu-usuario/logistica-api/internal/application/auth"
	"github.com/tu-usuario/logistica-api/internal/application/usecase"
	infrapdf "github.com/tu-usuario/logistica-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/logistica-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/logistica-api/internal/infrastructure/storage"
	httpRouter "github.com/tu-usuario/logistica-api/internal/interfaces/http"
	"github.com/tu-usuario/logistica-api/pkg/config"
	"github.com/tu-usuario/logistica-api/pkg/logger"
	"github.com/tu-usuario/logistica-api/pkg/notify"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	imageStorage, err := storage.NewLocalImageStorage(cfg.Upload.Dir, cfg.Upload.BaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("storage de fotos")
	}
	deliveryNote := infrapdf.NewMarotoDeliveryNote()

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:             cfg.JWT.Secret,
		ExpMinutes:         cfg.JWT.Expiration,
		RememberExpMinutes: cfg.JWT.RememberExpiration,
		Issuer:             cfg.JWT.Issuer,
	})
	orderUC := usecase.NewOrderUseCase(orderRepo, customerRepo, txRunner, imageStorage, deliveryNote)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	userUC := usecase.NewUserUseCase(userRepo, authUC)

	// Bus de notificaciones compartido por el middleware HTTP; cada resultado
	// de escritura queda también en el log estructurado.
	bus := notify.NewBus()
	sub := bus.Subscribe()
	go func() {
		for n := range sub {
			log.Info().
				Str("type", n.Type).
				Str("id", n.ID).
				Msg(n.Message)
		}
	}()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Logística API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Fotos subidas, servidas como estáticos.
	app.Static("/uploads", imageStorage.Dir())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		OrderUC:    orderUC,
		CustomerUC: customerUC,
		UserUC:     userUC,
		Bus:        bus,
		JWTSecret:  cfg.JWT.Secret,
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

	bus.Unsubscribe(sub)
	log.Info().Msg("aplicación detenida")
}
