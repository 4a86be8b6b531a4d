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
	"github.com/mkonate/boutik-api/internal/application/auth"
	"github.com/mkonate/boutik-api/internal/application/stock"
	"github.com/mkonate/boutik-api/internal/application/usecase"
	infrapdf "github.com/mkonate/boutik-api/internal/infrastructure/pdf"
	"github.com/mkonate/boutik-api/internal/infrastructure/postgres"
	httpRouter "github.com/mkonate/boutik-api/internal/interfaces/http"
	"github.com/mkonate/boutik-api/pkg/config"
	"github.com/mkonate/boutik-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("chargement de la configuration : " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("démarrage de l'application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	if err := os.MkdirAll(cfg.Storage.UploadDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Storage.UploadDir).Msg("répertoire d'upload")
	}

	entrepriseRepo := postgres.NewEntrepriseRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	abonnementRepo := postgres.NewAbonnementRepository(pool)
	succursaleRepo := postgres.NewSuccursaleRepository(pool)
	boutiqueRepo := postgres.NewBoutiqueRepository(pool)
	modeleRepo := postgres.NewModeleRepository(pool)
	mbRepo := postgres.NewModeleBoutiqueRepository(pool)
	movRepo := postgres.NewMouvementStockRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	reservationRepo := postgres.NewReservationRepository(pool)
	caisseRepo := postgres.NewCaisseRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	rapportRepo := postgres.NewRapportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, entrepriseRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	entrepriseUC := usecase.NewEntrepriseUseCase(entrepriseRepo)
	abonnementUC := usecase.NewAbonnementUseCase(abonnementRepo)
	succursaleUC := usecase.NewSuccursaleUseCase(succursaleRepo)
	boutiqueUC := usecase.NewBoutiqueUseCase(boutiqueRepo, succursaleRepo)
	modeleUC := usecase.NewModeleUseCase(modeleRepo, mbRepo, boutiqueRepo)
	stockUC := stock.NewUseCase(txRunner, boutiqueRepo)
	stockQueryUC := stock.NewQueryUseCase(movRepo, boutiqueRepo, mbRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	reservationUC := usecase.NewReservationUseCase(
		reservationRepo, clientRepo, mbRepo, boutiqueRepo,
		notificationRepo, stockUC, txRunner,
	)
	caisseUC := usecase.NewCaisseUseCase(caisseRepo, boutiqueRepo, txRunner)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)
	rapportUC := usecase.NewRapportUseCase(rapportRepo, boutiqueRepo)

	// PDF : bon d'entrée / de sortie d'un mouvement de stock
	bonGenerator := infrapdf.NewBonMouvementGenerator()
	bonUC := stock.NewBonUseCase(movRepo, boutiqueRepo, mbRepo, modeleRepo, bonGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local : http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Boutik API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Photos de modèles servies en statique
	app.Static("/uploads", cfg.Storage.UploadDir)

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		EntrepriseUC:    entrepriseUC,
		AbonnementUC:    abonnementUC,
		SuccursaleUC:    succursaleUC,
		BoutiqueUC:      boutiqueUC,
		ModeleUC:        modeleUC,
		StockUC:         stockUC,
		StockQueryUC:    stockQueryUC,
		BonUC:           bonUC,
		ClientUC:        clientUC,
		ReservationUC:   reservationUC,
		CaisseUC:        caisseUC,
		NotificationUC:  notificationUC,
		RapportUC:       rapportUC,
		AbonnementGuard: abonnementRepo,
		JWTSecret:       cfg.JWT.Secret,
		UploadDir:       cfg.Storage.UploadDir,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP arrêté")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
