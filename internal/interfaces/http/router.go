package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mkonate/boutik-api/internal/application/auth"
	"github.com/mkonate/boutik-api/internal/application/stock"
	"github.com/mkonate/boutik-api/internal/application/usecase"
)

// RouterDeps dépendances pour le router.
type RouterDeps struct {
	AuthUC          *auth.UseCase
	EntrepriseUC    *usecase.EntrepriseUseCase
	AbonnementUC    *usecase.AbonnementUseCase
	SuccursaleUC    *usecase.SuccursaleUseCase
	BoutiqueUC      *usecase.BoutiqueUseCase
	ModeleUC        *usecase.ModeleUseCase
	StockUC         *stock.UseCase
	StockQueryUC    *stock.QueryUseCase
	BonUC           *stock.BonUseCase
	ClientUC        *usecase.ClientUseCase
	ReservationUC   *usecase.ReservationUseCase
	CaisseUC        *usecase.CaisseUseCase
	NotificationUC  *usecase.NotificationUseCase
	RapportUC       *usecase.RapportUseCase
	AbonnementGuard abonnementChecker
	JWTSecret       string
	UploadDir       string
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Création d'entreprise (public : c'est le point d'entrée de l'inscription)
	entrepriseHandler := NewEntrepriseHandler(deps.EntrepriseUC)
	api.Post("/entreprises", entrepriseHandler.Create)

	// Routes protégées (Bearer token requis)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Toute écriture métier exige un abonnement actif. La souscription
	// elle-même et la consultation restent accessibles, sinon une entreprise
	// échue ne pourrait jamais se réabonner.
	abonne := RequireAbonnement(deps.AbonnementGuard)

	// Entreprise courante (celle du token)
	protected.Get("/entreprises/moi", entrepriseHandler.GetByID)
	protected.Put("/entreprises/moi", entrepriseHandler.Update)

	// Abonnements
	abonnements := protected.Group("/abonnements")
	abonnementHandler := NewAbonnementHandler(deps.AbonnementUC)
	abonnements.Post("/", abonnementHandler.Souscrire)
	abonnements.Get("/actif", abonnementHandler.Actif)

	// Succursales
	succursales := protected.Group("/succursales")
	succursaleHandler := NewSuccursaleHandler(deps.SuccursaleUC)
	succursales.Post("/", abonne, succursaleHandler.Create)
	succursales.Get("/", succursaleHandler.List)
	succursales.Get("/:id", succursaleHandler.GetByID)
	succursales.Put("/:id", abonne, succursaleHandler.Update)
	succursales.Delete("/:id", abonne, succursaleHandler.Delete)

	// Boutiques
	boutiques := protected.Group("/boutiques")
	boutiqueHandler := NewBoutiqueHandler(deps.BoutiqueUC)
	boutiques.Post("/", abonne, boutiqueHandler.Create)
	boutiques.Get("/", boutiqueHandler.List)
	boutiques.Get("/:id", boutiqueHandler.GetByID)
	boutiques.Put("/:id", abonne, boutiqueHandler.Update)
	boutiques.Delete("/:id", abonne, boutiqueHandler.Delete)

	// Modèles et déclinaisons en boutique
	modeles := protected.Group("/modeles")
	modeleHandler := NewModeleHandler(deps.ModeleUC, deps.UploadDir)
	modeles.Post("/", abonne, modeleHandler.Create)
	modeles.Get("/", modeleHandler.List)
	modeles.Get("/:id", modeleHandler.GetByID)
	modeles.Put("/:id", abonne, modeleHandler.Update)
	modeles.Delete("/:id", abonne, modeleHandler.Delete)
	modeles.Post("/:id/photo", abonne, modeleHandler.AttacherPhoto)

	modeleBoutiques := protected.Group("/modeleBoutiques")
	modeleBoutiques.Post("/", abonne, modeleHandler.CreateModeleBoutique)
	modeleBoutiques.Put("/:id", abonne, modeleHandler.UpdateModeleBoutique)
	modeleBoutiques.Delete("/:id", abonne, modeleHandler.DeleteModeleBoutique)
	modeleBoutiques.Get("/boutique/:id", modeleHandler.ListModeleBoutiques)

	// Registre des mouvements de stock. Les chemins fixes sont enregistrés
	// avant GET /:boutiqueId pour que Fiber ne les capture pas comme
	// paramètre.
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC, deps.StockQueryUC, deps.BonUC)
	stockGroup.Post("/entree", abonne, stockHandler.Entree)
	stockGroup.Post("/sortie", abonne, stockHandler.Sortie)
	stockGroup.Put("/entree/:id", abonne, stockHandler.UpdateEntree)
	stockGroup.Put("/sortie/:id", abonne, stockHandler.UpdateSortie)
	stockGroup.Get("/modeleBoutique/:id", stockHandler.HistoriqueModeleBoutique)
	stockGroup.Get("/mouvement/:id/bon", stockHandler.Bon)
	stockGroup.Get("/:boutiqueId", stockHandler.HistoriqueBoutique)
	stockGroup.Delete("/:id", abonne, stockHandler.Delete)

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", abonne, clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", abonne, clientHandler.Update)
	clients.Delete("/:id", abonne, clientHandler.Delete)

	// Réservations
	reservations := protected.Group("/reservations")
	reservationHandler := NewReservationHandler(deps.ReservationUC)
	reservations.Post("/", abonne, reservationHandler.Create)
	reservations.Get("/", reservationHandler.List)
	reservations.Post("/:id/confirmer", abonne, reservationHandler.Confirmer)
	reservations.Post("/:id/annuler", abonne, reservationHandler.Annuler)

	// Caisses
	caisses := protected.Group("/caisses")
	caisseHandler := NewCaisseHandler(deps.CaisseUC)
	caisses.Post("/", abonne, caisseHandler.Create)
	caisses.Get("/", caisseHandler.List)
	caisses.Get("/:id", caisseHandler.GetByID)
	caisses.Get("/:id/solde", caisseHandler.Solde)
	caisses.Post("/:id/mouvements", abonne, caisseHandler.EnregistrerMouvement)
	caisses.Get("/:id/mouvements", caisseHandler.ListMouvements)
	caisses.Delete("/:id", abonne, caisseHandler.Delete)

	// Notifications
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Post("/:id/lue", notificationHandler.MarquerLue)

	// Rapports
	rapports := protected.Group("/rapports")
	rapportHandler := NewRapportHandler(deps.RapportUC)
	rapports.Get("/stock", rapportHandler.Stock)
	rapports.Get("/caisses", rapportHandler.Caisses)
}
