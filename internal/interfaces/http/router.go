package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/haikalarif/BCR-API-chapter08/internal/application/auth"
	"github.com/haikalarif/BCR-API-chapter08/internal/application/usecase"
	"github.com/haikalarif/BCR-API-chapter08/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC   *auth.AuthUseCase
	CarUC    *usecase.CarUseCase
	Verifier TokenVerifier
}

// Router registra las rutas de la API. Login, registro, raíz y lectura del
// catálogo son públicos; whoami requiere token y las mutaciones de carros
// requieren además rol ADMIN.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/", HandleGetRoot)

	v1 := app.Group("/v1")

	// Auth
	authGroup := v1.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Get("/whoami", AuthMiddleware(deps.Verifier), authHandler.WhoAmI)

	// Cars: lectura pública, mutaciones solo ADMIN
	cars := v1.Group("/cars")
	carHandler := NewCarHandler(deps.CarUC)
	cars.Get("/", carHandler.List)
	cars.Get("/report", AuthMiddleware(deps.Verifier), RequireRole(entity.RoleAdmin), carHandler.Report)
	cars.Get("/:id", carHandler.GetByID)
	cars.Post("/", AuthMiddleware(deps.Verifier), RequireRole(entity.RoleAdmin), carHandler.Create)
	cars.Put("/:id", AuthMiddleware(deps.Verifier), RequireRole(entity.RoleAdmin), carHandler.Update)
	cars.Delete("/:id", AuthMiddleware(deps.Verifier), RequireRole(entity.RoleAdmin), carHandler.Delete)

	// Rutas no registradas -> 404 con sobre uniforme
	app.Use(HandleNotFound)
}
