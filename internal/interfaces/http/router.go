package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/user-directory/internal/application/auth"
	"github.com/tu-usuario/user-directory/internal/application/usecase"
	"github.com/tu-usuario/user-directory/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC *auth.AuthUseCase
	UserUC *usecase.UserUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público: es la única ruta sin token)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth", authHandler.Authenticate)

	// Users (protegido: x-api-token resuelto contra la base)
	users := api.Group("/users", TokenMiddleware(deps.AuthUC))
	userHandler := NewUserHandler(deps.UserUC)

	users.Get("/get_list",
		RequireRole(entity.RoleAdmin, entity.RoleSuperadmin),
		userHandler.List)
	users.Get("/get_user",
		RequireRole(entity.RoleUser, entity.RoleAdmin, entity.RoleSuperadmin),
		userHandler.Get)
	users.Post("/add_new",
		RequireRole(entity.RoleAdmin, entity.RoleSuperadmin),
		userHandler.Register)
	users.Delete("/delete_user",
		RequireRole(entity.RoleAdmin, entity.RoleSuperadmin),
		userHandler.Delete)
	users.Patch("/edit_user",
		RequireRole(entity.RoleAdmin, entity.RoleSuperadmin),
		userHandler.Update)
}
