// Siembra idempotente del superadmin inicial a partir de
// SUPER_ADMIN_USERNAME y SUPER_ADMIN_PASSWORD. Si la cuenta ya existe con rol
// superadmin no hace nada; si existe con otro rol, falla en el insert por
// unicidad y lo reporta.
package main

import (
	"context"

	"github.com/tu-usuario/user-directory/internal/domain/entity"
	"github.com/tu-usuario/user-directory/internal/infrastructure/postgres"
	"github.com/tu-usuario/user-directory/pkg/config"
	"github.com/tu-usuario/user-directory/pkg/logger"
	"github.com/tu-usuario/user-directory/pkg/secrets"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if cfg.Seed.SuperAdminUsername == "" || cfg.Seed.SuperAdminPassword == "" {
		log.Fatal().Msg("SUPER_ADMIN_USERNAME y SUPER_ADMIN_PASSWORD deben estar definidos")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("inicializar esquema")
	}

	users := postgres.NewUserRepository(pool)

	existing, err := users.GetByUsername(cfg.Seed.SuperAdminUsername)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar superadmin")
	}
	if existing != nil && existing.Role == entity.RoleSuperadmin {
		log.Info().Str("username", existing.Username).Msg("el superadmin ya existe, nada que hacer")
		return
	}

	hash, err := secrets.HashPassword(cfg.Seed.SuperAdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password")
	}

	id, err := users.Create(&entity.User{
		Username:     cfg.Seed.SuperAdminUsername,
		PasswordHash: hash,
		Role:         entity.RoleSuperadmin,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear superadmin")
	}

	log.Info().Int64("id", id).Str("username", cfg.Seed.SuperAdminUsername).Msg("superadmin creado")
}
