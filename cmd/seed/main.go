// Command seed bootstraps the credential store: it creates the unique email
// index and the initial admin account, so a fresh deployment has one user
// able to register the rest. Safe to run repeatedly.
package main

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/medroster/roster-system/internal/core/domain"
	mongodb "github.com/medroster/roster-system/internal/infrastructure/db/mongo"
	"github.com/medroster/roster-system/internal/pkg/config"
	"github.com/medroster/roster-system/pkg/logger"
)

const bcryptCost = 10

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Open(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	repo := mongodb.NewUserRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.AdminPassword), bcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash admin password failed")
	}

	now := time.Now().UTC()
	admin, err := repo.Create(ctx, &domain.User{
		Email:        cfg.Seed.AdminEmail,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, domain.ErrEmailExists) {
		log.Info().Str("email", cfg.Seed.AdminEmail).Msg("admin account already present, nothing to do")
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("create admin failed")
	}

	log.Info().
		Str("id", admin.ID).
		Str("email", admin.Email).
		Msg("seeded admin account")
}
