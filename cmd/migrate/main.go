package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gin-order-admin/internal/domain/user"
	"gin-order-admin/internal/infra"
	"gin-order-admin/internal/infra/db"
	"gin-order-admin/internal/infra/readstore"
	"gin-order-admin/internal/infra/uow"
	"gin-order-admin/internal/pkg/config"
	"gin-order-admin/internal/pkg/password"
	"gin-order-admin/internal/usecase/shared"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kelseyhightower/envconfig"
)

// seedConfig describes the optional first admin account.
type seedConfig struct {
	Email       string `envconfig:"ADMIN_EMAIL"`
	Password    string `envconfig:"ADMIN_PASSWORD"`
	DisplayName string `envconfig:"ADMIN_DISPLAY_NAME" default:"Administrator"`
}

func main() {
	dir := flag.String("dir", "migrations", "directory holding the migration files and atlas.sum")
	atlasBin := flag.String("atlas", "atlas", "atlas CLI binary")
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying them")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := applyMigrations(ctx, *atlasBin, *dir, cfg.DB.BuildDSN(), *dryRun); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
	if *dryRun {
		return
	}

	if err := seedAdmin(ctx, cfg); err != nil {
		slog.Error("admin seed failed", "error", err)
		os.Exit(1)
	}
}

func applyMigrations(ctx context.Context, atlasBin, dir, url string, dryRun bool) error {
	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return fmt.Errorf("failed to load migration directory %s: %w", dir, err)
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), atlasBin)
	if err != nil {
		return fmt.Errorf("failed to initialize atlas client: %w", err)
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    url,
		DryRun: dryRun,
	})
	if err != nil {
		return fmt.Errorf("atlas migrate apply: %w", err)
	}

	for _, f := range res.Applied {
		slog.Info("applied migration", "version", f.Version, "name", f.Name)
	}
	slog.Info("schema is up to date", "current", res.Current, "target", res.Target, "applied", len(res.Applied))
	return nil
}

// seedAdmin creates the first admin when ADMIN_EMAIL and ADMIN_PASSWORD are set.
// An existing account with that email is left untouched.
func seedAdmin(ctx context.Context, cfg config.Config) error {
	var seed seedConfig
	if err := envconfig.Process("", &seed); err != nil {
		return fmt.Errorf("failed to process seed config: %w", err)
	}
	if seed.Email == "" || seed.Password == "" {
		slog.Info("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	email, err := user.NewEmail(seed.Email)
	if err != nil {
		return err
	}
	exists, err := adminExists(ctx, pool, email.Value())
	if err != nil {
		return err
	}
	if exists {
		slog.Info("admin already exists, skipping seed", "email", email.Value())
		return nil
	}

	if _, err := user.NewPassword(seed.Password); err != nil {
		return err
	}
	hash, err := password.HashPassword(seed.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin, err := user.NewUser(email, seed.DisplayName, hash, user.RoleAdmin, time.Now().UTC())
	if err != nil {
		return err
	}

	err = uow.NewPostgresUoW(pool).Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), admin)
	})
	if err != nil {
		return err
	}
	slog.Info("seeded admin user", "email", email.Value(), "user_id", admin.ID())
	return nil
}

func adminExists(ctx context.Context, pool *pgxpool.Pool, email string) (bool, error) {
	_, _, err := readstore.NewUserReadStore(pool).FindByEmail(ctx, email)
	switch {
	case err == nil:
		return true, nil
	case infra.IsKind(err, infra.KindNotFound):
		return false, nil
	default:
		return false, err
	}
}
