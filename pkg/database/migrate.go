package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// RunMigrations aplica las migraciones pendientes usando goose sobre el pool.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, migrationsDir string, logger *zap.Logger) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("error al configurar el dialecto de goose: %w", err)
	}

	// goose trabaja con *sql.DB; lo abrimos sobre el pool existente.
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
		return fmt.Errorf("error al aplicar las migraciones: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("error al obtener la versión de migraciones: %w", err)
	}

	logger.Info("migraciones aplicadas", zap.Int64("version", version))
	return nil
}
