package migration

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	"go.uber.org/zap"
)

// Migration represents a database migration.
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// RunMigrations executes all necessary database migrations on startup.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("starting database migrations")

	migrations := []Migration{
		{Name: "create_resumes_table", Up: createResumesTable},
		{Name: "index_resumes_by_user", Up: indexResumesByUser},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			logger.Error("migration failed", zap.String("name", m.Name), zap.Error(err))
			return err
		}
		logger.Info("migration completed", zap.String("name", m.Name))
	}
	return nil
}

func createResumesTable(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS resumes (
			id UUID PRIMARY KEY,
			user_id TEXT NOT NULL,
			title TEXT NOT NULL DEFAULT 'Resume',
			template TEXT NOT NULL DEFAULT 'modern',
			sidebar_color TEXT NOT NULL DEFAULT '',
			data JSONB NOT NULL,
			last_modified BIGINT NOT NULL
		);
	`
	_, err := pool.Exec(ctx, query)
	return err
}

func indexResumesByUser(ctx context.Context, pool *pgxpool.Pool) error {
	query := `CREATE INDEX IF NOT EXISTS idx_resumes_user_id ON resumes (user_id);`
	_, err := pool.Exec(ctx, query)
	return err
}
