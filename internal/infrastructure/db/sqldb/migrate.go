package sqldb

import (
	"context"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed migrations/mysql/*.sql migrations/postgres/*.sql
var migrations embed.FS

// Migrate applies the embedded schema migrations for dialect.
func Migrate(ctx context.Context, db *gorm.DB, dialect string) error {
	var dir string
	switch dialect {
	case DialectMySQL:
		dir = "migrations/mysql"
	case DialectPostgres:
		dir = "migrations/postgres"
	default:
		return fmt.Errorf("sqldb: unsupported dialect %q", dialect)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, dir); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
