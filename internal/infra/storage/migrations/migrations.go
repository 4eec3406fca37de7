// Package migrations applies the embedded SQL schema files in name order.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/rian23304/sistema-pdv-nail-designer/pkg/dbmetrics"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

var (
	ErrReadMigrations = errors.New("migrations: failed to read migration files")
	ErrApplyMigration = errors.New("migrations: failed to apply migration")
	ErrTrackingTable  = errors.New("migrations: failed to prepare tracking table")
	ErrListApplied    = errors.New("migrations: failed to list applied migrations")
)

// Database is the subset of *dbmetrics.DB the runner needs
type Database interface {
	dbmetrics.DBExecutor
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

type Logger interface {
	Info(format string, v ...interface{})
}

type migration struct {
	Name    string
	Content string
}

// Run applies every migration not yet recorded in schema_migrations.
// Each file runs in its own transaction together with its tracking row.
func Run(ctx context.Context, db Database, logger Logger) error {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			name       TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`); err != nil {
		return fmt.Errorf("%w: %v", ErrTrackingTable, err)
	}

	applied, err := appliedMigrations(ctx, db)
	if err != nil {
		return err
	}

	files, err := migrationFiles(migrationsFS)
	if err != nil {
		return err
	}

	for _, m := range files {
		if applied[m.Name] {
			continue
		}
		logger.Info("Applying migration: %s", m.Name)
		if err := apply(ctx, db, m); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrApplyMigration, m.Name, err)
		}
	}
	return nil
}

func appliedMigrations(ctx context.Context, db Database) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, "SELECT name FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListApplied, err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrListApplied, err)
		}
		applied[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListApplied, err)
	}
	return applied, nil
}

func migrationFiles(fsys fs.FS) ([]migration, error) {
	var files []migration
	err := fs.WalkDir(fsys, "sql", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".sql") {
			return nil
		}
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		files = append(files, migration{Name: path.Base(p), Content: string(content)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadMigrations, err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})
	return files, nil
}

func apply(ctx context.Context, db Database, m migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, m.Content); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (name) VALUES ($1)", m.Name); err != nil {
		return err
	}
	return tx.Commit()
}
