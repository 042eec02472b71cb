package postgres

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/jmoiron/sqlx"
)

// MigrationFiles lists the .sql files under dir in lexical order.
func MigrationFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".sql" {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// ApplyMigrations executes every .sql file under dir against db. The
// statements are idempotent so re-running on an existing schema is safe.
func ApplyMigrations(ctx context.Context, db *sqlx.DB, dir string) error {
	files, err := MigrationFiles(dir)
	if err != nil {
		return err
	}

	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, string(sqlBytes)); err != nil {
			return err
		}
	}
	return nil
}
