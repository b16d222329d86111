package storage

import (
	"context"
	"embed"
	"io/fs"
	"sort"

	"github.com/sbilibin2017/gw-recipes/internal/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies the embedded schema files in name order. Every file is
// written to be re-runnable.
func Migrate(ctx context.Context, g *Gateway) error {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)

	for _, name := range names {
		body, err := migrations.ReadFile(name)
		if err != nil {
			return err
		}
		if _, err := g.Exec(ctx, string(body)); err != nil {
			return err
		}
		logger.Log.Infow("migration applied", "file", name)
	}
	return nil
}
