package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/de-tools/playbill/pkg/services/config"
	"github.com/de-tools/playbill/pkg/store/plays"
	"github.com/rs/zerolog"
)

var ErrNoCatalog = errors.New("no play catalog configured")

// OpenDB opens a database handle; sql.Open satisfies it.
type OpenDB func(driver, dsn string) (*sql.DB, error)

// Open loads the catalog described by cfg: a SQL table when a driver is set,
// otherwise the document at cfg.Path.
func Open(ctx context.Context, cfg config.Catalog, opener plays.Opener, openDB OpenDB) (*Map, error) {
	switch {
	case cfg.Driver != "":
		if openDB == nil {
			openDB = sql.Open
		}
		db, err := openDB(cfg.Driver, cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s catalog: %w", cfg.Driver, err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				zerolog.Ctx(ctx).Warn().Err(err).Str("driver", cfg.Driver).Msg("failed to close catalog db")
			}
		}()

		src, err := plays.NewSQLStore(db, cfg.Table)
		if err != nil {
			return nil, err
		}
		return Load(ctx, src)
	case cfg.Path != "":
		src, err := plays.NewFileStore(opener, cfg.Path)
		if err != nil {
			return nil, err
		}
		return Load(ctx, src)
	default:
		return nil, ErrNoCatalog
	}
}
