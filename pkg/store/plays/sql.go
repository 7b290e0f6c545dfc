package plays

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/de-tools/playbill/pkg/models/store"
	"github.com/rs/zerolog"
)

const DefaultTable = "plays"

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*){0,2}$`)

// SQLStore lists plays from a table with id, name and type columns. Any
// database/sql driver works; the CLI registers pgx, databricks and snowflake.
type SQLStore struct {
	db    *sql.DB
	table string
}

func NewSQLStore(db *sql.DB, table string) (*SQLStore, error) {
	if table == "" {
		table = DefaultTable
	}
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	return &SQLStore{db: db, table: table}, nil
}

func (s *SQLStore) List(ctx context.Context) ([]store.PlayRecord, error) {
	logger := zerolog.Ctx(ctx)
	query := fmt.Sprintf(`SELECT id, name, type FROM %s ORDER BY id`, s.table)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("plays query failed: %w", err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Warn().Err(err).Msg("failed to close plays query rows")
		}
	}(rows)

	var records []store.PlayRecord
	for rows.Next() {
		var record store.PlayRecord
		if err := rows.Scan(&record.ID, &record.Name, &record.Type); err != nil {
			return nil, fmt.Errorf("failed to scan play: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("plays query failed: %w", err)
	}

	logger.Debug().Str("table", s.table).Int("plays", len(records)).Msg("read plays table")
	return records, nil
}
