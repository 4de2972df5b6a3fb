package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is the interface for read queries.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// pgColumns maps table columns to the source keys Normalize understands,
// so rows and NDJSON lines share one normalization path.
var pgColumns = []struct {
	Column string
	Source string
}{
	{"article_title", "Article title"},
	{"year", "Year"},
	{"journal", "Journal"},
	{"doi", "Doi"},
	{"target_name", "Target name"},
	{"target_type", "Target type"},
	{"gene_symbol", "Gene_Symbol"},
	{"external_id", "External_ID"},
	{"external_name", "External_Name"},
	{"id_type", "ID_Type"},
	{"sequence_id", "Sequence ID"},
	{"aptamer_sequence", "Aptamer sequence"},
	{"pkd", "pKd"},
	{"affinity", "Affinity"},
	{"buffer_condition", "Buffer condition"},
	{"best", "Best"},
	{"level", "Level"},
}

// PostgresSource reads curated records from a Postgres table.
// It only ever issues a single SELECT; nothing is written back.
type PostgresSource struct {
	db    DBTX
	table string
}

// NewPostgresSource creates a source over table, which may be schema-qualified.
func NewPostgresSource(db DBTX, table string) *PostgresSource {
	return &PostgresSource{db: db, table: table}
}

// Name implements Source.
func (s *PostgresSource) Name() string { return "postgres:" + s.table }

// selectSQL builds the SELECT statement with a sanitized table identifier.
func (s *PostgresSource) selectSQL() string {
	cols := make([]string, len(pgColumns))
	for i, c := range pgColumns {
		cols[i] = c.Column
	}
	ident := pgx.Identifier(strings.Split(s.table, ".")).Sanitize()
	return fmt.Sprintf("SELECT %s FROM %s", strings.Join(cols, ", "), ident)
}

// Fetch implements Source.
func (s *PostgresSource) Fetch(ctx context.Context) (Batch, error) {
	rows, err := s.db.Query(ctx, s.selectSQL())
	if err != nil {
		return Batch{}, fmt.Errorf("data source unavailable: query %s: %w", s.table, err)
	}
	defer rows.Close()

	var batch Batch
	for rows.Next() {
		var (
			texts [14]pgtype.Text
			year  pgtype.Int4
			pkd   pgtype.Numeric
			best  pgtype.Bool
		)
		// Scan order follows pgColumns.
		dest := []any{
			&texts[0], &year, &texts[1], &texts[2], &texts[3], &texts[4],
			&texts[5], &texts[6], &texts[7], &texts[8], &texts[9], &texts[10],
			&pkd, &texts[11], &texts[12], &best, &texts[13],
		}
		if err := rows.Scan(dest...); err != nil {
			return batch, fmt.Errorf("data source unavailable: scan %s: %w", s.table, err)
		}

		raw := make(RawRecord, len(pgColumns))
		ti := 0
		for _, c := range pgColumns {
			switch c.Column {
			case "year":
				if year.Valid {
					raw[c.Source] = float64(year.Int32)
				}
			case "pkd":
				if f, err := pkd.Float64Value(); err == nil && f.Valid {
					raw[c.Source] = f.Float64
				}
			case "best":
				if best.Valid {
					raw[c.Source] = best.Bool
				}
			default:
				if texts[ti].Valid {
					raw[c.Source] = texts[ti].String
				}
				ti++
			}
		}
		batch.Records = append(batch.Records, raw)
	}
	if err := rows.Err(); err != nil {
		return batch, fmt.Errorf("data source unavailable: read %s: %w", s.table, err)
	}

	return batch, nil
}
