package repositories

import (
	"context"
	"database/sql"

	"deep-summarizer/models"
)

// UsageSQLiteRepository stores usage entries in a local SQLite file.
type UsageSQLiteRepository struct {
	conn *sql.DB
}

func NewUsageSQLiteRepository(conn *sql.DB) *UsageSQLiteRepository {
	return &UsageSQLiteRepository{conn: conn}
}

func (r *UsageSQLiteRepository) Append(ctx context.Context, e models.UsageEntry) error {
	_, err := r.conn.ExecContext(ctx, `
		INSERT INTO usage_entries (id, timestamp_ms, endpoint, input_tokens, output_tokens, character_count, cost_usd)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.TimestampMs, e.Endpoint,
		nullInt(e.InputTokens), nullInt(e.OutputTokens), nullInt(e.CharacterCount),
		e.CostUSD,
	)
	return err
}

func (r *UsageSQLiteRepository) List(ctx context.Context) ([]models.UsageEntry, error) {
	rows, err := r.conn.QueryContext(ctx, `
		SELECT id, timestamp_ms, endpoint, input_tokens, output_tokens, character_count, cost_usd
		FROM usage_entries
		ORDER BY timestamp_ms ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.UsageEntry{}
	for rows.Next() {
		var (
			e                   models.UsageEntry
			input, output, char sql.NullInt64
		)
		if err := rows.Scan(&e.ID, &e.TimestampMs, &e.Endpoint, &input, &output, &char, &e.CostUSD); err != nil {
			return nil, err
		}
		e.InputTokens = intPtr(input)
		e.OutputTokens = intPtr(output)
		e.CharacterCount = intPtr(char)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func nullInt(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}

func intPtr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}
