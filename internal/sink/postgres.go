package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/paddyodab/lookup-import/internal/lookup"
)

const lookupsTable = "lookups"

// lookupColumns is the column order for the bulk copy. It must match the
// row slices built in CopyBatch.
var lookupColumns = []string{
	"id", "tenant_id", "namespace", "key", "value",
	"version", "parent_key", "metadata",
	"created_at", "updated_at", "deleted_at",
}

// Store bulk-loads lookup batches into PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a store backed by the given pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// CopyBatch attaches persistence fields to every record (generated id,
// tenant id, version 1, current timestamps, null deleted_at) and submits
// the whole batch in a single COPY. It returns the number of rows written.
//
// An empty batch is a zero-count success and touches no connection. On
// failure the error propagates after the connection is released; COPY is
// all-or-nothing per call, so there are no partial writes to clean up and
// no retries.
func (s *Store) CopyBatch(ctx context.Context, tenantID uuid.UUID, records []lookup.Record) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	rows := make([][]any, 0, len(records))
	for _, rec := range records {
		value, err := json.Marshal(rec.Value)
		if err != nil {
			return 0, fmt.Errorf("marshal value for %s/%s: %w", rec.Namespace, rec.Key, err)
		}
		meta, err := json.Marshal(metadataOrEmpty(rec.Metadata))
		if err != nil {
			return 0, fmt.Errorf("marshal metadata for %s/%s: %w", rec.Namespace, rec.Key, err)
		}

		rows = append(rows, []any{
			uuid.New(),
			tenantID,
			rec.Namespace,
			rec.Key,
			value,
			int32(1),
			toPgText(rec.ParentKey),
			meta,
			now,
			now,
			pgtype.Timestamptz{},
		})
	}

	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return 0, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	n, err := conn.CopyFrom(ctx, pgx.Identifier{lookupsTable}, lookupColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("copy %d lookups: %w", len(rows), err)
	}
	return n, nil
}

// toPgText converts an optional string to pgtype.Text, mapping "" to NULL.
func toPgText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

// metadataOrEmpty substitutes an empty map for nil metadata so the JSONB
// column gets {} rather than null.
func metadataOrEmpty(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
