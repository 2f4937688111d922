package sink

import (
	"context"
	"fmt"
)

// schemaDDL creates the lookups table and the three indexes the downstream
// read API relies on: list by namespace, fetch by key, and list children by
// parent key, all scoped to a tenant.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS lookups (
	id         UUID PRIMARY KEY,
	tenant_id  UUID NOT NULL,
	namespace  TEXT NOT NULL,
	key        TEXT NOT NULL,
	value      JSONB NOT NULL,
	version    INTEGER NOT NULL DEFAULT 1,
	parent_key TEXT,
	metadata   JSONB NOT NULL DEFAULT '{}'::jsonb,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL,
	deleted_at TIMESTAMPTZ
);

CREATE INDEX IF NOT EXISTS idx_lookups_tenant_namespace
	ON lookups (tenant_id, namespace);
CREATE INDEX IF NOT EXISTS idx_lookups_tenant_namespace_key
	ON lookups (tenant_id, namespace, key);
CREATE INDEX IF NOT EXISTS idx_lookups_tenant_namespace_parent
	ON lookups (tenant_id, namespace, parent_key);
`

// EnsureSchema creates the lookups table and its indexes if they do not
// already exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("apply lookups schema: %w", err)
	}
	return nil
}
