package sink

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestCopyBatch_EmptyIsZeroCountSuccess(t *testing.T) {
	// An empty batch must return before any connection work, so a store
	// with no pool is safe here.
	s := &Store{}

	n, err := s.CopyBatch(context.Background(), uuid.New(), nil)
	if err != nil {
		t.Fatalf("CopyBatch(empty) error = %v", err)
	}
	if n != 0 {
		t.Errorf("CopyBatch(empty) = %d, want 0", n)
	}
}

func TestToPgText(t *testing.T) {
	if got := toPgText(""); got.Valid {
		t.Errorf("toPgText(\"\") = %+v, want NULL", got)
	}

	got := toPgText("110")
	if !got.Valid || got.String != "110" {
		t.Errorf("toPgText(110) = %+v, want valid 110", got)
	}
}

func TestMetadataOrEmpty(t *testing.T) {
	if got := metadataOrEmpty(nil); got == nil || len(got) != 0 {
		t.Errorf("metadataOrEmpty(nil) = %v, want empty map", got)
	}

	m := map[string]any{"type": "hospital"}
	if got := metadataOrEmpty(m); got["type"] != "hospital" {
		t.Errorf("metadataOrEmpty(m) = %v, want original map", got)
	}
}

func TestSchemaDDL_CoversReadPatterns(t *testing.T) {
	// The three indexes back the downstream access patterns: list by
	// namespace, fetch by key, list children by parent key.
	for _, want := range []string{
		"CREATE TABLE IF NOT EXISTS lookups",
		"idx_lookups_tenant_namespace",
		"idx_lookups_tenant_namespace_key",
		"idx_lookups_tenant_namespace_parent",
	} {
		if !strings.Contains(schemaDDL, want) {
			t.Errorf("schema DDL missing %q", want)
		}
	}

	for _, col := range lookupColumns {
		if !strings.Contains(schemaDDL, col) {
			t.Errorf("schema DDL missing copy column %q", col)
		}
	}
}
