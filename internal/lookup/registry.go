package lookup

import (
	"fmt"
	"sort"
	"sync"
)

// SourceKind tells the ingest layer how to read a format's source file.
type SourceKind string

const (
	// SourceCSV is comma-delimited text without a header row.
	SourceCSV SourceKind = "csv"

	// SourceTabbed is tab-delimited text, one record per non-empty line.
	SourceTabbed SourceKind = "tabbed"

	// SourceFrame is tabular data with a named header row (CSV or XLSX).
	SourceFrame SourceKind = "frame"
)

// ImporterInfo describes an import format for listing and dispatch.
type ImporterInfo struct {
	Key        string
	Label      string
	Source     SourceKind
	Namespaces []string
}

// ImporterDefinition binds a format key to the normalizer that handles it.
type ImporterDefinition struct {
	Info ImporterInfo

	// Run converts the raw rows of one source file into canonical records.
	Run func(rows [][]string) Result
}

var (
	registry   = make(map[string]ImporterDefinition)
	registryMu sync.RWMutex
)

// Register adds an import format to the registry.
// Panics if a format with the same key is already registered.
func Register(def ImporterDefinition) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[def.Info.Key]; exists {
		panic(fmt.Sprintf("import format already registered: %s", def.Info.Key))
	}

	registry[def.Info.Key] = def
}

// Get returns an import format by key.
// Returns false if not found.
func Get(key string) (ImporterDefinition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	def, ok := registry[key]
	return def, ok
}

// All returns all registered import formats, sorted by key for consistent
// ordering.
func All() []ImporterDefinition {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]ImporterDefinition, 0, len(registry))
	for _, def := range registry {
		result = append(result, def)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Info.Key < result[j].Info.Key
	})

	return result
}

// Count returns the number of registered import formats.
func Count() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}

// Clear removes all registered formats.
// Primarily useful for testing.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]ImporterDefinition)
}
