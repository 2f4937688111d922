// Package lookup defines the canonical lookup record shared by every import
// format, plus the per-format normalizers that produce them.
//
// A lookup record is one entry in a named category ("namespace"): a ZIP code,
// a hospital, a country. Records may reference a parent record's key to
// encode a hierarchy (ZIP codes under market areas). Normalizers are pure:
// they take raw rows and return records, never touching files or the store.
package lookup

// Namespaces produced by the built-in import formats.
const (
	NamespaceZipCodes        = "zip-codes"
	NamespaceMarketAreas     = "market-areas"
	NamespaceHospitals       = "hospitals"
	NamespaceHospitalSystems = "hospital-systems"
	NamespaceCountries       = "countries"
	NamespaceCities          = "cities"
	NamespaceAirports        = "airports"
	NamespaceAirlines        = "airlines"
)

// Value is the typeahead payload stored in the value column: the selectable
// code plus its human-readable label.
type Value struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}

// Record is one canonical lookup entry. Records are built once per source
// row and never mutated; persistence fields (id, tenant, version,
// timestamps) are attached at the sink boundary, not here.
type Record struct {
	Namespace string         `json:"namespace"`
	Key       string         `json:"key"`
	Value     Value          `json:"value"`
	ParentKey string         `json:"parent_key,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Result is the outcome of normalizing one source file: the ordered record
// sequence plus a count of malformed rows that were dropped. Dropped rows
// are never an error, but the count is surfaced so callers can log it.
type Result struct {
	Records []Record
	Skipped int
}
