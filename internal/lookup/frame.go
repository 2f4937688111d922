package lookup

// frame.go normalizes tabular frames: already-parsed column-oriented data
// with a named header row, used for the countries/cities/airports/airlines
// reference lists. Each normalizer lowercases the code column into key and
// value, takes a name column as the label, and copies the auxiliary columns
// into metadata with slug normalization for free-text categories.

import "strings"

// Frame is a header row plus data rows, as produced by the ingest layer
// from a CSV or XLSX source.
type Frame struct {
	Header []string
	Rows   [][]string
}

// FrameOf splits raw rows into a Frame, treating the first row as the
// header. An empty row set yields an empty frame.
func FrameOf(rows [][]string) Frame {
	if len(rows) == 0 {
		return Frame{}
	}
	return Frame{Header: rows[0], Rows: rows[1:]}
}

// NormalizeCountries maps a countries frame (code, name, region).
func NormalizeCountries(f Frame) Result {
	idx := MakeHeaderIndex(f.Header)
	var records []Record
	skipped := 0

	for _, row := range f.Rows {
		code := strings.ToLower(Cell(row, idx, "code"))
		if code == "" {
			skipped++
			continue
		}
		records = append(records, Record{
			Namespace: NamespaceCountries,
			Key:       code,
			Value:     Value{Value: code, Text: Cell(row, idx, "name")},
			Metadata: map[string]any{
				"region": Slug(Cell(row, idx, "region")),
			},
		})
	}

	return Result{Records: records, Skipped: skipped}
}

// NormalizeCities maps a cities frame (id, name_with_country, country_code,
// population). Population is carried verbatim.
func NormalizeCities(f Frame) Result {
	idx := MakeHeaderIndex(f.Header)
	var records []Record
	skipped := 0

	for _, row := range f.Rows {
		id := strings.ToLower(Cell(row, idx, "id"))
		if id == "" {
			skipped++
			continue
		}
		records = append(records, Record{
			Namespace: NamespaceCities,
			Key:       id,
			Value:     Value{Value: id, Text: Cell(row, idx, "name_with_country")},
			Metadata: map[string]any{
				"country":    strings.ToLower(Cell(row, idx, "country_code")),
				"population": Cell(row, idx, "population"),
			},
		})
	}

	return Result{Records: records, Skipped: skipped}
}

// NormalizeAirports maps an airports frame (code, name_with_code, city,
// country). Country names resolve through the given code table with a slug
// fallback; the original IATA code is preserved in metadata.
func NormalizeAirports(f Frame, codes map[string]string) Result {
	idx := MakeHeaderIndex(f.Header)
	var records []Record
	skipped := 0

	for _, row := range f.Rows {
		iata := Cell(row, idx, "code")
		code := strings.ToLower(iata)
		if code == "" {
			skipped++
			continue
		}
		records = append(records, Record{
			Namespace: NamespaceAirports,
			Key:       code,
			Value:     Value{Value: code, Text: Cell(row, idx, "name_with_code")},
			Metadata: map[string]any{
				"city":      Slug(Cell(row, idx, "city")),
				"country":   CountryCode(Cell(row, idx, "country"), codes),
				"iata_code": iata,
			},
		})
	}

	return Result{Records: records, Skipped: skipped}
}

// NormalizeAirlines maps an airlines frame (code, name, country, alliance).
// The label is composed as "name (CODE)" since airline names alone are
// ambiguous in typeahead results.
func NormalizeAirlines(f Frame, codes map[string]string) Result {
	idx := MakeHeaderIndex(f.Header)
	var records []Record
	skipped := 0

	for _, row := range f.Rows {
		iata := Cell(row, idx, "code")
		code := strings.ToLower(iata)
		if code == "" {
			skipped++
			continue
		}
		records = append(records, Record{
			Namespace: NamespaceAirlines,
			Key:       code,
			Value:     Value{Value: code, Text: Cell(row, idx, "name") + " (" + iata + ")"},
			Metadata: map[string]any{
				"country":   CountryCode(Cell(row, idx, "country"), codes),
				"alliance":  Slug(Cell(row, idx, "alliance")),
				"iata_code": iata,
			},
		})
	}

	return Result{Records: records, Skipped: skipped}
}
