package lookup

// normalize.go provides the small string transforms shared by the
// normalizers: cell cleanup, header indexing, slugging, and the
// "Name - Location" split used by the hospital formats.

import "strings"

// nameLocationSep separates a display name from its location in the
// hospital source files ("Mercy Hospital - Springfield").
const nameLocationSep = " - "

// HeaderIndex maps lowercase column names to their position in a header row.
type HeaderIndex map[string]int

// MakeHeaderIndex builds a case-insensitive index from a header row.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		idx[strings.ToLower(CleanCell(h))] = i
	}
	return idx
}

// Cell returns the cleaned value of the named column, or "" when the column
// is absent or the row is too short.
func Cell(row []string, idx HeaderIndex, name string) string {
	pos, ok := idx[strings.ToLower(name)]
	if !ok || pos >= len(row) {
		return ""
	}
	return CleanCell(row[pos])
}

// CleanCell removes common CSV artifacts from a cell value: surrounding
// whitespace, Excel formula prefixes (="value"), and stray quotes.
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, `="`) && strings.HasSuffix(s, `"`) {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	return strings.Trim(s, `"'`)
}

// Slug lowercases a free-text category value and replaces spaces with
// hyphens, yielding a stable metadata token ("Star Alliance" -> "star-alliance").
func Slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}

// SplitNameLocation splits a combined "Name - Location" label into at most
// two parts. Without the separator the whole label is the name and location
// is empty.
func SplitNameLocation(s string) (name, location string) {
	parts := strings.SplitN(s, nameLocationSep, 2)
	name = parts[0]
	if len(parts) > 1 {
		location = parts[1]
	}
	return name, location
}
