// Package ingest opens source files and turns them into the raw row sets
// the lookup normalizers consume. It owns all file I/O and format quirks:
// UTF-8 BOMs from Windows exports, invalid byte sequences, lazy quoting,
// and XLSX workbooks for the tabular-frame formats.
package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/paddyodab/lookup-import/internal/lookup"
)

// utf8BOM is the byte order mark Windows tools prepend to exported files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadRows reads one source file into raw rows, dispatching on the format's
// source kind. Frame sources may be .xlsx workbooks; everything else is
// delimited text. A missing or unreadable file is an error and aborts the
// run.
func ReadRows(path string, kind lookup.SourceKind) ([][]string, error) {
	if kind == lookup.SourceFrame && strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readXLSX(path)
	}
	if kind == lookup.SourceTabbed {
		return readTabbed(path)
	}
	return readCSV(path)
}

// readCSV reads comma-delimited text. FieldsPerRecord is disabled so ragged
// rows reach the normalizer, which applies its own row-length policy.
func readCSV(path string) ([][]string, error) {
	data, err := readFileClean(path)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return rows, nil
}

// readTabbed reads tab-delimited text, one record per line. Lines that are
// empty after trimming are skipped.
func readTabbed(path string) ([][]string, error) {
	data, err := readFileClean(path)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}
		rows = append(rows, strings.Split(line, "\t"))
	}
	return rows, nil
}

// readXLSX reads the first sheet of a workbook as header+rows.
func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("open %s: workbook has no sheets", path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q of %s: %w", sheet, path, err)
	}
	return rows, nil
}

// readFileClean reads the whole file, strips a leading BOM, and sanitizes
// invalid UTF-8. The source files are small reference lists, so reading
// wholesale keeps the pipeline simple.
func readFileClean(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return sanitizeUTF8(bytes.TrimPrefix(data, utf8BOM)), nil
}

// sanitizeUTF8 replaces invalid UTF-8 sequences with the Unicode
// replacement character so csv parsing never chokes on stray bytes.
func sanitizeUTF8(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}

	var buf bytes.Buffer
	buf.Grow(len(data))

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune('�')
			data = data[1:]
		} else {
			buf.WriteRune(r)
			data = data[size:]
		}
	}

	return buf.Bytes()
}
