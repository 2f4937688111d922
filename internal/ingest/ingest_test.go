package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/paddyodab/lookup-import/internal/lookup"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestReadRows_CSV(t *testing.T) {
	path := writeTemp(t, "zips.dat", []byte("110,60601\n110,60602\n"))

	rows, err := ReadRows(path, lookup.SourceCSV)
	if err != nil {
		t.Fatalf("ReadRows() error = %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0][0] != "110" || rows[0][1] != "60601" {
		t.Errorf("rows[0] = %v, want [110 60601]", rows[0])
	}
}

func TestReadRows_CSVQuotedAndRagged(t *testing.T) {
	path := writeTemp(t, "hospitals.dat", []byte("\"1005\",,\"Mercy Hospital - Springfield\"\nshort\n"))

	rows, err := ReadRows(path, lookup.SourceCSV)
	if err != nil {
		t.Fatalf("ReadRows() error = %v", err)
	}

	// Ragged rows must survive parsing; the normalizer decides what to drop
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0][2] != "Mercy Hospital - Springfield" {
		t.Errorf("rows[0][2] = %q, want unquoted label", rows[0][2])
	}
	if len(rows[1]) != 1 {
		t.Errorf("len(rows[1]) = %d, want 1", len(rows[1]))
	}
}

func TestReadRows_CSVSkipsBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("110,60601\n")...)
	path := writeTemp(t, "bom.dat", data)

	rows, err := ReadRows(path, lookup.SourceCSV)
	if err != nil {
		t.Fatalf("ReadRows() error = %v", err)
	}

	if rows[0][0] != "110" {
		t.Errorf("rows[0][0] = %q, want %q (BOM not stripped)", rows[0][0], "110")
	}
}

func TestReadRows_Tabbed(t *testing.T) {
	data := []byte("Ascension Health - St. Louis, MO\t101\r\n\n  \nNo preference\t-1\n")
	path := writeTemp(t, "systems.dat", data)

	rows, err := ReadRows(path, lookup.SourceTabbed)
	if err != nil {
		t.Fatalf("ReadRows() error = %v", err)
	}

	// Blank lines dropped, CR stripped
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0][0] != "Ascension Health - St. Louis, MO" || rows[0][1] != "101" {
		t.Errorf("rows[0] = %v", rows[0])
	}
	if rows[1][1] != "-1" {
		t.Errorf("rows[1][1] = %q, want %q", rows[1][1], "-1")
	}
}

func TestReadRows_XLSXFrame(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range [][]any{
		{"code", "name", "region"},
		{"JP", "Japan", "East Asia"},
	} {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set sheet row: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "countries.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save xlsx: %v", err)
	}

	rows, err := ReadRows(path, lookup.SourceFrame)
	if err != nil {
		t.Fatalf("ReadRows() error = %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[1][0] != "JP" || rows[1][1] != "Japan" {
		t.Errorf("rows[1] = %v, want [JP Japan East Asia]", rows[1])
	}
}

func TestReadRows_FrameCSVAndXLSXAgree(t *testing.T) {
	csvPath := writeTemp(t, "countries.csv", []byte("code,name,region\nJP,Japan,East Asia\n"))

	csvRows, err := ReadRows(csvPath, lookup.SourceFrame)
	if err != nil {
		t.Fatalf("ReadRows(csv) error = %v", err)
	}

	csvRes := lookup.NormalizeCountries(lookup.FrameOf(csvRows))
	if len(csvRes.Records) != 1 || csvRes.Records[0].Key != "jp" {
		t.Errorf("csv frame records = %+v, want one jp record", csvRes.Records)
	}
}

func TestReadRows_MissingFile(t *testing.T) {
	_, err := ReadRows(filepath.Join(t.TempDir(), "absent.dat"), lookup.SourceCSV)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSanitizeUTF8(t *testing.T) {
	clean := []byte("plain ascii")
	if got := sanitizeUTF8(clean); string(got) != "plain ascii" {
		t.Errorf("sanitizeUTF8(clean) = %q", got)
	}

	dirty := []byte{'a', 0xFF, 'b'}
	got := sanitizeUTF8(dirty)
	want := "a�b"
	if string(got) != want {
		t.Errorf("sanitizeUTF8(dirty) = %q, want %q", got, want)
	}
}
