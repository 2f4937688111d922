package lookup

import "strings"

// specialSystemCode marks placeholder hospital-system entries such as
// "No preference" in the source data.
const specialSystemCode = "-1"

// NormalizeHospitals converts three-column hospital rows (code, unused,
// "Name - Location") into hospital records. Rows with fewer than three
// fields are dropped and counted. The middle column is empty in the source
// data and ignored.
func NormalizeHospitals(rows [][]string) Result {
	var records []Record
	skipped := 0

	for _, row := range rows {
		if len(row) < 3 {
			skipped++
			continue
		}
		code := CleanCell(row[0])
		label := CleanCell(row[2])
		name, location := SplitNameLocation(label)

		records = append(records, Record{
			Namespace: NamespaceHospitals,
			Key:       code,
			Value:     Value{Value: code, Text: label},
			Metadata: map[string]any{
				"type":     "hospital",
				"name":     name,
				"location": location,
			},
		})
	}

	return Result{Records: records, Skipped: skipped}
}

// NormalizeHospitalSystems converts tab-delimited system rows ("Name -
// Location", code) into hospital-system records. Rows with fewer than two
// fields are dropped and counted; a code equal to "-1" flags the record as
// a special placeholder entry.
func NormalizeHospitalSystems(rows [][]string) Result {
	var records []Record
	skipped := 0

	for _, row := range rows {
		if len(row) < 2 {
			skipped++
			continue
		}
		label := strings.TrimSpace(row[0])
		code := strings.TrimSpace(row[1])
		name, location := SplitNameLocation(label)

		records = append(records, Record{
			Namespace: NamespaceHospitalSystems,
			Key:       code,
			Value:     Value{Value: code, Text: label},
			Metadata: map[string]any{
				"type":       "hospital_system",
				"name":       name,
				"location":   location,
				"is_special": code == specialSystemCode,
			},
		})
	}

	return Result{Records: records, Skipped: skipped}
}
