package lookup

import (
	"sort"
	"strings"
)

// NormalizeZipMarkets converts two-column market,ZIP rows into one zip-code
// record per row plus one derived market-area record per distinct market.
//
// The accumulation is two-phase: child records are buffered while the
// distinct market codes are collected, then the market parents are emitted
// ahead of the children so every child's parent key lands in the same batch
// before the rows that reference it. Rows with fewer than two fields are
// dropped and counted.
func NormalizeZipMarkets(rows [][]string) Result {
	var children []Record
	markets := make(map[string]struct{})
	skipped := 0

	for _, row := range rows {
		if len(row) < 2 {
			skipped++
			continue
		}
		market := strings.TrimSpace(row[0])
		zip := strings.TrimSpace(row[1])

		markets[market] = struct{}{}
		children = append(children, Record{
			Namespace: NamespaceZipCodes,
			Key:       zip,
			Value:     Value{Value: zip, Text: "ZIP " + zip},
			ParentKey: market,
			Metadata: map[string]any{
				"market_code": market,
				"type":        "zip_code",
			},
		})
	}

	codes := make([]string, 0, len(markets))
	for code := range markets {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	records := make([]Record, 0, len(codes)+len(children))
	for _, code := range codes {
		records = append(records, Record{
			Namespace: NamespaceMarketAreas,
			Key:       code,
			Value:     Value{Value: code, Text: "Market " + code},
			Metadata: map[string]any{
				"type": "market_area",
			},
		})
	}
	records = append(records, children...)

	return Result{Records: records, Skipped: skipped}
}
