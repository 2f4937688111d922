// Package formats registers the built-in import formats. Import it for its
// side effects:
//
//	import _ "github.com/paddyodab/lookup-import/internal/lookup/formats"
package formats

import (
	"github.com/paddyodab/lookup-import/internal/lookup"
)

func init() {
	registerZipMarkets()
	registerHospitals()
	registerHospitalSystems()
	registerFrames()
}

func registerZipMarkets() {
	lookup.Register(lookup.ImporterDefinition{
		Info: lookup.ImporterInfo{
			Key:        "zip-markets",
			Label:      "ZIP to market mappings",
			Source:     lookup.SourceCSV,
			Namespaces: []string{lookup.NamespaceMarketAreas, lookup.NamespaceZipCodes},
		},
		Run: lookup.NormalizeZipMarkets,
	})
}

func registerHospitals() {
	lookup.Register(lookup.ImporterDefinition{
		Info: lookup.ImporterInfo{
			Key:        "hospitals",
			Label:      "Hospital directory",
			Source:     lookup.SourceCSV,
			Namespaces: []string{lookup.NamespaceHospitals},
		},
		Run: lookup.NormalizeHospitals,
	})
}

func registerHospitalSystems() {
	lookup.Register(lookup.ImporterDefinition{
		Info: lookup.ImporterInfo{
			Key:        "hospital-systems",
			Label:      "Hospital systems",
			Source:     lookup.SourceTabbed,
			Namespaces: []string{lookup.NamespaceHospitalSystems},
		},
		Run: lookup.NormalizeHospitalSystems,
	})
}

func registerFrames() {
	lookup.Register(lookup.ImporterDefinition{
		Info: lookup.ImporterInfo{
			Key:        "countries",
			Label:      "Country list",
			Source:     lookup.SourceFrame,
			Namespaces: []string{lookup.NamespaceCountries},
		},
		Run: func(rows [][]string) lookup.Result {
			return lookup.NormalizeCountries(lookup.FrameOf(rows))
		},
	})

	lookup.Register(lookup.ImporterDefinition{
		Info: lookup.ImporterInfo{
			Key:        "cities",
			Label:      "City list",
			Source:     lookup.SourceFrame,
			Namespaces: []string{lookup.NamespaceCities},
		},
		Run: func(rows [][]string) lookup.Result {
			return lookup.NormalizeCities(lookup.FrameOf(rows))
		},
	})

	lookup.Register(lookup.ImporterDefinition{
		Info: lookup.ImporterInfo{
			Key:        "airports",
			Label:      "Airport list",
			Source:     lookup.SourceFrame,
			Namespaces: []string{lookup.NamespaceAirports},
		},
		Run: func(rows [][]string) lookup.Result {
			return lookup.NormalizeAirports(lookup.FrameOf(rows), lookup.CountryCodes)
		},
	})

	lookup.Register(lookup.ImporterDefinition{
		Info: lookup.ImporterInfo{
			Key:        "airlines",
			Label:      "Airline list",
			Source:     lookup.SourceFrame,
			Namespaces: []string{lookup.NamespaceAirlines},
		},
		Run: func(rows [][]string) lookup.Result {
			return lookup.NormalizeAirlines(lookup.FrameOf(rows), lookup.CountryCodes)
		},
	})
}
