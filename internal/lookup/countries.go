package lookup

// CountryCodes maps English country names to ISO 3166-1 alpha-2 codes for
// the countries that appear in the airport and airline source files. It is
// passed into the frame normalizers rather than read by them directly, so a
// fuller table can be swapped in without touching transformation logic.
var CountryCodes = map[string]string{
	"United States":        "us",
	"China":                "cn",
	"United Arab Emirates": "ae",
	"Japan":                "jp",
	"United Kingdom":       "gb",
	"France":               "fr",
	"Germany":              "de",
	"Spain":                "es",
	"Netherlands":          "nl",
	"Turkey":               "tr",
	"India":                "in",
	"Indonesia":            "id",
	"Canada":               "ca",
	"South Korea":          "kr",
	"Mexico":               "mx",
	"Thailand":             "th",
	"Malaysia":             "my",
	"Saudi Arabia":         "sa",
	"Australia":            "au",
	"Singapore":            "sg",
	"Italy":                "it",
	"Russia":               "ru",
	"Brazil":               "br",
	"Switzerland":          "ch",
	"Taiwan":               "tw",
}

// CountryCode resolves a country name through the given table. Names absent
// from the table fall back to a slug of the name itself, so unmapped
// countries still yield a stable metadata value.
func CountryCode(name string, codes map[string]string) string {
	if code, ok := codes[name]; ok {
		return code
	}
	return Slug(name)
}
