// Package countries resolves country names to ISO 3166-1 alpha-2 codes.
package countries

import (
	"strings"

	iso "github.com/biter777/countries"
)

// Code returns the lowercase alpha-2 code for a country name.
// Lookup is case-insensitive and tolerates underscores for spaces.
// Unknown names report ok=false; callers omit the code rather than fail.
func Code(name string) (string, bool) {
	key := strings.TrimSpace(strings.ReplaceAll(name, "_", " "))
	if key == "" {
		return "", false
	}
	country := iso.ByName(key)
	if !country.IsValid() {
		return "", false
	}
	return strings.ToLower(country.Alpha2()), true
}
