// Package registry holds the airport lookup table built at startup.
package registry

import (
	"strings"

	"github.com/skypath/skypath/internal/dataset"
	"github.com/skypath/skypath/internal/domain/model"
)

// Registry maps an uppercase IATA code to its airport record.
// Built once from the dataset and never mutated afterwards.
type Registry map[string]model.Airport

// Build ingests raw airport records. Codes are uppercase-trimmed; records
// whose code trims to empty are skipped silently; a duplicate code
// overwrites the earlier record (last-write-wins, input order).
func Build(raw []dataset.RawAirport) Registry {
	r := make(Registry, len(raw))
	for _, a := range raw {
		code := strings.ToUpper(strings.TrimSpace(a.Code))
		if code == "" {
			continue
		}
		r[code] = model.Airport{
			Code:     code,
			Country:  strings.ToUpper(strings.TrimSpace(a.Country)),
			Timezone: strings.TrimSpace(a.Timezone),
		}
	}
	return r
}

// Resolve looks up an already-normalized code.
func (r Registry) Resolve(code string) (model.Airport, bool) {
	a, ok := r[code]
	return a, ok
}

// Len reports the number of registered airports.
func (r Registry) Len() int {
	return len(r)
}
