// Package index groups normalized flights by origin for range scans.
package index

import (
	"sort"

	"github.com/skypath/skypath/internal/domain/model"
)

// Index maps an origin airport code to that airport's departures, sorted
// ascending by UTC departure time. Built once after normalization and
// treated as an immutable snapshot; the search engine's early-exit prune
// depends on the sort order.
type Index map[string][]model.Flight

// Build groups flights by origin and sorts each group stably by
// DepartureUTC (ties keep input order, which keeps rebuilds deterministic).
func Build(flights []model.Flight) Index {
	ix := make(Index)
	for _, f := range flights {
		ix[f.Origin] = append(ix[f.Origin], f)
	}
	for origin := range ix {
		group := ix[origin]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].DepartureUTC.Before(group[j].DepartureUTC)
		})
	}
	return ix
}

// From returns the departures of one airport; nil when none exist.
// Callers must not mutate the returned slice.
func (ix Index) From(code string) []model.Flight {
	return ix[code]
}

// Size reports the total number of indexed flights.
func (ix Index) Size() int {
	n := 0
	for _, group := range ix {
		n += len(group)
	}
	return n
}
