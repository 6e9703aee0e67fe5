// Package search explores direct, one-stop, and two-stop itineraries over
// the immutable flight index.
package search

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/skypath/skypath/internal/domain/index"
	"github.com/skypath/skypath/internal/domain/layover"
	"github.com/skypath/skypath/internal/domain/model"
	"github.com/skypath/skypath/internal/domain/registry"
)

// Engine answers itinerary queries against a registry/index snapshot.
// The snapshot is read-only, so concurrent searches need no coordination.
type Engine struct {
	registry registry.Registry
	index    index.Index
	layover  *layover.Validator
}

// NewEngine builds a search engine over the given snapshot.
func NewEngine(reg registry.Registry, ix index.Index, v *layover.Validator) *Engine {
	return &Engine{
		registry: reg,
		index:    ix,
		layover:  v,
	}
}

// Search returns all itineraries from origin to destination whose first leg
// departs on the given YYYY-MM-DD calendar date in the origin airport's own
// timezone, sorted ascending by total travel time. Codes must be
// uppercase-trimmed by the caller. Equal origin and destination
// short-circuit to an empty result before any validation; unknown codes
// fail with ErrUnknownAirport, an unparseable date with ErrInvalidDate.
func (e *Engine) Search(_ context.Context, origin, destination, dateStr string) ([]model.Itinerary, error) {
	if origin == destination {
		return []model.Itinerary{}, nil
	}
	if _, ok := e.registry.Resolve(origin); !ok {
		return nil, newUnknownAirportError("origin", origin)
	}
	if _, ok := e.registry.Resolve(destination); !ok {
		return nil, newUnknownAirportError("destination", destination)
	}
	date, err := ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	firstLegs := e.firstLegs(origin, date)

	results := make([]model.Itinerary, 0)

	// Direct.
	for _, f1 := range firstLegs {
		if f1.Destination == destination {
			results = append(results, buildItinerary([]model.Flight{f1}, []int{}))
		}
	}

	// One stop.
	for _, f1 := range firstLegs {
		if f1.Destination == destination {
			continue
		}
		for _, f2 := range e.index.From(f1.Destination) {
			lay1, ok := e.layover.Validate(f1, f2)
			if !ok {
				continue
			}
			if f2.Destination == destination {
				results = append(results, buildItinerary([]model.Flight{f1, f2}, []int{lay1}))
			}
		}
	}

	// Two stops.
	maxLayover := e.layover.Maximum()
	for _, f1 := range firstLegs {
		if f1.Destination == destination {
			continue
		}
		for _, f2 := range e.index.From(f1.Destination) {
			if f2.DepartureUTC.Before(f1.ArrivalUTC) {
				continue
			}
			// The group is sorted by DepartureUTC: once past the layover
			// window, no later flight can connect either.
			if model.MinutesBetween(f1.ArrivalUTC, f2.DepartureUTC) > maxLayover {
				break
			}
			lay1, ok := e.layover.Validate(f1, f2)
			if !ok {
				continue
			}
			// Reject immediate back-and-forth cycles (A->B->A->C).
			if f2.Destination == origin {
				continue
			}
			for _, f3 := range e.index.From(f2.Destination) {
				lay2, ok := e.layover.Validate(f2, f3)
				if !ok {
					continue
				}
				if f3.Destination == destination {
					results = append(results, buildItinerary([]model.Flight{f1, f2, f3}, []int{lay1, lay2}))
				}
			}
		}
	}

	// Shortest total travel time first; stable, so ties keep discovery
	// order (direct, then one-stop, then two-stop).
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalDurationMinutes < results[j].TotalDurationMinutes
	})
	return results, nil
}

// firstLegs selects departures from origin whose local calendar date (in
// the origin airport's zone) matches the query date. This is deliberately
// a local-date filter, not a UTC-date filter.
func (e *Engine) firstLegs(origin string, date time.Time) []model.Flight {
	y, m, d := date.Date()
	var legs []model.Flight
	for _, f := range e.index.From(origin) {
		fy, fm, fd := f.DepartureLocal.Date()
		if fy == y && fm == m && fd == d {
			legs = append(legs, f)
		}
	}
	return legs
}

// buildItinerary materializes one result with its derived totals.
func buildItinerary(segments []model.Flight, layovers []int) model.Itinerary {
	total := 0.0
	for _, s := range segments {
		total += s.Price
	}
	return model.Itinerary{
		Segments:             segments,
		LayoversMinutes:      layovers,
		TotalDurationMinutes: model.MinutesBetween(segments[0].DepartureUTC, segments[len(segments)-1].ArrivalUTC),
		TotalPrice:           math.Round(total*100) / 100,
	}
}

// ParseDate parses a YYYY-MM-DD query date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
