// Package normalize turns the raw dataset into the validated, timezone-correct
// in-memory flight model.
package normalize

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/skypath/skypath/internal/dataset"
	"github.com/skypath/skypath/internal/domain/model"
	"github.com/skypath/skypath/internal/domain/registry"
)

// Layouts accepted for the dataset's local wall-clock datetimes.
// No UTC offset is ever embedded; the airport's zone is attached afterwards.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// Run builds the airport registry and the normalized flight list from a
// parsed dataset document. Invalid flight records are dropped and tallied;
// they never abort normalization of the remaining records.
//
// Per-flight checks run in a fixed order and the first failure picks the
// rejection bucket: unknown airport, bad price, bad datetime, bad timezone,
// non-positive UTC duration.
func Run(doc *dataset.Document) (registry.Registry, []model.Flight, model.Stats) {
	reg := registry.Build(doc.Airports)

	stats := model.Stats{
		RawAirports: len(doc.Airports),
		RawFlights:  len(doc.Flights),
	}

	flights := make([]model.Flight, 0, len(doc.Flights))
	for _, f := range doc.Flights {
		origin := strings.ToUpper(strings.TrimSpace(f.Origin))
		dest := strings.ToUpper(strings.TrimSpace(f.Destination))

		originAirport, okO := reg.Resolve(origin)
		destAirport, okD := reg.Resolve(dest)
		if !okO || !okD {
			stats.DroppedInvalidAirport++
			continue
		}

		price, ok := parsePrice(f.Price)
		if !ok {
			stats.DroppedBadPrice++
			continue
		}

		depNaive, okDep := parseLocalISO(f.DepartureTime)
		arrNaive, okArr := parseLocalISO(f.ArrivalTime)
		if !okDep || !okArr {
			stats.DroppedBadDatetime++
			continue
		}

		depLocal, okDep := attachZone(depNaive, originAirport.Timezone)
		arrLocal, okArr := attachZone(arrNaive, destAirport.Timezone)
		if !okDep || !okArr {
			stats.DroppedBadTimezone++
			continue
		}

		depUTC := depLocal.UTC()
		arrUTC := arrLocal.UTC()
		if !arrUTC.After(depUTC) {
			stats.DroppedNonPositiveDuration++
			continue
		}

		flights = append(flights, model.Flight{
			FlightNumber:   strings.TrimSpace(f.FlightNumber),
			Airline:        strings.TrimSpace(f.Airline),
			Origin:         origin,
			Destination:    dest,
			DepartureLocal: depLocal,
			ArrivalLocal:   arrLocal,
			DepartureUTC:   depUTC,
			ArrivalUTC:     arrUTC,
			Price:          price,
			Aircraft:       strings.TrimSpace(f.Aircraft),
		})
		stats.KeptFlights++
	}

	return reg, flights, stats
}

// parsePrice accepts JSON numbers and numeric strings; missing values,
// non-numeric strings, and non-finite values all fail.
func parsePrice(v any) (float64, bool) {
	var p float64
	switch t := v.(type) {
	case float64:
		p = t
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		p = parsed
	default:
		return 0, false
	}
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, false
	}
	return p, true
}

// parseLocalISO parses a naive local wall-clock datetime. The parsed value
// is zone-less until attachZone interprets it in an airport's zone.
func parseLocalISO(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range localLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// attachZone reinterprets a naive wall-clock value in the named IANA zone,
// letting the zone database resolve DST transitions.
func attachZone(naive time.Time, zone string) (time.Time, bool) {
	if zone == "" {
		return time.Time{}, false
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, false
	}
	y, m, d := naive.Date()
	h, mi, s := naive.Clock()
	return time.Date(y, m, d, h, mi, s, naive.Nanosecond(), loc), true
}
