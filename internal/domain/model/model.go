// Package model contains domain models passed between layers.
package model

import "time"

// Airport is a registry entry keyed by its 3-letter IATA code.
// Immutable once the dataset is loaded.
type Airport struct {
	Code     string // uppercase IATA code, e.g. "JFK"
	Country  string // uppercase country code, e.g. "US"
	Timezone string // IANA zone name, e.g. "America/New_York"
}

// Flight is a normalized, timezone-correct flight record.
// Local times carry the zone of their airport; UTC instants are derived
// from them once at normalization time. Immutable after construction.
type Flight struct {
	FlightNumber   string
	Airline        string
	Origin         string    // resolves in the registry
	Destination    string    // resolves in the registry
	DepartureLocal time.Time // wall clock in the origin airport's zone
	ArrivalLocal   time.Time // wall clock in the destination airport's zone
	DepartureUTC   time.Time
	ArrivalUTC     time.Time
	Price          float64
	Aircraft       string
}

// Itinerary is a transient query-time result of 1 to 3 connecting segments.
type Itinerary struct {
	Segments             []Flight
	LayoversMinutes      []int // length = len(Segments)-1
	TotalDurationMinutes int   // UTC arrival of last leg minus UTC departure of first
	TotalPrice           float64
}

// Stats tallies one normalization run. Produced once at load time and
// read-only afterwards; JSON keys mirror the /health payload.
type Stats struct {
	RawAirports                int `json:"raw_airports"`
	RawFlights                 int `json:"raw_flights"`
	KeptFlights                int `json:"kept_flights"`
	DroppedInvalidAirport      int `json:"dropped_invalid_airport"`
	DroppedBadPrice            int `json:"dropped_bad_price"`
	DroppedBadDatetime         int `json:"dropped_bad_datetime"`
	DroppedBadTimezone         int `json:"dropped_bad_timezone"`
	DroppedNonPositiveDuration int `json:"dropped_non_positive_duration"`
}

// ServiceStats is the /stats payload: loaded model sizes plus the
// normalization counters, flattened into one JSON object.
type ServiceStats struct {
	Airports       int `json:"airports"`
	Flights        int `json:"flights"`
	IndexedOrigins int `json:"indexedOrigins"`
	Stats
}

// MinutesBetween returns whole minutes from a to b, truncated toward zero.
func MinutesBetween(a, b time.Time) int {
	return int(b.Sub(a) / time.Minute)
}
