// Package dataset defines the on-disk dataset contract and its loader.
//
// The dataset is a single JSON document with two top-level arrays,
// consumed exactly once at process startup. Field-level validation is the
// normalizer's job; this package only guarantees well-formed JSON and
// decodes record fields leniently, so one badly typed record never takes
// the whole document down.
package dataset

import (
	"encoding/json"
	"fmt"
)

// RawAirport mirrors one entry of the dataset's airports[] array.
type RawAirport struct {
	Code     string `json:"code"`
	Country  string `json:"country"`
	Timezone string `json:"timezone"`
}

// UnmarshalJSON decodes an airport record, coercing non-string field
// values to their text form instead of failing the document.
func (a *RawAirport) UnmarshalJSON(data []byte) error {
	var loose struct {
		Code     any `json:"code"`
		Country  any `json:"country"`
		Timezone any `json:"timezone"`
	}
	if err := json.Unmarshal(data, &loose); err != nil {
		return err
	}
	a.Code = coerceString(loose.Code)
	a.Country = coerceString(loose.Country)
	a.Timezone = coerceString(loose.Timezone)
	return nil
}

// RawFlight mirrors one entry of the dataset's flights[] array.
// Price is decoded loosely: datasets in the wild carry it as a JSON
// number or as a numeric string, and some records omit it entirely.
type RawFlight struct {
	FlightNumber  string `json:"flightNumber"`
	Airline       string `json:"airline"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
	Price         any    `json:"price"`
	Aircraft      string `json:"aircraft"`
}

// UnmarshalJSON decodes a flight record, coercing non-string field values
// to their text form. A record carrying a number where a string belongs is
// a record-level defect for the normalizer to bucket, not a document-level
// parse failure.
func (f *RawFlight) UnmarshalJSON(data []byte) error {
	var loose struct {
		FlightNumber  any `json:"flightNumber"`
		Airline       any `json:"airline"`
		Origin        any `json:"origin"`
		Destination   any `json:"destination"`
		DepartureTime any `json:"departureTime"`
		ArrivalTime   any `json:"arrivalTime"`
		Price         any `json:"price"`
		Aircraft      any `json:"aircraft"`
	}
	if err := json.Unmarshal(data, &loose); err != nil {
		return err
	}
	f.FlightNumber = coerceString(loose.FlightNumber)
	f.Airline = coerceString(loose.Airline)
	f.Origin = coerceString(loose.Origin)
	f.Destination = coerceString(loose.Destination)
	f.DepartureTime = coerceString(loose.DepartureTime)
	f.ArrivalTime = coerceString(loose.ArrivalTime)
	f.Price = loose.Price
	f.Aircraft = coerceString(loose.Aircraft)
	return nil
}

// Document is the parsed dataset file.
type Document struct {
	Airports []RawAirport `json:"airports"`
	Flights  []RawFlight  `json:"flights"`
}

// coerceString renders a decoded JSON value as its string form. Missing
// values become empty strings; numbers, booleans, and structured values
// render to text that downstream validation judges on its own terms.
func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
