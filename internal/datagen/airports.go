package datagen

import "github.com/skypath/skypath/internal/dataset"

// airportTable is a realistic mix of domestic and international airports.
// Countries and zones matter: they drive the layover thresholds and the
// wall-clock-to-UTC conversion in the generated data.
var airportTable = []dataset.RawAirport{
	{Code: "JFK", Country: "US", Timezone: "America/New_York"},
	{Code: "EWR", Country: "US", Timezone: "America/New_York"},
	{Code: "BOS", Country: "US", Timezone: "America/New_York"},
	{Code: "ORD", Country: "US", Timezone: "America/Chicago"},
	{Code: "DFW", Country: "US", Timezone: "America/Chicago"},
	{Code: "DEN", Country: "US", Timezone: "America/Denver"},
	{Code: "LAX", Country: "US", Timezone: "America/Los_Angeles"},
	{Code: "SFO", Country: "US", Timezone: "America/Los_Angeles"},
	{Code: "SEA", Country: "US", Timezone: "America/Los_Angeles"},
	{Code: "YYZ", Country: "CA", Timezone: "America/Toronto"},
	{Code: "YVR", Country: "CA", Timezone: "America/Vancouver"},
	{Code: "LHR", Country: "GB", Timezone: "Europe/London"},
	{Code: "CDG", Country: "FR", Timezone: "Europe/Paris"},
	{Code: "FRA", Country: "DE", Timezone: "Europe/Berlin"},
	{Code: "AMS", Country: "NL", Timezone: "Europe/Amsterdam"},
	{Code: "MAD", Country: "ES", Timezone: "Europe/Madrid"},
	{Code: "DXB", Country: "AE", Timezone: "Asia/Dubai"},
	{Code: "SIN", Country: "SG", Timezone: "Asia/Singapore"},
	{Code: "HND", Country: "JP", Timezone: "Asia/Tokyo"},
	{Code: "SYD", Country: "AU", Timezone: "Australia/Sydney"},
}

// airlineTable pairs airline names with flight-number prefixes.
var airlineTable = []struct {
	name   string
	prefix string
}{
	{"SkyPath Air", "SP"},
	{"Transatlantic", "TA"},
	{"Pacific Wings", "PW"},
	{"Northline", "NL"},
	{"Meridian", "MD"},
}

// aircraftTable lists aircraft types for generated flights.
var aircraftTable = []string{
	"Airbus A320",
	"Airbus A350-900",
	"Boeing 737-800",
	"Boeing 787-9",
	"Embraer E190",
}
