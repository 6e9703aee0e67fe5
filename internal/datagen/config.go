// Package datagen produces synthetic flights.json datasets for local runs
// and load testing.
package datagen

// Config holds configuration for one dataset generation run.
type Config struct {
	NumFlights  int     // number of flight records to emit
	Days        int     // spread departures over this many days
	StartDate   string  // first departure date, YYYY-MM-DD
	InvalidRate float64 // share of records made deliberately invalid (0..1)
	OutputFile  string  // where to write the dataset JSON
	Seed        int64   // RNG seed; fixed seed gives reproducible datasets
}
