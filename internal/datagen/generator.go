package datagen

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/skypath/skypath/internal/dataset"
	"github.com/skypath/skypath/pkg/logger"
)

// File permission constants.
const (
	datasetFilePermission = 0600
)

// Flight duration and schedule bounds for generated records.
const (
	minFlightMinutes = 60
	maxFlightMinutes = 15 * 60
	firstDeparture   = 5  // earliest local departure hour
	lastDeparture    = 22 // latest local departure hour
)

// Corruption modes cycled through for the invalid share of records.
const (
	corruptAirport = iota
	corruptPrice
	corruptDatetime
	corruptDuration
	corruptModes
)

// Run generates a dataset per cfg and writes it to cfg.OutputFile.
// A fixed seed reproduces the exact same file.
func Run(ctx context.Context, cfg *Config) error {
	start, err := time.Parse("2006-01-02", cfg.StartDate)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", cfg.StartDate, err)
	}
	if cfg.NumFlights <= 0 {
		return fmt.Errorf("num flights must be positive, got %d", cfg.NumFlights)
	}
	days := cfg.Days
	if days <= 0 {
		days = 1
	}

	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // reproducible datasets want a seeded generator

	doc := dataset.Document{
		Airports: airportTable,
		Flights:  make([]dataset.RawFlight, 0, cfg.NumFlights),
	}

	invalid := 0
	for i := 0; i < cfg.NumFlights; i++ {
		f, err := generateFlight(rng, start, days)
		if err != nil {
			return err
		}
		if cfg.InvalidRate > 0 && rng.Float64() < cfg.InvalidRate {
			corruptFlight(rng, &f)
			invalid++
		}
		doc.Flights = append(doc.Flights, f)
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	if err := os.WriteFile(cfg.OutputFile, raw, datasetFilePermission); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}

	logger.Get().Info(ctx, "dataset generated",
		logger.String("path", cfg.OutputFile),
		logger.Int("airports", len(doc.Airports)),
		logger.Int("flights", len(doc.Flights)),
		logger.Int("corrupted", invalid),
	)
	return nil
}

// generateFlight emits one valid flight between two distinct airports with
// local wall-clock times consistent with the airports' zones.
func generateFlight(rng *rand.Rand, start time.Time, days int) (dataset.RawFlight, error) {
	origin := airportTable[rng.Intn(len(airportTable))]
	dest := airportTable[rng.Intn(len(airportTable))]
	for dest.Code == origin.Code {
		dest = airportTable[rng.Intn(len(airportTable))]
	}

	originLoc, err := time.LoadLocation(origin.Timezone)
	if err != nil {
		return dataset.RawFlight{}, fmt.Errorf("load zone %s: %w", origin.Timezone, err)
	}
	destLoc, err := time.LoadLocation(dest.Timezone)
	if err != nil {
		return dataset.RawFlight{}, fmt.Errorf("load zone %s: %w", dest.Timezone, err)
	}

	day := start.AddDate(0, 0, rng.Intn(days))
	depHour := firstDeparture + rng.Intn(lastDeparture-firstDeparture+1)
	dep := time.Date(day.Year(), day.Month(), day.Day(), depHour, 5*rng.Intn(12), 0, 0, originLoc)

	duration := time.Duration(minFlightMinutes+rng.Intn(maxFlightMinutes-minFlightMinutes+1)) * time.Minute
	arr := dep.Add(duration).In(destLoc)

	airline := airlineTable[rng.Intn(len(airlineTable))]
	return dataset.RawFlight{
		FlightNumber:  fmt.Sprintf("%s%d", airline.prefix, 100+rng.Intn(9900)),
		Airline:       airline.name,
		Origin:        origin.Code,
		Destination:   dest.Code,
		DepartureTime: dep.Format("2006-01-02T15:04:05"),
		ArrivalTime:   arr.Format("2006-01-02T15:04:05"),
		Price:         float64(40+rng.Intn(1200)) + float64(rng.Intn(100))/100,
		Aircraft:      aircraftTable[rng.Intn(len(aircraftTable))],
	}, nil
}

// corruptFlight damages one record so the normalizer has something to
// reject. Each mode targets a distinct rejection bucket.
func corruptFlight(rng *rand.Rand, f *dataset.RawFlight) {
	switch rng.Intn(corruptModes) {
	case corruptAirport:
		f.Origin = "ZZZ"
	case corruptPrice:
		f.Price = "not-a-price"
	case corruptDatetime:
		f.DepartureTime = "15/03/2024 08:00"
	case corruptDuration:
		f.ArrivalTime = f.DepartureTime
	}
}
