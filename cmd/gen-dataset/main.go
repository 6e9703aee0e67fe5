package main

import (
	"context"
	"flag"
	"os"
	"time"
	_ "time/tzdata" // generated wall-clock times need a zone database

	"github.com/skypath/skypath/internal/datagen"
	"github.com/skypath/skypath/pkg/logger"
)

// Default configuration constants.
const (
	defaultNumFlights  = 2000
	defaultDays        = 7
	defaultInvalidRate = 0.02
	defaultSeed        = 42
	defaultGenTimeout  = 1 * time.Minute
)

func main() {
	var (
		numFlights  = flag.Int("flights", defaultNumFlights, "Number of flight records to generate")
		days        = flag.Int("days", defaultDays, "Spread departures over this many days")
		startDate   = flag.String("start", time.Now().Format("2006-01-02"), "First departure date (YYYY-MM-DD)")
		invalidRate = flag.Float64("invalid", defaultInvalidRate, "Share of deliberately invalid records (0..1)")
		outputFile  = flag.String("output", "flights.json", "Output file for the generated dataset")
		seed        = flag.Int64("seed", defaultSeed, "RNG seed (fixed seed reproduces the dataset)")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultGenTimeout)
	defer cancel()

	cfg := &datagen.Config{
		NumFlights:  *numFlights,
		Days:        *days,
		StartDate:   *startDate,
		InvalidRate: *invalidRate,
		OutputFile:  *outputFile,
		Seed:        *seed,
	}

	if err := datagen.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("dataset generation failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
