// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/skypath/skypath/internal/domain/model"
)

// localTimeLayout serializes zoned local times with an explicit numeric
// UTC offset, e.g. 2024-03-15T08:00:00-04:00.
const localTimeLayout = "2006-01-02T15:04:05-07:00"

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Search answers one itinerary query; client input errors are
	// signalled with the search package's sentinel errors.
	Search(ctx context.Context, origin, destination, date string) ([]model.Itinerary, error)

	// Snapshot reports the loaded model sizes and normalization counters.
	Snapshot(ctx context.Context) (airports, flights int, stats model.Stats)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler *HealthHandler
	searchHandler *SearchHandler
	statsHandler  *StatsHandler
	corsOrigins   []string
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, corsOrigins []string) *Server {
	return &Server{
		healthHandler: NewHealthHandler(deps),
		searchHandler: NewSearchHandler(deps),
		statsHandler:  NewStatsHandler(statsProvider),
		corsOrigins:   corsOrigins,
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	wrap := func(next http.HandlerFunc, endpoint string) http.HandlerFunc {
		return RequestIDMiddleware(CORSMiddleware(MetricsMiddleware(next, endpoint), s.corsOrigins))
	}
	mux.HandleFunc("/health", wrap(s.healthHandler.HandleHealth, "health"))
	mux.HandleFunc("/search", wrap(s.searchHandler.HandleSearch, "search"))
	mux.HandleFunc("/stats", wrap(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/metrics", s.metricsHandler())
}

// segmentResponse mirrors one itinerary leg on the wire.
type segmentResponse struct {
	FlightNumber       string  `json:"flightNumber"`
	Airline            string  `json:"airline"`
	Origin             string  `json:"origin"`
	Destination        string  `json:"destination"`
	DepartureTimeLocal string  `json:"departureTimeLocal"`
	ArrivalTimeLocal   string  `json:"arrivalTimeLocal"`
	Price              float64 `json:"price"`
	Aircraft           string  `json:"aircraft"`
}

// itineraryResponse mirrors one search result on the wire.
type itineraryResponse struct {
	Segments             []segmentResponse `json:"segments"`
	LayoversMinutes      []int             `json:"layoversMinutes"`
	TotalDurationMinutes int               `json:"totalDurationMinutes"`
	TotalPrice           float64           `json:"totalPrice"`
}

// newItineraryResponse converts a domain itinerary to its wire shape.
func newItineraryResponse(it model.Itinerary) itineraryResponse {
	segments := make([]segmentResponse, 0, len(it.Segments))
	for _, s := range it.Segments {
		segments = append(segments, segmentResponse{
			FlightNumber:       s.FlightNumber,
			Airline:            s.Airline,
			Origin:             s.Origin,
			Destination:        s.Destination,
			DepartureTimeLocal: s.DepartureLocal.Format(localTimeLayout),
			ArrivalTimeLocal:   s.ArrivalLocal.Format(localTimeLayout),
			Price:              s.Price,
			Aircraft:           s.Aircraft,
		})
	}
	layovers := it.LayoversMinutes
	if layovers == nil {
		layovers = []int{}
	}
	return itineraryResponse{
		Segments:             segments,
		LayoversMinutes:      layovers,
		TotalDurationMinutes: it.TotalDurationMinutes,
		TotalPrice:           it.TotalPrice,
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
