// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/skypath/skypath/internal/domain/search"
	"github.com/skypath/skypath/pkg/metrics"
)

// SearchHandler handles itinerary search requests.
type SearchHandler struct {
	deps Dependencies
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(deps Dependencies) *SearchHandler {
	return &SearchHandler{deps: deps}
}

// HandleSearch handles GET /search?origin=JFK&destination=LAX&date=2024-03-15.
// Client input errors map to 400; a valid query with no connecting
// itineraries is a 200 with an empty array.
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	q := r.URL.Query()
	origin := q.Get("origin")
	destination := q.Get("destination")
	date := q.Get("date")

	if err := validateCodeParam("origin", origin); err != nil {
		metrics.RecordSearch("client_error", 0, 0)
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := validateCodeParam("destination", destination); err != nil {
		metrics.RecordSearch("client_error", 0, 0)
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if strings.TrimSpace(date) == "" {
		metrics.RecordSearch("client_error", 0, 0)
		writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: missing date", ErrBadRequest))
		return
	}

	start := time.Now()
	itineraries, err := h.deps.Search(r.Context(), origin, destination, date)
	elapsedMs := float64(time.Since(start).Milliseconds())
	if err != nil {
		if errors.Is(err, search.ErrUnknownAirport) || errors.Is(err, search.ErrInvalidDate) {
			metrics.RecordSearch("client_error", elapsedMs, 0)
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}

	outcome := "ok"
	if len(itineraries) == 0 {
		outcome = "empty"
	}
	metrics.RecordSearch(outcome, elapsedMs, len(itineraries))

	out := make([]itineraryResponse, 0, len(itineraries))
	for _, it := range itineraries {
		out = append(out, newItineraryResponse(it))
	}
	writeJSON(w, http.StatusOK, out)
}

// validateCodeParam enforces the 3-letter shape of an airport code query
// parameter. Whether the code exists is the engine's call, not ours.
func validateCodeParam(name, value string) error {
	code := strings.TrimSpace(value)
	if len(code) != 3 {
		return fmt.Errorf("%w: %s must be a 3-letter IATA code", ErrBadRequest, name)
	}
	for _, c := range code {
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return fmt.Errorf("%w: %s must be a 3-letter IATA code", ErrBadRequest, name)
		}
	}
	return nil
}
