package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/skypath/skypath/internal/adapters/http/api"
	"github.com/skypath/skypath/internal/domain/model"
	"github.com/skypath/skypath/internal/domain/search"
	. "github.com/smartystreets/goconvey/convey"
)

// Mock implementations for testing
type mockBackend struct {
	results    []model.Itinerary
	searchErr  error
	airports   int
	flights    int
	stats      model.Stats
	lastOrigin string
	lastDest   string
	lastDate   string
}

func (m *mockBackend) Search(_ context.Context, origin, destination, date string) ([]model.Itinerary, error) {
	m.lastOrigin = origin
	m.lastDest = destination
	m.lastDate = date
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return m.results, nil
}

func (m *mockBackend) Snapshot(_ context.Context) (int, int, model.Stats) {
	return m.airports, m.flights, m.stats
}

type mockStatsProvider struct {
	stats model.ServiceStats
}

func (m *mockStatsProvider) GetStats() model.ServiceStats {
	return m.stats
}

func sampleItinerary() model.Itinerary {
	edt := time.FixedZone("EDT", -4*3600)
	pdt := time.FixedZone("PDT", -7*3600)
	dep := time.Date(2024, 3, 15, 8, 0, 0, 0, edt)
	arr := time.Date(2024, 3, 15, 11, 0, 0, 0, pdt)
	return model.Itinerary{
		Segments: []model.Flight{{
			FlightNumber:   "SP100",
			Airline:        "SkyPath Air",
			Origin:         "JFK",
			Destination:    "LAX",
			DepartureLocal: dep,
			ArrivalLocal:   arr,
			DepartureUTC:   dep.UTC(),
			ArrivalUTC:     arr.UTC(),
			Price:          200,
			Aircraft:       "Boeing 737-800",
		}},
		LayoversMinutes:      []int{},
		TotalDurationMinutes: 360,
		TotalPrice:           200,
	}
}

// Local wire types for decoding responses
type segmentBody struct {
	FlightNumber       string  `json:"flightNumber"`
	Origin             string  `json:"origin"`
	Destination        string  `json:"destination"`
	DepartureTimeLocal string  `json:"departureTimeLocal"`
	ArrivalTimeLocal   string  `json:"arrivalTimeLocal"`
	Price              float64 `json:"price"`
}

type itineraryBody struct {
	Segments             []segmentBody `json:"segments"`
	LayoversMinutes      []int         `json:"layoversMinutes"`
	TotalDurationMinutes int           `json:"totalDurationMinutes"`
	TotalPrice           float64       `json:"totalPrice"`
}

type healthBody struct {
	Status   string      `json:"status"`
	Airports int         `json:"airports"`
	Flights  int         `json:"flights"`
	Stats    model.Stats `json:"stats"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newTestMux(deps *mockBackend, stats *mockStatsProvider) *http.ServeMux {
	server := api.NewServer(deps, stats, []string{"http://localhost:3000"})
	mux := http.NewServeMux()
	server.Register(context.Background(), mux)
	return mux
}

func TestServer_Register(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		deps := &mockBackend{airports: 2, flights: 1, stats: model.Stats{RawFlights: 2, KeptFlights: 1, DroppedBadPrice: 1}}
		mux := newTestMux(deps, &mockStatsProvider{stats: model.ServiceStats{
			Airports: 2,
			Flights:  1,
			Stats:    model.Stats{KeptFlights: 1},
		}})

		Convey("Then the health endpoint reports the loaded model", func() {
			req := httptest.NewRequest("GET", "/health", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)

			var body healthBody
			So(json.NewDecoder(w.Body).Decode(&body), ShouldBeNil)
			So(body.Status, ShouldEqual, "ok")
			So(body.Airports, ShouldEqual, 2)
			So(body.Flights, ShouldEqual, 1)
			So(body.Stats.DroppedBadPrice, ShouldEqual, 1)
		})

		Convey("And the stats endpoint is accessible", func() {
			req := httptest.NewRequest("GET", "/stats", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)

			var body map[string]interface{}
			So(json.NewDecoder(w.Body).Decode(&body), ShouldBeNil)
			// The counters flatten alongside the model sizes.
			So(body["airports"], ShouldEqual, 2)
			So(body["kept_flights"], ShouldEqual, 1)
		})

		Convey("And the metrics endpoint is accessible", func() {
			req := httptest.NewRequest("GET", "/metrics", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)
		})

		Convey("And unknown paths fall through to 404", func() {
			req := httptest.NewRequest("GET", "/unknown", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("And every response carries a request id", func() {
			req := httptest.NewRequest("GET", "/health", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Header().Get("X-Request-ID"), ShouldNotBeEmpty)
		})

		Convey("And a client-supplied request id is echoed back", func() {
			req := httptest.NewRequest("GET", "/health", nil)
			req.Header.Set("X-Request-ID", "req-42")
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Header().Get("X-Request-ID"), ShouldEqual, "req-42")
		})
	})
}

func TestSearchHandler_HandleSearch(t *testing.T) {
	Convey("Given a search endpoint", t, func() {
		deps := &mockBackend{}
		mux := newTestMux(deps, &mockStatsProvider{})

		Convey("When searching a route with results", func() {
			deps.results = []model.Itinerary{sampleItinerary()}
			req := httptest.NewRequest("GET", "/search?origin=JFK&destination=LAX&date=2024-03-15", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then itineraries come back with local times and offsets", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldContainSubstring, "application/json")

				var body []itineraryBody
				So(json.NewDecoder(w.Body).Decode(&body), ShouldBeNil)
				So(len(body), ShouldEqual, 1)
				So(body[0].TotalDurationMinutes, ShouldEqual, 360)
				So(body[0].TotalPrice, ShouldEqual, 200.0)
				So(body[0].LayoversMinutes, ShouldNotBeNil)
				So(len(body[0].Segments), ShouldEqual, 1)
				So(body[0].Segments[0].DepartureTimeLocal, ShouldEqual, "2024-03-15T08:00:00-04:00")
				So(body[0].Segments[0].ArrivalTimeLocal, ShouldEqual, "2024-03-15T11:00:00-07:00")
			})

			Convey("And the query parameters reach the backend untouched", func() {
				So(deps.lastOrigin, ShouldEqual, "JFK")
				So(deps.lastDest, ShouldEqual, "LAX")
				So(deps.lastDate, ShouldEqual, "2024-03-15")
			})
		})

		Convey("When the route has no itineraries", func() {
			deps.results = nil
			req := httptest.NewRequest("GET", "/search?origin=JFK&destination=LAX&date=2024-03-15", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the body is an empty JSON array, not null", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(strings.TrimSpace(w.Body.String()), ShouldEqual, "[]")
			})
		})

		Convey("When the origin is not a 3-letter code", func() {
			req := httptest.NewRequest("GET", "/search?origin=NEWYORK&destination=LAX&date=2024-03-15", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it is rejected before the backend runs", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(deps.lastOrigin, ShouldBeEmpty)

				var body errorBody
				So(json.NewDecoder(w.Body).Decode(&body), ShouldBeNil)
				So(body.Code, ShouldEqual, "bad_request")
				So(body.Message, ShouldContainSubstring, "origin")
			})
		})

		Convey("When the date parameter is missing", func() {
			req := httptest.NewRequest("GET", "/search?origin=JFK&destination=LAX", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the backend rejects an unknown airport", func() {
			deps.searchErr = search.ErrUnknownAirport
			req := httptest.NewRequest("GET", "/search?origin=JFK&destination=QQQ&date=2024-03-15", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the backend rejects the date", func() {
			deps.searchErr = search.ErrInvalidDate
			req := httptest.NewRequest("GET", "/search?origin=JFK&destination=LAX&date=2024-13-01", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			var body errorBody
			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(json.NewDecoder(w.Body).Decode(&body), ShouldBeNil)
			So(body.Message, ShouldContainSubstring, "YYYY-MM-DD")
		})

		Convey("When the method is not GET", func() {
			req := httptest.NewRequest("POST", "/search?origin=JFK&destination=LAX&date=2024-03-15", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestCORSMiddleware(t *testing.T) {
	Convey("Given a server with one allowed browser origin", t, func() {
		deps := &mockBackend{}
		mux := newTestMux(deps, &mockStatsProvider{})

		Convey("When a preflight request arrives from the allowed origin", func() {
			req := httptest.NewRequest("OPTIONS", "/search", nil)
			req.Header.Set("Origin", "http://localhost:3000")
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it is answered without reaching the handler", func() {
				So(w.Code, ShouldEqual, http.StatusNoContent)
				So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "http://localhost:3000")
				So(w.Header().Get("Access-Control-Allow-Methods"), ShouldContainSubstring, "GET")
			})
		})

		Convey("When a request arrives from a different origin", func() {
			req := httptest.NewRequest("GET", "/health", nil)
			req.Header.Set("Origin", "http://evil.example")
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then no allow-origin header is stamped", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Access-Control-Allow-Origin"), ShouldBeEmpty)
			})
		})

		Convey("When a simple GET arrives from the allowed origin", func() {
			req := httptest.NewRequest("GET", "/health", nil)
			req.Header.Set("Origin", "http://localhost:3000")
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the response is served with the CORS header", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "http://localhost:3000")
				So(w.Header().Get("Vary"), ShouldEqual, "Origin")
			})
		})
	})
}
