package index_test

import (
	"testing"
	"time"

	"github.com/skypath/skypath/internal/domain/index"
	"github.com/skypath/skypath/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func flightAt(number, origin, dest string, dep time.Time) model.Flight {
	return model.Flight{
		FlightNumber: number,
		Origin:       origin,
		Destination:  dest,
		DepartureUTC: dep,
		ArrivalUTC:   dep.Add(2 * time.Hour),
	}
}

func TestIndexBuild(t *testing.T) {
	Convey("Given flights from several origins out of departure order", t, func() {
		base := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)
		flights := []model.Flight{
			flightAt("SP300", "JFK", "LAX", base.Add(6*time.Hour)),
			flightAt("SP100", "JFK", "ORD", base),
			flightAt("SP400", "ORD", "LAX", base.Add(1*time.Hour)),
			flightAt("SP200", "JFK", "SFO", base.Add(3*time.Hour)),
		}

		Convey("When building the index", func() {
			ix := index.Build(flights)

			Convey("Then flights are grouped by origin", func() {
				So(len(ix.From("JFK")), ShouldEqual, 3)
				So(len(ix.From("ORD")), ShouldEqual, 1)
				So(ix.From("LAX"), ShouldBeNil)
				So(ix.Size(), ShouldEqual, 4)
			})

			Convey("And each group is sorted ascending by UTC departure", func() {
				group := ix.From("JFK")
				So(group[0].FlightNumber, ShouldEqual, "SP100")
				So(group[1].FlightNumber, ShouldEqual, "SP200")
				So(group[2].FlightNumber, ShouldEqual, "SP300")
			})
		})

		Convey("When two flights share a departure instant", func() {
			tied := append(flights, flightAt("SP101", "JFK", "BOS", base))
			ix := index.Build(tied)

			Convey("Then the stable sort keeps input order for the tie", func() {
				group := ix.From("JFK")
				So(group[0].FlightNumber, ShouldEqual, "SP100")
				So(group[1].FlightNumber, ShouldEqual, "SP101")
			})
		})

		Convey("When building twice from the same input", func() {
			first := index.Build(flights)
			second := index.Build(flights)

			Convey("Then group ordering is identical", func() {
				for origin, group := range first {
					other := second.From(origin)
					So(len(other), ShouldEqual, len(group))
					for i := range group {
						So(other[i].FlightNumber, ShouldEqual, group[i].FlightNumber)
					}
				}
			})
		})
	})
}
