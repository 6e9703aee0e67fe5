// Package layover encapsulates connection-legality rules between two flights.
package layover

import (
	"github.com/skypath/skypath/internal/domain/model"
	"github.com/skypath/skypath/internal/domain/registry"
)

// Default connection thresholds in minutes.
const (
	DefaultDomesticMinimum      = 45
	DefaultInternationalMinimum = 90
	DefaultMaximum              = 360
)

// Option applies a configuration option to the Validator.
type Option func(*Validator)

// WithDomesticMinimum sets the minimum layover for same-country connections.
func WithDomesticMinimum(minutes int) Option {
	return func(v *Validator) {
		if minutes > 0 {
			v.domesticMin = minutes
		}
	}
}

// WithInternationalMinimum sets the minimum layover for cross-country
// connections.
func WithInternationalMinimum(minutes int) Option {
	return func(v *Validator) {
		if minutes > 0 {
			v.internationalMin = minutes
		}
	}
}

// WithMaximum sets the maximum layover for any connection.
func WithMaximum(minutes int) Option {
	return func(v *Validator) {
		if minutes > 0 {
			v.maximum = minutes
		}
	}
}

// Validator decides whether two flights form a legal connection.
type Validator struct {
	registry         registry.Registry
	domesticMin      int
	internationalMin int
	maximum          int
}

// New creates a Validator bound to the airport registry.
func New(reg registry.Registry, opts ...Option) *Validator {
	v := &Validator{
		registry:         reg,
		domesticMin:      DefaultDomesticMinimum,
		internationalMin: DefaultInternationalMinimum,
		maximum:          DefaultMaximum,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Maximum exposes the configured maximum layover in minutes.
// The search engine uses it as the prune window over the sorted index.
func (v *Validator) Maximum() int {
	return v.maximum
}

// Validate checks the connection prev -> next and returns the layover in
// whole minutes when legal. Rules, in order: same connecting airport,
// non-negative layover, minimum threshold (domestic vs international),
// maximum threshold.
func (v *Validator) Validate(prev, next model.Flight) (int, bool) {
	if prev.Destination != next.Origin {
		return 0, false
	}

	minutes := model.MinutesBetween(prev.ArrivalUTC, next.DepartureUTC)
	if minutes < 0 {
		return 0, false
	}

	if minutes < v.minimumFor(prev, next) {
		return 0, false
	}
	if minutes > v.maximum {
		return 0, false
	}
	return minutes, true
}

// minimumFor picks the required minimum layover. A connection is domestic
// only when both legs stay within the connection airport's country;
// anything crossing a border needs the international minimum. Unresolvable
// codes (impossible for normalized flights) fall to the conservative side.
func (v *Validator) minimumFor(prev, next model.Flight) int {
	from, okF := v.registry.Resolve(prev.Origin)
	via, okV := v.registry.Resolve(prev.Destination)
	to, okT := v.registry.Resolve(next.Destination)
	if okF && okV && okT && from.Country == via.Country && via.Country == to.Country {
		return v.domesticMin
	}
	return v.internationalMin
}
