// Package tz resolves timezone identifiers to UTC offsets using the
// IANA database, with a static city-name fallback for inputs coming
// straight from trip forms.
package tz

import (
	"fmt"
	"sync"
	"time"
)

// Resolver implements model.OffsetResolver over time.LoadLocation with
// a read-through cache. Safe for concurrent use.
type Resolver struct {
	mu    sync.RWMutex
	cache map[string]*time.Location
}

// NewResolver builds an empty Resolver.
func NewResolver() *Resolver {
	return &Resolver{cache: make(map[string]*time.Location)}
}

// OffsetAt returns the UTC offset in seconds of the named zone at the
// given instant. The identifier may be an IANA name or a known city
// name; anything else is an error.
func (r *Resolver) OffsetAt(identifier string, at time.Time) (int, error) {
	loc, err := r.location(identifier)
	if err != nil {
		return 0, err
	}
	_, offset := at.In(loc).Zone()
	return offset, nil
}

func (r *Resolver) location(identifier string) (*time.Location, error) {
	r.mu.RLock()
	loc, ok := r.cache[identifier]
	r.mu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(identifier)
	if err != nil {
		name, ok := ZoneForCity(identifier)
		if !ok {
			return nil, fmt.Errorf("unknown timezone %q", identifier)
		}
		loc, err = time.LoadLocation(name)
		if err != nil {
			return nil, fmt.Errorf("load zone %q for city %q: %w", name, identifier, err)
		}
	}

	r.mu.Lock()
	r.cache[identifier] = loc
	r.mu.Unlock()
	return loc, nil
}
