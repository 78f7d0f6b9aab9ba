package vtime

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DateCache persists id -> virtual date assignments across refresh
// cycles. Entries never expire: an assignment holds for the lifetime of
// the process. Safe for concurrent readers and writers.
type DateCache struct {
	entries *gocache.Cache
}

// NewDateCache returns an empty assignment cache.
func NewDateCache() *DateCache {
	return &DateCache{entries: gocache.New(gocache.NoExpiration, 0)}
}

// Get returns the previously assigned virtual date for a record id.
func (dc *DateCache) Get(id string) (time.Time, bool) {
	if id == "" {
		return time.Time{}, false
	}
	if v, ok := dc.entries.Get(id); ok {
		if t, ok := v.(time.Time); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// Put records an assignment for a record id.
func (dc *DateCache) Put(id string, date time.Time) {
	if id == "" || date.IsZero() {
		return
	}
	dc.entries.Set(id, date, gocache.NoExpiration)
}
