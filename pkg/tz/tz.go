package tz

import (
	"log"
	"time"
)

// Load returns the named location, or UTC when it cannot be loaded.
func Load(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("⚠️ tz: load %s: %v, using UTC", name, err)
		return time.UTC
	}
	return loc
}

// Stamp formats t in loc for file names (YYYYMMDD-HHMM).
func Stamp(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("20060102-1504")
}
