package utils

import (
	"sync"
	"time"
)

var (
	romeOnce sync.Once
	romeLoc  *time.Location
	romeErr  error
)

// RomeLocation returns the Europe/Rome zone, the reference timezone for
// killzone classification.
func RomeLocation() (*time.Location, error) {
	romeOnce.Do(func() {
		romeLoc, romeErr = time.LoadLocation("Europe/Rome")
	})
	return romeLoc, romeErr
}

// MonthKey buckets a timestamp into a calendar month key like "2024-05".
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
