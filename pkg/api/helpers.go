package api

import "time"

// Helper functions for building request payloads with optional fields

// String creates a pointer to a string
func String(s string) *string {
	return &s
}

// Int creates a pointer to an int
func Int(i int) *int {
	return &i
}

// Float64 creates a pointer to a float64
func Float64(f float64) *float64 {
	return &f
}

// Bool creates a pointer to a bool
func Bool(b bool) *bool {
	return &b
}

// Time creates a pointer to a time.Time
func Time(t time.Time) *time.Time {
	return &t
}
