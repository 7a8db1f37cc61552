package common

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Bridges between plain domain values and the null wrappers generated models
// use. Empty and zero values map to NULL, which matches how the generated
// columns are declared.

// NullStringFrom converts a string to null.String, treating "" as NULL.
func NullStringFrom(s string) null.String {
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}

// StringFromNull converts a null.String to a string, NULL becoming "".
func StringFromNull(ns null.String) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}

// NullTimeFrom converts a time.Time to null.Time, treating the zero time as
// NULL.
func NullTimeFrom(t time.Time) null.Time {
	if t.IsZero() {
		return null.Time{}
	}
	return null.TimeFrom(t)
}

// TimeFromNull converts a null.Time to a time.Time, NULL becoming the zero
// time.
func TimeFromNull(nt null.Time) time.Time {
	if !nt.Valid {
		return time.Time{}
	}
	return nt.Time
}
