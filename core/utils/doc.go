// Package utils provides small helpers for turning loosely typed host
// metadata values into the types the sorter works with.
package utils
