package util

import (
	"fmt"
	"hash/fnv"
)

// HashString returns a uint64 hash of the input string using FNV-1a
func HashString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// RangeKey derives a stable cache key component for a date range
func RangeKey(startDate, endDate string) string {
	return fmt.Sprintf("%x", HashString(startDate+"|"+endDate))
}
