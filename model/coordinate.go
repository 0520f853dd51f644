package model

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatCoordinate renders a lat/lng pair in the "lat, lng" text form used
// throughout the round tables.
func FormatCoordinate(lat, lng float64) string {
	return fmt.Sprintf("%v, %v", lat, lng)
}

// ParseCoordinate parses a "lat, lng" string back into its two numbers.
func ParseCoordinate(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("not a 'lat, lng' coordinate: '%s'", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("error parsing latitude from '%s': %w", s, err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("error parsing longitude from '%s': %w", s, err)
	}
	return lat, lng, nil
}
