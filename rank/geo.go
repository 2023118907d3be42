package rank

import (
	"math"
	"strings"
)

const earthRadiusKm = 6371

// haversineKm returns the great-circle distance between two coordinates in
// kilometers.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlon1 := lon1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	rlon2 := lon2 * math.Pi / 180

	dlat := rlat2 - rlat1
	dlon := rlon2 - rlon1

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Asin(math.Sqrt(a))
	return earthRadiusKm * c
}

// locationKeywords make a coordinate-less candidate location text eligible
// for a small boost when the user supplied a coordinate.
var locationKeywords = []string{"near", "nearby", "close", "local", "around"}

const keywordLocationBoostCap = 0.2

// keywordLocationBoost scores a candidate's free-text location for proximity
// keywords. Used only when the user has a coordinate but the candidate does
// not; capped so text matching never outweighs a real distance signal.
func keywordLocationBoost(location string) float64 {
	if location == "" {
		return 0
	}
	lower := strings.ToLower(location)

	var boost float64
	for _, keyword := range locationKeywords {
		if strings.Contains(lower, keyword) {
			boost += 0.05
		}
	}
	return math.Min(boost, keywordLocationBoostCap)
}
