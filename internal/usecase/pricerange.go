package usecase

import (
	"math"

	"github.com/gearfit/backend/internal/domain"
)

// noPreferenceLabel is what the storefront form sends when the customer
// leaves the price question blank.
const noPreferenceLabel = "No preference"

// priceRangeTable maps the fixed set of storefront price labels to numeric
// intervals. Labels must match exactly as the form renders them.
var priceRangeTable = map[string]domain.PriceInterval{
	"Under $100":  {Min: 0, Max: 100},
	"$100 - $200": {Min: 100, Max: 200},
	"$200 - $400": {Min: 200, Max: 400},
	"$400 - $600": {Min: 400, Max: 600},
	"$600 - $800": {Min: 600, Max: 800},
	"$800+":       {Min: 800, Max: math.Inf(1)},
}

// ResolvePriceRange maps a price-range label to its numeric interval.
// Empty, "No preference", and unknown labels all resolve to the unbounded
// interval: an unrecognized label is never an error, it is no constraint.
func ResolvePriceRange(label string) domain.PriceInterval {
	if label == "" || label == noPreferenceLabel {
		return unboundedInterval()
	}
	if interval, ok := priceRangeTable[label]; ok {
		return interval
	}
	return unboundedInterval()
}

func unboundedInterval() domain.PriceInterval {
	return domain.PriceInterval{Min: 0, Max: math.Inf(1)}
}
