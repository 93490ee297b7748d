package domain

import "math"

// StarBreakdown is a five-star rating decomposed into whole, half, and empty
// star counts. Full + Half + Empty is always 5.
type StarBreakdown struct {
	Full  int `json:"full"`
	Half  int `json:"half"`
	Empty int `json:"empty"`
}

// Stars decomposes a numeric rating into a five-star breakdown. Ratings
// outside [0, 5] are clamped. A fractional part of 0.5 or more yields a half
// star.
func Stars(rating float64) StarBreakdown {
	if rating < 0 || math.IsNaN(rating) {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}

	full := int(math.Floor(rating))
	half := 0
	if rating-float64(full) >= 0.5 {
		half = 1
	}

	return StarBreakdown{
		Full:  full,
		Half:  half,
		Empty: 5 - full - half,
	}
}

// RatingSummary is the aggregate rating over a party's full review history.
// Average keeps full float precision; rounding for display happens in the
// HTTP view layer.
type RatingSummary struct {
	Average float64 `json:"average"`
	Total   int     `json:"total"`
}

// SummarizeRatings computes the average rating and review count over the
// given reviews. An empty or nil slice yields a zero summary.
func SummarizeRatings(reviews []Review) RatingSummary {
	if len(reviews) == 0 {
		return RatingSummary{}
	}

	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}

	return RatingSummary{
		Average: sum / float64(len(reviews)),
		Total:   len(reviews),
	}
}
