package usecase

// Score bounds and the deterministic base every candidate starts from.
// The base guarantees a product with zero matched signals still surfaces
// as a partial match instead of disappearing from the results.
const (
	defaultBaseScore = 75
	maxScore         = 100
	minScore         = 0
)

// scoreSignals sums the base score and every matched signal's points,
// clamped to [0, 100]. All contributions are non-negative, so only the
// upper clamp can fire; the lower bound is kept as an asserted invariant.
func scoreSignals(base int, signals []matchSignal) int {
	score := base
	for _, sig := range signals {
		score += sig.points
	}

	if score > maxScore {
		score = maxScore
	}
	if score < minScore {
		score = minScore
	}
	return score
}
