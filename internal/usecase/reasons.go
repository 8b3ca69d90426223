package usecase

import (
	"strings"

	"github.com/gearfit/backend/internal/domain"
)

// maxReasons caps the explanation list per recommendation.
const maxReasons = 3

// Canned phrases for signals without a customer-value slot.
const (
	reasonQualityBuild  = "High-quality construction"
	reasonComfort       = "Comfortable fit and feel"
	reasonLightweight   = "Lightweight design"
	reasonDurable       = "Built to last"
	reasonCategoryMatch = "Matches your selected category"
	reasonPopularChoice = "Popular choice"
)

// qualityKeywords trigger the construction-quality reason when found in a
// product's feature list.
var qualityKeywords = []string{"durable", "quality", "premium"}

// descriptionReasons are keyword scans over the product description,
// evaluated after feature scans.
var descriptionReasons = []struct {
	keyword string
	phrase  string
}{
	{"comfort", reasonComfort},
	{"lightweight", reasonLightweight},
	{"durable", reasonDurable},
}

// reasonPriority fixes the order signal-backed reasons are reported in:
// keyword matches first, then specification fits.
var reasonPriority = []signalKind{
	signalExperienceKeyword,
	signalExperienceFit,
	signalStyleKeyword,
	signalRidingStyleFit,
	signalConditionKeyword,
	signalHeightFit,
	signalWeightFit,
	signalWaterTempFit,
	signalThicknessFit,
	signalChestFit,
	signalLengthFit,
	signalDeckWidthFit,
	signalHeadFit,
	signalShoeSizeFit,
}

// buildReasons derives the human-readable justification list for one scored
// product from the same signal pass that produced its score. Reasons are
// deduplicated, capped at three, and never empty: a product with no matched
// signals falls back to the category phrase.
func buildReasons(p domain.Product, signals []matchSignal) []string {
	reasons := make([]string, 0, maxReasons)
	seen := make(map[string]bool)

	add := func(reason string) {
		if reason == "" || seen[reason] || len(reasons) >= maxReasons {
			return
		}
		seen[reason] = true
		reasons = append(reasons, reason)
	}

	// Keyword reasons, then a mid-priority quality scan, then fit reasons.
	for _, kind := range reasonPriority {
		if kind == signalHeightFit {
			addQualityReasons(p, add, seen)
		}
		for _, sig := range signals {
			if sig.kind == kind {
				add(sig.reason)
			}
		}
	}

	if len(reasons) == 0 {
		add(reasonCategoryMatch)
	}
	if len(reasons) < maxReasons {
		add(reasonPopularChoice)
	}

	return reasons
}

// addQualityReasons scans features for quality keywords and the description
// for comfort/weight/durability phrasing. The durability description phrase
// is skipped when the feature scan already reported build quality.
func addQualityReasons(p domain.Product, add func(string), seen map[string]bool) {
	for _, feature := range p.Features {
		lower := strings.ToLower(feature)
		for _, kw := range qualityKeywords {
			if strings.Contains(lower, kw) {
				add(reasonQualityBuild)
				break
			}
		}
	}

	desc := strings.ToLower(p.Description)
	for _, dr := range descriptionReasons {
		if dr.phrase == reasonDurable && seen[reasonQualityBuild] {
			continue
		}
		if strings.Contains(desc, dr.keyword) {
			add(dr.phrase)
		}
	}
}
