package usecase

import (
	"sort"
	"strings"

	"github.com/gearfit/backend/internal/domain"
)

// Point values per match signal. Contributions are additive and
// independent; there is no partial credit for near-misses.
const (
	pointsExperienceKeyword = 20
	pointsStyleKeyword      = 15
	pointsConditionKeyword  = 10
	pointsGenericKeyword    = 5
	pointsHeightFit         = 25
	pointsWeightFit         = 25
	pointsChestFit          = 20
	pointsWaterTempFit      = 20
	pointsThicknessFit      = 15
	pointsLengthFit         = 20
	pointsExperienceFit     = 20
	pointsRidingStyleFit    = 15
	pointsDeckWidthFit      = 15
	pointsHeadFit           = 25
	pointsShoeSizeFit       = 20
	pointsPriceFit          = 5
)

// signalKind identifies which comparison produced a match signal.
type signalKind int

const (
	signalExperienceKeyword signalKind = iota
	signalStyleKeyword
	signalConditionKeyword
	signalGenericKeyword
	signalHeightFit
	signalWeightFit
	signalChestFit
	signalWaterTempFit
	signalThicknessFit
	signalLengthFit
	signalExperienceFit
	signalRidingStyleFit
	signalDeckWidthFit
	signalHeadFit
	signalShoeSizeFit
	signalPriceFit
)

// matchSignal is one successful (customer attribute, product attribute)
// comparison. Reason may be empty for signals that score without a
// dedicated explanation (generic keyword hits, price fit).
type matchSignal struct {
	kind   signalKind
	points int
	reason string
}

// measurementFields are form fields consumed by dedicated signals; every
// other string-valued field falls through to the generic keyword match.
var measurementFields = map[string]bool{
	"height":            true,
	"weight":            true,
	"chestSize":         true,
	"waterTemp":         true,
	"thickness":         true,
	"boardLength":       true,
	"deckWidth":         true,
	"headCircumference": true,
	"shoeSize":          true,
	"experience":        true,
	"ridingStyle":       true,
	"surfStyle":         true,
	"waveType":          true,
	"priceRange":        true,
}

// evaluateSignals runs every recognized comparison for one (product,
// profile) pair. This single pass feeds both the score and the match
// reasons, so every reported reason corresponds to a point contribution.
// Missing fields, missing specifications, and unparseable values all
// contribute nothing; evaluation never fails.
func evaluateSignals(p domain.Product, profile domain.CustomerProfile, price domain.PriceInterval) []matchSignal {
	var signals []matchSignal
	spec := p.Specifications

	// Free-text keyword signals against description and features.
	if exp, ok := profileString(profile, "experience"); ok {
		if textMatches(p, exp) {
			signals = append(signals, matchSignal{signalExperienceKeyword, pointsExperienceKeyword, experienceReason(exp)})
		}
		if containsOption(spec.ExperienceLevel, exp) {
			signals = append(signals, matchSignal{signalExperienceFit, pointsExperienceFit, experienceReason(exp)})
		}
	}

	if style, ok := profileString(profile, "ridingStyle"); ok {
		if textMatches(p, style) {
			signals = append(signals, matchSignal{signalStyleKeyword, pointsStyleKeyword, "Perfect for " + style + " style"})
		}
		if containsOption(spec.RidingStyleOptions, style) {
			signals = append(signals, matchSignal{signalRidingStyleFit, pointsRidingStyleFit, "Perfect for " + style + " style"})
		}
	}

	if style, ok := profileString(profile, "surfStyle"); ok && textMatches(p, style) {
		signals = append(signals, matchSignal{signalStyleKeyword, pointsStyleKeyword, "Ideal for " + style + " surfing"})
	}

	if cond, ok := profileString(profile, "waveType"); ok && textMatches(p, cond) {
		signals = append(signals, matchSignal{signalConditionKeyword, pointsConditionKeyword, "Great for " + cond + " waves"})
	}

	for _, value := range genericStringFields(profile) {
		if textMatches(p, value) {
			signals = append(signals, matchSignal{signalGenericKeyword, pointsGenericKeyword, ""})
		}
	}

	// Measurement signals against specification ranges.
	if h, ok := ParseHeightInches(profile["height"]); ok && spec.HeightRange != nil && spec.HeightRange.Contains(h) {
		signals = append(signals, matchSignal{signalHeightFit, pointsHeightFit, "Perfect size fit for your height"})
	}

	if w, ok := ParseWeightPounds(profile["weight"]); ok {
		if (spec.WeightRange != nil && spec.WeightRange.Contains(w)) ||
			(spec.WeightCapacityRange != nil && spec.WeightCapacityRange.Contains(w)) {
			signals = append(signals, matchSignal{signalWeightFit, pointsWeightFit, "Great match for your weight"})
		}
	}

	if c, ok := ParseChestInches(profile["chestSize"]); ok && spec.ChestSizeRange != nil && spec.ChestSizeRange.Contains(c) {
		signals = append(signals, matchSignal{signalChestFit, pointsChestFit, "Sized right for your chest"})
	}

	if t, ok := ParseTemperatureF(profile["waterTemp"]); ok && spec.WaterTempRange != nil && spec.WaterTempRange.Contains(t) {
		signals = append(signals, matchSignal{signalWaterTempFit, pointsWaterTempFit, "Suited to your water temperature"})
	}

	if thickness, ok := profileString(profile, "thickness"); ok && containsOption(spec.ThicknessOptions, thickness) {
		signals = append(signals, matchSignal{signalThicknessFit, pointsThicknessFit, "Right thickness for your conditions"})
	}

	if l, ok := ParseNumber(profile["boardLength"]); ok && spec.LengthRange != nil && spec.LengthRange.Contains(l) {
		signals = append(signals, matchSignal{signalLengthFit, pointsLengthFit, "Ideal length for your build"})
	}

	if d, ok := ParseNumber(profile["deckWidth"]); ok && spec.DeckWidthRange != nil && spec.DeckWidthRange.Contains(d) {
		signals = append(signals, matchSignal{signalDeckWidthFit, pointsDeckWidthFit, "Deck width suits your stance"})
	}

	if hc, ok := ParseNumber(profile["headCircumference"]); ok && spec.HeadCircumferenceRange != nil && spec.HeadCircumferenceRange.Contains(hc) {
		signals = append(signals, matchSignal{signalHeadFit, pointsHeadFit, "Snug fit for your head size"})
	}

	if size, ok := profileString(profile, "shoeSize"); ok && containsOption(spec.SizeOptions, size) {
		signals = append(signals, matchSignal{signalShoeSizeFit, pointsShoeSizeFit, "Available in your size"})
	}

	// Price fit. The inventory collaborator pre-filters on explicit price
	// ranges, so this only rewards candidates actually inside the interval
	// rather than merely price-adjacent ones that slipped through.
	if price.Contains(p.Price) {
		signals = append(signals, matchSignal{signalPriceFit, pointsPriceFit, ""})
	}

	return signals
}

// experienceReason picks the canned phrase for an experience tier.
func experienceReason(value string) string {
	switch {
	case strings.Contains(strings.ToLower(value), "beginner"):
		return "Perfect for beginners"
	case strings.Contains(strings.ToLower(value), "intermediate"):
		return "Great for intermediate level"
	case strings.Contains(strings.ToLower(value), "advanced"):
		return "Designed for advanced users"
	}
	return ""
}

// textMatches reports whether value appears, case-insensitively, in the
// product description or any feature entry.
func textMatches(p domain.Product, value string) bool {
	needle := strings.ToLower(value)
	if needle == "" {
		return false
	}
	if strings.Contains(strings.ToLower(p.Description), needle) {
		return true
	}
	for _, feature := range p.Features {
		if strings.Contains(strings.ToLower(feature), needle) {
			return true
		}
	}
	return false
}

// containsOption checks enumerated-set membership. Comparisons are
// case-insensitive; original casing is preserved for display.
func containsOption(options []string, value string) bool {
	for _, opt := range options {
		if strings.EqualFold(opt, value) {
			return true
		}
	}
	return false
}

// profileString reads a non-empty string field from the profile.
func profileString(profile domain.CustomerProfile, field string) (string, bool) {
	return stringValue(profile[field])
}

// genericStringFields returns the values of string fields not already
// consumed by a dedicated signal, in deterministic field-name order.
func genericStringFields(profile domain.CustomerProfile) []string {
	fields := make([]string, 0, len(profile))
	for field := range profile {
		if measurementFields[field] {
			continue
		}
		if _, ok := stringValue(profile[field]); ok {
			fields = append(fields, field)
		}
	}
	sort.Strings(fields)

	values := make([]string, 0, len(fields))
	for _, field := range fields {
		v, _ := stringValue(profile[field])
		values = append(values, v)
	}
	return values
}
