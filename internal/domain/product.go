package domain

// SpecificationRange is a closed numeric interval a customer measurement is
// tested against. Unit is informational only; matching always happens in
// canonical units (inches, pounds, degrees Fahrenheit) after parsing.
type SpecificationRange struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Unit string  `json:"unit,omitempty"`
}

// Contains reports whether v falls inside the closed interval [Min, Max].
func (r SpecificationRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// ProductSpecifications holds the per-category fit data a product exposes.
// The key vocabulary is fixed; nil ranges and empty option slices mean the
// product does not declare that specification, which simply contributes no
// match signal.
type ProductSpecifications struct {
	HeightRange            *SpecificationRange `json:"heightRange,omitempty"`
	WeightRange            *SpecificationRange `json:"weightRange,omitempty"`
	WeightCapacityRange    *SpecificationRange `json:"weightCapacityRange,omitempty"`
	ChestSizeRange         *SpecificationRange `json:"chestSizeRange,omitempty"`
	WaterTempRange         *SpecificationRange `json:"waterTempRange,omitempty"`
	LengthRange            *SpecificationRange `json:"lengthRange,omitempty"`
	DeckWidthRange         *SpecificationRange `json:"deckWidthRange,omitempty"`
	WheelDiameterRange     *SpecificationRange `json:"wheelDiameterRange,omitempty"`
	HeadCircumferenceRange *SpecificationRange `json:"headCircumferenceRange,omitempty"`
	ThicknessOptions       []string            `json:"thicknessOptions,omitempty"`
	ExperienceLevel        []string            `json:"experienceLevel,omitempty"`
	RidingStyleOptions     []string            `json:"ridingStyleOptions,omitempty"`
	SizeOptions            []string            `json:"sizeOptions,omitempty"`
	Durometer              []string            `json:"durometer,omitempty"`
}

// Product is one inventory item handed to the engine as a candidate.
// Owned by the inventory collaborator; the engine treats it as read-only.
type Product struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Category       string                `json:"category"`
	Sport          string                `json:"sport"`
	ShopID         string                `json:"shopId,omitempty"`
	Price          float64               `json:"price"`
	Description    string                `json:"description"`
	Features       []string              `json:"features,omitempty"`
	Specifications ProductSpecifications `json:"specifications"`
	InStock        bool                  `json:"inStock"`
	Quantity       int                   `json:"quantity"`
}

// CustomerProfile is the raw preference form: field name to raw string or
// number. Every field is optional; a missing field means "no preference",
// never an error.
type CustomerProfile map[string]any

// ScoredRecommendation is a product plus the ranking output for one request.
type ScoredRecommendation struct {
	Product
	Score        int      `json:"score"`
	MatchReasons []string `json:"matchReasons"`
}

// PriceInterval is the numeric range a price-range label resolves to.
// Max is math.Inf(1) for unbounded labels like "$800+". Invariant: Min <= Max.
type PriceInterval struct {
	Min float64
	Max float64
}

// Contains reports whether price falls inside the closed interval.
func (p PriceInterval) Contains(price float64) bool {
	return price >= p.Min && price <= p.Max
}
