package domain

// TierInfo is the qualitative label/color pair a normalized value bands into.
type TierInfo struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// TierCount is the number of ordered qualitative bands per dimension.
const TierCount = 6

// TierIndex bands a normalized value into one of six ordered tiers with
// thresholds at 0, 1/6, 2/6, ... A value of exactly 1 lands in the top tier.
func TierIndex(x float64) int {
	i := int(Clamp01(x) * TierCount)
	if i >= TierCount {
		i = TierCount - 1
	}
	return i
}

// Shared low-to-high palette, one color per tier band.
var tierColors = [TierCount]string{
	"#b91c1c", "#ea580c", "#ca8a04", "#65a30d", "#16a34a", "#0d9488",
}

var (
	wealthTierLabels       = [TierCount]string{"Indebted", "Struggling", "Getting By", "Comfortable", "Affluent", "Wealthy"}
	bodyTierLabels         = [TierCount]string{"Frail", "Weak", "Average", "Fit", "Strong", "Peak"}
	mindTierLabels         = [TierCount]string{"Foggy", "Strained", "Steady", "Clear", "Sharp", "Brilliant"}
	appearanceTierLabels   = [TierCount]string{"Unkempt", "Plain", "Presentable", "Polished", "Striking", "Magnetic"}
	intelligenceTierLabels = [TierCount]string{"Untrained", "Novice", "Competent", "Skilled", "Expert", "Visionary"}
	statusTierLabels       = [TierCount]string{"Unknown", "Overlooked", "Recognized", "Respected", "Influential", "Renowned"}
	resilienceTierLabels   = [TierCount]string{"Shattered", "Fragile", "Coping", "Steady", "Tough", "Unshakeable"}
)

func tierOf(labels [TierCount]string, x float64) TierInfo {
	i := TierIndex(x)
	return TierInfo{Label: labels[i], Color: tierColors[i]}
}

// WealthTier labels the normalized liquid-wealth dimension.
func WealthTier(x float64) TierInfo { return tierOf(wealthTierLabels, x) }

// BodyTier labels the body vitality component.
func BodyTier(x float64) TierInfo { return tierOf(bodyTierLabels, x) }

// MindTier labels the mind vitality component.
func MindTier(x float64) TierInfo { return tierOf(mindTierLabels, x) }

// AppearanceTier labels the appearance vitality component.
func AppearanceTier(x float64) TierInfo { return tierOf(appearanceTierLabels, x) }

// IntelligenceTier labels the intelligence dimension.
func IntelligenceTier(x float64) TierInfo { return tierOf(intelligenceTierLabels, x) }

// StatusTier labels the status dimension.
func StatusTier(x float64) TierInfo { return tierOf(statusTierLabels, x) }

// ResilienceTier labels the resilience dimension.
func ResilienceTier(x float64) TierInfo { return tierOf(resilienceTierLabels, x) }
