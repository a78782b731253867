package domain

// Risk is a coarse four-level classification of event severity.
type Risk int

const (
	RiskLow Risk = iota
	RiskModerate
	RiskHigh
	RiskCritical
)

func (r Risk) String() string {
	switch r {
	case RiskCritical:
		return "CRITICAL"
	case RiskHigh:
		return "HIGH"
	case RiskModerate:
		return "MODERATE"
	default:
		return "LOW"
	}
}

// RiskLevel classifies a magnitude. Thresholds are documented in the package
// comment.
func RiskLevel(mag float64) Risk {
	switch {
	case mag >= 6.0:
		return RiskCritical
	case mag >= 4.5:
		return RiskHigh
	case mag >= 2.5:
		return RiskModerate
	default:
		return RiskLow
	}
}
