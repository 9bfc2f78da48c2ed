package prioritization

import "fmt"

// UrgencyLevel is the display label derived from a score.
type UrgencyLevel uint8

const (
	UrgencyLow UrgencyLevel = iota + 1
	UrgencyMedium
	UrgencyHigh
	UrgencyCritical
)

func (u UrgencyLevel) String() string {
	switch u {
	case UrgencyLow:
		return "LOW"
	case UrgencyMedium:
		return "MEDIUM"
	case UrgencyHigh:
		return "HIGH"
	case UrgencyCritical:
		return "CRITICAL"
	}
	return fmt.Sprintf("UrgencyLevel(%d)", uint8(u))
}

func (u UrgencyLevel) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// Classify maps a score to its urgency level. Thresholds are inclusive below.
func Classify(score float64) UrgencyLevel {
	switch {
	case score >= 75:
		return UrgencyCritical
	case score >= 50:
		return UrgencyHigh
	case score >= 25:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}
