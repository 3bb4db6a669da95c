package entity

import (
	"fmt"
	"math"
	"strings"
)

// Display colors for the three risk bands
const (
	ColorSafe    = "#00FFB2"
	ColorCaution = "#FFCC00"
	ColorAlert   = "#FF5C5C"
)

// Band is a discrete churn risk level. Higher values mean higher risk.
type Band int

const (
	BandLow Band = iota
	BandMedium
	BandHigh
)

// String returns LOW, MEDIUM or HIGH
func (b Band) String() string {
	switch b {
	case BandHigh:
		return "HIGH"
	case BandMedium:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

// ShortLabel is the compact badge text used on the landing page
func (b Band) ShortLabel() string {
	if b == BandMedium {
		return "MED"
	}
	return b.String()
}

// Color returns the display color of the band
func (b Band) Color() string {
	switch b {
	case BandHigh:
		return ColorAlert
	case BandMedium:
		return ColorCaution
	default:
		return ColorSafe
	}
}

// Advice is the one-line recommendation shown next to a demo score
func (b Band) Advice() string {
	switch b {
	case BandHigh:
		return "High risk — immediate intervention recommended"
	case BandMedium:
		return "Moderate risk — monitor and engage proactively"
	default:
		return "Low risk — customer appears stable"
	}
}

// MarshalText encodes the band by name
func (b Band) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText accepts LOW, MED/MEDIUM or HIGH
func (b *Band) UnmarshalText(text []byte) error {
	switch strings.ToUpper(string(text)) {
	case "LOW":
		*b = BandLow
	case "MED", "MEDIUM":
		*b = BandMedium
	case "HIGH":
		*b = BandHigh
	default:
		return fmt.Errorf("unknown risk band %q", text)
	}
	return nil
}

// Risk is a band together with its display color
type Risk struct {
	Band  Band   `json:"band"`
	Color string `json:"color"`
}

// NewRisk returns the risk for band b
func NewRisk(b Band) Risk {
	return Risk{Band: b, Color: b.Color()}
}

// Thresholds splits scores into bands: above High is HIGH, above Medium is MEDIUM
type Thresholds struct {
	High   float64
	Medium float64
}

var (
	// ScoreBarThresholds is used by the landing widget and score bars
	ScoreBarThresholds = Thresholds{High: 70, Medium: 45}

	// ResultThresholds is used by the result page progress bar
	ResultThresholds = Thresholds{High: 70, Medium: 40}
)

// ClampScore limits score to [0, 100]; NaN becomes 0
func ClampScore(score float64) float64 {
	if math.IsNaN(score) {
		return 0
	}
	return math.Max(0, math.Min(100, score))
}

// Classify maps a score to a risk using t. Out-of-range scores are clamped first.
func Classify(score float64, t Thresholds) Risk {
	score = ClampScore(score)
	switch {
	case score > t.High:
		return NewRisk(BandHigh)
	case score > t.Medium:
		return NewRisk(BandMedium)
	default:
		return NewRisk(BandLow)
	}
}

// BandFromLabel reads a server risk label such as "High Risk".
// Matching is case-sensitive; anything without High or Medium is LOW.
func BandFromLabel(label string) Band {
	switch {
	case strings.Contains(label, "High"):
		return BandHigh
	case strings.Contains(label, "Medium"):
		return BandMedium
	default:
		return BandLow
	}
}
