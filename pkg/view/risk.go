package view

import (
	"math"

	"github.com/vcscsvcscs/carecompanion-go/pkg/model"
)

// Risk tier thresholds. TierForScore is the only place these appear;
// screens must not re-derive the tier from the score themselves.
const (
	riskLowMax      = 0.3
	riskModerateMax = 0.6
)

// TierForScore maps a risk score in [0,1] onto its discrete tier:
// low for scores up to 0.3, moderate up to 0.6, high above.
func TierForScore(score float64) model.RiskLevel {
	switch {
	case score <= riskLowMax:
		return model.RiskLevelLow
	case score <= riskModerateMax:
		return model.RiskLevelModerate
	default:
		return model.RiskLevelHigh
	}
}

// Risk is the view-facing shape of a risk prediction. Type aliases the
// wire's risk_type; Level is derived from Score so the tier can never
// disagree with the displayed percentage.
type Risk struct {
	ID        string
	Type      string
	Score     float64
	Level     model.RiskLevel
	Percent   int
	ModelUsed string
}

// NormalizeRisk maps a wire risk score onto its view shape
func NormalizeRisk(score model.RiskScore) Risk {
	return Risk{
		ID:        score.ID,
		Type:      score.RiskType,
		Score:     score.Score,
		Level:     TierForScore(score.Score),
		Percent:   int(math.Round(score.Score * 100)),
		ModelUsed: score.ModelUsed,
	}
}

// NormalizeRiskHistory maps a slice of wire risk scores, preserving order
func NormalizeRiskHistory(scores []model.RiskScore) []Risk {
	risks := make([]Risk, 0, len(scores))
	for _, s := range scores {
		risks = append(risks, NormalizeRisk(s))
	}
	return risks
}
