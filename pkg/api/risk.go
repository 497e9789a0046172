package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/vcscsvcscs/carecompanion-go/pkg/model"
)

// PredictRisk requests a fresh risk prediction for one risk type
func (c *Client) PredictRisk(ctx context.Context, riskType model.RiskType) (*model.RiskScore, error) {
	switch riskType {
	case model.RiskTypeFall, model.RiskTypeCardiac, model.RiskTypeDiabetic:
	default:
		return nil, fmt.Errorf("invalid risk type %q: must be fall, cardiac, or diabetic", riskType)
	}

	body := map[string]model.RiskType{"risk_type": riskType}

	var score model.RiskScore
	if err := c.post(ctx, "/risk/predict", body, &score); err != nil {
		return nil, err
	}
	return &score, nil
}

// RiskHistory fetches past predictions, optionally filtered by risk type.
// An empty riskType fetches all types.
func (c *Client) RiskHistory(ctx context.Context, riskType model.RiskType) ([]model.RiskScore, error) {
	path := "/risk/history"
	if riskType != "" {
		path += "?risk_type=" + url.QueryEscape(string(riskType))
	}

	var scores []model.RiskScore
	if err := c.get(ctx, path, &scores); err != nil {
		return nil, err
	}
	return scores, nil
}
