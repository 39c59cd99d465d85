package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendFromROI(t *testing.T) {
	tests := []struct {
		name             string
		roi              float64
		expectedAction   RecommendationAction
		expectedFraction float64
	}{
		{
			name:             "ROI acima de 100 sugere aumentar o orçamento",
			roi:              150,
			expectedAction:   ActionIncreaseBudget,
			expectedFraction: 0.25,
		},
		{
			name:             "ROI entre 30 e 100 sugere manter o orçamento",
			roi:              65,
			expectedAction:   ActionMaintainBudget,
			expectedFraction: 0,
		},
		{
			name:             "ROI entre 0 e 30 sugere otimizar",
			roi:              12.5,
			expectedAction:   ActionOptimize,
			expectedFraction: 0,
		},
		{
			name:             "ROI negativo sugere reduzir o orçamento",
			roi:              -10,
			expectedAction:   ActionDecreaseBudget,
			expectedFraction: -0.4,
		},
		{
			name:             "ROI exatamente 100 pertence à faixa inferior",
			roi:              100,
			expectedAction:   ActionMaintainBudget,
			expectedFraction: 0,
		},
		{
			name:             "ROI exatamente 30 pertence à faixa inferior",
			roi:              30,
			expectedAction:   ActionOptimize,
			expectedFraction: 0,
		},
		{
			name:             "ROI exatamente 0 pertence à faixa inferior",
			roi:              0,
			expectedAction:   ActionDecreaseBudget,
			expectedFraction: -0.4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recommendation := RecommendFromROI(tt.roi)

			assert.Equal(t, tt.expectedAction, recommendation.Action)
			assert.InDelta(t, tt.expectedFraction, recommendation.SuggestedBudgetChangeFraction, 0.001)
			assert.NotEmpty(t, recommendation.Message)
		})
	}
}

func TestRecommendFromROIMessageFormat(t *testing.T) {
	recommendation := RecommendFromROI(538.208)

	assert.Contains(t, recommendation.Message, "538.21%")

	recommendation = RecommendFromROI(-10)
	assert.Contains(t, recommendation.Message, "-10.00%")
}
