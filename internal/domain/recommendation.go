package domain

import "fmt"

// RecommendationAction é a ação sugerida para o orçamento da conta
type RecommendationAction string

const (
	ActionIncreaseBudget RecommendationAction = "INCREASE_BUDGET"
	ActionMaintainBudget RecommendationAction = "MAINTAIN_BUDGET"
	ActionOptimize       RecommendationAction = "OPTIMIZE"
	ActionDecreaseBudget RecommendationAction = "DECREASE_BUDGET"
)

// Recommendation é derivada exclusivamente do ROI, sem estado oculto
type Recommendation struct {
	Action                        RecommendationAction `json:"action"`
	Message                       string               `json:"message"`
	SuggestedBudgetChangeFraction float64              `json:"suggested_budget_change_fraction"`
}

// RecommendFromROI classifica o ROI em uma faixa de recomendação de orçamento.
// As regras são avaliadas da maior para a menor faixa; os limites 100, 30 e 0
// pertencem à faixa inferior.
func RecommendFromROI(roi float64) Recommendation {
	switch {
	case roi > 100:
		return Recommendation{
			Action:                        ActionIncreaseBudget,
			Message:                       fmt.Sprintf("ROI de %.2f%% excelente. Considere aumentar o orçamento em 25%%", roi),
			SuggestedBudgetChangeFraction: 0.25,
		}
	case roi > 30:
		return Recommendation{
			Action:                        ActionMaintainBudget,
			Message:                       fmt.Sprintf("ROI de %.2f%% saudável. Mantenha o orçamento atual", roi),
			SuggestedBudgetChangeFraction: 0,
		}
	case roi > 0:
		return Recommendation{
			Action:                        ActionOptimize,
			Message:                       fmt.Sprintf("ROI de %.2f%% baixo. Otimize campanhas antes de investir mais", roi),
			SuggestedBudgetChangeFraction: 0,
		}
	default:
		return Recommendation{
			Action:                        ActionDecreaseBudget,
			Message:                       fmt.Sprintf("ROI de %.2f%% negativo ou nulo. Considere reduzir o orçamento em 40%%", roi),
			SuggestedBudgetChangeFraction: -0.4,
		}
	}
}
