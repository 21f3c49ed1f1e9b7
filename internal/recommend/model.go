package recommend

import (
	"strconv"

	"beautips-backend/internal/catalog"
)

// Profile is the normalized view of a quiz questionnaire. It is rebuilt per
// request and never persisted. A nil Budget means no budget filtering applies,
// either because the user gave no budget or explicitly answered "any".
type Profile struct {
	SkinType   string
	Conditions []string
	Budget     *int
	BudgetAny  bool
	Allergens  []string
	Age        string
	Scenario   string
}

// BudgetLimit returns the concrete budget ceiling and whether one is set.
func (p Profile) BudgetLimit() (int, bool) {
	if p.Budget == nil {
		return 0, false
	}
	return *p.Budget, true
}

// BudgetLabel renders the budget for prompt interpolation: the number, "any"
// for an explicit no-preference answer, or empty when nothing was given.
func (p Profile) BudgetLabel() string {
	if p.Budget != nil {
		return strconv.Itoa(*p.Budget)
	}
	if p.BudgetAny {
		return "any"
	}
	return ""
}

// ScoredCandidate is a catalog product with its composite relevance score,
// the human-readable reasons behind it, and the raw similarity from the
// semantic index. Transient within one recommendation request.
type ScoredCandidate struct {
	Product    catalog.Product
	Score      float64
	Reasons    []string
	Similarity float64
}
