package recommend

import (
	"fmt"
	"regexp"
	"strings"
)

var digitsRe = regexp.MustCompile(`\d+`)

// ExtractProfile normalizes a loosely-typed questionnaire payload into a
// Profile. Extraction is best-effort by design: the quiz schema is loosely
// typed upstream, so malformed fields default to empty/absent and no error
// is ever raised.
func ExtractProfile(data map[string]any) Profile {
	var profile Profile

	if scenario, ok := data["scenario"].(map[string]any); ok {
		profile.Scenario = asString(scenario["answer"])
	}

	// The structured scenario field wins over the question/answer scan.
	if scenarioData, ok := data["scenarioData"].(map[string]any); ok {
		if skinCare, ok := scenarioData["skin-care"].(map[string]any); ok {
			profile.Budget, profile.BudgetAny = parseBudget(skinCare["budget"])
		}
	}

	answers, _ := data["answers"].([]any)
	for _, item := range answers {
		qa, ok := item.(map[string]any)
		if !ok {
			continue
		}
		question := strings.ToLower(asString(qa["question"]))
		answer := qa["answer"]
		if answer == nil || asString(answer) == "" && len(asStrings(answer)) == 0 {
			continue
		}

		if containsAny(question, skinTypeQuestionKeywords) {
			profile.SkinType = asString(answer)
		}
		if containsAny(question, conditionQuestionKeywords) {
			profile.Conditions = append(profile.Conditions, asStrings(answer)...)
		}
		if profile.Budget == nil && !profile.BudgetAny {
			if containsAny(question, budgetQuestionKeywords) {
				profile.Budget, profile.BudgetAny = parseBudget(answer)
			}
		}
		if containsAny(question, allergenQuestionKeywords) {
			profile.Allergens = append(profile.Allergens, asStrings(answer)...)
		}
		if containsAny(question, ageQuestionKeywords) {
			profile.Age = asString(answer)
		}
	}

	return profile
}

// parseBudget interprets a budget value: a number, a number embedded in a
// string, or an explicit "any" answer. A negative number is ignored.
func parseBudget(value any) (*int, bool) {
	switch v := value.(type) {
	case float64:
		if v < 0 {
			return nil, false
		}
		n := int(v)
		return &n, false
	case int:
		if v < 0 {
			return nil, false
		}
		return &v, false
	case string:
		trimmed := strings.ToLower(strings.TrimSpace(v))
		if trimmed == "" {
			return nil, false
		}
		for _, sentinel := range budgetAnyAnswers {
			if trimmed == sentinel {
				return nil, true
			}
		}
		if match := digitsRe.FindString(trimmed); match != "" {
			var n int
			fmt.Sscanf(match, "%d", &n)
			return &n, false
		}
	}
	return nil, false
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func asString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// asStrings flattens a scalar or list answer into a string slice.
func asStrings(value any) []string {
	switch v := value.(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s := asString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return v
	case nil:
		return nil
	default:
		if s := asString(v); s != "" {
			return []string{s}
		}
		return nil
	}
}
