package recommend

import (
	"reflect"
	"testing"
)

func TestExtractProfile(t *testing.T) {
	data := map[string]any{
		"scenario": map[string]any{"answer": "Improve skin care"},
		"answers": []any{
			map[string]any{"question": "What is your skin type?", "answer": "oily"},
			map[string]any{"question": "What concerns do you have?", "answer": []any{"acne", "redness"}},
			map[string]any{"question": "What is your budget?", "answer": "up to 1500 som"},
			map[string]any{"question": "Any allergies or components to avoid?", "answer": []any{"niacinamide"}},
			map[string]any{"question": "What is your age?", "answer": float64(25)},
		},
	}

	profile := ExtractProfile(data)

	if profile.Scenario != "Improve skin care" {
		t.Errorf("Scenario = %q", profile.Scenario)
	}
	if profile.SkinType != "oily" {
		t.Errorf("SkinType = %q, want oily", profile.SkinType)
	}
	if !reflect.DeepEqual(profile.Conditions, []string{"acne", "redness"}) {
		t.Errorf("Conditions = %v", profile.Conditions)
	}
	if budget, ok := profile.BudgetLimit(); !ok || budget != 1500 {
		t.Errorf("BudgetLimit() = %d, %v, want 1500, true", budget, ok)
	}
	if !reflect.DeepEqual(profile.Allergens, []string{"niacinamide"}) {
		t.Errorf("Allergens = %v", profile.Allergens)
	}
	if profile.Age != "25" {
		t.Errorf("Age = %q, want 25", profile.Age)
	}
}

func TestExtractProfileStructuredBudgetWins(t *testing.T) {
	data := map[string]any{
		"scenarioData": map[string]any{
			"skin-care": map[string]any{"budget": float64(2000)},
		},
		"answers": []any{
			map[string]any{"question": "What is your budget?", "answer": "500"},
		},
	}

	profile := ExtractProfile(data)
	if budget, ok := profile.BudgetLimit(); !ok || budget != 2000 {
		t.Fatalf("BudgetLimit() = %d, %v, want 2000 from scenarioData", budget, ok)
	}
}

func TestExtractProfileBudgetAny(t *testing.T) {
	for _, answer := range []string{"any", "Any", "любой", "не важно", "бюджет не важен"} {
		t.Run(answer, func(t *testing.T) {
			data := map[string]any{
				"answers": []any{
					map[string]any{"question": "budget", "answer": answer},
				},
			}
			profile := ExtractProfile(data)
			if _, ok := profile.BudgetLimit(); ok {
				t.Errorf("BudgetLimit() set for %q, want none", answer)
			}
			if !profile.BudgetAny {
				t.Errorf("BudgetAny = false for %q", answer)
			}
			if profile.BudgetLabel() != "any" {
				t.Errorf("BudgetLabel() = %q, want any", profile.BudgetLabel())
			}
		})
	}
}

func TestExtractProfileRussianQuestions(t *testing.T) {
	data := map[string]any{
		"answers": []any{
			map[string]any{"question": "Какой у вас тип кожи?", "answer": "жирная"},
			map[string]any{"question": "Какой бюджет?", "answer": float64(1000)},
			map[string]any{"question": "Есть ли аллергия на компоненты?", "answer": "ретинол"},
		},
	}

	profile := ExtractProfile(data)
	if profile.SkinType != "жирная" {
		t.Errorf("SkinType = %q", profile.SkinType)
	}
	if budget, ok := profile.BudgetLimit(); !ok || budget != 1000 {
		t.Errorf("BudgetLimit() = %d, %v", budget, ok)
	}
	if !reflect.DeepEqual(profile.Allergens, []string{"ретинол"}) {
		t.Errorf("Allergens = %v", profile.Allergens)
	}
}

func TestExtractProfileMalformed(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
	}{
		{"nil map", nil},
		{"empty map", map[string]any{}},
		{"answers not a list", map[string]any{"answers": "oops"}},
		{"answer entries not maps", map[string]any{"answers": []any{"oops", 42}}},
		{"negative budget", map[string]any{"answers": []any{
			map[string]any{"question": "budget", "answer": float64(-5)},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := ExtractProfile(tt.data)
			if _, ok := profile.BudgetLimit(); ok {
				t.Errorf("BudgetLimit() unexpectedly set")
			}
		})
	}
}
