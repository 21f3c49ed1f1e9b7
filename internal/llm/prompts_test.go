package llm

import (
	"strings"
	"testing"
)

func TestBuildScenarioPromptDispatch(t *testing.T) {
	cases := []struct {
		name     string
		scenario string
		expected string
	}{
		{"compatibility_keyword", "check product compatibility", TemplateCompatibility},
		{"compatibility_outranks_skin", "skin product compatibility", TemplateCompatibility},
		{"routine_keyword", "analyze my routine", TemplateRoutine},
		{"russian_routine", "анализ рутины", TemplateRoutine},
		{"skin_care_keyword", "improve my skin", TemplateSkinCare},
		{"russian_skin_care", "уход за кожей", TemplateSkinCare},
		{"fallback", "something else entirely", TemplateDefault},
		{"empty", "", TemplateDefault},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, name := BuildScenarioPrompt(PromptInput{Scenario: tc.scenario})
			if name != tc.expected {
				t.Fatalf("scenario %q: expected template %q, got %q", tc.scenario, tc.expected, name)
			}
		})
	}
}

func TestBuildScenarioPromptInterpolation(t *testing.T) {
	prompt, name := BuildScenarioPrompt(PromptInput{
		Scenario:         "improve skin condition",
		SkinType:         "oily",
		Conditions:       []string{"acne", "redness"},
		BudgetLabel:      "1000",
		UserContext:      `{"answers":[]}`,
		RelevantProducts: "PRODUCT #1 ...",
	})
	if name != TemplateSkinCare {
		t.Fatalf("expected skin care template, got %q", name)
	}
	for _, want := range []string{"oily", "acne, redness", "1000", "PRODUCT #1 ...", `{"answers":[]}`} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
	if strings.Contains(prompt, "{{") {
		t.Fatalf("prompt has unreplaced placeholders:\n%s", prompt)
	}
}

func TestBuildScenarioPromptBudgetEmphasis(t *testing.T) {
	prompt, _ := BuildScenarioPrompt(PromptInput{
		Scenario:    "skin care plan",
		BudgetLabel: "1500",
	})
	// The budget instruction is deliberately repeated in the template.
	if strings.Count(prompt, "1500") < 3 {
		t.Fatalf("expected repeated budget mentions, got:\n%s", prompt)
	}
}

func TestBuildScenarioPromptDefaults(t *testing.T) {
	prompt, name := BuildScenarioPrompt(PromptInput{Scenario: "уход"})
	if name != TemplateSkinCare {
		t.Fatalf("expected skin care template, got %q", name)
	}
	if !strings.Contains(prompt, "not specified") {
		t.Fatalf("expected unset profile fields to render as 'not specified'")
	}
	if !strings.Contains(prompt, "5 products") {
		t.Fatalf("expected default products count of 5")
	}
}
