package llm

import (
	_ "embed"
	"strconv"
	"strings"
)

var (
	//go:embed prompts/skincare.txt
	promptSkinCare string
	//go:embed prompts/compatibility.txt
	promptCompatibility string
	//go:embed prompts/routine.txt
	promptRoutine string
	//go:embed prompts/default.txt
	promptDefault string
)

// Template names reported alongside the built prompt.
const (
	TemplateSkinCare      = "skin_care"
	TemplateCompatibility = "product_compatibility"
	TemplateRoutine       = "routine_analysis"
	TemplateDefault       = "default"
)

// PromptInput carries the profile fields and rendered catalog context
// interpolated into a scenario template.
type PromptInput struct {
	Scenario         string
	SkinType         string
	Conditions       []string
	BudgetLabel      string
	ProductsCount    int
	UserContext      string
	RelevantProducts string
}

// scenarioDispatch maps scenario-label keywords to templates. Entries are
// evaluated in priority order and the first match wins; compatibility
// outranks routine, which outranks the budget-aware skin-care template.
var scenarioDispatch = []struct {
	name     string
	keywords []string
	build    func(PromptInput) string
}{
	{
		name:     TemplateCompatibility,
		keywords: []string{"совместим", "compatibility", "compatible"},
		build:    buildCompatibilityPrompt,
	},
	{
		name:     TemplateRoutine,
		keywords: []string{"рутин", "routine", "анализ", "analysis"},
		build:    buildRoutinePrompt,
	},
	{
		name:     TemplateSkinCare,
		keywords: []string{"улучш", "уход", "кожа", "improve", "care", "skin"},
		build:    buildSkinCarePrompt,
	},
}

// BuildScenarioPrompt selects a template by keyword-matching the scenario
// label and interpolates the input. It returns the prompt and the name of
// the template chosen.
func BuildScenarioPrompt(in PromptInput) (string, string) {
	scenario := strings.ToLower(in.Scenario)
	for _, entry := range scenarioDispatch {
		for _, keyword := range entry.keywords {
			if strings.Contains(scenario, keyword) {
				return entry.build(in), entry.name
			}
		}
	}
	return buildDefaultPrompt(in), TemplateDefault
}

func buildSkinCarePrompt(in PromptInput) string {
	count := in.ProductsCount
	if count <= 0 {
		count = 5
	}
	return strings.NewReplacer(
		"{{skin_type}}", orNotSpecified(in.SkinType),
		"{{conditions}}", joinOrNotSpecified(in.Conditions),
		"{{main_concerns}}", joinOrNotSpecified(in.Conditions),
		"{{budget}}", orNotSpecified(in.BudgetLabel),
		"{{products_count}}", strconv.Itoa(count),
		"{{relevant_products}}", in.RelevantProducts,
		"{{user_context}}", in.UserContext,
	).Replace(promptSkinCare)
}

func buildCompatibilityPrompt(in PromptInput) string {
	return strings.NewReplacer(
		"{{products}}", joinOrNotSpecified(in.Conditions),
		"{{relevant_products}}", in.RelevantProducts,
		"{{user_context}}", in.UserContext,
	).Replace(promptCompatibility)
}

func buildRoutinePrompt(in PromptInput) string {
	return strings.NewReplacer(
		"{{current_products}}", joinOrNotSpecified(in.Conditions),
		"{{relevant_products}}", in.RelevantProducts,
		"{{user_context}}", in.UserContext,
	).Replace(promptRoutine)
}

func buildDefaultPrompt(in PromptInput) string {
	return strings.NewReplacer(
		"{{relevant_products}}", in.RelevantProducts,
		"{{user_context}}", in.UserContext,
	).Replace(promptDefault)
}

func orNotSpecified(value string) string {
	if strings.TrimSpace(value) == "" {
		return "not specified"
	}
	return value
}

func joinOrNotSpecified(values []string) string {
	if len(values) == 0 {
		return "not specified"
	}
	return strings.Join(values, ", ")
}
