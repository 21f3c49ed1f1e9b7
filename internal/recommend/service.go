package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"beautips-backend/internal/catalog"
	"beautips-backend/internal/llm"
	"beautips-backend/internal/shared/metrics"
	"beautips-backend/internal/shared/telemetry"
)

// Service runs the full recommendation pipeline: profile extraction,
// retrieval, prompt construction, generation, and budget validation.
type Service struct {
	Repo      catalog.Repo
	Assembler *Assembler
	LLM       llm.Client
}

// Degraded response fields. Whatever goes wrong, the caller always receives
// a well-formed object with these keys populated.
func degraded(errMsg, analysis, disclaimer string) map[string]any {
	metrics.IncRecommendationDegraded()
	return map[string]any{
		"error":      errMsg,
		"analysis":   analysis,
		"disclaimer": disclaimer,
	}
}

func degradedConfig() map[string]any {
	return degraded(
		"generative model not configured",
		"The AI consultant is waiting for an access key to be configured.",
		"Contact the administrator to configure the Gemini API.",
	)
}

func degradedParse() map[string]any {
	return degraded(
		"JSON parsing error",
		"The AI returned a response in an unexpected format.",
		"Please try submitting the results again.",
	)
}

func degradedUnexpected(err error) map[string]any {
	return degraded(
		err.Error(),
		"A technical hiccup occurred while working with the AI.",
		"Please try submitting the results again in a minute.",
	)
}

// GenerateRecommendations is the public entry point. It never returns an
// error and never panics outward; every failure mode collapses into the
// degraded-object shape so the caller always has something presentable.
func (s *Service) GenerateRecommendations(ctx context.Context, questionnaire map[string]any) (result map[string]any) {
	metrics.IncRecommendationStarted()
	start := time.Now()
	defer func() {
		metrics.ObserveRecommendationDurationMs(float64(time.Since(start).Milliseconds()))
	}()
	defer func() {
		if r := recover(); r != nil {
			telemetry.Error("recommendation pipeline panicked", map[string]any{"panic": fmt.Sprint(r)})
			result = degradedUnexpected(fmt.Errorf("unexpected failure: %v", r))
		}
	}()

	profile := ExtractProfile(questionnaire)
	query := searchQuery(profile.Scenario, questionnaire)

	relevantProducts, err := s.Assembler.BuildContext(ctx, query, profile)
	if err != nil {
		telemetry.Error("context assembly failed", map[string]any{"err": err.Error()})
		return degradedUnexpected(err)
	}

	prompt, template := llm.BuildScenarioPrompt(llm.PromptInput{
		Scenario:         profile.Scenario,
		SkinType:         profile.SkinType,
		Conditions:       profile.Conditions,
		BudgetLabel:      profile.BudgetLabel(),
		UserContext:      userContext(questionnaire),
		RelevantProducts: relevantProducts,
	})
	telemetry.Info("recommendation prompt built", map[string]any{
		"template":   template,
		"scenario":   profile.Scenario,
		"prompt_len": len(prompt),
	})

	raw, err := s.LLM.Generate(ctx, prompt)
	if err != nil {
		telemetry.Error("generation failed", map[string]any{"err": err.Error(), "template": template})
		if errors.Is(err, llm.ErrNotConfigured) {
			return degradedConfig()
		}
		return degradedUnexpected(err)
	}

	parsed, err := ParseGenerated(raw)
	if err != nil {
		telemetry.Error("generated response unparseable", map[string]any{"err": err.Error(), "template": template})
		return degradedParse()
	}

	validated, err := ValidateBudget(ctx, s.Repo, parsed, profile)
	if err != nil {
		telemetry.Error("budget validation failed", map[string]any{"err": err.Error()})
		return degradedUnexpected(err)
	}

	metrics.IncRecommendationCompleted()
	return validated
}

// RebuildIndex re-reads the catalog and re-embeds it into the semantic index.
func (s *Service) RebuildIndex(ctx context.Context) (int, error) {
	products, err := s.Repo.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("load catalog: %w", err)
	}
	if err := s.Assembler.Index.Rebuild(ctx, products); err != nil {
		return 0, err
	}
	metrics.IncIndexRebuild()
	telemetry.Info("semantic index rebuilt", map[string]any{"products": len(products)})
	return len(products), nil
}

// searchQuery joins the scenario label with a flat rendering of the raw
// answers. The query is free text for the embedding model, so lossy
// flattening is fine.
func searchQuery(scenario string, questionnaire map[string]any) string {
	answers, _ := json.Marshal(questionnaire["answers"])
	return fmt.Sprintf("%s %s", scenario, answers)
}

// userContext serializes the whole questionnaire for prompt interpolation.
func userContext(questionnaire map[string]any) string {
	data, err := json.Marshal(questionnaire)
	if err != nil {
		return "{}"
	}
	return string(data)
}
