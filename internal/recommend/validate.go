package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"beautips-backend/internal/catalog"
)

// StripCodeFence removes a Markdown code fence wrapped around the model's
// response, preferring a ```json fence over a bare ``` one. Text without a
// fence is returned trimmed.
func StripCodeFence(s string) string {
	if _, after, found := strings.Cut(s, "```json"); found {
		inner, _, _ := strings.Cut(after, "```")
		return strings.TrimSpace(inner)
	}
	if _, after, found := strings.Cut(s, "```"); found {
		inner, _, _ := strings.Cut(after, "```")
		return strings.TrimSpace(inner)
	}
	return strings.TrimSpace(s)
}

// ParseGenerated un-fences and JSON-decodes the model's response into the
// loosely-typed recommendation object.
func ParseGenerated(raw string) (map[string]any, error) {
	text := StripCodeFence(raw)
	var out map[string]any
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("decode generated response: %w", err)
	}
	return out, nil
}

// ValidateBudget drops recommended products whose catalog price exceeds the
// profile's budget, despite the prompt instructing the model otherwise.
// Products the catalog cannot resolve by name are kept; they may be generic
// entries the model invented, and unverifiable is not the same as violating.
// When anything was dropped a budget-compliance note is appended to the
// analysis text so the trimming is visible to the user.
func ValidateBudget(ctx context.Context, repo catalog.Repo, generated map[string]any, profile Profile) (map[string]any, error) {
	budget, ok := profile.BudgetLimit()
	if !ok {
		return generated, nil
	}
	listed, _ := generated["products"].([]any)
	if len(listed) == 0 {
		return generated, nil
	}

	names := make([]string, 0, len(listed))
	for _, item := range listed {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if name := asString(entry["name"]); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return generated, nil
	}

	known, err := repo.ListByNames(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("validate budget: %w", err)
	}
	byName := make(map[string]catalog.Product, len(known))
	for _, p := range known {
		byName[p.Name] = p
	}

	kept := make([]any, 0, len(listed))
	dropped := 0
	for _, item := range listed {
		entry, ok := item.(map[string]any)
		if !ok {
			kept = append(kept, item)
			continue
		}
		p, found := byName[asString(entry["name"])]
		if found && p.PriceMax > 0 && p.PriceMax > budget {
			dropped++
			continue
		}
		kept = append(kept, item)
	}

	generated["products"] = kept
	if dropped > 0 {
		analysis := asString(generated["analysis"])
		generated["analysis"] = fmt.Sprintf(
			"%s\n\nAll recommended products fit the stated budget of up to %d som.",
			analysis, budget)
	}
	return generated, nil
}
