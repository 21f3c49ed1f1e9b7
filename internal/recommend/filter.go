package recommend

import (
	"strings"

	"beautips-backend/internal/catalog"
)

// WithinBudget reports whether the product's maximum price fits the profile's
// budget ceiling. Products with no price survive: price is unknown, not over
// budget. With no concrete budget every product fits.
func WithinBudget(p catalog.Product, profile Profile) bool {
	budget, ok := profile.BudgetLimit()
	if !ok || p.PriceMax <= 0 {
		return true
	}
	return p.PriceMax <= budget
}

// ContainsAllergen reports whether the product's ingredient text contains any
// of the profile's allergens as a case-insensitive substring.
func ContainsAllergen(p catalog.Product, profile Profile) bool {
	if len(profile.Allergens) == 0 || p.Ingredients == "" {
		return false
	}
	ingredients := strings.ToLower(p.Ingredients)
	for _, allergen := range profile.Allergens {
		trimmed := strings.ToLower(strings.TrimSpace(allergen))
		if trimmed == "" {
			continue
		}
		if strings.Contains(ingredients, trimmed) {
			return true
		}
	}
	return false
}

// MatchesSkinType reports whether the profile's skin type and the product's
// skin-affinity text reference each other (bidirectional case-insensitive
// substring), e.g. "oily" matches "oily and combination skin".
func MatchesSkinType(p catalog.Product, profile Profile) bool {
	if profile.SkinType == "" || p.SkinFor == "" {
		return false
	}
	skinType := strings.ToLower(profile.SkinType)
	skinFor := strings.ToLower(p.SkinFor)
	return strings.Contains(skinFor, skinType) || strings.Contains(skinType, skinFor)
}

// Eligible combines the hard constraints: in budget and allergen-free.
// Skin-type affinity is a scoring signal, not a hard constraint.
func Eligible(p catalog.Product, profile Profile) bool {
	return WithinBudget(p, profile) && !ContainsAllergen(p, profile)
}
