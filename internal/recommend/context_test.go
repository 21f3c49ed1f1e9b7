package recommend

import (
	"context"
	"strings"
	"testing"

	"beautips-backend/internal/catalog"
)

func newTestAssembler(t *testing.T, products ...catalog.Product) (*Assembler, *catalog.MemoryRepo) {
	t.Helper()
	repo := catalog.NewMemoryRepo()
	repo.Seed(products...)
	return &Assembler{
		Repo:  repo,
		Index: NewIndex(newTestEmbedder()),
		TopK:  10,
	}, repo
}

func TestBuildContextBudgetAndSkinFiltering(t *testing.T) {
	assembler, _ := newTestAssembler(t,
		catalog.Product{Name: "A", PriceMax: 500, SkinFor: "oily", Ingredients: "niacinamide"},
		catalog.Product{Name: "B", PriceMax: 2000, SkinFor: "dry", Ingredients: "retinol"},
	)
	profile := Profile{SkinType: "oily", Budget: intPtr(1000)}

	got, err := assembler.BuildContext(context.Background(), "oily skin care", profile)
	if err != nil {
		t.Fatalf("BuildContext() error = %v", err)
	}
	if !strings.Contains(got, "Name: A") {
		t.Errorf("context does not include product A:\n%s", got)
	}
	if strings.Contains(got, "Name: B") {
		t.Errorf("over-budget product B leaked into context:\n%s", got)
	}
	if !strings.Contains(got, "Within budget") {
		t.Errorf("budget-fit reason missing:\n%s", got)
	}
	if !strings.Contains(got, "Suits oily skin") {
		t.Errorf("skin-type reason missing:\n%s", got)
	}
}

func TestBuildContextAllergenExclusion(t *testing.T) {
	assembler, _ := newTestAssembler(t,
		catalog.Product{Name: "A", PriceMax: 500, SkinFor: "oily", Ingredients: "niacinamide"},
		catalog.Product{Name: "B", PriceMax: 2000, SkinFor: "dry", Ingredients: "retinol"},
	)
	profile := Profile{
		SkinType:  "oily",
		Budget:    intPtr(1000),
		Allergens: []string{"niacinamide"},
	}

	got, err := assembler.BuildContext(context.Background(), "oily skin care", profile)
	if err != nil {
		t.Fatalf("BuildContext() error = %v", err)
	}
	// A carries the allergen, B exceeds the budget; both fallbacks must
	// respect the exclusions, so nothing survives.
	if got != MsgNoSuitableProducts {
		t.Fatalf("BuildContext() = %q, want no-suitable-products sentinel", got)
	}
}

func TestBuildContextEmptyCatalog(t *testing.T) {
	assembler, _ := newTestAssembler(t)

	got, err := assembler.BuildContext(context.Background(), "anything", Profile{})
	if err != nil {
		t.Fatalf("BuildContext() error = %v", err)
	}
	if got != MsgNoProductData {
		t.Fatalf("BuildContext() = %q, want no-product-data sentinel", got)
	}
}

func TestBuildContextFallbackExpandsPool(t *testing.T) {
	// Only one product is semantically close to the query; the fallback
	// must widen the pool with in-budget, allergen-free products.
	assembler, _ := newTestAssembler(t,
		catalog.Product{Name: "Oily serum", PriceMax: 500, SkinFor: "oily"},
		catalog.Product{Name: "Plain cream", PriceMax: 700},
		catalog.Product{Name: "Allergen cream", PriceMax: 600, Ingredients: "fragrance"},
		catalog.Product{Name: "Pricy cream", PriceMax: 5000},
	)
	profile := Profile{
		SkinType:  "oily",
		Budget:    intPtr(1000),
		Allergens: []string{"fragrance"},
	}

	got, err := assembler.BuildContext(context.Background(), "oily", profile)
	if err != nil {
		t.Fatalf("BuildContext() error = %v", err)
	}
	if !strings.Contains(got, "Oily serum") {
		t.Errorf("semantically matched product missing:\n%s", got)
	}
	if !strings.Contains(got, "Plain cream") {
		t.Errorf("fallback did not widen the pool:\n%s", got)
	}
	if strings.Contains(got, "Allergen cream") {
		t.Errorf("fallback introduced an allergen violation:\n%s", got)
	}
	if strings.Contains(got, "Pricy cream") {
		t.Errorf("fallback introduced an over-budget product:\n%s", got)
	}
}

func TestBuildContextRendering(t *testing.T) {
	assembler, _ := newTestAssembler(t,
		catalog.Product{
			Name:       "Oily serum",
			Brand:      "Acme",
			Type:       "serum",
			PriceMin:   300,
			PriceMax:   500,
			SkinFor:    "oily",
			Functions:  "hydration",
			Components: "hyaluronic acid",
			Reviews: []catalog.Review{
				{Text: "Great serum, really helped my skin"},
				{Text: "bad smell"},
			},
		},
		catalog.Product{Name: "Dry cream", PriceMax: 800, SkinFor: "dry"},
	)
	profile := Profile{SkinType: "oily", Budget: intPtr(1000)}

	got, err := assembler.BuildContext(context.Background(), "oily serum", profile)
	if err != nil {
		t.Fatalf("BuildContext() error = %v", err)
	}

	for _, want := range []string{
		"PRODUCT #1 [Relevance:",
		"PRODUCT #2 [Relevance:",
		"Brand: Acme",
		"Price: 300-500 som",
		"Key components: hyaluronic acid",
		"REVIEWS: 1+ / 1- (total: 2)",
		`Top review: "Great serum, really helped my skin..."`,
		strings.Repeat("=", 80),
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered context missing %q:\n%s", want, got)
		}
	}

	// The semantically and attribute-wise stronger product ranks first.
	if strings.Index(got, "Oily serum") > strings.Index(got, "Dry cream") {
		t.Errorf("ranking order wrong:\n%s", got)
	}
}
