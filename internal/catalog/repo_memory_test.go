package catalog

import (
	"context"
	"testing"
)

func seededRepo() *MemoryRepo {
	repo := NewMemoryRepo()
	repo.Seed(
		Product{Name: "A", PriceMax: 500, SkinFor: "oily", Ingredients: "niacinamide",
			Reviews: []Review{{Text: "great product"}}},
		Product{Name: "B", PriceMax: 2000, SkinFor: "dry", Ingredients: "retinol"},
		Product{Name: "C", PriceMax: 900, SkinFor: "combination", Ingredients: "aqua, glycerin"},
	)
	return repo
}

func TestMemoryRepoListWithinBudget(t *testing.T) {
	repo := seededRepo()
	products, err := repo.ListWithinBudget(context.Background(), 1000)
	if err != nil {
		t.Fatalf("ListWithinBudget: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products within budget, got %d", len(products))
	}
	for _, p := range products {
		if p.PriceMax > 1000 {
			t.Fatalf("product %q exceeds budget: %d", p.Name, p.PriceMax)
		}
	}
}

func TestMemoryRepoListByNames(t *testing.T) {
	repo := seededRepo()
	products, err := repo.ListByNames(context.Background(), []string{"B", "missing"})
	if err != nil {
		t.Fatalf("ListByNames: %v", err)
	}
	if len(products) != 1 || products[0].Name != "B" {
		t.Fatalf("unexpected products %+v", products)
	}
}

func TestMemoryRepoSeedAssignsReviewOwnership(t *testing.T) {
	repo := seededRepo()
	products, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}
	first := products[0]
	if len(first.Reviews) != 1 || first.Reviews[0].ProductID != first.ID {
		t.Fatalf("review not bound to product: %+v", first.Reviews)
	}
}

func TestMemoryRepoSnapshotIsolation(t *testing.T) {
	repo := seededRepo()
	products, _ := repo.ListAll(context.Background())
	products[0].Reviews[0].Text = "mutated"

	again, _ := repo.ListAll(context.Background())
	if again[0].Reviews[0].Text == "mutated" {
		t.Fatalf("expected stored reviews to be isolated from returned slice")
	}
}
