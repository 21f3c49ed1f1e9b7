package catalog

import (
	"context"
)

// Repo defines read access to the product catalog. All reads return
// products with their reviews eagerly attached.
type Repo interface {
	ListAll(ctx context.Context) ([]Product, error)
	ListByIDs(ctx context.Context, ids []int) ([]Product, error)
	ListWithinBudget(ctx context.Context, maxPrice int) ([]Product, error)
	ListByNames(ctx context.Context, names []string) ([]Product, error)
}
