package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryRepo stores products in memory and is safe for concurrent use.
// It backs dev mode and tests when no database is configured.
type MemoryRepo struct {
	mu       sync.RWMutex
	byID     map[int]Product
	nextID   int
	nextRev  int
	ordering []int
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:    make(map[int]Product),
		nextID:  1,
		nextRev: 1,
	}
}

// Seed inserts products, assigning IDs where missing. Review ownership is
// normalized to the containing product.
func (r *MemoryRepo) Seed(products ...Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range products {
		if p.ID == 0 {
			p.ID = r.nextID
		}
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
		for i := range p.Reviews {
			if p.Reviews[i].ID == 0 {
				p.Reviews[i].ID = r.nextRev
			}
			if p.Reviews[i].ID >= r.nextRev {
				r.nextRev = p.Reviews[i].ID + 1
			}
			p.Reviews[i].ProductID = p.ID
		}
		if _, exists := r.byID[p.ID]; !exists {
			r.ordering = append(r.ordering, p.ID)
		}
		r.byID[p.ID] = p
	}
}

// ListAll returns every product ordered by ID.
func (r *MemoryRepo) ListAll(ctx context.Context) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(func(Product) bool { return true }), nil
}

// ListByIDs returns products matching any of the given IDs.
func (r *MemoryRepo) ListByIDs(ctx context.Context, ids []int) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	wanted := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(func(p Product) bool {
		_, ok := wanted[p.ID]
		return ok
	}), nil
}

// ListWithinBudget returns products whose maximum price does not exceed maxPrice.
func (r *MemoryRepo) ListWithinBudget(ctx context.Context, maxPrice int) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(func(p Product) bool { return p.PriceMax <= maxPrice }), nil
}

// ListByNames returns products matching any of the given names.
func (r *MemoryRepo) ListByNames(ctx context.Context, names []string) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		wanted[strings.TrimSpace(name)] = struct{}{}
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(func(p Product) bool {
		_, ok := wanted[p.Name]
		return ok
	}), nil
}

func (r *MemoryRepo) snapshot(keep func(Product) bool) []Product {
	ids := append([]int(nil), r.ordering...)
	sort.Ints(ids)
	out := []Product{}
	for _, id := range ids {
		p := r.byID[id]
		if !keep(p) {
			continue
		}
		copied := p
		copied.Reviews = append([]Review(nil), p.Reviews...)
		out = append(out, copied)
	}
	return out
}

var _ Repo = (*MemoryRepo)(nil)
