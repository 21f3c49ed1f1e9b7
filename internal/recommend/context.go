package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"beautips-backend/internal/catalog"
)

// Sentinel context messages. "No data" is a valid outcome for a quiz that
// found no eligible products, so these travel inside the context text rather
// than as errors.
const (
	MsgNoProductData      = "No product data is available in the catalog."
	MsgNoProductsFound    = "No products were found in the catalog."
	MsgNoSuitableProducts = "No suitable products were found. Try adjusting the search or filter parameters."
)

const (
	// Below this pool size the assembler expands the candidate set with
	// direct budget-bounded catalog queries.
	minPoolSize = 3

	// Over-fetch factor on the index query, leaving headroom for the hard
	// filters to drop candidates.
	overFetchFactor = 3

	blockSeparator = "\n\n" + "================================================================================" + "\n\n"
)

// Assembler runs the retrieval pipeline: index query, hard filtering,
// scoring, fallback expansion, and rendering of the ranked candidates into
// the text block consumed by prompt construction.
type Assembler struct {
	Repo  catalog.Repo
	Index *Index
	TopK  int
}

func (a *Assembler) topK() int {
	if a.TopK > 0 {
		return a.TopK
	}
	return 10
}

// BuildContext retrieves, filters, scores, and renders the products most
// relevant to the query under the profile's constraints. The returned string
// is either the rendered product blocks or one of the fixed sentinel
// messages; errors are reserved for infrastructure failures (embedding or
// catalog access).
func (a *Assembler) BuildContext(ctx context.Context, query string, profile Profile) (string, error) {
	topK := a.topK()

	// Lazy build on first use.
	if a.Index.Size() == 0 {
		products, err := a.Repo.ListAll(ctx)
		if err != nil {
			return "", fmt.Errorf("load catalog: %w", err)
		}
		if err := a.Index.Rebuild(ctx, products); err != nil {
			return "", err
		}
	}

	hits, err := a.Index.Query(ctx, query, topK*overFetchFactor)
	if err != nil {
		if errors.Is(err, ErrNoProducts) {
			return MsgNoProductData, nil
		}
		return "", err
	}
	if len(hits) == 0 {
		return MsgNoProductsFound, nil
	}

	ids := make([]int, len(hits))
	similarityByID := make(map[int]float64, len(hits))
	for i, hit := range hits {
		ids[i] = hit.ProductID
		similarityByID[hit.ProductID] = hit.Similarity
	}
	resolved, err := a.Repo.ListByIDs(ctx, ids)
	if err != nil {
		return "", fmt.Errorf("resolve candidates: %w", err)
	}
	if len(resolved) == 0 {
		return MsgNoProductsFound, nil
	}
	byID := make(map[int]catalog.Product, len(resolved))
	for _, p := range resolved {
		byID[p.ID] = p
	}

	// Hard filters, preserving the index ranking order.
	pool := make([]catalog.Product, 0, len(ids))
	inPool := make(map[int]bool, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok || inPool[id] {
			continue
		}
		if !Eligible(p, profile) {
			continue
		}
		pool = append(pool, p)
		inPool[id] = true
	}

	// First fallback: widen with a direct catalog read, still allergen- and
	// budget-safe. Newcomers carry zero similarity since semantic ranking
	// never saw them.
	if len(pool) < minPoolSize {
		extra, err := a.listWithinProfileBudget(ctx, profile)
		if err != nil {
			return "", fmt.Errorf("expand candidates: %w", err)
		}
		for _, p := range extra {
			if inPool[p.ID] || ContainsAllergen(p, profile) {
				continue
			}
			pool = append(pool, p)
			inPool[p.ID] = true
		}
	}

	scored := make([]ScoredCandidate, 0, len(pool))
	for _, p := range pool {
		scored = append(scored, ScoreCandidate(p, profile, similarityByID[p.ID]))
	}
	sortByScore(scored)
	if len(scored) > topK {
		scored = scored[:topK]
	}

	// Second fallback: only with a concrete budget, scoring newcomers with
	// the baseline placeholder.
	if budget, ok := profile.BudgetLimit(); ok && len(scored) < minPoolSize {
		extra, err := a.Repo.ListWithinBudget(ctx, budget)
		if err != nil {
			return "", fmt.Errorf("expand candidates: %w", err)
		}
		present := make(map[int]bool, len(scored))
		for _, c := range scored {
			present[c.Product.ID] = true
		}
		for _, p := range extra {
			if present[p.ID] || ContainsAllergen(p, profile) {
				continue
			}
			scored = append(scored, ScoreFallbackCandidate(p, profile))
			present[p.ID] = true
		}
		sortByScore(scored)
		if len(scored) > topK {
			scored = scored[:topK]
		}
	}

	if len(scored) == 0 {
		return MsgNoSuitableProducts, nil
	}

	return renderCandidates(scored), nil
}

// listWithinProfileBudget reads the catalog bounded by the profile's budget,
// or unbounded when none is set.
func (a *Assembler) listWithinProfileBudget(ctx context.Context, profile Profile) ([]catalog.Product, error) {
	if budget, ok := profile.BudgetLimit(); ok {
		return a.Repo.ListWithinBudget(ctx, budget)
	}
	return a.Repo.ListAll(ctx)
}

func sortByScore(candidates []ScoredCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Score > candidates[j].Score })
}

func renderCandidates(candidates []ScoredCandidate) string {
	blocks := make([]string, 0, len(candidates))
	for i, c := range candidates {
		blocks = append(blocks, renderCandidate(i+1, c))
	}
	return strings.Join(blocks, blockSeparator)
}

func renderCandidate(rank int, c ScoredCandidate) string {
	p := c.Product
	stats := CountReviewSentiment(p.Reviews)

	topReview := "No reviews"
	if len(p.Reviews) > 0 && p.Reviews[0].Text != "" {
		topReview = truncate(p.Reviews[0].Text, 100) + "..."
	}

	reasons := "✓ Baseline match"
	if len(c.Reasons) > 0 {
		lines := make([]string, len(c.Reasons))
		for i, r := range c.Reasons {
			lines[i] = "✓ " + r
		}
		reasons = strings.Join(lines, "\n")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "PRODUCT #%d [Relevance: %.1f/100]\n", rank, c.Score)
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Brand: %s\n", orNotSpecified(p.Brand))
	fmt.Fprintf(&b, "Type: %s\n", orNotSpecified(p.Type))
	fmt.Fprintf(&b, "Price: %d-%d som\n\n", p.PriceMin, p.PriceMax)
	fmt.Fprintf(&b, "For skin: %s\n", orNotSpecified(p.SkinFor))
	fmt.Fprintf(&b, "Functions: %s\n", orNotSpecified(p.Functions))
	fmt.Fprintf(&b, "Key components: %s\n\n", orNotSpecified(p.Components))
	fmt.Fprintf(&b, "WHY IT FITS:\n%s\n\n", reasons)
	fmt.Fprintf(&b, "REVIEWS: %d+ / %d- (total: %d)\n", stats.Positive, stats.Negative, stats.Total)
	fmt.Fprintf(&b, "Top review: %q", topReview)
	return b.String()
}

func orNotSpecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
