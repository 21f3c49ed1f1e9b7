package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"beautips-backend/internal/catalog"
	"beautips-backend/internal/embedding"
)

// ErrNoProducts is returned by Query when the index has never been built or
// was built over an empty catalog.
var ErrNoProducts = errors.New("semantic index is empty")

// Hit is a single semantic search result: the product ID and its cosine
// similarity to the query.
type Hit struct {
	ProductID  int
	Similarity float64
}

type indexEntry struct {
	productID int
	vector    []float32
}

// snapshot is an immutable build of the index. Readers pick up a snapshot
// atomically and work against it without locks; Rebuild swaps in a fresh one.
type snapshot struct {
	entries []indexEntry
}

// Index is the in-memory semantic index over the product catalog. Reads are
// lock-free against the current snapshot; rebuilds are serialized by mu and
// publish atomically, so queries racing a rebuild see either the old or the
// new catalog in full, never a half-built one.
type Index struct {
	Embedder embedding.Client

	mu      sync.Mutex
	current atomic.Pointer[snapshot]
}

// NewIndex constructs an Index over the given embedder. The index starts
// empty; call Rebuild before querying.
func NewIndex(embedder embedding.Client) *Index {
	return &Index{Embedder: embedder}
}

// Size returns the number of indexed products.
func (ix *Index) Size() int {
	snap := ix.current.Load()
	if snap == nil {
		return 0
	}
	return len(snap.entries)
}

// Rebuild re-embeds the whole catalog and atomically replaces the current
// snapshot. An empty catalog installs an empty snapshot, which makes
// subsequent queries fail with ErrNoProducts.
func (ix *Index) Rebuild(ctx context.Context, products []catalog.Product) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if len(products) == 0 {
		ix.current.Store(&snapshot{})
		return nil
	}

	texts := make([]string, len(products))
	for i, p := range products {
		texts[i] = indexText(p)
	}
	vectors, err := ix.Embedder.Embed(ctx, texts)
	if err != nil {
		return fmt.Errorf("embed catalog: %w", err)
	}
	if len(vectors) != len(products) {
		return fmt.Errorf("embed catalog: got %d vectors for %d products", len(vectors), len(products))
	}

	entries := make([]indexEntry, len(products))
	for i, p := range products {
		entries[i] = indexEntry{productID: p.ID, vector: vectors[i]}
	}
	ix.current.Store(&snapshot{entries: entries})
	return nil
}

// Query embeds the query text and returns the top k products by cosine
// similarity, descending. Ties keep catalog order. k <= 0 returns nil.
func (ix *Index) Query(ctx context.Context, query string, k int) ([]Hit, error) {
	snap := ix.current.Load()
	if snap == nil || len(snap.entries) == 0 {
		return nil, ErrNoProducts
	}
	if k <= 0 {
		return nil, nil
	}

	vectors, err := ix.Embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("embed query: empty response")
	}
	queryVec := vectors[0]

	hits := make([]Hit, 0, len(snap.entries))
	for _, entry := range snap.entries {
		hits = append(hits, Hit{
			ProductID:  entry.productID,
			Similarity: cosineSimilarity(queryVec, entry.vector),
		})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Similarity > hits[j].Similarity })
	if len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

// indexText renders a product as the document that gets embedded. Reviews are
// folded in so customer language is searchable alongside catalog copy.
func indexText(p catalog.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s.", p.Name)
	if p.Brand != "" {
		fmt.Fprintf(&b, " Brand: %s.", p.Brand)
	}
	if p.Type != "" {
		fmt.Fprintf(&b, " Type: %s.", p.Type)
	}
	if p.SkinFor != "" {
		fmt.Fprintf(&b, " For skin: %s.", p.SkinFor)
	}
	if p.Functions != "" {
		fmt.Fprintf(&b, " Functions: %s.", p.Functions)
	}
	if p.Description1 != "" {
		fmt.Fprintf(&b, " %s", p.Description1)
	}
	if p.Description2 != "" {
		fmt.Fprintf(&b, " %s", p.Description2)
	}
	if p.Components != "" {
		fmt.Fprintf(&b, " Key components: %s.", p.Components)
	}
	if p.Ingredients != "" {
		fmt.Fprintf(&b, " Ingredients: %s.", p.Ingredients)
	}
	if len(p.Reviews) > 0 {
		b.WriteString(" CUSTOMER REVIEWS:")
		for _, review := range p.Reviews {
			fmt.Fprintf(&b, " %s", review.Text)
		}
	}
	return b.String()
}

// cosineSimilarity returns the cosine of the angle between a and b, or 0 when
// either vector is zero or the lengths differ.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
