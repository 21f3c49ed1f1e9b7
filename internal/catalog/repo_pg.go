package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const productColumns = `
id, product_name, product_type, brand, country, product_kind, volume,
skin_for, functions, description_1, description_2, components, ingredients_list,
price_min, price_max`

// ListAll returns every product with reviews attached.
func (r *PGRepo) ListAll(ctx context.Context) ([]Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`
	products, err := r.queryProducts(ctx, query)
	if err != nil {
		return nil, err
	}
	return r.attachReviews(ctx, products)
}

// ListByIDs returns products matching any of the given IDs.
func (r *PGRepo) ListByIDs(ctx context.Context, ids []int) ([]Product, error) {
	if len(ids) == 0 {
		return []Product{}, nil
	}
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE id IN (` +
		strings.Join(placeholders, ", ") + `) ORDER BY id`
	products, err := r.queryProducts(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return r.attachReviews(ctx, products)
}

// ListWithinBudget returns products whose maximum price does not exceed maxPrice.
func (r *PGRepo) ListWithinBudget(ctx context.Context, maxPrice int) ([]Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE price_max <= $1 ORDER BY id`
	products, err := r.queryProducts(ctx, query, maxPrice)
	if err != nil {
		return nil, err
	}
	return r.attachReviews(ctx, products)
}

// ListByNames returns products matching any of the given names.
func (r *PGRepo) ListByNames(ctx context.Context, names []string) ([]Product, error) {
	if len(names) == 0 {
		return []Product{}, nil
	}
	placeholders := make([]string, len(names))
	args := make([]any, len(names))
	for i, name := range names {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = name
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE product_name IN (` +
		strings.Join(placeholders, ", ") + `) ORDER BY id`
	products, err := r.queryProducts(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return r.attachReviews(ctx, products)
}

func (r *PGRepo) queryProducts(ctx context.Context, query string, args ...any) ([]Product, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	if products == nil {
		products = []Product{}
	}
	return products, nil
}

func scanProduct(rows *sql.Rows) (Product, error) {
	var p Product
	var productType, brand, country, kind, volume sql.NullString
	var skinFor, functions, desc1, desc2, components, ingredients sql.NullString
	var priceMin, priceMax sql.NullInt64
	err := rows.Scan(
		&p.ID,
		&p.Name,
		&productType,
		&brand,
		&country,
		&kind,
		&volume,
		&skinFor,
		&functions,
		&desc1,
		&desc2,
		&components,
		&ingredients,
		&priceMin,
		&priceMax,
	)
	if err != nil {
		return Product{}, fmt.Errorf("scan product: %w", err)
	}
	p.Type = productType.String
	p.Brand = brand.String
	p.Country = country.String
	p.Kind = kind.String
	p.Volume = volume.String
	p.SkinFor = skinFor.String
	p.Functions = functions.String
	p.Description1 = desc1.String
	p.Description2 = desc2.String
	p.Components = components.String
	p.Ingredients = ingredients.String
	p.PriceMin = int(priceMin.Int64)
	p.PriceMax = int(priceMax.Int64)
	return p, nil
}

func (r *PGRepo) attachReviews(ctx context.Context, products []Product) ([]Product, error) {
	if len(products) == 0 {
		return products, nil
	}
	placeholders := make([]string, len(products))
	args := make([]any, len(products))
	index := make(map[int]int, len(products))
	for i := range products {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = products[i].ID
		index[products[i].ID] = i
	}

	query := `SELECT id, product_id, review_text FROM reviews WHERE product_id IN (` +
		strings.Join(placeholders, ", ") + `) ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rev Review
		var text sql.NullString
		if err := rows.Scan(&rev.ID, &rev.ProductID, &text); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		rev.Text = text.String
		if i, ok := index[rev.ProductID]; ok {
			products[i].Reviews = append(products[i].Reviews, rev)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}
	return products, nil
}

var _ Repo = (*PGRepo)(nil)
