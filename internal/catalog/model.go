package catalog

// Product is a catalog product row with its reviews eagerly attached.
// The recommendation core treats products as read-only input.
type Product struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type,omitempty"`
	Brand        string   `json:"brand,omitempty"`
	Country      string   `json:"country,omitempty"`
	Kind         string   `json:"kind,omitempty"`
	Volume       string   `json:"volume,omitempty"`
	SkinFor      string   `json:"skinFor,omitempty"`
	Functions    string   `json:"functions,omitempty"`
	Description1 string   `json:"description1,omitempty"`
	Description2 string   `json:"description2,omitempty"`
	Components   string   `json:"components,omitempty"`
	Ingredients  string   `json:"ingredients,omitempty"`
	PriceMin     int      `json:"priceMin"`
	PriceMax     int      `json:"priceMax"`
	Reviews      []Review `json:"reviews,omitempty"`
}

// Review is a free-form customer review belonging to one product.
type Review struct {
	ID        int    `json:"id"`
	ProductID int    `json:"productId"`
	Text      string `json:"text"`
}
