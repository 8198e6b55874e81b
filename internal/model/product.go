package model

// Product is a catalog entry as served by the backend. The client never
// mutates products; prices are whole Chilean pesos.
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Category    string `json:"category"`
	CategoryID  int    `json:"category_id"`
	ImageURL    string `json:"image_url"`
	Watering    string `json:"watering"`
	Light       string `json:"light"`
	Stock       bool   `json:"stock"`
}

// InStock reports whether the product can be added to the cart
func (p Product) InStock() bool {
	return p.Stock
}

// Category is a product grouping used by the catalog filter
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
