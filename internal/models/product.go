package models

// Product is a catalog entry shown on the catalog page and pre-filled into
// the order form.
type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Catalog returns the product list. Static for now; move to the database if
// the assortment ever grows beyond a handful of items.
func Catalog() []Product {
	return []Product{
		{ID: 1, Name: "Laptop", Price: 7500000},
		{ID: 2, Name: "Kursi", Price: 500000},
		{ID: 3, Name: "Komputer", Price: 8500000},
		{ID: 4, Name: "Proyektor", Price: 4500000},
		{ID: 5, Name: "Papan Tulis", Price: 800000},
	}
}
