package models

// CartLine is one product-quantity pairing in the session cart. Prices are
// denormalized at add time so the cart renders without refetching the product;
// FinalPrice is the discounted unit price actually charged.
type CartLine struct {
	ProductID  string  `json:"product_id"`
	Name       string  `json:"name"`
	Slug       string  `json:"slug"`
	Price      float64 `json:"price"`
	Discount   float64 `json:"discount"`
	FinalPrice float64 `json:"final_price"`
	Quantity   int     `json:"quantity"`
	Image      string  `json:"image"`
	Stock      int     `json:"stock"`
}
