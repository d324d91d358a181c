package models

import "time"

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type Product struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Brand          string    `json:"brand"`
	CategoryID     string    `json:"category_id"`
	Price          float64   `json:"price"`
	Discount       float64   `json:"discount"`
	FinalPrice     float64   `json:"final_price"`
	Images         []string  `json:"images"`
	Stock          int       `json:"stock"`
	Description    string    `json:"description"`
	FragranceNotes string    `json:"fragrance_notes,omitempty"`
	IsFeatured     bool      `json:"is_featured"`
	IsBestSelling  bool      `json:"is_best_selling"`
	IsNewArrival   bool      `json:"is_new_arrival"`
	AverageRating  float64   `json:"average_rating"`
	TotalReviews   int       `json:"total_reviews"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// FirstImage is what cart lines and order items carry as the display thumbnail.
func (p *Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

type ProductFilter struct {
	Search     string
	CategoryID string
	MinPrice   float64
	MaxPrice   float64
	IsFeatured bool
	Limit      int
}
