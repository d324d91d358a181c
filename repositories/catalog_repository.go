package repositories

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"fragrance-store/models"
)

type CatalogRepository struct {
	client *Client
}

func NewCatalogRepository(client *Client) *CatalogRepository {
	return &CatalogRepository{client: client}
}

func (r *CatalogRepository) GetProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	query := url.Values{}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.CategoryID != "" {
		query.Set("category_id", filter.CategoryID)
	}
	if filter.MinPrice > 0 {
		query.Set("min_price", strconv.FormatFloat(filter.MinPrice, 'f', -1, 64))
	}
	if filter.MaxPrice > 0 {
		query.Set("max_price", strconv.FormatFloat(filter.MaxPrice, 'f', -1, 64))
	}
	if filter.IsFeatured {
		query.Set("is_featured", "true")
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}

	products := []models.Product{}
	if err := r.client.do(ctx, http.MethodGet, "/products", "", query, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *CatalogRepository) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := r.client.do(ctx, http.MethodGet, "/products/"+id, "", nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *CatalogRepository) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	if err := r.client.do(ctx, http.MethodGet, "/products/slug/"+slug, "", nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *CatalogRepository) GetCategories(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	if err := r.client.do(ctx, http.MethodGet, "/categories", "", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CatalogRepository) GetBanners(ctx context.Context) ([]models.Banner, error) {
	banners := []models.Banner{}
	if err := r.client.do(ctx, http.MethodGet, "/banners", "", nil, nil, &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

func (r *CatalogRepository) GetNavigation(ctx context.Context) ([]models.NavigationItem, error) {
	items := []models.NavigationItem{}
	if err := r.client.do(ctx, http.MethodGet, "/navigation", "", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CatalogRepository) GetReviews(ctx context.Context, productID string) ([]models.Review, error) {
	query := url.Values{}
	query.Set("product_id", productID)

	reviews := []models.Review{}
	if err := r.client.do(ctx, http.MethodGet, "/reviews", "", query, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *CatalogRepository) CreateReview(ctx context.Context, token string, req models.ReviewRequest) (*models.Review, error) {
	var review models.Review
	if err := r.client.do(ctx, http.MethodPost, "/reviews", token, nil, req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}
