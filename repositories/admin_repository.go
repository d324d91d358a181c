package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
)

// adminEntities maps the admin console's entity names to their upstream paths.
// Every surface is the same list/create/update/delete shape, so one repository
// serves all of them.
var adminEntities = map[string]string{
	"products":   "/products",
	"categories": "/categories",
	"banners":    "/banners",
	"navigation": "/navigation",
	"orders":     "/orders",
	"users":      "/users",
	"reviews":    "/reviews",
}

var ErrUnknownEntity = errors.New("unknown admin entity")

type AdminRepository struct {
	client *Client
}

func NewAdminRepository(client *Client) *AdminRepository {
	return &AdminRepository{client: client}
}

func (r *AdminRepository) entityPath(entity string) (string, error) {
	path, ok := adminEntities[entity]
	if !ok {
		return "", ErrUnknownEntity
	}
	return "/admin" + path, nil
}

func (r *AdminRepository) List(ctx context.Context, token, entity string, query url.Values) (json.RawMessage, error) {
	path, err := r.entityPath(entity)
	if err != nil {
		return nil, err
	}

	var result json.RawMessage
	if err := r.client.do(ctx, http.MethodGet, path, token, query, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *AdminRepository) Get(ctx context.Context, token, entity, id string) (json.RawMessage, error) {
	path, err := r.entityPath(entity)
	if err != nil {
		return nil, err
	}

	var result json.RawMessage
	if err := r.client.do(ctx, http.MethodGet, path+"/"+id, token, nil, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *AdminRepository) Create(ctx context.Context, token, entity string, body json.RawMessage) (json.RawMessage, error) {
	path, err := r.entityPath(entity)
	if err != nil {
		return nil, err
	}

	var result json.RawMessage
	if err := r.client.do(ctx, http.MethodPost, path, token, nil, body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *AdminRepository) Update(ctx context.Context, token, entity, id string, body json.RawMessage) (json.RawMessage, error) {
	path, err := r.entityPath(entity)
	if err != nil {
		return nil, err
	}

	var result json.RawMessage
	if err := r.client.do(ctx, http.MethodPut, path+"/"+id, token, nil, body, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *AdminRepository) Delete(ctx context.Context, token, entity, id string) error {
	path, err := r.entityPath(entity)
	if err != nil {
		return err
	}
	return r.client.do(ctx, http.MethodDelete, path+"/"+id, token, nil, nil, nil)
}

func (r *AdminRepository) Dashboard(ctx context.Context, token string) (json.RawMessage, error) {
	var result json.RawMessage
	if err := r.client.do(ctx, http.MethodGet, "/admin/dashboard", token, nil, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}
