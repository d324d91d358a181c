package repositories

import (
	"context"
	"net/http"

	"fragrance-store/models"
)

type AuthRepository struct {
	client *Client
}

func NewAuthRepository(client *Client) *AuthRepository {
	return &AuthRepository{client: client}
}

func (r *AuthRepository) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}

	var result models.LoginResponse
	if err := r.client.do(ctx, http.MethodPost, "/auth/login", "", nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *AuthRepository) Signup(ctx context.Context, req models.SignupRequest) (*models.LoginResponse, error) {
	role := req.Role
	if role == "" {
		role = "customer"
	}
	body := map[string]string{
		"name":     req.Name,
		"email":    req.Email,
		"password": req.Password,
		"role":     role,
	}

	var result models.LoginResponse
	if err := r.client.do(ctx, http.MethodPost, "/auth/signup", "", nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *AuthRepository) Me(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := r.client.do(ctx, http.MethodGet, "/auth/me", token, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AuthRepository) AddAddress(ctx context.Context, token string, address models.Address) (*models.User, error) {
	var user models.User
	if err := r.client.do(ctx, http.MethodPost, "/auth/address", token, nil, address, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
