package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fragrance-store/config"
	"fragrance-store/middleware"
	"fragrance-store/models"
	"fragrance-store/repositories"
	"fragrance-store/services"
	"fragrance-store/store"
)

func newCartRouter(t *testing.T, backendURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.AppConfig = &config.Config{
		AppEnv:        "test",
		SessionSecret: "test-secret",
		SessionExpiry: "1h",
	}

	cart := services.NewCartService(store.NewMemoryStore(), 0)
	catalog := repositories.NewCatalogRepository(repositories.NewClient(backendURL))
	ctrl := NewCartController(cart, catalog)

	r := gin.New()
	r.Use(middleware.SessionMiddleware())
	r.GET("/cart", ctrl.GetCart)
	r.POST("/cart/add", ctrl.AddToCart)
	r.POST("/cart/update", ctrl.UpdateQuantity)
	r.DELETE("/cart/:id", ctrl.RemoveFromCart)
	return r
}

func productBackend(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/products/p1" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"p1","name":"Midnight Oud","price":1200,"discount":0,"final_price":1200,"stock":10,"images":["a.jpg"]}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Product not found"}`))
	}))
	t.Cleanup(server.Close)
	return server
}

// sessionRequest replays the session cookie so successive requests hit the
// same cart, the way a browser would.
func sessionRequest(r *gin.Engine, cookie *http.Cookie, method, path, body string) (*httptest.ResponseRecorder, *http.Cookie) {
	var reqBody *strings.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	} else {
		reqBody = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			cookie = c
		}
	}
	return w, cookie
}

func TestCartEndpointsFullFlow(t *testing.T) {
	backend := productBackend(t)
	router := newCartRouter(t, backend.URL)

	w, cookie := sessionRequest(router, nil, http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, cookie, "first response sets the session cookie")

	var resp models.CartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0.0, resp.Total)

	w, cookie = sessionRequest(router, cookie, http.MethodPost, "/cart/add", `{"product_id":"p1","quantity":2}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Midnight Oud", resp.Items[0].Name)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, 2400.0, resp.Total)
	assert.Equal(t, 2, resp.Count)

	w, _ = sessionRequest(router, cookie, http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1, "cart survives across requests on the same session")

	w, _ = sessionRequest(router, cookie, http.MethodPost, "/cart/update", `{"product_id":"p1","quantity":0}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items, "quantity zero removes the line")
}

func TestCartAddUnknownProductPassesBackendMessage(t *testing.T) {
	backend := productBackend(t)
	router := newCartRouter(t, backend.URL)

	w, _ := sessionRequest(router, nil, http.MethodPost, "/cart/add", `{"product_id":"missing","quantity":1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Product not found", resp.Message)
}

func TestCartAddRejectsMalformedBody(t *testing.T) {
	backend := productBackend(t)
	router := newCartRouter(t, backend.URL)

	w, _ := sessionRequest(router, nil, http.MethodPost, "/cart/add", `{"quantity":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSeparateSessionsHaveSeparateCarts(t *testing.T) {
	backend := productBackend(t)
	router := newCartRouter(t, backend.URL)

	_, first := sessionRequest(router, nil, http.MethodPost, "/cart/add", `{"product_id":"p1","quantity":1}`)
	require.NotNil(t, first)

	w, second := sessionRequest(router, nil, http.MethodGet, "/cart", "")
	require.NotNil(t, second)
	require.NotEqual(t, first.Value, second.Value)

	var resp models.CartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items, "a fresh session starts with an empty cart")
}
