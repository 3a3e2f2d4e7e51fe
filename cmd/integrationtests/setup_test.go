package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"auction-house/internal/auth"
	bid "auction-house/internal/bidService"
	model "auction-house/internal/models"
	product "auction-house/internal/productService"
	"auction-house/internal/repository"
	"auction-house/internal/server"
	user "auction-house/internal/userService"
)

// TestEnv holds the wired application plus direct store access for seeding
// and post-condition checks.
type TestEnv struct {
	Router *gin.Engine
	Store  *repository.MemoryStore
	Tokens *auth.TokenService
}

// SetupTestEnv wires the full stack on the in-memory store with three
// seeded accounts.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	tokens := auth.NewTokenService("integration-secret", time.Hour)

	for _, u := range []model.User{
		{ID: "user-a", Username: "alice", Email: "alice@example.com"},
		{ID: "user-b", Username: "bob", Email: "bob@example.com"},
		{ID: "admin-1", Username: "admin", Email: "admin@example.com", Admin: true},
	} {
		require.NoError(t, store.CreateUser(u))
	}

	router := server.SetupRouter(
		product.NewProductService(store),
		bid.NewBidService(store),
		user.NewUserService(store, tokens),
		tokens,
	)

	return &TestEnv{Router: router, Store: store, Tokens: tokens}
}

// TokenFor issues a token for a seeded user
func (e *TestEnv) TokenFor(t *testing.T, userID string) string {
	t.Helper()

	u, err := e.Store.UserByID(userID)
	require.NoError(t, err)

	token, err := e.Tokens.Generate(u)
	require.NoError(t, err)
	return token
}

// Do executes an HTTP request, optionally authenticated, and parses any
// JSON object body.
func (e *TestEnv) Do(t *testing.T, method, url, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

// CreateProduct is a shorthand for a valid product creation
func (e *TestEnv) CreateProduct(t *testing.T, token, name, endDate string) string {
	t.Helper()

	w, resp := e.Do(t, http.MethodPost, "/api/products", token, map[string]any{
		"name":    name,
		"endDate": endDate,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return resp["id"].(string)
}
