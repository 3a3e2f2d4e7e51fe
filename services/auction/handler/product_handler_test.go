package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/auth"
	model "auction-house/internal/models"
	product "auction-house/internal/productService"
	"auction-house/services/auction/helpers"
)

// identityInjector fakes the auth middleware for handler tests
func identityInjector(actor auth.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(helpers.IdentityKey, actor)
		c.Next()
	}
}

// performJSON runs a request against the router and decodes the JSON body
func performJSON(t *testing.T, router *gin.Engine, method, url string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

// Test CreateProductHandler
func TestCreateProductHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockProductServiceInterface(ctrl)
	handler := NewProductHandler(mockService)

	gin.SetMode(gin.TestMode)
	actor := auth.Identity{ID: "user1"}
	router := gin.New()
	router.POST("/api/products", identityInjector(actor), handler.CreateProductHandler)

	endDate := time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success_created", func(t *testing.T) {
		mockService.EXPECT().
			CreateProduct(product.ProductInput{Name: "Lamp", EndDate: "2099-01-01"}, actor).
			Return(model.Product{
				ID:       "prod1",
				Name:     "Lamp",
				EndDate:  endDate,
				SellerID: "user1",
			}, nil)

		w, resp := performJSON(t, router, http.MethodPost, "/api/products",
			helpers.ProductRequest{Name: "Lamp", EndDate: "2099-01-01"})

		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t, "prod1", resp["id"])
		require.Equal(t, "Lamp", resp["name"])
		require.Equal(t, "user1", resp["sellerId"])
		require.Equal(t, "2099-01-01T00:00:00Z", resp["endDate"])
	})

	t.Run("validation_failure_lists_both_fields", func(t *testing.T) {
		mockService.EXPECT().
			CreateProduct(gomock.Any(), actor).
			Return(model.Product{}, auctionerrors.NewValidationError("name", "endDate"))

		w, resp := performJSON(t, router, http.MethodPost, "/api/products",
			helpers.ProductRequest{EndDate: "nope"})

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "Invalid or missing fields", resp["error"])
		require.Equal(t, []any{"name", "endDate"}, resp["details"])
	})

	t.Run("unauthenticated_request_blocked", func(t *testing.T) {
		// without the injector no identity reaches the handler
		bare := gin.New()
		bare.POST("/api/products", handler.CreateProductHandler)

		w, resp := performJSON(t, bare, http.MethodPost, "/api/products",
			helpers.ProductRequest{Name: "Lamp", EndDate: "2099-01-01"})

		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.NotEmpty(t, resp["error"])
	})

	t.Run("malformed_json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader([]byte(`{invalid json}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// Test GetProductHandler and ListProductsHandler
func TestProductReadHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockProductServiceInterface(ctrl)
	handler := NewProductHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/products", handler.ListProductsHandler)
	router.GET("/api/products/:productId", handler.GetProductHandler)

	detail := model.ProductDetail{
		Product: model.Product{ID: "prod1", Name: "Lamp", SellerID: "user1", EndDate: time.Now().Add(time.Hour)},
		Seller:  model.User{ID: "user1", Username: "alice"},
		Bids: []model.BidDetail{
			{
				Bid:    model.Bid{ID: "bid1", ProductID: "prod1", BidderID: "user2", Price: 50, Date: time.Now()},
				Bidder: model.User{ID: "user2", Username: "bob"},
			},
		},
	}

	t.Run("get_includes_seller_and_bidders", func(t *testing.T) {
		mockService.EXPECT().GetProduct("prod1").Return(detail, nil)

		w, resp := performJSON(t, router, http.MethodGet, "/api/products/prod1", nil)

		require.Equal(t, http.StatusOK, w.Code)
		seller := resp["seller"].(map[string]any)
		require.Equal(t, "alice", seller["username"])

		bids := resp["bids"].([]any)
		require.Len(t, bids, 1)
		bid := bids[0].(map[string]any)
		require.Equal(t, 50.0, bid["price"])
		bidder := bid["bidder"].(map[string]any)
		require.Equal(t, "bob", bidder["username"])
	})

	t.Run("get_missing_product", func(t *testing.T) {
		mockService.EXPECT().GetProduct("ghost").Return(model.ProductDetail{}, auctionerrors.ErrProductNotFound)

		w, resp := performJSON(t, router, http.MethodGet, "/api/products/ghost", nil)

		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, "Product not found", resp["error"])
		require.NotContains(t, resp, "details")
	})

	t.Run("list_omits_bidders", func(t *testing.T) {
		mockService.EXPECT().ListProducts().Return([]model.ProductDetail{detail}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)

		bids := resp[0]["bids"].([]any)
		bid := bids[0].(map[string]any)
		require.NotContains(t, bid, "bidder")
	})
}

// Test UpdateProductHandler and DeleteProductHandler
func TestProductMutationHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockProductServiceInterface(ctrl)
	handler := NewProductHandler(mockService)

	gin.SetMode(gin.TestMode)
	actor := auth.Identity{ID: "user2"}
	router := gin.New()
	router.PUT("/api/products/:productId", identityInjector(actor), handler.UpdateProductHandler)
	router.DELETE("/api/products/:productId", identityInjector(actor), handler.DeleteProductHandler)

	t.Run("update_forbidden", func(t *testing.T) {
		mockService.EXPECT().
			UpdateProduct("prod1", gomock.Any(), actor).
			Return(model.Product{}, auctionerrors.ErrForbidden)

		w, resp := performJSON(t, router, http.MethodPut, "/api/products/prod1",
			helpers.ProductRequest{Name: "Lamp", EndDate: "2099-01-01"})

		require.Equal(t, http.StatusForbidden, w.Code)
		require.Equal(t, "User not granted access", resp["error"])
	})

	t.Run("update_success", func(t *testing.T) {
		mockService.EXPECT().
			UpdateProduct("prod1", gomock.Any(), actor).
			Return(model.Product{ID: "prod1", Name: "Brass lamp", SellerID: "user2"}, nil)

		w, resp := performJSON(t, router, http.MethodPut, "/api/products/prod1",
			helpers.ProductRequest{Name: "Brass lamp", EndDate: "2099-01-01"})

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "Brass lamp", resp["name"])
	})

	t.Run("delete_no_content", func(t *testing.T) {
		mockService.EXPECT().DeleteProduct("prod1", actor).Return(nil)

		w, _ := performJSON(t, router, http.MethodDelete, "/api/products/prod1", nil)

		require.Equal(t, http.StatusNoContent, w.Code)
		require.Empty(t, w.Body.Bytes())
	})

	t.Run("delete_missing_product", func(t *testing.T) {
		mockService.EXPECT().DeleteProduct("ghost", actor).Return(auctionerrors.ErrProductNotFound)

		w, resp := performJSON(t, router, http.MethodDelete, "/api/products/ghost", nil)

		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, "Product not found", resp["error"])
	})
}
