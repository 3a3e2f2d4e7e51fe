package handler

import (
	"net/http"

	"auction-house/internal/auth"
	model "auction-house/internal/models"
	product "auction-house/internal/productService"
	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

type ProductServiceInterface interface {
	ListProducts() ([]model.ProductDetail, error)
	GetProduct(productID string) (model.ProductDetail, error)
	CreateProduct(input product.ProductInput, actor auth.Identity) (model.Product, error)
	UpdateProduct(productID string, input product.ProductInput, actor auth.Identity) (model.Product, error)
	DeleteProduct(productID string, actor auth.Identity) error
}

type ProductHandler struct {
	service ProductServiceInterface
}

func NewProductHandler(service ProductServiceInterface) *ProductHandler {
	return &ProductHandler{service: service}
}

// ListProductsHandler handles GET /api/products
func (h *ProductHandler) ListProductsHandler(c *gin.Context) {
	details, err := h.service.ListProducts()
	if err != nil {
		helpers.RespondError(c, "ListProductsHandler", err, nil)
		return
	}

	resp := make([]helpers.ProductDetailResponse, 0, len(details))
	for _, d := range details {
		resp = append(resp, helpers.NewProductDetailResponse(d, false))
	}
	c.JSON(http.StatusOK, resp)
}

// GetProductHandler handles GET /api/products/:productId
func (h *ProductHandler) GetProductHandler(c *gin.Context) {
	productID := c.Param("productId")
	detail, err := h.service.GetProduct(productID)
	if err != nil {
		helpers.RespondError(c, "GetProductHandler", err, map[string]any{"product_id": productID})
		return
	}

	c.JSON(http.StatusOK, helpers.NewProductDetailResponse(detail, true))
}

// CreateProductHandler handles POST /api/products
func (h *ProductHandler) CreateProductHandler(c *gin.Context) {
	actor, ok := helpers.ActorFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	var req helpers.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateProductHandler", err)
		return
	}

	created, err := h.service.CreateProduct(productInput(req), actor)
	if err != nil {
		helpers.RespondError(c, "CreateProductHandler", err, map[string]any{"seller_id": actor.ID})
		return
	}

	c.JSON(http.StatusCreated, helpers.NewProductResponse(created))
	helpers.LogSuccess("CreateProductHandler", "product created successfully", map[string]any{
		"product_id": created.ID,
		"seller_id":  created.SellerID,
	})
}

// UpdateProductHandler handles PUT /api/products/:productId
func (h *ProductHandler) UpdateProductHandler(c *gin.Context) {
	actor, ok := helpers.ActorFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	var req helpers.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateProductHandler", err)
		return
	}

	productID := c.Param("productId")
	updated, err := h.service.UpdateProduct(productID, productInput(req), actor)
	if err != nil {
		helpers.RespondError(c, "UpdateProductHandler", err, map[string]any{
			"product_id": productID,
			"actor_id":   actor.ID,
		})
		return
	}

	c.JSON(http.StatusOK, helpers.NewProductResponse(updated))
	helpers.LogSuccess("UpdateProductHandler", "product updated successfully", map[string]any{
		"product_id": updated.ID,
		"actor_id":   actor.ID,
	})
}

// DeleteProductHandler handles DELETE /api/products/:productId
func (h *ProductHandler) DeleteProductHandler(c *gin.Context) {
	actor, ok := helpers.ActorFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	productID := c.Param("productId")
	if err := h.service.DeleteProduct(productID, actor); err != nil {
		helpers.RespondError(c, "DeleteProductHandler", err, map[string]any{
			"product_id": productID,
			"actor_id":   actor.ID,
		})
		return
	}

	c.Status(http.StatusNoContent)
	helpers.LogSuccess("DeleteProductHandler", "product deleted successfully", map[string]any{
		"product_id": productID,
		"actor_id":   actor.ID,
	})
}

// productInput converts the request DTO into the service input
func productInput(req helpers.ProductRequest) product.ProductInput {
	return product.ProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		OriginalPrice: req.OriginalPrice,
		PictureURL:    req.PictureURL,
		EndDate:       req.EndDate,
		SellerID:      req.SellerID,
	}
}
