package server

import (
	"auction-house/internal/auth"
	bid "auction-house/internal/bidService"
	product "auction-house/internal/productService"
	user "auction-house/internal/userService"
	handler "auction-house/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(
	productService *product.ProductService,
	bidService *bid.BidService,
	userService *user.UserService,
	tokens *auth.TokenService,
) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	productHandler := handler.NewProductHandler(productService)
	bidHandler := handler.NewBidHandler(bidService)
	userHandler := handler.NewUserHandler(userService)

	authRequired := AuthMiddleware(tokens)

	api := router.Group("/api")
	{
		api.GET("/products", productHandler.ListProductsHandler)
		api.GET("/products/:productId", productHandler.GetProductHandler)
		api.POST("/products", authRequired, productHandler.CreateProductHandler)
		api.PUT("/products/:productId", authRequired, productHandler.UpdateProductHandler)
		api.DELETE("/products/:productId", authRequired, productHandler.DeleteProductHandler)

		api.POST("/products/:productId/bids", authRequired, bidHandler.PlaceBidHandler)
		api.DELETE("/bids/:bidId", authRequired, bidHandler.DeleteBidHandler)

		api.GET("/users/:userId", userHandler.GetUserHandler)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", userHandler.RegisterHandler)
			authGroup.POST("/login", userHandler.LoginHandler)
		}
	}

	return router
}
