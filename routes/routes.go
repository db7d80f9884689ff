package routes

import (
	"github.com/HITENDRAS940/E-commerce1/controllers"
	"github.com/HITENDRAS940/E-commerce1/middleware"
	"github.com/gin-gonic/gin"
)

// Register wires every controller into the gin engine.
func Register(
	r *gin.Engine,
	authMiddleware gin.HandlerFunc,
	cart *controllers.CartController,
	order *controllers.OrderController,
	product *controllers.ProductController,
	category *controllers.CategoryController,
	address *controllers.AddressController,
) {
	api := r.Group("/api")

	// Public catalog browsing
	api.GET("/products", product.GetProducts)
	api.GET("/products/:productId", product.GetProduct)
	api.GET("/categories", category.GetCategories)
	api.GET("/categories/:categoryId/products", product.GetProductsByCategory)

	// Authenticated cart and checkout
	auth := api.Group("")
	auth.Use(authMiddleware)

	auth.POST("/carts/products/:productId/quantity/:quantity", cart.AddProductToCart)
	auth.PUT("/cart/products/:productId/quantity/:operation", cart.UpdateCartItem)
	auth.DELETE("/carts/:cartId/product/:productId", cart.RemoveProductFromCart)
	auth.GET("/carts/user/cart", cart.GetUserCart)

	auth.POST("/order/users/payments/:paymentMethod", order.PlaceOrder)
	auth.GET("/orders", order.GetUserOrders)
	auth.GET("/orders/:orderId", order.GetOrderByID)

	auth.POST("/addresses", address.CreateAddress)
	auth.GET("/addresses", address.GetUserAddresses)
	auth.GET("/addresses/:addressId", address.GetAddress)
	auth.DELETE("/addresses/:addressId", address.DeleteAddress)

	// Admin catalog management
	admin := api.Group("/admin")
	admin.Use(authMiddleware, middleware.AdminOnly())

	admin.GET("/carts", cart.GetAllCarts)
	admin.POST("/categories", category.CreateCategory)
	admin.DELETE("/categories/:categoryId", category.DeleteCategory)
	admin.POST("/categories/:categoryId/product", product.AddProduct)
	admin.PUT("/products/:productId", product.UpdateProduct)
	admin.DELETE("/products/:productId", product.DeleteProduct)
}
