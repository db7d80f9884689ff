package controllers

import (
	"net/http"
	"strings"

	"github.com/HITENDRAS940/E-commerce1/middleware"
	"github.com/HITENDRAS940/E-commerce1/pkg/apperrors"
	"github.com/HITENDRAS940/E-commerce1/services"
	"github.com/gin-gonic/gin"
)

// CartController exposes the cart mutation engine over HTTP.
type CartController struct {
	carts *services.CartService
}

// NewCartController creates a new CartController.
func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

// AddProductToCart handles POST /carts/products/:productId/quantity/:quantity
func (cc *CartController) AddProductToCart(c *gin.Context) {
	user, err := middleware.GetAuthUser(c)
	if err != nil {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	productID, ok := uintParam(c, "productId")
	if !ok {
		return
	}
	quantity, ok := uintParam(c, "quantity")
	if !ok {
		return
	}

	view, err := cc.carts.AddProductToCart(c.Request.Context(), user, productID, int(quantity))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// UpdateCartItem handles PUT /cart/products/:productId/quantity/:operation
// where operation is "add" or "delete" (matching the catalog UI's plus and
// minus buttons).
func (cc *CartController) UpdateCartItem(c *gin.Context) {
	user, err := middleware.GetAuthUser(c)
	if err != nil {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	productID, ok := uintParam(c, "productId")
	if !ok {
		return
	}

	delta := 1
	if strings.EqualFold(c.Param("operation"), "delete") {
		delta = -1
	}

	view, err := cc.carts.UpdateCartItemQuantity(c.Request.Context(), user, productID, delta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// RemoveProductFromCart handles DELETE /carts/:cartId/product/:productId
func (cc *CartController) RemoveProductFromCart(c *gin.Context) {
	user, err := middleware.GetAuthUser(c)
	if err != nil {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	cartID, ok := uintParam(c, "cartId")
	if !ok {
		return
	}
	productID, ok := uintParam(c, "productId")
	if !ok {
		return
	}

	message, err := cc.carts.RemoveProductFromCart(c.Request.Context(), user, cartID, productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// GetUserCart handles GET /carts/user/cart
func (cc *CartController) GetUserCart(c *gin.Context) {
	user, err := middleware.GetAuthUser(c)
	if err != nil {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	view, err := cc.carts.GetUserCart(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetAllCarts handles GET /carts (admin listing).
func (cc *CartController) GetAllCarts(c *gin.Context) {
	views, err := cc.carts.GetAllCarts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
