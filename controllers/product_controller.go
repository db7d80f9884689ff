package controllers

import (
	"net/http"

	"github.com/HITENDRAS940/E-commerce1/models"
	"github.com/HITENDRAS940/E-commerce1/services"
	"github.com/gin-gonic/gin"
)

// ProductController exposes catalog management over HTTP.
type ProductController struct {
	products *services.ProductService
}

// NewProductController creates a new ProductController.
func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

// AddProduct handles POST /admin/categories/:categoryId/product
func (pc *ProductController) AddProduct(c *gin.Context) {
	categoryID, ok := uintParam(c, "categoryId")
	if !ok {
		return
	}

	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": err.Error()})
		return
	}

	view, err := pc.products.AddProduct(c.Request.Context(), categoryID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetProduct handles GET /products/:productId
func (pc *ProductController) GetProduct(c *gin.Context) {
	productID, ok := uintParam(c, "productId")
	if !ok {
		return
	}

	view, err := pc.products.GetProductByID(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetProducts handles GET /products
func (pc *ProductController) GetProducts(c *gin.Context) {
	page, limit := pagination(c)

	resp, err := pc.products.GetProducts(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetProductsByCategory handles GET /categories/:categoryId/products
func (pc *ProductController) GetProductsByCategory(c *gin.Context) {
	categoryID, ok := uintParam(c, "categoryId")
	if !ok {
		return
	}
	page, limit := pagination(c)

	resp, err := pc.products.GetProductsByCategory(c.Request.Context(), categoryID, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateProduct handles PUT /admin/products/:productId
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	productID, ok := uintParam(c, "productId")
	if !ok {
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": err.Error()})
		return
	}

	view, err := pc.products.UpdateProduct(c.Request.Context(), productID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// DeleteProduct handles DELETE /admin/products/:productId
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	productID, ok := uintParam(c, "productId")
	if !ok {
		return
	}

	if err := pc.products.DeleteProduct(c.Request.Context(), productID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
