package controllers

import (
	"net/http"

	"github.com/HITENDRAS940/E-commerce1/services"
	"github.com/gin-gonic/gin"
)

// CategoryController exposes category management over HTTP.
type CategoryController struct {
	categories *services.CategoryService
}

// NewCategoryController creates a new CategoryController.
func NewCategoryController(categories *services.CategoryService) *CategoryController {
	return &CategoryController{categories: categories}
}

type createCategoryRequest struct {
	Name string `json:"category_name" binding:"required,min=2,max=100"`
}

// CreateCategory handles POST /admin/categories
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": err.Error()})
		return
	}

	category, err := cc.categories.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// GetCategories handles GET /categories
func (cc *CategoryController) GetCategories(c *gin.Context) {
	categories, err := cc.categories.GetCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// DeleteCategory handles DELETE /admin/categories/:categoryId
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	categoryID, ok := uintParam(c, "categoryId")
	if !ok {
		return
	}

	if err := cc.categories.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
