package controllers

import (
	"strconv"

	"github.com/HITENDRAS940/E-commerce1/pkg/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError hands a service error to the error middleware, which renders
// it with its embedded HTTP status.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// uintParam parses a positive integer path parameter.
func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		respondError(c, apperrors.Validation("Invalid "+name))
		return 0, false
	}
	return uint(v), true
}

// pagination reads page/limit query parameters with sane bounds.
func pagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
