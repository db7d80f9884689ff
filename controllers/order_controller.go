package controllers

import (
	"net/http"

	"github.com/HITENDRAS940/E-commerce1/middleware"
	"github.com/HITENDRAS940/E-commerce1/models"
	"github.com/HITENDRAS940/E-commerce1/pkg/apperrors"
	"github.com/HITENDRAS940/E-commerce1/services"
	"github.com/gin-gonic/gin"
)

// OrderController exposes the order assembly engine over HTTP.
type OrderController struct {
	orders *services.OrderService
}

// NewOrderController creates a new OrderController.
func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// PlaceOrder handles POST /order/users/payments/:paymentMethod
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	user, err := middleware.GetAuthUser(c)
	if err != nil {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	paymentMethod := c.Param("paymentMethod")

	var req models.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": err.Error()})
		return
	}

	view, err := oc.orders.PlaceOrder(c.Request.Context(), user, req.AddressID, paymentMethod, models.PaymentGatewayDetails{
		PgName:            req.PgName,
		PgPaymentID:       req.PgPaymentID,
		PgStatus:          req.PgStatus,
		PgResponseMessage: req.PgResponseMessage,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetUserOrders handles GET /orders
func (oc *OrderController) GetUserOrders(c *gin.Context) {
	user, err := middleware.GetAuthUser(c)
	if err != nil {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	page, limit := pagination(c)
	views, total, err := oc.orders.GetUserOrders(c.Request.Context(), user, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"orders": views,
		"meta":   gin.H{"page": page, "limit": limit, "total": total},
	})
}

// GetOrderByID handles GET /orders/:orderId
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	user, err := middleware.GetAuthUser(c)
	if err != nil {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	orderID, ok := uintParam(c, "orderId")
	if !ok {
		return
	}

	view, err := oc.orders.GetOrderByID(c.Request.Context(), user, orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
