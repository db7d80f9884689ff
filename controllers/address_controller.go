package controllers

import (
	"net/http"

	"github.com/HITENDRAS940/E-commerce1/middleware"
	"github.com/HITENDRAS940/E-commerce1/models"
	"github.com/HITENDRAS940/E-commerce1/pkg/apperrors"
	"github.com/HITENDRAS940/E-commerce1/services"
	"github.com/gin-gonic/gin"
)

// AddressController exposes address management over HTTP.
type AddressController struct {
	addresses *services.AddressService
}

// NewAddressController creates a new AddressController.
func NewAddressController(addresses *services.AddressService) *AddressController {
	return &AddressController{addresses: addresses}
}

// CreateAddress handles POST /addresses
func (ac *AddressController) CreateAddress(c *gin.Context) {
	user, err := middleware.GetAuthUser(c)
	if err != nil {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	var req models.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": http.StatusBadRequest, "message": err.Error()})
		return
	}

	address, err := ac.addresses.CreateAddress(c.Request.Context(), user, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, address)
}

// GetAddress handles GET /addresses/:addressId
func (ac *AddressController) GetAddress(c *gin.Context) {
	user, err := middleware.GetAuthUser(c)
	if err != nil {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	addressID, ok := uintParam(c, "addressId")
	if !ok {
		return
	}

	address, err := ac.addresses.GetAddressByID(c.Request.Context(), user, addressID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, address)
}

// GetUserAddresses handles GET /addresses
func (ac *AddressController) GetUserAddresses(c *gin.Context) {
	user, err := middleware.GetAuthUser(c)
	if err != nil {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	addresses, err := ac.addresses.GetUserAddresses(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, addresses)
}

// DeleteAddress handles DELETE /addresses/:addressId
func (ac *AddressController) DeleteAddress(c *gin.Context) {
	user, err := middleware.GetAuthUser(c)
	if err != nil {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	addressID, ok := uintParam(c, "addressId")
	if !ok {
		return
	}

	if err := ac.addresses.DeleteAddress(c.Request.Context(), user, addressID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
}
