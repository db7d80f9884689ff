package services

import (
	"context"

	"github.com/HITENDRAS940/E-commerce1/models"
	"github.com/HITENDRAS940/E-commerce1/pkg/apperrors"
	"github.com/HITENDRAS940/E-commerce1/repository"
	"go.uber.org/zap"
)

// AddressService manages a user's shipping addresses.
type AddressService struct {
	addresses repository.AddressRepository
	logger    *zap.Logger
}

// NewAddressService creates a new AddressService.
func NewAddressService(addresses repository.AddressRepository, logger *zap.Logger) *AddressService {
	return &AddressService{addresses: addresses, logger: logger}
}

// CreateAddress stores a new address for the acting user.
func (s *AddressService) CreateAddress(ctx context.Context, user models.AuthUser, req *models.CreateAddressRequest) (*models.Address, error) {
	address := &models.Address{
		UserID:       user.ID,
		Street:       req.Street,
		BuildingName: req.BuildingName,
		City:         req.City,
		State:        req.State,
		Country:      req.Country,
		Pincode:      req.Pincode,
	}
	if err := s.addresses.Create(ctx, address); err != nil {
		return nil, err
	}
	s.logger.Info("Address created", zap.Uint("address_id", address.ID), zap.Uint("user_id", user.ID))
	return address, nil
}

// GetAddressByID returns one of the acting user's addresses.
func (s *AddressService) GetAddressByID(ctx context.Context, user models.AuthUser, id uint) (*models.Address, error) {
	address, err := s.addresses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if address.UserID != user.ID {
		return nil, apperrors.NotFound("Address", "addressId", id)
	}
	return address, nil
}

// GetUserAddresses returns all of the acting user's addresses.
func (s *AddressService) GetUserAddresses(ctx context.Context, user models.AuthUser) ([]models.Address, error) {
	return s.addresses.FindByUserID(ctx, user.ID)
}

// DeleteAddress removes one of the acting user's addresses.
func (s *AddressService) DeleteAddress(ctx context.Context, user models.AuthUser, id uint) error {
	address, err := s.addresses.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if address.UserID != user.ID {
		return apperrors.NotFound("Address", "addressId", id)
	}
	if err := s.addresses.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Address deleted", zap.Uint("address_id", id), zap.Uint("user_id", user.ID))
	return nil
}
