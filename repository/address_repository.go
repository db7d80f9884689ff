package repository

import (
	"context"
	"errors"

	"github.com/HITENDRAS940/E-commerce1/models"
	"github.com/HITENDRAS940/E-commerce1/pkg/apperrors"
	"gorm.io/gorm"
)

// AddressRepository defines the interface for address data access.
type AddressRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Address, error)
	FindByUserID(ctx context.Context, userID uint) ([]models.Address, error)
	Create(ctx context.Context, address *models.Address) error
	Delete(ctx context.Context, id uint) error
}

// GormAddressRepository implements AddressRepository using GORM.
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GormAddressRepository.
func NewGormAddressRepository(db *gorm.DB) AddressRepository {
	return &GormAddressRepository{db: db}
}

func (r *GormAddressRepository) FindByID(ctx context.Context, id uint) (*models.Address, error) {
	var address models.Address
	if err := r.db.WithContext(ctx).First(&address, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Address", "addressId", id)
		}
		return nil, err
	}
	return &address, nil
}

func (r *GormAddressRepository) FindByUserID(ctx context.Context, userID uint) ([]models.Address, error) {
	var addresses []models.Address
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *GormAddressRepository) Create(ctx context.Context, address *models.Address) error {
	return r.db.WithContext(ctx).Create(address).Error
}

func (r *GormAddressRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Address{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("Address", "addressId", id)
	}
	return nil
}
