package repository

import (
	"context"
	"errors"

	"github.com/HITENDRAS940/E-commerce1/models"
	"github.com/HITENDRAS940/E-commerce1/pkg/apperrors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository defines the interface for cart and cart-item data access.
type CartRepository interface {
	FindByUserID(ctx context.Context, userID uint) (*models.Cart, error)
	// FindByUserIDForUpdate locks the cart row for the enclosing transaction.
	FindByUserIDForUpdate(ctx context.Context, userID uint) (*models.Cart, error)
	FindByID(ctx context.Context, id uint) (*models.Cart, error)
	// FindByIDForUpdate locks the cart row for the enclosing transaction.
	FindByIDForUpdate(ctx context.Context, id uint) (*models.Cart, error)
	FindAll(ctx context.Context) ([]models.Cart, error)
	Create(ctx context.Context, cart *models.Cart) error
	UpdateTotalPrice(ctx context.Context, cartID uint, total float64) error

	FindItem(ctx context.Context, cartID, productID uint) (*models.CartItem, error)
	FindCartIDsByProduct(ctx context.Context, productID uint) ([]uint, error)
	CreateItem(ctx context.Context, item *models.CartItem) error
	SaveItem(ctx context.Context, item *models.CartItem) error
	DeleteItem(ctx context.Context, cartID, productID uint) error
	DeleteAllItems(ctx context.Context, cartID uint) error
}

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository.
func NewGormCartRepository(db *gorm.DB) CartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.id") }).
		Preload("Items.Product")
}

func (r *GormCartRepository) FindByUserID(ctx context.Context, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.preloaded(ctx).Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Cart", "userId", userID)
		}
		return nil, err
	}
	return &cart, nil
}

// loadItems fetches a locked cart's line items separately; preloads under a
// locking clause would try to lock the joined rows too.
func (r *GormCartRepository) loadItems(ctx context.Context, cart *models.Cart) error {
	return r.db.WithContext(ctx).
		Preload("Product").
		Where("cart_id = ?", cart.ID).
		Order("cart_items.id").
		Find(&cart.Items).Error
}

func (r *GormCartRepository) FindByUserIDForUpdate(ctx context.Context, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Cart", "userId", userID)
		}
		return nil, translateLockError(err)
	}
	if err := r.loadItems(ctx, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *GormCartRepository) FindByIDForUpdate(ctx context.Context, id uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&cart, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Cart", "cartId", id)
		}
		return nil, translateLockError(err)
	}
	if err := r.loadItems(ctx, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *GormCartRepository) FindByID(ctx context.Context, id uint) (*models.Cart, error) {
	var cart models.Cart
	if err := r.preloaded(ctx).First(&cart, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Cart", "cartId", id)
		}
		return nil, err
	}
	return &cart, nil
}

func (r *GormCartRepository) FindAll(ctx context.Context) ([]models.Cart, error) {
	var carts []models.Cart
	if err := r.preloaded(ctx).Find(&carts).Error; err != nil {
		return nil, err
	}
	return carts, nil
}

func (r *GormCartRepository) Create(ctx context.Context, cart *models.Cart) error {
	return r.db.WithContext(ctx).Create(cart).Error
}

func (r *GormCartRepository) UpdateTotalPrice(ctx context.Context, cartID uint, total float64) error {
	return translateLockError(r.db.WithContext(ctx).
		Model(&models.Cart{}).
		Where("id = ?", cartID).
		Update("total_price", total).
		Error)
}

func (r *GormCartRepository) FindItem(ctx context.Context, cartID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *GormCartRepository) FindCartIDsByProduct(ctx context.Context, productID uint) ([]uint, error) {
	var cartIDs []uint
	err := r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("product_id = ?", productID).
		Pluck("cart_id", &cartIDs).Error
	if err != nil {
		return nil, err
	}
	return cartIDs, nil
}

func (r *GormCartRepository) CreateItem(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *GormCartRepository) SaveItem(ctx context.Context, item *models.CartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *GormCartRepository) DeleteItem(ctx context.Context, cartID, productID uint) error {
	result := r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("CartItem", "productId", productID)
	}
	return nil
}

func (r *GormCartRepository) DeleteAllItems(ctx context.Context, cartID uint) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&models.CartItem{}).
		Error
}
