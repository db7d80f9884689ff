package services

import (
	"context"
	"fmt"

	"github.com/HITENDRAS940/E-commerce1/models"
	"github.com/HITENDRAS940/E-commerce1/pkg/apperrors"
	"github.com/HITENDRAS940/E-commerce1/repository"
	"go.uber.org/zap"
)

// CartService keeps cart totals and line-item snapshots consistent with
// inventory at the time of each mutation. Every mutating call runs as one
// transaction: all of its writes commit together or not at all.
type CartService struct {
	txm    repository.TxManager
	carts  repository.CartRepository
	logger *zap.Logger
}

// NewCartService creates a new CartService.
func NewCartService(txm repository.TxManager, carts repository.CartRepository, logger *zap.Logger) *CartService {
	return &CartService{txm: txm, carts: carts, logger: logger}
}

// findOrCreateCart resolves the acting user's cart, creating an empty one on
// first use. The cart row is locked so the caller's total update cannot race
// a concurrent mutation of the same cart.
func findOrCreateCart(ctx context.Context, r *repository.Repositories, user models.AuthUser) (*models.Cart, error) {
	cart, err := r.Carts.FindByUserIDForUpdate(ctx, user.ID)
	if err == nil {
		return cart, nil
	}
	if !apperrors.IsNotFound(err) {
		return nil, err
	}

	cart = &models.Cart{UserID: user.ID, Email: user.Email, TotalPrice: 0}
	if err := r.Carts.Create(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// AddProductToCart adds a new line item to the user's cart, snapshotting the
// product's current special price and discount. Stock is checked but not
// reserved; reservation happens at checkout.
func (s *CartService) AddProductToCart(ctx context.Context, user models.AuthUser, productID uint, quantity int) (*models.CartView, error) {
	if quantity <= 0 {
		return nil, apperrors.Validation("Quantity must be greater than zero")
	}

	var view *models.CartView
	err := s.txm.Do(ctx, func(r *repository.Repositories) error {
		cart, err := findOrCreateCart(ctx, r, user)
		if err != nil {
			return err
		}

		product, err := r.Products.FindByID(ctx, productID)
		if err != nil {
			return err
		}

		existing, err := r.Carts.FindItem(ctx, cart.ID, productID)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperrors.Conflict(fmt.Sprintf("%s already exists in the cart", product.Name))
		}

		if product.Quantity == 0 {
			return apperrors.InvalidState(fmt.Sprintf("%s is not available", product.Name))
		}
		if product.Quantity < quantity {
			return apperrors.InvalidState(fmt.Sprintf(
				"Please make an order of %s less or equal to quantity: %d", product.Name, product.Quantity))
		}

		item := &models.CartItem{
			CartID:       cart.ID,
			ProductID:    product.ID,
			Quantity:     quantity,
			ProductPrice: product.SpecialPrice,
			Discount:     product.Discount,
		}
		if err := r.Carts.CreateItem(ctx, item); err != nil {
			return err
		}

		total := cart.TotalPrice + product.SpecialPrice*float64(quantity)
		if err := r.Carts.UpdateTotalPrice(ctx, cart.ID, total); err != nil {
			return err
		}

		updated, err := r.Carts.FindByID(ctx, cart.ID)
		if err != nil {
			return err
		}
		view = updated.View()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Product added to cart",
		zap.Uint("user_id", user.ID),
		zap.Uint("product_id", productID),
		zap.Int("quantity", quantity),
	)
	return view, nil
}

// UpdateCartItemQuantity adjusts a line item by a signed delta. A resulting
// quantity of zero or less removes the line item; otherwise the price and
// discount snapshots are refreshed from the current product state and the
// cart total is adjusted to match.
func (s *CartService) UpdateCartItemQuantity(ctx context.Context, user models.AuthUser, productID uint, delta int) (*models.CartView, error) {
	var view *models.CartView
	err := s.txm.Do(ctx, func(r *repository.Repositories) error {
		cart, err := r.Carts.FindByUserIDForUpdate(ctx, user.ID)
		if err != nil {
			return err
		}

		product, err := r.Products.FindByID(ctx, productID)
		if err != nil {
			return err
		}

		if product.Quantity == 0 {
			return apperrors.InvalidState(fmt.Sprintf("%s is not available", product.Name))
		}
		if product.Quantity < delta {
			return apperrors.InvalidState(fmt.Sprintf(
				"Please make an order of %s less or equal to quantity: %d", product.Name, product.Quantity))
		}

		item, err := r.Carts.FindItem(ctx, cart.ID, productID)
		if err != nil {
			return err
		}
		if item == nil {
			return apperrors.NotFound("CartItem", "productId", productID)
		}

		newQuantity := item.Quantity + delta
		if newQuantity <= 0 {
			// equivalent to removal
			total := cart.TotalPrice - item.Contribution()
			if err := r.Carts.DeleteItem(ctx, cart.ID, productID); err != nil {
				return err
			}
			if err := r.Carts.UpdateTotalPrice(ctx, cart.ID, total); err != nil {
				return err
			}
		} else {
			// Refresh the full contribution rather than only price*delta so
			// the total stays equal to the sum of item contributions even
			// when the product was re-priced since the item was added.
			oldContribution := item.Contribution()
			item.Quantity = newQuantity
			item.ProductPrice = product.SpecialPrice
			item.Discount = product.Discount
			if err := r.Carts.SaveItem(ctx, item); err != nil {
				return err
			}
			total := cart.TotalPrice - oldContribution + item.Contribution()
			if err := r.Carts.UpdateTotalPrice(ctx, cart.ID, total); err != nil {
				return err
			}
		}

		updated, err := r.Carts.FindByID(ctx, cart.ID)
		if err != nil {
			return err
		}
		view = updated.View()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cart item quantity updated",
		zap.Uint("user_id", user.ID),
		zap.Uint("product_id", productID),
		zap.Int("delta", delta),
	)
	return view, nil
}

// RemoveProductFromCart deletes a line item and deducts its contribution
// from the cart total. Returns a human-readable confirmation.
func (s *CartService) RemoveProductFromCart(ctx context.Context, user models.AuthUser, cartID, productID uint) (string, error) {
	var confirmation string
	err := s.txm.Do(ctx, func(r *repository.Repositories) error {
		cart, err := r.Carts.FindByIDForUpdate(ctx, cartID)
		if err != nil {
			return err
		}
		if cart.UserID != user.ID {
			return apperrors.NotFound("Cart", "cartId", cartID)
		}

		product, err := r.Products.FindByID(ctx, productID)
		if err != nil {
			return err
		}

		item, err := r.Carts.FindItem(ctx, cartID, productID)
		if err != nil {
			return err
		}
		if item == nil {
			return apperrors.NotFound("CartItem", "productId", productID)
		}

		total := cart.TotalPrice - item.Contribution()
		if err := r.Carts.DeleteItem(ctx, cartID, productID); err != nil {
			return err
		}
		if err := r.Carts.UpdateTotalPrice(ctx, cartID, total); err != nil {
			return err
		}

		confirmation = fmt.Sprintf("%s removed from cart", product.Name)
		return nil
	})
	if err != nil {
		return "", err
	}

	s.logger.Info("Product removed from cart",
		zap.Uint("cart_id", cartID),
		zap.Uint("product_id", productID),
	)
	return confirmation, nil
}

// ResyncProductPrice re-prices a single line item to the product's current
// special price without changing its quantity. Used when catalog pricing
// changes underneath an existing cart.
func (s *CartService) ResyncProductPrice(ctx context.Context, cartID, productID uint) error {
	return s.txm.Do(ctx, func(r *repository.Repositories) error {
		return resyncCartItemPrice(ctx, r, cartID, productID)
	})
}

// GetUserCart returns a snapshot of the acting user's cart.
func (s *CartService) GetUserCart(ctx context.Context, user models.AuthUser) (*models.CartView, error) {
	cart, err := s.carts.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return cart.View(), nil
}

// GetAllCarts returns snapshots of every cart (admin listing).
func (s *CartService) GetAllCarts(ctx context.Context) ([]*models.CartView, error) {
	carts, err := s.carts.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(carts) == 0 {
		return nil, apperrors.NotFound("Carts", "count", 0)
	}

	views := make([]*models.CartView, 0, len(carts))
	for i := range carts {
		views = append(views, carts[i].View())
	}
	return views, nil
}
