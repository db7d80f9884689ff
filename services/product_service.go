package services

import (
	"context"

	"github.com/HITENDRAS940/E-commerce1/cache"
	"github.com/HITENDRAS940/E-commerce1/models"
	"github.com/HITENDRAS940/E-commerce1/pkg/apperrors"
	"github.com/HITENDRAS940/E-commerce1/repository"
	"go.uber.org/zap"
)

// PageMeta describes one page of a catalog listing.
type PageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
	HasMore    bool  `json:"has_more"`
}

// ProductListResponse is one page of product views.
type ProductListResponse struct {
	Products []models.ProductView `json:"products"`
	Meta     PageMeta             `json:"meta"`
}

// ProductService manages the catalog. Price and discount changes propagate
// to existing cart line items so cart totals stay consistent with the
// snapshot invariant.
type ProductService struct {
	txm        repository.TxManager
	products   repository.ProductRepository
	categories repository.CategoryRepository
	cache      *cache.ProductCache
	logger     *zap.Logger
}

// NewProductService creates a new ProductService.
func NewProductService(
	txm repository.TxManager,
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	productCache *cache.ProductCache,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		txm:        txm,
		products:   products,
		categories: categories,
		cache:      productCache,
		logger:     logger,
	}
}

// AddProduct creates a catalog entry under a category. The special price is
// derived from price and discount on save.
func (s *ProductService) AddProduct(ctx context.Context, categoryID uint, req *models.CreateProductRequest) (*models.ProductView, error) {
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Image:       "default.png",
		Quantity:    req.Quantity,
		Price:       req.Price,
		Discount:    req.Discount,
		CategoryID:  categoryID,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("Product added",
		zap.Uint("product_id", product.ID),
		zap.String("name", product.Name),
		zap.Float64("special_price", product.SpecialPrice),
	)

	view := product.View()
	return &view, nil
}

// GetProductByID returns a product view, served from cache when possible.
func (s *ProductService) GetProductByID(ctx context.Context, productID uint) (*models.ProductView, error) {
	if view, ok := s.cache.Get(ctx, productID); ok {
		return view, nil
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	view := product.View()
	s.cache.Set(ctx, &view)
	return &view, nil
}

// GetProducts returns one page of the catalog.
func (s *ProductService) GetProducts(ctx context.Context, page, limit int) (*ProductListResponse, error) {
	products, total, err := s.products.FindAll(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, apperrors.NotFound("Products", "page", page)
	}
	return buildListResponse(products, page, limit, total), nil
}

// GetProductsByCategory returns one page of a category's products.
func (s *ProductService) GetProductsByCategory(ctx context.Context, categoryID uint, page, limit int) (*ProductListResponse, error) {
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}

	products, total, err := s.products.FindByCategory(ctx, categoryID, page, limit)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, apperrors.NotFound("Products", "categoryId", categoryID)
	}
	return buildListResponse(products, page, limit, total), nil
}

// UpdateProduct applies a partial update. When the price or discount
// changes, every cart holding this product is re-priced in the same
// transaction so no cart total drifts from its line-item snapshots.
func (s *ProductService) UpdateProduct(ctx context.Context, productID uint, req *models.UpdateProductRequest) (*models.ProductView, error) {
	var view models.ProductView
	err := s.txm.Do(ctx, func(r *repository.Repositories) error {
		product, err := r.Products.FindByIDForUpdate(ctx, productID)
		if err != nil {
			return err
		}

		priceChanged := false
		if req.Name != nil {
			product.Name = *req.Name
		}
		if req.Description != nil {
			product.Description = *req.Description
		}
		if req.Quantity != nil {
			product.Quantity = *req.Quantity
		}
		if req.Price != nil {
			product.Price = *req.Price
			priceChanged = true
		}
		if req.Discount != nil {
			product.Discount = *req.Discount
			priceChanged = true
		}

		if err := r.Products.Save(ctx, product); err != nil {
			return err
		}

		if priceChanged {
			cartIDs, err := r.Carts.FindCartIDsByProduct(ctx, productID)
			if err != nil {
				return err
			}
			for _, cartID := range cartIDs {
				if err := resyncCartItemPrice(ctx, r, cartID, productID); err != nil {
					return err
				}
			}
		}

		view = product.View()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, productID)
	s.logger.Info("Product updated", zap.Uint("product_id", productID))
	return &view, nil
}

// DeleteProduct removes a product from the catalog. Line items referencing
// it are deleted first in the same transaction, with each cart's total
// reduced by the removed contribution, so the product row never hits a live
// foreign key and no cart total drifts.
func (s *ProductService) DeleteProduct(ctx context.Context, productID uint) error {
	err := s.txm.Do(ctx, func(r *repository.Repositories) error {
		if _, err := r.Products.FindByIDForUpdate(ctx, productID); err != nil {
			return err
		}

		cartIDs, err := r.Carts.FindCartIDsByProduct(ctx, productID)
		if err != nil {
			return err
		}
		for _, cartID := range cartIDs {
			cart, err := r.Carts.FindByIDForUpdate(ctx, cartID)
			if err != nil {
				return err
			}
			item, err := r.Carts.FindItem(ctx, cartID, productID)
			if err != nil {
				return err
			}
			if item == nil {
				continue
			}
			if err := r.Carts.DeleteItem(ctx, cartID, productID); err != nil {
				return err
			}
			if err := r.Carts.UpdateTotalPrice(ctx, cartID, cart.TotalPrice-item.Contribution()); err != nil {
				return err
			}
		}

		return r.Products.Delete(ctx, productID)
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(ctx, productID)
	s.logger.Info("Product deleted", zap.Uint("product_id", productID))
	return nil
}

func buildListResponse(products []models.Product, page, limit int, total int64) *ProductListResponse {
	views := make([]models.ProductView, 0, len(products))
	for i := range products {
		views = append(views, products[i].View())
	}
	return &ProductListResponse{
		Products: views,
		Meta: PageMeta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages(total, limit),
			HasMore:    total > int64(page*limit),
		},
	}
}

func totalPages(total int64, limit int) int64 {
	if limit == 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}
