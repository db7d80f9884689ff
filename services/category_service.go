package services

import (
	"context"

	"github.com/HITENDRAS940/E-commerce1/models"
	"github.com/HITENDRAS940/E-commerce1/repository"
	"go.uber.org/zap"
)

// CategoryService manages catalog categories.
type CategoryService struct {
	categories repository.CategoryRepository
	logger     *zap.Logger
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categories repository.CategoryRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{categories: categories, logger: logger}
}

// CreateCategory adds a new category.
func (s *CategoryService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	category := &models.Category{Name: name}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	s.logger.Info("Category created", zap.Uint("category_id", category.ID), zap.String("name", name))
	return category, nil
}

// GetCategories returns all categories.
func (s *CategoryService) GetCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.FindAll(ctx)
}

// DeleteCategory removes a category.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Category deleted", zap.Uint("category_id", id))
	return nil
}
