package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rhoda-NM/OneStopShop-Project/domain"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{
		DB: db,
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint64) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}

	var product domain.Product

	err := r.DB.WithContext(ctx).
		Preload("Category.Tags").
		Preload("Tags").
		Preload("Images").
		First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Product{}, errors.New("product not found")
		}
		return domain.Product{}, fmt.Errorf("failed to find product: %w", err)
	}

	return product, nil
}

// FindAll returns products with relations preloaded. A limit <= 0 returns
// the whole catalog.
func (r *ProductRepository) FindAll(ctx context.Context, limit int) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	query := r.DB.WithContext(ctx).
		Preload("Category.Tags").
		Preload("Tags").
		Preload("Images")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var products []domain.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) FindByCategoryID(ctx context.Context, categoryID uint64) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var products []domain.Product
	err := r.DB.WithContext(ctx).
		Preload("Category.Tags").
		Preload("Tags").
		Preload("Images").
		Where("category_id = ?", categoryID).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find products by category: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) FindBySellerID(ctx context.Context, sellerID uint) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var products []domain.Product
	err := r.DB.WithContext(ctx).
		Preload("Category.Tags").
		Preload("Tags").
		Preload("Images").
		Where("user_id = ?", sellerID).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find products by seller: %w", err)
	}

	return products, nil
}

// FindByNameSubstring does a case-insensitive substring match on the product
// name, the lookup the recommendation scorer uses for search events.
func (r *ProductRepository) FindByNameSubstring(ctx context.Context, name string) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var products []domain.Product
	err := r.DB.WithContext(ctx).
		Where("name ILIKE ?", "%"+name+"%").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find products by name: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) FindByIDs(ctx context.Context, ids []uint64) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(ids) == 0 {
		return []domain.Product{}, nil
	}

	var products []domain.Product
	err := r.DB.WithContext(ctx).
		Preload("Category.Tags").
		Preload("Tags").
		Preload("Images").
		Where("id IN ?", ids).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find products by ids: %w", err)
	}

	return products, nil
}

// FindRandomExcluding backs the recommendation backfill: random catalog
// products that are not already in the ranked result.
func (r *ProductRepository) FindRandomExcluding(ctx context.Context, exclude []uint64, limit int) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if limit <= 0 {
		return []domain.Product{}, nil
	}

	query := r.DB.WithContext(ctx).
		Preload("Category.Tags").
		Preload("Tags").
		Preload("Images")
	if len(exclude) > 0 {
		query = query.Where("id NOT IN ?", exclude)
	}

	var products []domain.Product
	err := query.Order("RANDOM()").Limit(limit).Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find backfill products: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) SearchCatalog(ctx context.Context, term string) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	pattern := "%" + term + "%"

	var products []domain.Product
	err := r.DB.WithContext(ctx).
		Preload("Category.Tags").
		Preload("Tags").
		Preload("Images").
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Where("products.name ILIKE ? OR products.description ILIKE ? OR categories.name ILIKE ?", pattern, pattern, pattern).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	var existingProduct domain.Product
	if err := r.DB.WithContext(ctx).First(&existingProduct, product.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("product not found")
		}
		return fmt.Errorf("failed to find product: %w", err)
	}

	updateData := map[string]interface{}{
		"name":        product.Name,
		"category_id": product.CategoryID,
		"image_url":   product.ImageURL,
		"price":       product.Price,
		"description": product.Description,
		"stock":       product.Stock,
	}

	result := r.DB.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", product.ID).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("product not found or already deleted")
	}

	return nil
}

func (r *ProductRepository) UpdateStock(ctx context.Context, id uint64, stock int) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", id).Update("stock", stock)
	if result.Error != nil {
		return fmt.Errorf("failed to update stock: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("product not found or already deleted")
	}

	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("product not found or already deleted")
	}

	return nil
}
