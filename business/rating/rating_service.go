package rating

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rhoda-NM/OneStopShop-Project/domain"
	"github.com/Rhoda-NM/OneStopShop-Project/pkg/logger"
)

// RatingRepository contract interface
type RatingRepository interface {
	Create(ctx context.Context, rating *domain.Rating) error
	FindByID(ctx context.Context, id uint64) (domain.Rating, error)
	FindAll(ctx context.Context) ([]domain.Rating, error)
	FindByProductID(ctx context.Context, productID uint64) ([]domain.Rating, error)
	Update(ctx context.Context, rating *domain.Rating) error
	Delete(ctx context.Context, id uint64) error
}

// ProductRepository contract interface
type ProductRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
}

type ratingService struct {
	ratingRepo  RatingRepository
	productRepo ProductRepository
}

func NewRatingService(ratingRepo RatingRepository, productRepo ProductRepository) *ratingService {
	return &ratingService{
		ratingRepo:  ratingRepo,
		productRepo: productRepo,
	}
}

func (s *ratingService) GetAllRatings(ctx context.Context) ([]domain.RatingWithUser, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	ratings, err := s.ratingRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to load ratings", err)
		return nil, err
	}

	return withUsernames(ratings), nil
}

func (s *ratingService) GetProductRatings(ctx context.Context, productID uint64) ([]domain.RatingWithUser, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	ratings, err := s.ratingRepo.FindByProductID(ctx, productID)
	if err != nil {
		logger.Error("Failed to load ratings", err)
		return nil, err
	}

	return withUsernames(ratings), nil
}

func withUsernames(ratings []domain.Rating) []domain.RatingWithUser {
	result := make([]domain.RatingWithUser, 0, len(ratings))
	for _, rating := range ratings {
		result = append(result, domain.RatingWithUser{
			ID:        rating.ID,
			ProductID: rating.ProductID,
			UserID:    rating.UserID,
			Username:  rating.User.Username,
			Rating:    rating.Rating,
			Comment:   rating.Comment,
			CreatedAt: rating.CreatedAt,
		})
	}

	return result
}

func (s *ratingService) CreateRating(ctx context.Context, rating *domain.Rating) (*domain.Rating, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if rating.Rating < 1 || rating.Rating > 5 {
		logger.Error("Rating out of range", rating.Rating)
		return nil, errors.New("rating must be between 1 and 5")
	}

	if _, err := s.productRepo.FindByID(ctx, rating.ProductID); err != nil {
		logger.Error("Product not found for rating", err)
		return nil, errors.New("product not found")
	}

	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		logger.Error("Failed to create rating", err)
		return nil, err
	}

	return rating, nil
}

// UpdateRating lets a user edit their own rating only.
func (s *ratingService) UpdateRating(ctx context.Context, userID uint, rating *domain.Rating) (*domain.Rating, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if rating.Rating < 1 || rating.Rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}

	existing, err := s.ratingRepo.FindByID(ctx, rating.ID)
	if err != nil {
		logger.Error("Rating not found for update", err)
		return nil, err
	}

	if existing.UserID != userID {
		logger.Error("Rating update by non-owner", userID)
		return nil, errors.New("unauthorized")
	}

	if err := s.ratingRepo.Update(ctx, rating); err != nil {
		logger.Error("Failed to update rating", err)
		return nil, err
	}

	updated, err := s.ratingRepo.FindByID(ctx, rating.ID)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *ratingService) DeleteRating(ctx context.Context, userID uint, actorRole string, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	existing, err := s.ratingRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Rating not found for deletion", err)
		return err
	}

	if existing.UserID != userID && actorRole != domain.RoleAdmin {
		logger.Error("Rating delete by non-owner", userID)
		return errors.New("unauthorized")
	}

	if err := s.ratingRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete rating", err)
		return err
	}

	return nil
}
