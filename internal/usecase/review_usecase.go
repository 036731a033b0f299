package usecase

import (
	"context"

	"github.com/DRSN-tech/petstore-backend/internal/domain"
	"github.com/DRSN-tech/petstore-backend/pkg/e"
	"github.com/DRSN-tech/petstore-backend/pkg/logger"
)

// ReviewUseCase реализует отзывы о товарах.
type ReviewUseCase struct {
	reviewRepo  ReviewRepository
	productRepo ProductRepository
	logger      logger.Logger
}

func NewReviewUC(reviewRepo ReviewRepository, productRepo ProductRepository, logger logger.Logger) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// AddReview добавляет отзыв; один пользователь может оставить один отзыв на товар.
func (r *ReviewUseCase) AddReview(ctx context.Context, req *AddReviewReq) (*domain.Review, error) {
	const op = "ReviewUseCase.AddReview"

	if req.Rating < 1 || req.Rating > 5 {
		return nil, e.Wrap(op, e.ErrInvalidRating)
	}

	if _, err := r.productRepo.GetByID(ctx, req.ProductID); err != nil {
		return nil, e.Wrap(op, err)
	}

	review, err := r.reviewRepo.Create(ctx, domain.NewReview(req.ProductID, req.UserID, req.Rating, req.Title, req.Comment))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return review, nil
}

// ListByProduct возвращает отзывы о товаре.
func (r *ReviewUseCase) ListByProduct(ctx context.Context, productID int64) ([]domain.Review, error) {
	const op = "ReviewUseCase.ListByProduct"

	reviews, err := r.reviewRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return reviews, nil
}
