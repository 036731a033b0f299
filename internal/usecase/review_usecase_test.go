package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/petstore-backend/internal/domain"
	"github.com/DRSN-tech/petstore-backend/pkg/e"
	"github.com/DRSN-tech/petstore-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewRepo struct {
	nextID  int64
	reviews []domain.Review
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	for _, existing := range f.reviews {
		if existing.ProductID == review.ProductID &&
			existing.UserID != nil && review.UserID != nil && *existing.UserID == *review.UserID {
			return nil, e.ErrDuplicateReview
		}
	}

	f.nextID++
	review.ID = f.nextID
	f.reviews = append(f.reviews, *review)
	return review, nil
}

func (f *fakeReviewRepo) ListByProduct(ctx context.Context, productID int64) ([]domain.Review, error) {
	var out []domain.Review
	for _, review := range f.reviews {
		if review.ProductID == productID {
			out = append(out, review)
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	products map[int64]*domain.Product
}

func (f *fakeProductRepo) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	f.products[p.ID] = p
	return p, nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) GetProductsInfo(ctx context.Context, ids []int64) ([]ProductInfo, error) {
	return nil, nil
}

func (f *fakeProductRepo) List(ctx context.Context, limit, offset int64) ([]ProductInfo, error) {
	return nil, nil
}

func (f *fakeProductRepo) LinkCategory(ctx context.Context, productID, categoryID int64) error {
	return nil
}

func (f *fakeProductRepo) AddImage(ctx context.Context, image *domain.ProductImage) error {
	return nil
}

func newReviewFixture() *ReviewUseCase {
	products := &fakeProductRepo{products: map[int64]*domain.Product{
		1: {ID: 1, SKU: "DOG-FOOD-1", Name: "Dog food"},
	}}
	return NewReviewUC(&fakeReviewRepo{}, products, logger.NewSlogLogger())
}

func TestAddReviewRatingBounds(t *testing.T) {
	uc := newReviewFixture()

	for _, rating := range []int32{0, -1, 6} {
		_, err := uc.AddReview(context.Background(), NewAddReviewReq(1, 7, rating, "t", "c"))
		assert.ErrorIs(t, err, e.ErrInvalidRating, "rating %d", rating)
	}

	for _, rating := range []int32{1, 5} {
		_, err := uc.AddReview(context.Background(), NewAddReviewReq(1, int64(rating)+10, rating, "t", "c"))
		assert.NoError(t, err, "rating %d", rating)
	}
}

func TestAddReviewUnknownProduct(t *testing.T) {
	uc := newReviewFixture()

	_, err := uc.AddReview(context.Background(), NewAddReviewReq(99, 7, 4, "t", "c"))
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestAddReviewOnePerUser(t *testing.T) {
	uc := newReviewFixture()

	_, err := uc.AddReview(context.Background(), NewAddReviewReq(1, 7, 5, "great", "my dog loves it"))
	require.NoError(t, err)

	_, err = uc.AddReview(context.Background(), NewAddReviewReq(1, 7, 2, "changed my mind", ""))
	assert.ErrorIs(t, err, e.ErrDuplicateReview)

	reviews, err := uc.ListByProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}
