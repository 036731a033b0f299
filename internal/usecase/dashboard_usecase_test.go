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

type fakeDashboardRepo struct {
	products  int64
	sales     int64
	customers int64
	recent    []RecentOrder
	top       []TopProduct

	recentLimit int
	topLimit    int
	failWith    error
}

func (f *fakeDashboardRepo) CountProducts(ctx context.Context) (int64, error) {
	return f.products, f.failWith
}

func (f *fakeDashboardRepo) TotalSales(ctx context.Context) (int64, error) {
	return f.sales, f.failWith
}

func (f *fakeDashboardRepo) CountCustomers(ctx context.Context) (int64, error) {
	return f.customers, f.failWith
}

func (f *fakeDashboardRepo) RecentOrders(ctx context.Context, limit int) ([]RecentOrder, error) {
	f.recentLimit = limit
	return f.recent, f.failWith
}

func (f *fakeDashboardRepo) TopProducts(ctx context.Context, limit int) ([]TopProduct, error) {
	f.topLimit = limit
	return f.top, f.failWith
}

func TestGetSummaryEmptyStore(t *testing.T) {
	repo := &fakeDashboardRepo{}
	uc := NewDashboardUC(repo, logger.NewSlogLogger())

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	// Пустая база даёт нули, а не ошибку
	assert.Equal(t, int64(0), summary.TotalProducts)
	assert.Equal(t, int64(0), summary.TotalSales)
	assert.Equal(t, int64(0), summary.TotalCustomers)
	assert.Empty(t, summary.RecentOrders)
	assert.Empty(t, summary.TopProducts)
	assert.Equal(t, analyticsScorePlaceholder, summary.AnalyticsScore)
}

func TestGetSummaryLimits(t *testing.T) {
	repo := &fakeDashboardRepo{
		products:  12,
		sales:     250075,
		customers: 4,
		recent: []RecentOrder{
			{ID: 9, CustomerName: "alice", Total: 2500, Status: domain.OrderPaid},
			{ID: 8, CustomerName: "Unknown", Total: 900, Status: domain.OrderPending},
		},
		top: []TopProduct{
			{ID: 1, Name: "Dog food", Category: "Food", SoldCount: 7, TotalRevenue: 7000},
		},
	}
	uc := NewDashboardUC(repo, logger.NewSlogLogger())

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, repo.recentLimit)
	assert.Equal(t, 5, repo.topLimit)
	assert.Equal(t, int64(250075), summary.TotalSales)
	assert.Equal(t, "Unknown", summary.RecentOrders[1].CustomerName)
	assert.Equal(t, int64(7), summary.TopProducts[0].SoldCount)
}

func TestGetSummaryKeepsZeroSoldProducts(t *testing.T) {
	repo := &fakeDashboardRepo{
		products: 2,
		top: []TopProduct{
			{ID: 1, Name: "Dog food", Category: "Food", SoldCount: 7, TotalRevenue: 7000},
			{ID: 2, Name: "Cat tree", Category: "Toys", SoldCount: 0, TotalRevenue: 0},
		},
	}
	uc := NewDashboardUC(repo, logger.NewSlogLogger())

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	// Товар без единой продажи остаётся в рейтинге с нулями
	require.Len(t, summary.TopProducts, 2)
	assert.Equal(t, int64(0), summary.TopProducts[1].SoldCount)
	assert.Equal(t, int64(0), summary.TopProducts[1].TotalRevenue)
}

func TestGetSummaryStoreError(t *testing.T) {
	repo := &fakeDashboardRepo{failWith: e.ErrStoreUnavailable}
	uc := NewDashboardUC(repo, logger.NewSlogLogger())

	_, err := uc.GetSummary(context.Background())
	assert.ErrorIs(t, err, e.ErrStoreUnavailable)
}
