package usecase

import (
	"context"

	"github.com/DRSN-tech/petstore-backend/pkg/e"
	"github.com/DRSN-tech/petstore-backend/pkg/logger"
)

const (
	// recentOrdersLimit и topProductsLimit ограничивают стоимость запроса сводки
	recentOrdersLimit = 5
	topProductsLimit  = 5

	// analyticsScorePlaceholder — фиксированная заглушка до появления реальной метрики
	analyticsScorePlaceholder = 85
)

// DashboardUseCase собирает сводку для админ-панели. Сводка пересчитывается
// целиком на каждый вызов, без кэширования и инкрементального обновления.
type DashboardUseCase struct {
	dashboardRepo DashboardRepository
	logger        logger.Logger
}

func NewDashboardUC(dashboardRepo DashboardRepository, logger logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{
		dashboardRepo: dashboardRepo,
		logger:        logger,
	}
}

// GetSummary возвращает сводку по текущему состоянию магазина: счётчики,
// последние заказы и рейтинг продаваемых товаров. Только чтение.
func (d *DashboardUseCase) GetSummary(ctx context.Context) (*DashboardSummary, error) {
	const op = "DashboardUseCase.GetSummary"

	totalProducts, err := d.dashboardRepo.CountProducts(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	totalSales, err := d.dashboardRepo.TotalSales(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	totalCustomers, err := d.dashboardRepo.CountCustomers(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	recentOrders, err := d.dashboardRepo.RecentOrders(ctx, recentOrdersLimit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	topProducts, err := d.dashboardRepo.TopProducts(ctx, topProductsLimit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &DashboardSummary{
		TotalProducts:  totalProducts,
		TotalSales:     totalSales,
		TotalCustomers: totalCustomers,
		AnalyticsScore: analyticsScorePlaceholder,
		RecentOrders:   recentOrders,
		TopProducts:    topProducts,
	}, nil
}
