package http

import (
	"net/http"

	"github.com/DRSN-tech/petstore-backend/internal/usecase"
	"github.com/DRSN-tech/petstore-backend/pkg/logger"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUC
	logger           logger.Logger
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUC, logger logger.Logger) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase, logger: logger}
}

type dashboardResponse struct {
	TotalProducts  int64                 `json:"total_products"`
	TotalSales     string                `json:"total_sales"`
	TotalCustomers int64                 `json:"total_customers"`
	AnalyticsScore int                   `json:"analytics_score"`
	RecentOrders   []recentOrderResponse `json:"recent_orders"`
	TopProducts    []topProductResponse  `json:"top_products"`
}

type recentOrderResponse struct {
	ID           int64  `json:"id"`
	CustomerName string `json:"customer_name"`
	Total        string `json:"total"`
	Status       string `json:"status"`
}

type topProductResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Image        string `json:"image"`
	SoldCount    int64  `json:"sold_count"`
	TotalRevenue string `json:"total_revenue"`
}

// getSummary
//
//	@Summary		Сводка для админ-панели
//	@Description	Возвращает агрегированные показатели магазина: счётчики, последние заказы и топ товаров
//	@Tags			dashboard
//	@Produce		json
//	@Success		200	{object}	dashboardResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/admin/dashboard [get]
func (d *DashboardHandler) getSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := d.dashboardUsecase.GetSummary(r.Context())
	if err != nil {
		d.logger.Errorf(err, "dashboard summary failed")
		WriteError(w, err)
		return
	}

	resp := dashboardResponse{
		TotalProducts:  summary.TotalProducts,
		TotalSales:     formatCents(summary.TotalSales),
		TotalCustomers: summary.TotalCustomers,
		AnalyticsScore: summary.AnalyticsScore,
		RecentOrders:   make([]recentOrderResponse, 0, len(summary.RecentOrders)),
		TopProducts:    make([]topProductResponse, 0, len(summary.TopProducts)),
	}

	for _, order := range summary.RecentOrders {
		resp.RecentOrders = append(resp.RecentOrders, recentOrderResponse{
			ID:           order.ID,
			CustomerName: order.CustomerName,
			Total:        formatCents(order.Total),
			Status:       string(order.Status),
		})
	}

	for _, product := range summary.TopProducts {
		resp.TopProducts = append(resp.TopProducts, topProductResponse{
			ID:           product.ID,
			Name:         product.Name,
			Category:     product.Category,
			Image:        product.Image,
			SoldCount:    product.SoldCount,
			TotalRevenue: formatCents(product.TotalRevenue),
		})
	}

	WriteSuccess(w, http.StatusOK, resp)
}
