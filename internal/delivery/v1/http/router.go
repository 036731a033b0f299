package http

import (
	_ "github.com/DRSN-tech/petstore-backend/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/petstore-backend/internal/usecase"
	"github.com/DRSN-tech/petstore-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

type UseCases struct {
	Account   usecase.AccountUC
	Catalog   usecase.CatalogUC
	Cart      usecase.CartUC
	Order     usecase.OrderUC
	Payment   usecase.PaymentUC
	Review    usecase.ReviewUC
	Dashboard usecase.DashboardUC
}

func (r *Router) Init(uc UseCases) {
	r.router.Use(middleware.Recoverer)
	r.router.Use(middleware.StripSlashes)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8000/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerAccountRoutes(v1, NewAccountHandler(uc.Account, r.logger))
		registerProductRoutes(v1, NewProductHandler(uc.Catalog, uc.Review, r.logger), NewReviewHandler(uc.Review, r.logger))
		registerCartRoutes(v1, NewCartHandler(uc.Cart, r.logger))
		registerOrderRoutes(v1, NewOrderHandler(uc.Order, r.logger), NewPaymentHandler(uc.Payment, r.logger))
	})

	r.router.Route("/api/admin", func(admin chi.Router) {
		dashHandler := NewDashboardHandler(uc.Dashboard, r.logger)
		admin.Get("/dashboard", dashHandler.getSummary)
	})
}

func registerAccountRoutes(router chi.Router, handler *AccountHandler) {
	router.Route("/accounts", func(acc chi.Router) {
		acc.Post("/signup", handler.signUp)
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler, rvHandler *ReviewHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Post("/", prHandler.addProduct)
		pr.Get("/", prHandler.listProducts)
		pr.Get("/info", prHandler.getProductsInfo)
		pr.Get("/{id}", prHandler.getProduct)
		pr.Get("/{id}/reviews", prHandler.listReviews)
		pr.Post("/{id}/reviews", rvHandler.addReview)
	})
}

func registerCartRoutes(router chi.Router, handler *CartHandler) {
	router.Route("/carts", func(ct chi.Router) {
		ct.Post("/", handler.createCart)
		ct.Get("/{id}", handler.getCart)
		ct.Post("/{id}/items", handler.addItem)
	})
}

func registerOrderRoutes(router chi.Router, orHandler *OrderHandler, payHandler *PaymentHandler) {
	router.Route("/orders", func(or chi.Router) {
		or.Post("/", orHandler.placeOrder)
		or.Get("/{id}", orHandler.getOrder)
		or.Patch("/{id}/status", orHandler.updateStatus)
		or.Post("/{id}/payment", payHandler.confirmPayment)
	})
}
