package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/petstore-backend/internal/usecase"
	"github.com/DRSN-tech/petstore-backend/pkg/e"
	"github.com/DRSN-tech/petstore-backend/pkg/logger"
)

type ProductHandler struct {
	catalogUsecase usecase.CatalogUC
	reviewUsecase  usecase.ReviewUC
	logger         logger.Logger
}

func NewProductHandler(catalogUsecase usecase.CatalogUC, reviewUsecase usecase.ReviewUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUsecase: catalogUsecase, reviewUsecase: reviewUsecase, logger: logger}
}

type productMetadata struct {
	SKU           string
	Name          string
	Description   string
	BrandName     string
	CategoryNames []string
	Price         int64
	Stock         int64
	Variants      []usecase.VariantInput
}

type variantFormInput struct {
	Label string `json:"label"`
	Price string `json:"price"`
	Stock int64  `json:"stock"`
}

type productResponse struct {
	ID    int64  `json:"id"`
	SKU   string `json:"sku"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

type productInfoResponse struct {
	ID       int64  `json:"id"`
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
}

type variantResponse struct {
	ID       int64  `json:"id"`
	Label    string `json:"label"`
	Price    string `json:"price"`
	Stock    int64  `json:"stock"`
	WeightKg *int64 `json:"weight_kg,omitempty"`
}

type productDetailResponse struct {
	ID          int64             `json:"id"`
	SKU         string            `json:"sku"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Price       string            `json:"price"`
	Stock       int64             `json:"stock"`
	IsActive    bool              `json:"is_active"`
	Variants    []variantResponse `json:"variants"`
}

type reviewResponse struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	UserID    *int64 `json:"user_id"`
	Rating    int32  `json:"rating"`
	Title     string `json:"title"`
	Comment   string `json:"comment"`
}

// addProduct
//
//	@Summary		Добавление товара в каталог
//	@Description	Создаёт товар с вариантами и изображениями; бренд и категории создаются по имени
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			sku			formData	string	true	"Артикул"
//	@Param			name		formData	string	true	"Название товара"
//	@Param			brand		formData	string	true	"Бренд"
//	@Param			categories	formData	string	true	"Категории через запятую"
//	@Param			price		formData	number	true	"Цена"
//	@Param			stock		formData	integer	false	"Остаток"
//	@Param			variants	formData	string	false	"Варианты в JSON"
//	@Param			images		formData	file	false	"Изображения товара"
//	@Success		201			{object}	productResponse
//	@Failure		400			{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/products [post]
func (p *ProductHandler) addProduct(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 150 << 20
		maxMemory           = 32 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	meta, err := parseProductForm(r)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	images, err := parseImages(r.MultipartForm.File["images"])
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	product, err := p.catalogUsecase.AddProduct(r.Context(), &usecase.AddProductReq{
		SKU:           meta.SKU,
		Name:          meta.Name,
		Description:   meta.Description,
		BrandName:     meta.BrandName,
		CategoryNames: meta.CategoryNames,
		Price:         meta.Price,
		Stock:         meta.Stock,
		Variants:      meta.Variants,
		Images:        images,
	})
	if err != nil {
		p.logger.Warnf("add product failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, productResponse{
		ID:    product.ID,
		SKU:   product.SKU,
		Name:  product.Name,
		Price: formatCents(product.Price),
	})
}

// listProducts
//
//	@Summary	Список товаров каталога
//	@Tags		products
//	@Produce	json
//	@Param		limit	query		int	false	"Размер страницы"
//	@Param		offset	query		int	false	"Смещение"
//	@Success	200		{array}		productInfoResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	limit := parseQueryInt(r, "limit", 20)
	offset := parseQueryInt(r, "offset", 0)

	products, err := p.catalogUsecase.ListProducts(r.Context(), limit, offset)
	if err != nil {
		p.logger.Warnf("list products failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductInfoResponses(products))
}

// getProduct
//
//	@Summary	Карточка товара
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"ID товара"
//	@Success	200	{object}	productDetailResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	detail, err := p.catalogUsecase.GetProduct(r.Context(), id)
	if err != nil {
		p.logger.Warnf("get product %d failed: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	variants := make([]variantResponse, 0, len(detail.Variants))
	for _, variant := range detail.Variants {
		variants = append(variants, variantResponse{
			ID:       variant.ID,
			Label:    variant.Label,
			Price:    formatCents(variant.Price),
			Stock:    variant.StockQuantity,
			WeightKg: variant.WeightKg,
		})
	}

	WriteSuccess(w, http.StatusOK, productDetailResponse{
		ID:          detail.Product.ID,
		SKU:         detail.Product.SKU,
		Name:        detail.Product.Name,
		Description: detail.Product.Description,
		Price:       formatCents(detail.Product.Price),
		Stock:       detail.Product.Stock,
		IsActive:    detail.Product.IsActive,
		Variants:    variants,
	})
}

// getProductsInfo
//
//	@Summary		Информация о товарах по ID
//	@Description	Возвращает данные товаров из кэша или БД; отсутствующие ID перечисляются отдельно
//	@Tags			products
//	@Produce		json
//	@Param			ids	query		string	true	"ID через запятую"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		400	{object}	ErrorResponse
//	@Router			/products/info [get]
func (p *ProductHandler) getProductsInfo(w http.ResponseWriter, r *http.Request) {
	ids, err := parseIDList(r.URL.Query().Get("ids"))
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := p.catalogUsecase.GetProductsInfo(r.Context(), &usecase.GetProductsReq{IDs: ids})
	if err != nil {
		p.logger.Warnf("get products info failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"products":  toProductInfoResponses(res.Products),
		"not_found": res.NotFoundProducts,
	})
}

// listReviews
//
//	@Summary	Отзывы о товаре
//	@Tags		reviews
//	@Produce	json
//	@Param		id	path		int	true	"ID товара"
//	@Success	200	{array}		reviewResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id}/reviews [get]
func (p *ProductHandler) listReviews(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	reviews, err := p.reviewUsecase.ListByProduct(r.Context(), id)
	if err != nil {
		p.logger.Warnf("list reviews for product %d failed: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	resp := make([]reviewResponse, 0, len(reviews))
	for _, review := range reviews {
		resp = append(resp, reviewResponse{
			ID:        review.ID,
			ProductID: review.ProductID,
			UserID:    review.UserID,
			Rating:    review.Rating,
			Title:     review.Title,
			Comment:   review.Comment,
		})
	}

	WriteSuccess(w, http.StatusOK, resp)
}

func parseProductForm(r *http.Request) (*productMetadata, error) {
	sku := r.FormValue("sku")
	name := r.FormValue("name")
	brand := r.FormValue("brand")
	categories := r.FormValue("categories")
	priceStr := r.FormValue("price")

	if sku == "" || name == "" || brand == "" || categories == "" || priceStr == "" {
		return nil, e.Wrap(whereValues(sku, name, brand, categories, priceStr), e.ErrMissingFields)
	}

	priceCents, err := parsePriceToCents(priceStr)
	if err != nil {
		return nil, err
	}

	var stock int64
	if stockStr := r.FormValue("stock"); stockStr != "" {
		stock, err = strconv.ParseInt(stockStr, 10, 64)
		if err != nil || stock < 0 {
			return nil, e.ErrStatusBadRequest
		}
	}

	variants, err := parseVariantsForm(r.FormValue("variants"))
	if err != nil {
		return nil, err
	}

	categoryNames := make([]string, 0)
	for _, cat := range strings.Split(categories, ",") {
		if trimmed := strings.TrimSpace(cat); trimmed != "" {
			categoryNames = append(categoryNames, trimmed)
		}
	}

	return &productMetadata{
		SKU:           sku,
		Name:          name,
		Description:   r.FormValue("description"),
		BrandName:     brand,
		CategoryNames: categoryNames,
		Price:         priceCents,
		Stock:         stock,
		Variants:      variants,
	}, nil
}

// parseVariantsForm разбирает JSON-массив вариантов из поля формы.
// Цены вариантов приходят строками и конвертируются в копейки.
func parseVariantsForm(raw string) ([]usecase.VariantInput, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var inputs []variantFormInput
	if err := json.Unmarshal([]byte(raw), &inputs); err != nil {
		return nil, e.ErrStatusBadRequest
	}

	variants := make([]usecase.VariantInput, 0, len(inputs))
	for _, in := range inputs {
		priceCents, err := parsePriceToCents(in.Price)
		if err != nil {
			return nil, err
		}

		variants = append(variants, usecase.VariantInput{
			Label:         in.Label,
			Price:         priceCents,
			StockQuantity: in.Stock,
		})
	}

	return variants, nil
}

func toProductInfoResponses(products []usecase.ProductInfo) []productInfoResponse {
	resp := make([]productInfoResponse, 0, len(products))
	for _, product := range products {
		resp = append(resp, productInfoResponse{
			ID:       product.ID,
			SKU:      product.SKU,
			Name:     product.Name,
			Category: product.CategoryName,
			Price:    formatCents(product.Price),
		})
	}

	return resp
}

func parseQueryInt(r *http.Request, name string, def int64) int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}

	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || val < 0 {
		return def
	}

	return val
}

func parseIDList(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, e.ErrStatusBadRequest
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || id <= 0 {
			return nil, e.ErrStatusBadRequest
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func whereValues(sku, name, brand, categories, price string) string {
	return "sku: " + sku + ", name: " + name + ", brand: " + brand +
		", categories: " + categories + ", price: " + price
}
