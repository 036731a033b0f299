package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/DRSN-tech/petstore-backend/internal/domain"
	"github.com/DRSN-tech/petstore-backend/pkg/e"
	"github.com/DRSN-tech/petstore-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

// CatalogUseCase реализует бизнес-логику управления каталогом товаров.
type CatalogUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	brandRepo    BrandRepository
	variantRepo  VariantRepository
	dbPool       transaction.Transactional
	imagesInfra  ImagesInfra
	cacheRepo    CacheRepository
	logger       logger.Logger
}

func NewCatalogUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	brandRepo BrandRepository,
	variantRepo VariantRepository,
	dbPool transaction.Transactional,
	imagesInfra ImagesInfra,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
		variantRepo:  variantRepo,
		dbPool:       dbPool,
		imagesInfra:  imagesInfra,
		cacheRepo:    cacheRepo,
		logger:       logger,
	}
}

// AddProduct обрабатывает добавление нового товара с брендом, категориями,
// вариантами и изображениями, сохраняя всё в рамках одной транзакции.
func (c *CatalogUseCase) AddProduct(ctx context.Context, req *AddProductReq) (*domain.Product, error) {
	const op = "CatalogUseCase.AddProduct"

	var err error
	if err = c.validateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	var (
		imagesRes *UploadImagesRes
		uploaded  bool
	)

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	// Если произошла ошибка, происходит Rollback транзакции и очистка загруженных изображений
	defer func() {
		if err != nil {
			if tx.IsActive() {
				tx.Rollback(ctx)
			}

			if uploaded && imagesRes != nil {
				c.logger.Warnf(
					"Cleaning up orphaned images after transaction failure. product_sku: %s, error: %v",
					req.SKU,
					e.Wrap(op, err),
				)

				c.imagesInfra.CleanupImages(imagesRes.ImagesKeys)
			}
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	// идемпотентное создание бренда
	brand, err := c.brandRepo.Create(ctx, domain.NewBrand(req.BrandName, ""))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	product, err := c.productRepo.Create(ctx, domain.NewProduct(req.SKU, req.Name, req.Description, brand.ID, req.Price, req.Stock))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// идемпотентное создание категорий и привязка к товару
	if err = c.linkCategories(ctx, product.ID, req.CategoryNames); err != nil {
		return nil, e.Wrap(op, err)
	}

	for _, v := range req.Variants {
		if _, err = c.variantRepo.Create(ctx, domain.NewVariant(product.ID, v.Label, v.Price, v.StockQuantity, nil)); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	// Сохранение изображений в MinIO и фиксация их URL в БД
	if len(req.Images) > 0 {
		imagesRes, err = c.imagesInfra.UploadImages(ctx, NewUploadImagesReq(req.SKU, req.Images))
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		uploaded = true

		for i, key := range imagesRes.ImagesKeys {
			if err = c.productRepo.AddImage(ctx, domain.NewProductImage(product.ID, key, req.Name, int32(i))); err != nil {
				return nil, e.Wrap(op, err)
			}
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Удаление из кэша старых данных товара
	if err := c.cacheRepo.DeleteProducts(ctx, []int64{product.ID}); err != nil {
		c.logger.Warnf("Failed to delete products from cache: %v", e.Wrap(op, err))
	}

	return product, nil
}

// GetProductsInfo возвращает информацию о товарах по их идентификаторам,
// сначала проверяя кэш и дозагружая промахи из БД.
func (c *CatalogUseCase) GetProductsInfo(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error) {
	const op = "CatalogUseCase.GetProductsInfo"

	if len(req.IDs) == 0 {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	// Поиск товаров в кэше
	cacheProductsMap, err := c.cacheRepo.GetProducts(ctx, req.IDs)
	var nonCacheable []int64
	if err != nil {
		nonCacheable = append(nonCacheable, req.IDs...)
	} else {
		for _, productId := range req.IDs {
			if _, ok := cacheProductsMap[productId]; !ok {
				nonCacheable = append(nonCacheable, productId)
			}
		}
	}

	// Получение товаров из БД
	var productsInfoFromDB []ProductInfo
	if len(nonCacheable) > 0 {
		productsInfoFromDB, err = c.productRepo.GetProductsInfo(ctx, nonCacheable)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		// Фоновое добавление товаров в кэш
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := c.cacheRepo.SetProducts(bgCtx, productsInfoFromDB); err != nil {
				c.logger.Warnf("Failed to cache products in background: %v", e.Wrap(op, err))
			}
		}()
	}

	dbProductsMap := make(map[int64]ProductInfo, len(productsInfoFromDB))
	for _, productInfo := range productsInfoFromDB {
		dbProductsMap[productInfo.ID] = productInfo
	}

	// Формирование результата
	result := make([]ProductInfo, 0, len(req.IDs))
	notFoundProducts := make([]int64, 0)
	for _, id := range req.IDs {
		if pr, ok := cacheProductsMap[id]; ok {
			result = append(result, pr)
		} else if pr, ok := dbProductsMap[id]; ok {
			result = append(result, pr)
		} else {
			notFoundProducts = append(notFoundProducts, id)
		}
	}

	return NewGetProductsRes(result, notFoundProducts), nil
}

// GetProduct возвращает карточку товара вместе с вариантами.
func (c *CatalogUseCase) GetProduct(ctx context.Context, id int64) (*ProductDetail, error) {
	const op = "CatalogUseCase.GetProduct"

	product, err := c.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	variants, err := c.variantRepo.ListByProduct(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &ProductDetail{Product: product, Variants: variants}, nil
}

// ListProducts возвращает страницу каталога.
func (c *CatalogUseCase) ListProducts(ctx context.Context, limit, offset int64) ([]ProductInfo, error) {
	const op = "CatalogUseCase.ListProducts"

	products, err := c.productRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// linkCategories идемпотентно создаёт категории и привязывает их к товару.
func (c *CatalogUseCase) linkCategories(ctx context.Context, productID int64, names []string) error {
	for _, name := range names {
		category, err := c.categoryRepo.Create(ctx, domain.NewCategory(name, nil, ""))
		if err != nil {
			return err
		}

		if err := c.productRepo.LinkCategory(ctx, productID, category.ID); err != nil {
			return err
		}
	}

	return nil
}

// validateProduct проверяет корректность входных данных запроса на добавление товара.
func (c *CatalogUseCase) validateProduct(req *AddProductReq) error {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.SKU) == "" {
		return e.ErrProductNameRequired
	}

	if req.Price <= 0 {
		return e.ErrInvalidPrice
	}

	for _, v := range req.Variants {
		if v.Price <= 0 {
			return e.ErrInvalidPrice
		}
		if v.StockQuantity < 0 {
			return e.ErrInvalidQuantity
		}
	}

	return nil
}
