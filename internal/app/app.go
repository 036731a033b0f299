package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/petstore-backend/internal/cfg"
	v1Http "github.com/DRSN-tech/petstore-backend/internal/delivery/v1/http"
	"github.com/DRSN-tech/petstore-backend/internal/infrastructure/kafka"
	minioInfra "github.com/DRSN-tech/petstore-backend/internal/infrastructure/minio"
	s3Repo "github.com/DRSN-tech/petstore-backend/internal/repository/minio"
	"github.com/DRSN-tech/petstore-backend/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/petstore-backend/internal/repository/pgdb/converter/generated"
	"github.com/DRSN-tech/petstore-backend/internal/repository/redis"
	redisConv "github.com/DRSN-tech/petstore-backend/internal/repository/redis/converter/generated"
	"github.com/DRSN-tech/petstore-backend/internal/usecase"
	"github.com/DRSN-tech/petstore-backend/pkg/clients"
	"github.com/DRSN-tech/petstore-backend/pkg/closer"
	"github.com/DRSN-tech/petstore-backend/pkg/e"
	"github.com/DRSN-tech/petstore-backend/pkg/logger"
	"github.com/DRSN-tech/petstore-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

// App собирает зависимости приложения и управляет их жизненным циклом.
// Закрытие ресурсов выполняется через closer в порядке LIFO.
type App struct {
	cfg    *config.Config
	logger logger.Logger

	db           *postgres.PgDatabase
	redisClient  *clients.RedisClient
	imagesInfra  *minioInfra.MinioInfrastructure
	producer     *kafka.Producer
	outboxWorker *kafka.OutboxWorker
	httpSrv      *v1Http.Server
	closer       *closer.Closer

	shutdownCancel context.CancelFunc
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	app := &App{
		cfg:    cfg,
		logger: log,
		closer: closer.NewCloser(5 * time.Second),
	}

	// Контекст живёт до конца shutdown, его получают фоновые задачи
	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())
	app.shutdownCancel = shutdownCancel

	db, err := initPGDB(log, cfg)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	app.db = db
	app.closer.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	prConv := pgdbConv.NewProductConverterImpl()
	catConv := pgdbConv.NewCategoryConverterImpl()
	varConv := pgdbConv.NewVariantConverterImpl()
	ordConv := pgdbConv.NewOrderConverterImpl()
	outConv := pgdbConv.NewOutboxEventConverterImpl()
	infoConv := redisConv.NewProductInfoConverterImpl()

	userRepo := pgdb.NewUserRepo(db.Pool)
	addressRepo := pgdb.NewAddressRepo(db.Pool)
	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	categoryRepo := pgdb.NewCategoryRepo(db.Pool, catConv)
	brandRepo := pgdb.NewBrandRepo(db.Pool)
	variantRepo := pgdb.NewVariantRepo(db.Pool, varConv)
	cartRepo := pgdb.NewCartRepo(db.Pool)
	orderRepo := pgdb.NewOrderRepo(db.Pool, ordConv)
	paymentRepo := pgdb.NewPaymentRepo(db.Pool)
	reviewRepo := pgdb.NewReviewRepo(db.Pool)
	dashboardRepo := pgdb.NewDashboardRepo(db.Pool)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outConv)

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	minioCancel()

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)
	app.imagesInfra = minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, log, shutdownCtx)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	app.redisClient = redisClient
	app.closer.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})
	cacheRepo := redis.NewCacheRepo(redisClient, infoConv, cfg.Redis, log)

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	app.producer = producer
	app.closer.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	app.outboxWorker = kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)

	accountUC := usecase.NewAccountUC(userRepo, db.Pool, log)
	catalogUC := usecase.NewCatalogUC(productRepo, categoryRepo, brandRepo, variantRepo, db.Pool, app.imagesInfra, cacheRepo, log)
	cartUC := usecase.NewCartUC(cartRepo, variantRepo, log)
	orderUC := usecase.NewOrderUC(orderRepo, variantRepo, addressRepo, outboxRepo, db.Pool, log)
	paymentUC := usecase.NewPaymentUC(paymentRepo, orderUC, db.Pool, log)
	reviewUC := usecase.NewReviewUC(reviewRepo, productRepo, log)
	dashboardUC := usecase.NewDashboardUC(dashboardRepo, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(v1Http.UseCases{
		Account:   accountUC,
		Catalog:   catalogUC,
		Cart:      cartUC,
		Order:     orderUC,
		Payment:   paymentUC,
		Review:    reviewUC,
		Dashboard: dashboardUC,
	})

	app.httpSrv = v1Http.NewServer(r, cfg.Http)

	return app, nil
}

// Run запускает HTTP-сервер и outbox-worker и блокируется до сигнала
// завершения или фатальной ошибки сервера.
func (a *App) Run() error {
	workerCtx, workerCancel := context.WithCancel(context.Background())
	a.outboxWorker.Start(workerCtx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	workerCancel()
	a.outboxWorker.Stop()
	a.logger.Infof("Outbox worker stopped")

	if err := a.imagesInfra.WaitForCleanup(shutdownCtx); err != nil {
		a.logger.Warnf("MinIO cleanup error: %v", err)
	} else {
		a.logger.Infof("MinIO cleanup completed")
	}

	// Отменяем контекст фоновых задач и закрываем ресурсы в порядке LIFO
	a.shutdownCancel()
	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("resource close error: %v", err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
