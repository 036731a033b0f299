package minio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/DRSN-tech/petstore-backend/internal/cfg"
	"github.com/DRSN-tech/petstore-backend/internal/domain"
	"github.com/DRSN-tech/petstore-backend/internal/infrastructure"
	"github.com/DRSN-tech/petstore-backend/internal/usecase"
	"github.com/DRSN-tech/petstore-backend/pkg/e"
	"github.com/DRSN-tech/petstore-backend/pkg/jitter"
	"github.com/DRSN-tech/petstore-backend/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// MinioInfrastructure загружает изображения товаров в MinIO и компенсирует
// неудачные загрузки фоновой очисткой. shutdownCtx ограничивает время
// компенсаций при остановке приложения.
type MinioInfrastructure struct {
	minioRepo   usecase.ImageRepository
	cfg         *cfg.MinIOCfg
	logger      logger.Logger
	shutdownCtx context.Context
	cleanupWg   sync.WaitGroup
}

func NewMinioInfrastructure(minioRepo usecase.ImageRepository, cfg *cfg.MinIOCfg, logger logger.Logger, shutdownCtx context.Context) *MinioInfrastructure {
	return &MinioInfrastructure{
		minioRepo:   minioRepo,
		cfg:         cfg,
		logger:      logger,
		shutdownCtx: shutdownCtx,
	}
}

// UploadImages параллельно загружает изображения товара, не больше
// UploadImagesLimit одновременно. Первая ошибка отменяет остальные загрузки;
// уже загруженные объекты удаляются в фоне.
func (m *MinioInfrastructure) UploadImages(ctx context.Context, req *usecase.UploadImagesReq) (*usecase.UploadImagesRes, error) {
	const op = "MinioInfrastructure.UploadImages"

	var (
		mu   sync.Mutex
		keys = make([]string, 0, len(req.Images))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.cfg.UploadImagesLimit)

	for _, image := range req.Images {
		g.Go(func() error {
			ext, err := infrastructure.GetExtensionFromMIME(image.MimeType)
			if err != nil {
				return fmt.Errorf("invalid mime type %s for %s: %w", image.MimeType, image.Name, err)
			}

			objKey := fmt.Sprintf("%s/%s-%s.%s", req.Name, image.Name, uuid.NewString(), ext)
			key, err := m.minioRepo.Upload(gctx, domain.NewImage(m.cfg.BucketName, objKey, image.Data, &image.Size, &image.MimeType))
			if err != nil {
				return fmt.Errorf("upload %s failed: %w", image.Name, err)
			}

			mu.Lock()
			keys = append(keys, key)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		m.CleanupImages(keys)
		return nil, e.Wrap(op, err)
	}

	return usecase.NewUploadImagesRes(keys), nil
}

// CleanupImages запускает фоновое удаление объектов по ключам.
func (m *MinioInfrastructure) CleanupImages(keys []string) {
	if len(keys) == 0 {
		return
	}

	m.cleanupWg.Add(1)
	go m.removeKeys(keys)
}

// removeKeys удаляет объекты с повторами и экспоненциальной паузой.
// Прерывается только остановкой приложения.
func (m *MinioInfrastructure) removeKeys(keys []string) {
	defer m.cleanupWg.Done()

	const maxAttempts = 3
	m.logger.Infof("cleaning up %d uploaded object(s)", len(keys))

	ctx, cancel := context.WithTimeout(m.shutdownCtx, 30*time.Second)
	defer cancel()

	for _, key := range keys {
		for attempt := 0; attempt < maxAttempts; attempt++ {
			if err := m.minioRepo.Delete(ctx, key); err == nil {
				break
			}

			if ctx.Err() != nil {
				m.logger.Warnf("cleanup interrupted by shutdown, key=%v", key)
				return
			}

			if attempt == maxAttempts-1 {
				m.logger.Warnf("cleanup gave up on key=%v after %d attempts", key, maxAttempts)
				break
			}

			select {
			case <-time.After(jitter.ExponentialBackoff(time.Second, 10*time.Second, attempt, jitter.DefaultJitter)):
			case <-ctx.Done():
				m.logger.Warnf("cleanup interrupted by shutdown during backoff, key=%v", key)
				return
			}
		}
	}
}

// WaitForCleanup дожидается фоновых компенсаций в пределах таймаута остановки.
func (m *MinioInfrastructure) WaitForCleanup(shutdownTimeoutCtx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.cleanupWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-shutdownTimeoutCtx.Done():
		return fmt.Errorf("minio cleanup timeout during shutdown: %w", shutdownTimeoutCtx.Err())
	}
}
