package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DRSN-tech/petstore-backend/internal/cfg"
	"github.com/DRSN-tech/petstore-backend/internal/repository/redis/converter"
	"github.com/DRSN-tech/petstore-backend/internal/usecase"
	"github.com/DRSN-tech/petstore-backend/pkg/clients"
	"github.com/DRSN-tech/petstore-backend/pkg/e"
	"github.com/DRSN-tech/petstore-backend/pkg/logger"
	"github.com/jimlawless/whereami"
)

// CacheRepo хранит карточки товаров в Redis. Кэш вспомогательный: любые
// ошибки записи и порчи данных деградируют до промаха, а не до отказа.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.ProductInfoConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.ProductInfoConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetProducts возвращает найденные в кэше карточки; отсутствующие ID просто
// не попадают в результат. Ошибкой считается только недоступность Redis.
func (r *CacheRepo) GetProducts(ctx context.Context, ids []int64) (map[int64]usecase.ProductInfo, error) {
	keys := productKeys(ids)

	values, err := r.client.Client.MGet(ctx, keys...).Result()
	if err != nil {
		r.logger.Warnf("redis mget failed: %v", err)
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	found := make(map[int64]usecase.ProductInfo, len(ids))
	for i, val := range values {
		model := r.decodeCached(val, keys[i])
		if model == nil {
			continue
		}

		// Ключ и содержимое разошлись: запись битая, вычищаем
		if model.ID != ids[i] {
			r.logger.Warnf("cache entry %s holds product %d, evicting", keys[i], model.ID)
			r.evict(keys[i])
			continue
		}

		found[ids[i]] = *r.conv.ToUseCase(model)
	}

	return found, nil
}

// SetProducts пишет карточки одним pipeline с TTL из конфигурации.
// Сбои записи логируются и не прерывают вызов.
func (r *CacheRepo) SetProducts(ctx context.Context, products []usecase.ProductInfo) error {
	pipe := r.client.Client.Pipeline()
	for _, model := range r.conv.ToArrRedisModel(products) {
		data, err := json.Marshal(model)
		if err != nil {
			r.logger.Warnf("cache marshal failed for product %d: %v", model.ID, err)
			continue
		}

		pipe.Set(ctx, productKey(model.ID), data, r.cfg.ProductTTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Warnf("cache pipeline failed: %v", err)
	}

	return nil
}

// DeleteProducts снимает карточки с кэша после изменения каталога.
func (r *CacheRepo) DeleteProducts(ctx context.Context, ids []int64) error {
	if err := r.client.Client.Del(ctx, productKeys(ids)...).Err(); err != nil {
		r.logger.Warnf("redis del failed: %v", err)
	}

	return nil
}

// decodeCached разбирает значение MGET; любой дефект записи трактуется
// как промах, а не как ошибка.
func (r *CacheRepo) decodeCached(val interface{}, key string) *converter.ProductInfoRedisModel {
	var data []byte
	switch v := val.(type) {
	case nil:
		return nil // промах
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		r.logger.Warnf("unexpected redis value type for key %s: %T", key, val)
		return nil
	}

	var model converter.ProductInfoRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		r.logger.Warnf("cache unmarshal failed for key %s: %v", key, err)
		r.evict(key)
		return nil
	}

	return &model
}

func (r *CacheRepo) evict(key string) {
	if err := r.client.Client.Del(context.Background(), key).Err(); err != nil {
		r.logger.Warnf("redis del failed for key %s: %v", key, err)
	}
}

func productKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}

func productKeys(ids []int64) []string {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = productKey(id)
	}

	return keys
}
