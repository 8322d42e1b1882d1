package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/EdwinAndresGpmez/TimeTrack-sub000/config"
	"github.com/EdwinAndresGpmez/TimeTrack-sub000/internal/domain"
)

// AgendaCache guarda grillas de día ya clasificadas durante un TTL corto.
// Es una caché de mejor esfuerzo: un fallo de redis nunca rompe la petición,
// y la frescura la garantiza el TTL más el invalidado en cada escritura del
// profesional. Las reservas siguen protegidas por la comprobación de
// conflictos en el momento de escribir.
type AgendaCache interface {
	GetDay(ctx context.Context, key string) ([]domain.Slot, bool)
	SetDay(ctx context.Context, key string, slots []domain.Slot)
	InvalidateProfessional(ctx context.Context, professionalID int64)
}

// DayKey identifica una grilla de día calculada.
func DayKey(professionalID, placeID int64, date time.Time, express bool) string {
	return fmt.Sprintf("agenda:%d:%d:%s:%t", professionalID, placeID, date.Format("2006-01-02"), express)
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisCache(cfg config.RedisConfig, logger *zap.Logger) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("no se pudo conectar a redis: %w", err)
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.AgendaTTL,
		logger: logger,
	}, nil
}

func (c *RedisCache) GetDay(ctx context.Context, key string) ([]domain.Slot, bool) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("error al leer la caché de agenda", zap.Error(err))
		}
		return nil, false
	}

	var slots []domain.Slot
	if err := json.Unmarshal(payload, &slots); err != nil {
		c.logger.Warn("entrada de caché corrupta", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	return slots, true
}

func (c *RedisCache) SetDay(ctx context.Context, key string, slots []domain.Slot) {
	payload, err := json.Marshal(slots)
	if err != nil {
		c.logger.Warn("error al serializar la grilla", zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("error al escribir la caché de agenda", zap.Error(err))
	}
}

func (c *RedisCache) InvalidateProfessional(ctx context.Context, professionalID int64) {
	pattern := fmt.Sprintf("agenda:%d:*", professionalID)

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			c.logger.Warn("error al invalidar la caché de agenda", zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("error al recorrer las claves de agenda", zap.Error(err))
	}
}

// NoopCache se usa cuando redis no está configurado.
type NoopCache struct{}

func NewNoopCache() *NoopCache { return &NoopCache{} }

func (NoopCache) GetDay(context.Context, string) ([]domain.Slot, bool) { return nil, false }
func (NoopCache) SetDay(context.Context, string, []domain.Slot)        {}
func (NoopCache) InvalidateProfessional(context.Context, int64)        {}
