package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	pushQueueKey = "push_notifications"
)

// Виды push-уведомлений
const (
	KindAreaEvent     = "AREA_EVENT"
	KindJoinRequest   = "JOIN_REQUEST"
	KindInviteDecided = "INVITE_DECIDED"
	KindChatMessage   = "CHAT_MESSAGE"
)

// Notification - полезная нагрузка push-уведомления для одного пользователя
type Notification struct {
	UserID    uuid.UUID      `json:"user_id"`
	Kind      string         `json:"kind"`
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// Publisher - интерфейс для постановки уведомлений в очередь доставки.
// Доставка fire-and-forget: ошибки публикации логируются вызывающим и не
// прерывают исходный запрос.
type Publisher interface {
	Publish(ctx context.Context, n Notification) error
}

// RedisPublisher - реализация Publisher, использующая очередь в Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish кладёт уведомление в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, n Notification) error {
	if n.Timestamp.IsZero() {
		n.Timestamp = time.Now().UTC()
	}
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	// LPUSH в левую часть списка, воркер забирает BRPOP-ом справа
	if err := p.redisClient.LPush(ctx, pushQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification to Redis: %w", err)
	}
	return nil
}
