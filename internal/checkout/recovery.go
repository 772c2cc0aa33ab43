package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const recoveryKeyPrefix = "checkout:pending_payment:"

type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisRecoveryStore keeps one pending payment per checkout session so the
// payment step survives the redirect to the gateway.
type RedisRecoveryStore struct {
	logger *slog.Logger
	client redisClient
	ttl    time.Duration
}

func NewRedisRecoveryStore(logger *slog.Logger, client redisClient, ttl time.Duration) *RedisRecoveryStore {
	return &RedisRecoveryStore{
		logger: logger.With(slog.String("component", "recovery")),
		client: client,
		ttl:    ttl,
	}
}

// Get never fails: a missing, unreadable or malformed record means there is
// no pending payment.
func (s *RedisRecoveryStore) Get(ctx context.Context, sessionKey string) (entities.PendingPayment, bool) {
	raw, err := s.client.Get(ctx, recoveryKey(sessionKey)).Result()
	if errors.Is(err, redis.Nil) {
		return entities.PendingPayment{}, false
	}
	if err != nil {
		s.logger.Warn("failed to read pending payment", slog.String("session", sessionKey), slog.Any("error", err))
		return entities.PendingPayment{}, false
	}

	p, err := decodePending([]byte(raw))
	if err != nil {
		s.logger.Debug("ignoring malformed pending payment", slog.String("session", sessionKey), slog.Any("error", err))
		return entities.PendingPayment{}, false
	}
	return p, true
}

func (s *RedisRecoveryStore) Set(ctx context.Context, sessionKey string, p entities.PendingPayment) error {
	data, err := encodePending(p)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, recoveryKey(sessionKey), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save pending payment: %w", err)
	}
	return nil
}

func (s *RedisRecoveryStore) Clear(ctx context.Context, sessionKey string) error {
	if err := s.client.Del(ctx, recoveryKey(sessionKey)).Err(); err != nil {
		return fmt.Errorf("failed to clear pending payment: %w", err)
	}
	return nil
}

func recoveryKey(sessionKey string) string {
	return recoveryKeyPrefix + sessionKey
}

// pendingRecord is the stored shape. Amount is in major units.
type pendingRecord struct {
	OrderID string      `json:"orderId"`
	Amount  json.Number `json:"amount"`
	Email   string      `json:"email,omitempty"`
}

func encodePending(p entities.PendingPayment) ([]byte, error) {
	rec := pendingRecord{
		OrderID: p.OrderID,
		Amount:  json.Number(decimal.New(p.Amount, -2).StringFixed(2)),
		Email:   p.Email,
	}
	return json.Marshal(rec)
}

func decodePending(data []byte) (entities.PendingPayment, error) {
	var rec pendingRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return entities.PendingPayment{}, err
	}
	if rec.OrderID == "" {
		return entities.PendingPayment{}, errors.New("pending payment has no order id")
	}

	amount, err := decimal.NewFromString(rec.Amount.String())
	if err != nil {
		return entities.PendingPayment{}, fmt.Errorf("invalid amount: %w", err)
	}

	return entities.PendingPayment{
		OrderID: rec.OrderID,
		Amount:  amount.Shift(2).Round(0).IntPart(),
		Email:   rec.Email,
	}, nil
}
