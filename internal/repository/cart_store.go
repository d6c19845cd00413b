package repository

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/dentora-store/internal/models"

	"github.com/redis/go-redis/v9"
)

// CartStore keeps the authoritative cart state per session. Product and
// bundle lines live under separate keys so one corrupted document never
// takes the other down with it.
type CartStore interface {
	GetProducts(ctx context.Context, sessionID string) ([]models.CartProductLine, error)
	SaveProducts(ctx context.Context, sessionID string, lines []models.CartProductLine) error
	GetBundles(ctx context.Context, sessionID string) ([]models.CartBundleLine, error)
	SaveBundles(ctx context.Context, sessionID string, lines []models.CartBundleLine) error
	Clear(ctx context.Context, sessionID string) error
}

const defaultCartTTL = 30 * 24 * time.Hour

// RedisCartStore stores cart documents as JSON values in Redis.
type RedisCartStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCartStore creates a Redis cart store around an injected client.
func NewRedisCartStore(client *redis.Client, prefix string, ttl time.Duration) *RedisCartStore {
	if prefix == "" {
		prefix = "dt"
	}
	if ttl <= 0 {
		ttl = defaultCartTTL
	}
	return &RedisCartStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisCartStore) productsKey(sessionID string) string {
	return s.prefix + ":cart:" + sessionID + ":products"
}

func (s *RedisCartStore) bundlesKey(sessionID string) string {
	return s.prefix + ":cart:" + sessionID + ":bundles"
}

func (s *RedisCartStore) getLines(ctx context.Context, key string, dest interface{}) error {
	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}
	// A malformed document counts as an empty cart section rather than
	// a hard failure.
	_ = json.Unmarshal([]byte(val), dest)
	return nil
}

func (s *RedisCartStore) saveLines(ctx context.Context, key string, lines interface{}) error {
	payload, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, payload, s.ttl).Err()
}

// GetProducts loads the product lines for a session.
func (s *RedisCartStore) GetProducts(ctx context.Context, sessionID string) ([]models.CartProductLine, error) {
	var lines []models.CartProductLine
	if err := s.getLines(ctx, s.productsKey(sessionID), &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// SaveProducts replaces the product lines for a session.
func (s *RedisCartStore) SaveProducts(ctx context.Context, sessionID string, lines []models.CartProductLine) error {
	return s.saveLines(ctx, s.productsKey(sessionID), lines)
}

// GetBundles loads the bundle lines for a session.
func (s *RedisCartStore) GetBundles(ctx context.Context, sessionID string) ([]models.CartBundleLine, error) {
	var lines []models.CartBundleLine
	if err := s.getLines(ctx, s.bundlesKey(sessionID), &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// SaveBundles replaces the bundle lines for a session.
func (s *RedisCartStore) SaveBundles(ctx context.Context, sessionID string, lines []models.CartBundleLine) error {
	return s.saveLines(ctx, s.bundlesKey(sessionID), lines)
}

// Clear drops both cart documents for a session.
func (s *RedisCartStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.productsKey(sessionID), s.bundlesKey(sessionID)).Err()
}

// MemoryCartStore is an in-process cart store used when Redis is
// disabled, and in tests.
type MemoryCartStore struct {
	mu       sync.RWMutex
	products map[string][]models.CartProductLine
	bundles  map[string][]models.CartBundleLine
}

// NewMemoryCartStore creates an empty in-memory cart store.
func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{
		products: make(map[string][]models.CartProductLine),
		bundles:  make(map[string][]models.CartBundleLine),
	}
}

// GetProducts loads the product lines for a session.
func (s *MemoryCartStore) GetProducts(_ context.Context, sessionID string) ([]models.CartProductLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lines := s.products[sessionID]
	out := make([]models.CartProductLine, len(lines))
	copy(out, lines)
	return out, nil
}

// SaveProducts replaces the product lines for a session.
func (s *MemoryCartStore) SaveProducts(_ context.Context, sessionID string, lines []models.CartProductLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]models.CartProductLine, len(lines))
	copy(stored, lines)
	s.products[sessionID] = stored
	return nil
}

// GetBundles loads the bundle lines for a session.
func (s *MemoryCartStore) GetBundles(_ context.Context, sessionID string) ([]models.CartBundleLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lines := s.bundles[sessionID]
	out := make([]models.CartBundleLine, len(lines))
	copy(out, lines)
	return out, nil
}

// SaveBundles replaces the bundle lines for a session.
func (s *MemoryCartStore) SaveBundles(_ context.Context, sessionID string, lines []models.CartBundleLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]models.CartBundleLine, len(lines))
	copy(stored, lines)
	s.bundles[sessionID] = stored
	return nil
}

// Clear drops both cart sections for a session.
func (s *MemoryCartStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.products, sessionID)
	delete(s.bundles, sessionID)
	return nil
}
