// Package redis implements the cart store on Redis.
package redis

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xenking/classics-showroom/internal/domain/cart"
)

var _ cart.Store = (*CartStore)(nil)

// CartStore keeps each cart in a hash at cart:user:<id>, one field per car
// holding its quantity, so a car appears at most once per cart.
type CartStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewClient parses a redis:// URL and returns a client. It does not dial.
func NewClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	return redis.NewClient(opts), nil
}

// NewCartStore returns a CartStore. A positive ttl expires idle carts.
func NewCartStore(client redis.UniversalClient, ttl time.Duration) *CartStore {
	return &CartStore{client: client, ttl: ttl}
}

func cartKey(userID int64) string {
	return "cart:user:" + strconv.FormatInt(userID, 10)
}

// Get returns the user's cart, empty when none exists.
func (s *CartStore) Get(ctx context.Context, userID int64) (*cart.Cart, error) {
	fields, err := s.client.HGetAll(ctx, cartKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("reading cart of user %d: %w", userID, err)
	}
	items, err := itemsFromHash(fields)
	if err != nil {
		return nil, fmt.Errorf("decoding cart of user %d: %w", userID, err)
	}
	return &cart.Cart{UserID: userID, Items: items}, nil
}

// Add increments the quantity of carID in the user's cart and refreshes the
// cart's expiry.
func (s *CartStore) Add(ctx context.Context, userID, carID int64, quantity int) error {
	key := cartKey(userID)
	_, err := s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HIncrBy(ctx, key, strconv.FormatInt(carID, 10), int64(quantity))
		if s.ttl > 0 {
			p.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("adding car %d to cart of user %d: %w", carID, userID, err)
	}
	return nil
}

// Clear deletes the user's cart.
func (s *CartStore) Clear(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("clearing cart of user %d: %w", userID, err)
	}
	return nil
}

// Ping checks connectivity for readiness probes.
func (s *CartStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// itemsFromHash decodes hash fields into items ordered by car id. Entries
// with a non-positive quantity are dropped.
func itemsFromHash(fields map[string]string) ([]cart.Item, error) {
	items := make([]cart.Item, 0, len(fields))
	for field, value := range fields {
		carID, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("car id %q: %w", field, err)
		}
		qty, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("quantity of car %d: %w", carID, err)
		}
		if qty <= 0 {
			continue
		}
		items = append(items, cart.Item{CarID: carID, Quantity: qty})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CarID < items[j].CarID })
	return items, nil
}
