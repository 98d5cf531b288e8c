// Command seed-showroom loads the car catalog into Postgres and optionally
// fills a user's cart in Redis, for local development and integration tests.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/xenking/classics-showroom/internal/domain/catalog"
	"github.com/xenking/classics-showroom/internal/handler"
	"github.com/xenking/classics-showroom/internal/storage/postgres"
	"github.com/xenking/classics-showroom/internal/storage/redis"
)

type carJSON struct {
	ID    int64           `json:"id"`
	Make  string          `json:"make"`
	Model string          `json:"model"`
	Year  int             `json:"year"`
	Price decimal.Decimal `json:"price"`
	Sold  bool            `json:"sold"`
}

type options struct {
	databaseURL string
	carsFile    string
	redisURL    string
	cartUser    int64
	email       string
	cartItems   string
	jwtSecret   string
}

func main() {
	var opts options
	flag.StringVar(&opts.databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.StringVar(&opts.carsFile, "cars-file", "db/seed/cars.json", "path to cars JSON file")
	flag.StringVar(&opts.redisURL, "redis-url", "", "Redis URL (or REDIS_URL env); required with -cart-user")
	flag.Int64Var(&opts.cartUser, "cart-user", 0, "user id whose cart to fill")
	flag.StringVar(&opts.cartItems, "cart", "1:1", "cart contents as car:quantity pairs, comma separated")
	flag.StringVar(&opts.email, "email", "", "account email carried in the printed token")
	flag.StringVar(&opts.jwtSecret, "jwt-secret", "", "print a bearer token for -cart-user signed with this secret")
	flag.Parse()

	if opts.databaseURL == "" {
		opts.databaseURL = os.Getenv("DATABASE_URL")
	}
	if opts.redisURL == "" {
		opts.redisURL = os.Getenv("REDIS_URL")
	}

	lg := zap.Must(zap.NewDevelopment())
	defer func() { _ = lg.Sync() }()

	if opts.databaseURL == "" {
		lg.Fatal("Database URL is required: set -database-url or DATABASE_URL")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, lg, opts); err != nil {
		lg.Fatal("Seed failed", zap.Error(err))
	}
	lg.Info("Seed completed")
}

func run(ctx context.Context, lg *zap.Logger, opts options) error {
	pool, err := postgres.NewPool(ctx, postgres.PoolConfig{URL: opts.databaseURL})
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	lg.Info("Running migrations")
	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	cars, err := readCars(opts.carsFile)
	if err != nil {
		return err
	}
	if err := postgres.NewCarRepository(pool).Upsert(ctx, cars); err != nil {
		return errors.Wrap(err, "upsert cars")
	}
	lg.Info("Upserted cars", zap.Int("count", len(cars)), zap.String("file", opts.carsFile))

	if opts.cartUser == 0 {
		return nil
	}
	if err := fillCart(ctx, lg, opts); err != nil {
		return err
	}
	if opts.jwtSecret != "" {
		tok, err := handler.NewAuthenticator([]byte(opts.jwtSecret)).Issue(handler.Identity{UserID: opts.cartUser, Email: opts.email}, 24*time.Hour)
		if err != nil {
			return errors.Wrap(err, "issue token")
		}
		// Printed bare so scripts can capture it.
		_, _ = os.Stdout.WriteString(tok + "\n")
	}
	return nil
}

func readCars(path string) ([]catalog.Car, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read cars file")
	}
	var raw []carJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "parse cars JSON")
	}

	cars := make([]catalog.Car, len(raw))
	for i, c := range raw {
		if c.ID <= 0 || c.Price.IsNegative() {
			return nil, errors.Errorf("car %d: invalid id or price", c.ID)
		}
		cars[i] = catalog.Car{ID: c.ID, Make: c.Make, Model: c.Model, Year: c.Year, Price: c.Price, Sold: c.Sold}
	}
	return cars, nil
}

func fillCart(ctx context.Context, lg *zap.Logger, opts options) error {
	if opts.redisURL == "" {
		return errors.New("redis URL is required with -cart-user")
	}
	items, err := parseCart(opts.cartItems)
	if err != nil {
		return err
	}

	rdb, err := redis.NewClient(opts.redisURL)
	if err != nil {
		return err
	}
	defer func() { _ = rdb.Close() }()

	store := redis.NewCartStore(rdb, 0)
	if err := store.Clear(ctx, opts.cartUser); err != nil {
		return errors.Wrap(err, "clear cart")
	}
	for carID, qty := range items {
		if err := store.Add(ctx, opts.cartUser, carID, qty); err != nil {
			return errors.Wrapf(err, "add car %d", carID)
		}
	}
	lg.Info("Filled cart", zap.Int64("user_id", opts.cartUser), zap.Int("cars", len(items)))
	return nil
}

// parseCart parses "1:2,3:1" into car id -> quantity.
func parseCart(s string) (map[int64]int, error) {
	items := make(map[int64]int)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		idStr, qtyStr, ok := strings.Cut(pair, ":")
		if !ok {
			qtyStr = "1"
		}
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "cart entry %q", pair)
		}
		qty, err := strconv.Atoi(qtyStr)
		if err != nil || qty <= 0 {
			return nil, errors.Errorf("cart entry %q: quantity must be positive", pair)
		}
		items[id] += qty
	}
	return items, nil
}
