// Command order-export writes orders as gzipped NDJSON, one file per status,
// for the accounting team.
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	pgzip "github.com/klauspost/pgzip"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/classics-showroom/internal/domain/order"
	"github.com/xenking/classics-showroom/internal/storage/postgres"
)

type exporter interface {
	ExportByStatus(ctx context.Context, status order.Status, fn func(order.Order) error) error
}

func main() {
	var (
		databaseURL string
		outDir      string
		statuses    string
	)
	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.StringVar(&outDir, "out", "export", "output directory")
	flag.StringVar(&statuses, "status", "paid", "comma separated statuses to export (pending, paid, failed)")
	flag.Parse()

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}

	lg := zap.Must(zap.NewProduction())
	defer func() { _ = lg.Sync() }()

	if databaseURL == "" {
		lg.Fatal("Database URL is required: set -database-url or DATABASE_URL")
	}
	list, err := parseStatuses(statuses)
	if err != nil {
		lg.Fatal("Invalid -status", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, lg, databaseURL, outDir, list); err != nil {
		lg.Fatal("Export failed", zap.Error(err))
	}
}

func run(ctx context.Context, lg *zap.Logger, databaseURL, outDir string, statuses []order.Status) error {
	pool, err := postgres.NewPool(ctx, postgres.PoolConfig{URL: databaseURL})
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	return exportAll(ctx, lg, postgres.NewOrderRepository(pool), outDir, statuses, time.Now())
}

// exportAll writes one orders-<status>-<date>.ndjson.gz per status
// concurrently.
func exportAll(ctx context.Context, lg *zap.Logger, exp exporter, outDir string, statuses []order.Status, now time.Time) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, status := range statuses {
		path := filepath.Join(outDir, "orders-"+string(status)+"-"+now.UTC().Format("20060102")+".ndjson.gz")
		g.Go(func() error {
			n, err := exportFile(ctx, exp, status, path)
			if err != nil {
				return errors.Wrapf(err, "export %s orders", status)
			}
			lg.Info("Exported orders", zap.String("status", string(status)), zap.Int("count", n), zap.String("file", path))
			return nil
		})
	}
	return g.Wait()
}

func exportFile(ctx context.Context, exp exporter, status order.Status, path string) (n int, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, errors.Wrap(err, "create file")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close file")
		}
	}()
	return writeExport(ctx, exp, status, f)
}

// writeExport streams orders as gzipped NDJSON to w.
func writeExport(ctx context.Context, exp exporter, status order.Status, w io.Writer) (int, error) {
	gz := pgzip.NewWriter(w)

	var (
		n int
		e jx.Encoder
	)
	err := exp.ExportByStatus(ctx, status, func(o order.Order) error {
		e.Reset()
		encodeRecord(&e, &o)
		if _, err := gz.Write(append(e.Bytes(), '\n')); err != nil {
			return errors.Wrap(err, "write record")
		}
		n++
		return nil
	})
	if err != nil {
		_ = gz.Close()
		return n, err
	}
	if err := gz.Close(); err != nil {
		return n, errors.Wrap(err, "flush gzip")
	}
	return n, nil
}

func encodeRecord(e *jx.Encoder, o *order.Order) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("order_id", func(e *jx.Encoder) { e.Int64(o.ID) })
		e.Field("order_number", func(e *jx.Encoder) { e.Str(o.Number.String()) })
		e.Field("user_id", func(e *jx.Encoder) {
			if o.UserID == nil {
				e.Null()
				return
			}
			e.Int64(*o.UserID)
		})
		e.Field("status", func(e *jx.Encoder) { e.Str(string(o.Status)) })
		e.Field("subtotal", func(e *jx.Encoder) { e.Str(o.Subtotal.StringFixed(2)) })
		e.Field("delivery_fee", func(e *jx.Encoder) { e.Str(o.DeliveryFee.StringFixed(2)) })
		e.Field("grand_total", func(e *jx.Encoder) { e.Str(o.GrandTotal.StringFixed(2)) })
		if o.PaidAmount.Valid {
			e.Field("paid_amount", func(e *jx.Encoder) { e.Str(o.PaidAmount.Decimal.StringFixed(2)) })
		}
		if o.Currency != "" {
			e.Field("currency", func(e *jx.Encoder) { e.Str(o.Currency) })
		}
		if o.PaymentIntentID != "" {
			e.Field("payment_intent_id", func(e *jx.Encoder) { e.Str(o.PaymentIntentID) })
		}
		e.Field("items", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, it := range o.CartSnapshot {
					e.Obj(func(e *jx.Encoder) {
						e.Field("car_id", func(e *jx.Encoder) { e.Int64(it.CarID) })
						e.Field("car_name", func(e *jx.Encoder) { e.Str(it.CarName) })
						e.Field("quantity", func(e *jx.Encoder) { e.Int(it.Quantity) })
						e.Field("unit_price", func(e *jx.Encoder) { e.Str(it.UnitPrice.StringFixed(2)) })
					})
				}
			})
		})
		e.Field("created_at", func(e *jx.Encoder) { e.Str(o.CreatedAt.UTC().Format(time.RFC3339)) })
		if o.PaidAt != nil {
			e.Field("paid_at", func(e *jx.Encoder) { e.Str(o.PaidAt.UTC().Format(time.RFC3339)) })
		}
	})
}

func parseStatuses(s string) ([]order.Status, error) {
	seen := make(map[order.Status]bool)
	var out []order.Status
	for _, part := range strings.Split(s, ",") {
		st := order.Status(strings.TrimSpace(part))
		switch st {
		case order.StatusPending, order.StatusPaid, order.StatusFailed:
		default:
			return nil, errors.Errorf("unknown status %q", part)
		}
		if !seen[st] {
			seen[st] = true
			out = append(out, st)
		}
	}
	return out, nil
}
