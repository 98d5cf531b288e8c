package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	pgzip "github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xenking/classics-showroom/internal/domain/order"
)

type mockExporter struct {
	orders map[order.Status][]order.Order
	err    error
}

func (m *mockExporter) ExportByStatus(_ context.Context, status order.Status, fn func(order.Order) error) error {
	if m.err != nil {
		return m.err
	}
	for _, o := range m.orders[status] {
		if err := fn(o); err != nil {
			return err
		}
	}
	return nil
}

func paidOrder(id int64) order.Order {
	userID := int64(7)
	paidAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	return order.Order{
		ID:          id,
		Number:      uuid.New(),
		UserID:      &userID,
		Status:      order.StatusPaid,
		Subtotal:    decimal.RequireFromString("200"),
		DeliveryFee: decimal.RequireFromString("5"),
		GrandTotal:  decimal.RequireFromString("205"),
		PaidAmount:  decimal.NewNullDecimal(decimal.RequireFromString("205")),
		Currency:    "GBP",
		CartSnapshot: []order.SnapshotItem{
			{CarID: 1, CarName: "1961 Jaguar E-Type", Quantity: 2, UnitPrice: decimal.RequireFromString("100")},
		},
		PaymentIntentID: "pi_1",
		PaidAt:          &paidAt,
		CreatedAt:       paidAt.Add(-time.Hour),
	}
}

func readRecords(t *testing.T, data []byte) []map[string]any {
	t.Helper()
	gz, err := pgzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer gz.Close()

	var out []map[string]any
	sc := bufio.NewScanner(gz)
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		out = append(out, rec)
	}
	require.NoError(t, sc.Err())
	return out
}

func TestWriteExport(t *testing.T) {
	exp := &mockExporter{orders: map[order.Status][]order.Order{
		order.StatusPaid: {paidOrder(1), paidOrder(2)},
	}}

	var buf bytes.Buffer
	n, err := writeExport(context.Background(), exp, order.StatusPaid, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	recs := readRecords(t, buf.Bytes())
	require.Len(t, recs, 2)
	assert.Equal(t, float64(1), recs[0]["order_id"])
	assert.Equal(t, "205.00", recs[0]["grand_total"])
	assert.Equal(t, "205.00", recs[0]["paid_amount"])
	assert.Equal(t, "GBP", recs[0]["currency"])
	assert.Equal(t, "2026-03-14T12:00:00Z", recs[0]["paid_at"])
	assert.Len(t, recs[0]["items"], 1)
}

func TestWriteExport_NullUser(t *testing.T) {
	o := paidOrder(3)
	o.UserID = nil
	exp := &mockExporter{orders: map[order.Status][]order.Order{order.StatusPaid: {o}}}

	var buf bytes.Buffer
	_, err := writeExport(context.Background(), exp, order.StatusPaid, &buf)
	require.NoError(t, err)

	recs := readRecords(t, buf.Bytes())
	require.Len(t, recs, 1)
	assert.Contains(t, recs[0], "user_id")
	assert.Nil(t, recs[0]["user_id"])
}

func TestExportAll(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	exp := &mockExporter{orders: map[order.Status][]order.Order{
		order.StatusPaid: {paidOrder(1)},
	}}

	err := exportAll(context.Background(), zap.NewNop(), exp, dir, []order.Status{order.StatusPaid, order.StatusFailed}, now)
	require.NoError(t, err)

	paid, err := os.ReadFile(filepath.Join(dir, "orders-paid-20261001.ndjson.gz"))
	require.NoError(t, err)
	assert.Len(t, readRecords(t, paid), 1)

	failed, err := os.ReadFile(filepath.Join(dir, "orders-failed-20261001.ndjson.gz"))
	require.NoError(t, err)
	assert.Empty(t, readRecords(t, failed))
}

func TestExportAll_Error(t *testing.T) {
	exp := &mockExporter{err: errors.New("connection reset")}

	err := exportAll(context.Background(), zap.NewNop(), exp, t.TempDir(), []order.Status{order.StatusPaid}, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "export paid orders")
}

func TestParseStatuses(t *testing.T) {
	got, err := parseStatuses("paid, failed,paid")
	require.NoError(t, err)
	assert.Equal(t, []order.Status{order.StatusPaid, order.StatusFailed}, got)

	_, err = parseStatuses("refunded")
	require.Error(t, err)
}
