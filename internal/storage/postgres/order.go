package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/classics-showroom/internal/domain/order"
)

const (
	orderColumns = `id, order_number, user_id, account_email,
		full_name, email, phone_number, street_address1, street_address2,
		town_or_city, county, postcode, country,
		delivery_distance, cart_snapshot, subtotal, delivery_fee, grand_total,
		stripe_pid, paid_amount, currency, paid_at, status, created_at, updated_at`

	insertOrderSQL = `INSERT INTO orders
		(order_number, user_id, account_email, delivery_distance, cart_snapshot, subtotal, delivery_fee, grand_total, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`

	insertLineItemSQL = `INSERT INTO order_line_items
		(order_id, car_id, car_name, quantity, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	getOrderByIDSQL     = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	getOrderByNumberSQL = `SELECT ` + orderColumns + ` FROM orders WHERE order_number = $1`

	listLineItemsSQL = `SELECT id, car_id, car_name, quantity, unit_price
		FROM order_line_items WHERE order_id = $1 ORDER BY id`

	listOrdersByUserSQL = `SELECT ` + orderColumns + `, count(*) OVER ()
		FROM orders WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	countOrdersByUserSQL = `SELECT count(*) FROM orders WHERE user_id = $1`

	exportOrdersSQL = `SELECT ` + orderColumns + ` FROM orders WHERE status = $1 ORDER BY id`

	updatePaymentSQL = `UPDATE orders
		SET subtotal = $2, delivery_fee = $3, grand_total = $4, stripe_pid = $5, updated_at = now()
		WHERE id = $1 AND status = 'pending'`

	updateDeliverySQL = `UPDATE orders
		SET delivery_distance = $2, subtotal = $3, delivery_fee = $4, grand_total = $5, updated_at = now()
		WHERE id = $1 AND status = 'pending'`

	updateShippingSQL = `UPDATE orders
		SET full_name = $2, email = $3, phone_number = $4, street_address1 = $5, street_address2 = $6,
			town_or_city = $7, county = $8, postcode = $9, country = $10, updated_at = now()
		WHERE id = $1`

	markPaidSQL = `UPDATE orders
		SET status = 'paid',
			stripe_pid = CASE WHEN stripe_pid = '' THEN $2 ELSE stripe_pid END,
			paid_amount = $3, currency = $4, paid_at = $5, updated_at = now()
		WHERE id = $1 AND status = 'pending' AND stripe_pid IN ('', $2)`

	markCarsSoldSQL = `UPDATE cars SET sold = TRUE
		WHERE id IN (SELECT car_id FROM order_line_items WHERE order_id = $1)`

	markFailedSQL = `UPDATE orders
		SET status = 'failed', stripe_pid = CASE WHEN stripe_pid = '' THEN $2 ELSE stripe_pid END, updated_at = now()
		WHERE id = $1 AND status = 'pending' AND stripe_pid IN ('', $2)`
)

var _ order.Repository = (*OrderRepository)(nil)

// OrderRepository implements order.Repository backed by PostgreSQL. Status
// transitions are single conditional UPDATEs, never read-modify-write.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns an OrderRepository that uses the given pool.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create inserts the order and its line items in one transaction. The cart
// snapshot is stored as JSONB.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	snapshot, err := json.Marshal(o.CartSnapshot)
	if err != nil {
		return fmt.Errorf("marshaling cart snapshot: %w", err)
	}
	if o.Number == uuid.Nil {
		o.Number = uuid.New()
	}

	err = pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, insertOrderSQL,
			o.Number, o.UserID, o.AccountEmail, o.DeliveryDistance, snapshot,
			o.Subtotal, o.DeliveryFee, o.GrandTotal, string(o.Status),
		).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return fmt.Errorf("inserting order: %w", err)
		}

		for i := range o.Items {
			li := &o.Items[i]
			if err := tx.QueryRow(ctx, insertLineItemSQL,
				o.ID, li.CarID, li.CarName, li.Quantity, li.UnitPrice, li.Total(),
			).Scan(&li.ID); err != nil {
				return fmt.Errorf("inserting line item for car %d: %w", li.CarID, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("creating order %s: %w", o.Number, err)
	}
	return nil
}

// FindByID returns an order with its line items.
func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*order.Order, error) {
	return r.findOne(ctx, getOrderByIDSQL, id)
}

// FindByNumber returns an order with its line items by public order number.
func (r *OrderRepository) FindByNumber(ctx context.Context, number uuid.UUID) (*order.Order, error) {
	return r.findOne(ctx, getOrderByNumberSQL, number)
}

func (r *OrderRepository) findOne(ctx context.Context, query string, arg any) (*order.Order, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("getting order %v: %w", arg, err)
	}
	o, err := pgx.CollectExactlyOneRow(rows, scanOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrNotFound
		}
		return nil, fmt.Errorf("getting order %v: %w", arg, err)
	}

	rows, err = r.pool.Query(ctx, listLineItemsSQL, o.ID)
	if err != nil {
		return nil, fmt.Errorf("listing line items of order %d: %w", o.ID, err)
	}
	if o.Items, err = pgx.CollectRows(rows, scanLineItem); err != nil {
		return nil, fmt.Errorf("listing line items of order %d: %w", o.ID, err)
	}
	return &o, nil
}

// ListByUser returns a page of the user's orders without line items.
func (r *OrderRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]order.Order, int, error) {
	rows, err := r.pool.Query(ctx, listOrdersByUserSQL, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("listing orders of user %d: %w", userID, err)
	}
	defer rows.Close()

	var (
		orders []order.Order
		total  int64
	)
	for rows.Next() {
		var o order.Order
		if err := scanOrderInto(rows, &o, &total); err != nil {
			return nil, 0, fmt.Errorf("scanning order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("listing orders of user %d: %w", userID, err)
	}

	// A page past the end carries no window count.
	if len(orders) == 0 && offset > 0 {
		if err := r.pool.QueryRow(ctx, countOrdersByUserSQL, userID).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("counting orders of user %d: %w", userID, err)
		}
	}
	return orders, int(total), nil
}

// ExportByStatus streams every order in the given status to fn, in id order.
func (r *OrderRepository) ExportByStatus(ctx context.Context, status order.Status, fn func(order.Order) error) error {
	rows, err := r.pool.Query(ctx, exportOrdersSQL, string(status))
	if err != nil {
		return fmt.Errorf("exporting %s orders: %w", status, err)
	}
	defer rows.Close()

	for rows.Next() {
		var o order.Order
		if err := scanOrderInto(rows, &o); err != nil {
			return fmt.Errorf("scanning order: %w", err)
		}
		if err := fn(o); err != nil {
			return err
		}
	}
	return rows.Err()
}

// UpdatePayment stores recomputed totals and the payment intent of a pending
// order.
func (r *OrderRepository) UpdatePayment(ctx context.Context, id int64, t order.Totals, intentID string) error {
	return r.execPending(ctx, "updating payment", updatePaymentSQL,
		id, t.Subtotal, t.DeliveryFee, t.GrandTotal, intentID)
}

// UpdateDelivery stores the delivery distance and recomputed totals of a
// pending order.
func (r *OrderRepository) UpdateDelivery(ctx context.Context, id int64, distanceMiles int, t order.Totals) error {
	return r.execPending(ctx, "updating delivery", updateDeliverySQL,
		id, distanceMiles, t.Subtotal, t.DeliveryFee, t.GrandTotal)
}

// UpdateShipping stores contact and shipping fields regardless of status.
func (r *OrderRepository) UpdateShipping(ctx context.Context, id int64, s order.Shipping) error {
	tag, err := r.pool.Exec(ctx, updateShippingSQL, id,
		s.FullName, s.Email, s.PhoneNumber, s.StreetAddress1, s.StreetAddress2,
		s.TownOrCity, s.County, s.Postcode, s.Country,
	)
	if err != nil {
		return fmt.Errorf("updating shipping of order %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrNotFound
	}
	return nil
}

// MarkPaid transitions a pending order to paid and marks its cars sold in the
// same transaction.
func (r *OrderRepository) MarkPaid(ctx context.Context, id int64, c order.Capture) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, markPaidSQL, id, c.IntentID, c.Amount, c.Currency, c.At)
		if err != nil {
			return fmt.Errorf("marking order %d paid: %w", id, err)
		}
		if tag.RowsAffected() == 0 {
			return order.ErrTransitionConflict
		}
		if _, err := tx.Exec(ctx, markCarsSoldSQL, id); err != nil {
			return fmt.Errorf("marking cars of order %d sold: %w", id, err)
		}
		return nil
	})
}

// MarkFailed transitions a pending order to failed.
func (r *OrderRepository) MarkFailed(ctx context.Context, id int64, intentID string) error {
	return r.execPending(ctx, "marking failed", markFailedSQL, id, intentID)
}

func (r *OrderRepository) execPending(ctx context.Context, op, query string, args ...any) error {
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s order %v: %w", op, args[0], err)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrTransitionConflict
	}
	return nil
}

func scanOrder(row pgx.CollectableRow) (order.Order, error) {
	var o order.Order
	err := scanOrderInto(row, &o)
	return o, err
}

func scanOrderInto(row pgx.Row, o *order.Order, extra ...any) error {
	var (
		snapshot []byte
		status   string
	)
	dest := []any{
		&o.ID, &o.Number, &o.UserID, &o.AccountEmail,
		&o.Shipping.FullName, &o.Shipping.Email, &o.Shipping.PhoneNumber,
		&o.Shipping.StreetAddress1, &o.Shipping.StreetAddress2,
		&o.Shipping.TownOrCity, &o.Shipping.County, &o.Shipping.Postcode, &o.Shipping.Country,
		&o.DeliveryDistance, &snapshot, &o.Subtotal, &o.DeliveryFee, &o.GrandTotal,
		&o.PaymentIntentID, &o.PaidAmount, &o.Currency, &o.PaidAt, &status,
		&o.CreatedAt, &o.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return err
	}
	o.Status = order.Status(status)
	if len(snapshot) > 0 {
		if err := json.Unmarshal(snapshot, &o.CartSnapshot); err != nil {
			return fmt.Errorf("unmarshaling cart snapshot of order %d: %w", o.ID, err)
		}
	}
	return nil
}

func scanLineItem(row pgx.CollectableRow) (order.LineItem, error) {
	var li order.LineItem
	err := row.Scan(&li.ID, &li.CarID, &li.CarName, &li.Quantity, &li.UnitPrice)
	return li, err
}
